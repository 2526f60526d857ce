package stockdesk

import (
	"github.com/ebrelin/stockdesk/gateway"
	"github.com/shopspring/decimal"
)

// StockModel groups the market-data and advisor calls behind the chart
// and advisor screens. It holds no state of its own.
type StockModel struct {
	client *gateway.Client
}

// NewStockModel returns a stock model over the given client.
func NewStockModel(client *gateway.Client) *StockModel {
	return &StockModel{client: client}
}

// CurrentPrice returns the latest price for a symbol.
func (s *StockModel) CurrentPrice(symbol string) (decimal.Decimal, error) {
	return s.client.CurrentPrice(symbol)
}

// History returns the close-price history over the last rangeDays,
// empty when the data is unavailable.
func (s *StockModel) History(symbol string, rangeDays int) []gateway.PricePoint {
	return s.client.History(symbol, rangeDays)
}

// WeeklyHistory returns the week-sampled history, empty when the data
// is unavailable.
func (s *StockModel) WeeklyHistory(symbol string, rangeDays, interval int) []gateway.PricePoint {
	return s.client.WeeklyHistory(symbol, rangeDays, interval)
}

// Advice asks the AI advisor a free-form question.
func (s *StockModel) Advice(query string) (string, error) {
	return s.client.Advice(query)
}

// HistoryAdvice asks the AI advisor for an assessment of a symbol based
// on its price history.
func (s *StockModel) HistoryAdvice(symbol string) (string, error) {
	return s.client.HistoryAdvice(symbol)
}
