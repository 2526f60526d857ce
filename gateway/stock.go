package gateway

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// PricePoint is one closing price in a stock's history.
type PricePoint struct {
	Date       string          `json:"date"`
	ClosePrice decimal.Decimal `json:"closePrice"`
}

// Advice asks the AI advisor a free-form question. The advisor answers
// in markdown or plain text, relayed verbatim.
func (c *Client) Advice(query string) (string, error) {
	body, err := c.do(http.MethodGet, "/api/AIAdvisor/AIadvice/"+url.PathEscape(query), nil, nil)
	if err != nil {
		return "", err
	}
	return decodeText(body), nil
}

// HistoryAdvice asks the AI advisor for an assessment of a symbol based
// on its price history.
func (c *Client) HistoryAdvice(symbol string) (string, error) {
	body, err := c.do(http.MethodGet, "/api/AIAdvisor/based-history-advice/"+url.PathEscape(symbol), nil, nil)
	if err != nil {
		return "", err
	}
	return decodeText(body), nil
}

// CurrentData returns the raw current-data payload for a symbol.
func (c *Client) CurrentData(symbol string) ([]byte, error) {
	return c.do(http.MethodGet, "/api/StockData/current-data/"+url.PathEscape(symbol), nil, nil)
}

// CurrentPrice returns the latest price for a symbol. The payload shape
// drifted across gateway versions (bare number, quoted number, or an
// object carrying a price field); extractPrice accepts all of them.
func (c *Client) CurrentPrice(symbol string) (decimal.Decimal, error) {
	body, err := c.CurrentData(symbol)
	if err != nil {
		return decimal.Zero, err
	}
	price, err := extractPrice(body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("current data for %s: %w", symbol, err)
	}
	return price, nil
}

// History returns the close-price history of a symbol over the last
// rangeDays. Chart data must degrade gracefully, so any failure is
// logged and an empty history is returned instead of an error.
func (c *Client) History(symbol string, rangeDays int) []PricePoint {
	path := fmt.Sprintf("/api/StockData/stock-history/%s/%d", url.PathEscape(symbol), rangeDays)
	body, err := c.do(http.MethodGet, path, nil, nil)
	if err != nil {
		log.Printf("stock history for %s unavailable: %v", symbol, err)
		return nil
	}
	var points []PricePoint
	if err := json.Unmarshal(body, &points); err != nil {
		log.Printf("cannot decode stock history for %s: %v", symbol, err)
		return nil
	}
	return points
}

// WeeklyHistory is History sampled at a week-based interval, with the
// same degrade-to-empty behavior.
func (c *Client) WeeklyHistory(symbol string, rangeDays, interval int) []PricePoint {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("range", strconv.Itoa(rangeDays))
	q.Set("interval", strconv.Itoa(interval))
	body, err := c.do(http.MethodGet, "/api/StockData/stock-weekly-history", q, nil)
	if err != nil {
		log.Printf("weekly stock history for %s unavailable: %v", symbol, err)
		return nil
	}
	var points []PricePoint
	if err := json.Unmarshal(body, &points); err != nil {
		log.Printf("cannot decode weekly stock history for %s: %v", symbol, err)
		return nil
	}
	return points
}
