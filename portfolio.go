package stockdesk

import (
	"log"

	"github.com/ebrelin/stockdesk/gateway"
	"github.com/shopspring/decimal"
)

// EnrichedHolding is a gateway holding augmented with the symbol's
// latest price and the position's market value.
type EnrichedHolding struct {
	gateway.Holding
	CurrentPrice decimal.Decimal
	TotalValue   decimal.Decimal
}

// PortfolioModel groups the portfolio calls and derives the values the
// portfolio screen displays. It holds no state of its own.
type PortfolioModel struct {
	client *gateway.Client
}

// NewPortfolioModel returns a portfolio model over the given client.
func NewPortfolioModel(client *gateway.Client) *PortfolioModel {
	return &PortfolioModel{client: client}
}

// Holdings fetches the account's positions and augments each with the
// symbol's current price and total value, returning the enriched rows
// and the portfolio total. A failing price fetch leaves that row's
// price at zero rather than failing the whole portfolio. Credentials
// follow the override-or-session rule of the gateway client.
func (p *PortfolioModel) Holdings(email, password string) ([]EnrichedHolding, decimal.Decimal, error) {
	holdings, err := p.client.Holdings(email, password)
	if err != nil {
		return nil, decimal.Zero, err
	}

	enriched := make([]EnrichedHolding, 0, len(holdings))
	total := decimal.Zero
	for _, h := range holdings {
		price, err := p.client.CurrentPrice(h.StockSymbol)
		if err != nil {
			log.Printf("current price for %s unavailable: %v", h.StockSymbol, err)
			price = decimal.Zero
		}
		value := h.Quantity.Mul(price)
		total = total.Add(value)
		enriched = append(enriched, EnrichedHolding{
			Holding:      h,
			CurrentPrice: price,
			TotalValue:   value,
		})
	}
	return enriched, total, nil
}

// Transactions lists the account's recorded transactions.
func (p *PortfolioModel) Transactions(email, password string) ([]gateway.Transaction, error) {
	return p.client.Transactions(email, password)
}

// Buy records a purchase for the account identified by the credential
// pair.
func (p *PortfolioModel) Buy(email, password, symbol string, quantity decimal.Decimal) error {
	return p.client.CreateTransactionByEmail(email, password, symbol, quantity, gateway.Buy)
}

// Sell records a sale for the account identified by the credential
// pair.
func (p *PortfolioModel) Sell(email, password, symbol string, quantity decimal.Decimal) error {
	return p.client.CreateTransactionByEmail(email, password, symbol, quantity, gateway.Sell)
}

// Trade records a buy or sell for a numeric client id, the legacy
// identification path.
func (p *PortfolioModel) Trade(clientID int, symbol string, quantity decimal.Decimal, txType gateway.TransactionType) error {
	return p.client.CreateTransaction(clientID, symbol, quantity, txType)
}
