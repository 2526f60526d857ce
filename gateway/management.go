package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// TransactionType tags a transaction as a purchase or a sale.
type TransactionType string

const (
	Buy  TransactionType = "BUY"
	Sell TransactionType = "SELL"
)

// Holding is a position as reported by the platform.
type Holding struct {
	StockSymbol string          `json:"stockSymbol"`
	Quantity    decimal.Decimal `json:"quantity"`
	AvgPrice    decimal.Decimal `json:"avg_price"`
}

// Transaction is one buy or sell recorded by the platform.
type Transaction struct {
	Date            string          `json:"date"`
	StockSymbol     string          `json:"stockSymbol"`
	TransactionType TransactionType `json:"transactionType"`
	Quantity        decimal.Decimal `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
}

// ErrNoCredentials is returned by the credential-based listing calls
// when neither the explicit arguments nor the session provide an
// identity pair. Unlike the history reads, these calls must not degrade
// silently.
var ErrNoCredentials = errors.New("email and password are required")

// resolveCredentials applies the override-or-session rule: explicit
// arguments win, the session fills the gaps, and an incomplete pair
// fails fast before any network call.
func (c *Client) resolveCredentials(email, password string) (string, string, error) {
	if email == "" || password == "" {
		sessionEmail, sessionPassword := c.session.Credentials()
		if email == "" {
			email = sessionEmail
		}
		if password == "" {
			password = sessionPassword
		}
	}
	if email == "" || password == "" {
		return "", "", ErrNoCredentials
	}
	return email, password, nil
}

// Holdings lists the positions of the account identified by the
// credential pair; empty arguments fall back to the session.
func (c *Client) Holdings(email, password string) ([]Holding, error) {
	email, password, err := c.resolveCredentials(email, password)
	if err != nil {
		return nil, err
	}
	body, err := c.do(http.MethodPost, "/holding", nil, credentials{email, password})
	if err != nil {
		return nil, err
	}
	var holdings []Holding
	if err := json.Unmarshal(body, &holdings); err != nil {
		return nil, fmt.Errorf("cannot decode holdings: %w", err)
	}
	return holdings, nil
}

// Transactions lists the account's recorded transactions, with the same
// override-or-session credential rule as Holdings.
func (c *Client) Transactions(email, password string) ([]Transaction, error) {
	email, password, err := c.resolveCredentials(email, password)
	if err != nil {
		return nil, err
	}
	body, err := c.do(http.MethodPost, "/api/StockManagement/transactions", nil, credentials{email, password})
	if err != nil {
		return nil, err
	}
	var transactions []Transaction
	if err := json.Unmarshal(body, &transactions); err != nil {
		return nil, fmt.Errorf("cannot decode transactions: %w", err)
	}
	return transactions, nil
}

// CreateTransaction records a buy or sell for a numeric client id, the
// legacy identification path.
func (c *Client) CreateTransaction(clientID int, symbol string, quantity decimal.Decimal, txType TransactionType) error {
	payload := struct {
		ClientID        int             `json:"clientId"`
		StockSymbol     string          `json:"stockSymbol"`
		Quantity        float64         `json:"quantity"`
		TransactionType TransactionType `json:"transactionType"`
	}{clientID, symbol, quantity.InexactFloat64(), txType}
	_, err := c.do(http.MethodPost, "/api/StockManagement/transaction", nil, payload)
	return err
}

// CreateTransactionByEmail records a buy or sell for the account
// identified by the credential pair.
func (c *Client) CreateTransactionByEmail(email, password, symbol string, quantity decimal.Decimal, txType TransactionType) error {
	payload := struct {
		Email           string          `json:"email"`
		Password        string          `json:"password"`
		StockSymbol     string          `json:"stockSymbol"`
		Quantity        float64         `json:"quantity"`
		TransactionType TransactionType `json:"transactionType"`
	}{email, password, symbol, quantity.InexactFloat64(), txType}
	_, err := c.do(http.MethodPost, "/api/StockManagement/transactionByEmail", nil, payload)
	return err
}
