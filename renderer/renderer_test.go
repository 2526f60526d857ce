package renderer

import (
	"strings"
	"testing"

	stockdesk "github.com/ebrelin/stockdesk"
	"github.com/ebrelin/stockdesk/gateway"
	"github.com/shopspring/decimal"
)

func TestHoldingsMarkdown(t *testing.T) {
	holdings := []stockdesk.EnrichedHolding{
		{
			Holding: gateway.Holding{
				StockSymbol: "AAPL",
				Quantity:    decimal.NewFromInt(10),
				AvgPrice:    decimal.RequireFromString("180.25"),
			},
			CurrentPrice: decimal.RequireFromString("210.5"),
			TotalValue:   decimal.NewFromInt(2105),
		},
	}
	got := HoldingsMarkdown(holdings, stockdesk.M(decimal.NewFromInt(2105), "USD"))

	for _, want := range []string{"# Portfolio", "AAPL", "180.25", "210.5", "2105", "Total value: $2,105.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("HoldingsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	transactions := []gateway.Transaction{
		{
			Date:            "2026-08-31",
			StockSymbol:     "MSFT",
			TransactionType: gateway.Sell,
			Quantity:        decimal.NewFromInt(3),
			Price:           decimal.RequireFromString("512.1"),
		},
	}
	got := TransactionsMarkdown(transactions)

	for _, want := range []string{"# Transactions", "2026-08-31", "SELL", "MSFT", "512.1"} {
		if !strings.Contains(got, want) {
			t.Errorf("TransactionsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	points := []gateway.PricePoint{
		{Date: "2026-08-28", ClosePrice: decimal.RequireFromString("209.1")},
		{Date: "2026-08-31", ClosePrice: decimal.RequireFromString("210.5")},
	}
	got := HistoryMarkdown("AAPL", points)

	for _, want := range []string{"# History for AAPL", "2026-08-28", "209.1", "210.5"} {
		if !strings.Contains(got, want) {
			t.Errorf("HistoryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
