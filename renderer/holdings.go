// Package renderer builds the markdown documents the CLI prints.
package renderer

import (
	"bytes"
	"fmt"

	stockdesk "github.com/ebrelin/stockdesk"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the enriched holdings with the portfolio
// total.
func HoldingsMarkdown(holdings []stockdesk.EnrichedHolding, total stockdesk.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Quantity", "Avg Price", "Price", "Value"},
		Rows:   [][]string{},
	}
	for _, h := range holdings {
		table.Rows = append(table.Rows, []string{
			h.StockSymbol,
			h.Quantity.String(),
			h.AvgPrice.String(),
			h.CurrentPrice.String(),
			h.TotalValue.String(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total value: %s", total))

	return doc.String()
}
