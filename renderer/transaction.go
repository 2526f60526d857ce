package renderer

import (
	"bytes"

	"github.com/ebrelin/stockdesk/gateway"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the transaction log.
func TransactionsMarkdown(transactions []gateway.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Type", "Symbol", "Quantity", "Price"},
		Rows:   [][]string{},
	}
	for _, tx := range transactions {
		table.Rows = append(table.Rows, []string{
			tx.Date,
			string(tx.TransactionType),
			tx.StockSymbol,
			tx.Quantity.String(),
			tx.Price.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
