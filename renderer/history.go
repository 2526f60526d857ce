package renderer

import (
	"bytes"
	"fmt"

	"github.com/ebrelin/stockdesk/gateway"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders a symbol's close-price history.
func HistoryMarkdown(symbol string, points []gateway.PricePoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", symbol))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Close"},
		Rows:   [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date,
			p.ClosePrice.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
