package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio/yahoo"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the market-index dashboard.
func DashboardMarkdown(quotes []yahoo.IndexQuote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Dashboard")
	if len(quotes) == 0 {
		doc.PlainText("No index quotes available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Index", "Symbol", "Last", "Change", "Change %"},
	}
	for _, q := range quotes {
		table.Rows = append(table.Rows, []string{
			q.Name,
			q.Index.Symbol,
			fmt.Sprintf("%.2f", q.Quote.Price),
			fmt.Sprintf("%+.2f", q.Quote.Change),
			q.Quote.PctChange.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
