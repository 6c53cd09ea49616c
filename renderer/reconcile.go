package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// ReconcileMarkdown renders the outcome of a market reconciliation pass.
func ReconcileMarkdown(r *folio.ReconcileReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market Reconciliation")
	doc.PlainText(fmt.Sprintf("%d of %d holdings marked to market.", r.PricedCount(), len(r.Results)))

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Current Value"), md.Bold(eur(r.TotalCurrent))},
		Rows: [][]string{
			{"Cost Basis", eur(r.TotalCost)},
			{"Gain / Loss", signedEur(r.TotalReturn)},
			{"Return", signedPct(r.TotalReturnPct)},
		},
	})

	doc.H2("Holdings")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Name", "Symbol", "Status", "Cost", "Current", "Return"},
	}
	for _, res := range r.Results {
		symbol := res.Symbol
		if symbol == "" {
			symbol = "-"
		}
		ret := "-"
		if res.Priced() {
			ret = res.Holding.ReturnPct.SignedString()
		}
		table.Rows = append(table.Rows, []string{
			res.Holding.Name,
			symbol,
			res.Status.String(),
			eur(res.Holding.Cost),
			eur(res.Holding.CurrentValue),
			ret,
		})
	}
	doc.Table(table)

	var skipped []string
	for _, res := range r.Results {
		if res.Err != nil {
			skipped = append(skipped, fmt.Sprintf("%s: %v", res.Holding.Name, res.Err))
		}
	}
	if len(skipped) > 0 {
		doc.H2("Not Priced")
		doc.BulletList(skipped...)
	}

	return doc.String()
}
