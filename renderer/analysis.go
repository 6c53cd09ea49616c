package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// AnalysisMarkdown renders a full analysis report: summary, holdings and
// asset allocation.
func AnalysisMarkdown(a *folio.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Analysis")
	doc.PlainText(fmt.Sprintf("Source format: %s.", a.Format))

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Value"), md.Bold(eur(a.Summary.TotalValue))},
		Rows: [][]string{
			{"Total Return", signedEur(a.Summary.TotalReturnValue)},
			{"Total Return %", signedPct(a.Summary.TotalReturnPct)},
		},
	})

	doc.H2("Holdings")
	doc.Table(holdingsTable(a.Holdings))

	return doc.String() + "\n" + AllocationMarkdown(a.Allocation)
}

// holdingsTable lays out the normalized holdings.
func holdingsTable(hs folio.Holdings) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Name", "Class", "Value", "Weight", "TER", "Return"},
	}
	for _, h := range hs {
		class := string(h.Class)
		if class == "" {
			class = h.Category
		}
		table.Rows = append(table.Rows, []string{
			h.Name,
			class,
			eur(h.Cost),
			h.AllocationPct.String(),
			ter(h.ExpenseRatio),
			signedPct(h.ReturnPct),
		})
	}
	return table
}
