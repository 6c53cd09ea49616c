package folio

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// LedgerRow is one trade from a transaction ledger. Quantities are signed
// per the source convention: buys positive, sells negative.
type LedgerRow struct {
	Operation string
	Name      string
	ISIN      string
	Quantity  float64
	Price     float64
	Value     float64
}

// ledgerColumns are the expected column labels after the detected header.
var ledgerColumns = []string{"Operazione", "Titolo", "Isin", "Quantita", "Prezzo", "Controvalore"}

// LedgerFromTable extracts the trades of a transaction ledger whose header
// sits at headerRow (as located by Detect). Entirely empty rows are
// dropped; rows with unparseable numeric fields are excluded with a logged
// diagnostic rather than aborting the ingestion.
func LedgerFromTable(t Table, headerRow int) ([]LedgerRow, error) {
	cols := make(map[string]int, len(ledgerColumns))
	for _, label := range ledgerColumns {
		i := t.columnIndex(headerRow, label)
		if i < 0 {
			return nil, fmt.Errorf("transaction ledger header at row %d has no %q column", headerRow, label)
		}
		cols[label] = i
	}

	var rows []LedgerRow
	for row := headerRow + 1; row < t.Rows(); row++ {
		if t.RowEmpty(row) {
			continue
		}
		r := LedgerRow{
			Operation: strings.TrimSpace(t.Cell(row, cols["Operazione"])),
			Name:      strings.TrimSpace(t.Cell(row, cols["Titolo"])),
			ISIN:      strings.TrimSpace(t.Cell(row, cols["Isin"])),
		}
		var err error
		if r.Quantity, err = ParseNumber(t.Cell(row, cols["Quantita"])); err != nil {
			log.Printf("dropping ledger row %d (%s): %v", row, r.Name, err)
			continue
		}
		if r.Price, err = ParseNumber(t.Cell(row, cols["Prezzo"])); err != nil {
			log.Printf("dropping ledger row %d (%s): %v", row, r.Name, err)
			continue
		}
		if r.Value, err = ParseNumber(t.Cell(row, cols["Controvalore"])); err != nil {
			log.Printf("dropping ledger row %d (%s): %v", row, r.Name, err)
			continue
		}
		rows = append(rows, r)
	}
	return rows, nil
}

// ledgerGroup accumulates the trades of one security while aggregating.
// Sums are kept as decimals so long ledgers don't drift.
type ledgerGroup struct {
	name     string
	isin     string
	quantity decimal.Decimal
	value    decimal.Decimal
	priceSum decimal.Decimal
	trades   int64
}

// AggregateLedger collapses a transaction ledger into one holding per
// security. Identity is the (name, ISIN) pair. Quantities and line values
// are summed; the average price is the simple arithmetic mean of the
// per-trade unit prices.
//
// The mean is deliberately NOT volume-weighted: the market reconciler
// derives missing quantities as cost/avgPrice and assumes exactly this
// semantics, so a cost-basis-correct weighted average would break the
// round trip.
//
// Each holding is categorized from its security name via the name policy,
// given an estimated expense ratio, and the result is sorted by cost value
// descending (ties keep first-appearance order).
func AggregateLedger(rows []LedgerRow, names *NameClassifier, categories *Classifier) Holdings {
	type key struct{ name, isin string }
	groups := make(map[key]*ledgerGroup)
	var order []key

	for _, r := range rows {
		k := key{r.Name, r.ISIN}
		g, ok := groups[k]
		if !ok {
			g = &ledgerGroup{name: r.Name, isin: r.ISIN}
			groups[k] = g
			order = append(order, k)
		}
		g.quantity = g.quantity.Add(decimal.NewFromFloat(r.Quantity))
		g.value = g.value.Add(decimal.NewFromFloat(r.Value))
		g.priceSum = g.priceSum.Add(decimal.NewFromFloat(r.Price))
		g.trades++
	}

	hs := make(Holdings, 0, len(order))
	for _, k := range order {
		g := groups[k]
		avg := g.priceSum.Div(decimal.NewFromInt(g.trades))
		category := names.Category(g.name)
		h := Holding{
			Name:     g.name,
			ISIN:     g.isin,
			Category: category,
			Class:    categories.Class(category),
			Quantity: g.quantity.InexactFloat64(),
			AvgPrice: avg.InexactFloat64(),
			Cost:     g.value.InexactFloat64(),
		}
		h.CurrentValue = h.Cost
		h.ExpenseRatio = EstimateExpenseRatio(h.Class)
		hs = append(hs, h)
	}

	sort.SliceStable(hs, func(i, j int) bool { return hs[i].Cost > hs[j].Cost })
	hs.RecomputeAllocation()
	return hs
}
