package folio

import "sort"

// AssetAllocationRow is the aggregate of one asset class (or localized
// category label on the ledger path).
type AssetAllocationRow struct {
	Class string
	Value float64
	Pct   Percent
}

// Allocate groups holdings by asset class and computes each group's share
// of the total portfolio cost value. Every canonical asset class appears
// in the result, synthesized at zero when absent. Rows are sorted by
// descending percentage; ties keep first-appearance order.
//
// Holdings without an asset class fall back to their category text, so the
// function stays total even on partially classified input. With a
// non-positive total all percentages are 0.
func Allocate(hs Holdings) (total float64, rows []AssetAllocationRow) {
	canonical := make([]string, 0, len(CanonicalAssetClasses()))
	for _, c := range CanonicalAssetClasses() {
		canonical = append(canonical, string(c))
	}
	return allocate(hs, canonical)
}

// AllocateByCategory is the ledger-path variant: it groups by the
// localized category labels and zero-fills the given canonical label set
// (e.g. Azionario, Obbligazionario, Materie Prime, Liquidità).
func AllocateByCategory(hs Holdings, canonical []string) (total float64, rows []AssetAllocationRow) {
	grouped := make(Holdings, len(hs))
	copy(grouped, hs)
	for i := range grouped {
		// force the category as grouping key
		grouped[i].Class = ""
	}
	return allocate(grouped, canonical)
}

func allocate(hs Holdings, canonical []string) (float64, []AssetAllocationRow) {
	sums := make(map[string]float64)
	var order []string
	var total float64

	for _, h := range hs {
		key := string(h.Class)
		if key == "" {
			key = h.Category
		}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += h.Cost
		total += h.Cost
	}

	rows := make([]AssetAllocationRow, 0, len(order))
	for _, key := range order {
		row := AssetAllocationRow{Class: key, Value: sums[key]}
		if total > 0 {
			row.Pct = Percent(row.Value / total * 100)
		}
		rows = append(rows, row)
	}
	rows = ensureCanonical(rows, canonical)

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Pct > rows[j].Pct })
	return total, rows
}

// ensureCanonical appends a zero-value, zero-percent row for every
// canonical label missing from the grouped result, so the output always
// has a fixed-size backbone regardless of what the upload contained.
func ensureCanonical(rows []AssetAllocationRow, canonical []string) []AssetAllocationRow {
	present := make(map[string]bool, len(rows))
	for _, r := range rows {
		present[r.Class] = true
	}
	for _, label := range canonical {
		if !present[label] {
			rows = append(rows, AssetAllocationRow{Class: label})
		}
	}
	return rows
}

// EstimateExpenseRatio returns a typical TER for an asset class. These are
// declared placeholders used only when the upload carries no real
// expense-ratio data, not market quotes.
func EstimateExpenseRatio(class AssetClass) float64 {
	switch class {
	case Stocks:
		return 0.20
	case Bonds:
		return 0.15
	case Commodities:
		return 0.25
	default:
		return 0.22
	}
}
