package folio

import (
	"fmt"
	"log"
	"strings"
)

// Holding is one normalized security position in the portfolio.
//
// Holdings are constructed fresh on every ingestion; there is no persisted
// identity across uploads. The reconciler works on copies, so the ingested
// set always retains the original cost basis.
type Holding struct {
	Name     string     // display name, non-empty
	ISIN     string     // optional standardized identifier code
	Category string     // source category text, or localized label on the ledger path
	Class    AssetClass // canonical asset class, never empty after ingestion

	Cost     float64 // total originally invested (cost basis)
	Quantity float64 // units held; 0 when the source does not carry it
	AvgPrice float64 // mean unit price; only set on the ledger path

	AllocationPct Percent // share of total portfolio cost value
	ExpenseRatio  float64 // TER; estimated by asset class when absent

	ReturnPct    Percent // performance versus cost basis
	ReturnValue  float64
	CurrentValue float64 // mark-to-market value; cost basis until reconciled

	// Optional presentation columns carried through from the source table.
	Country           string
	CountryAllocation float64
	Sector            string
	SectorAllocation  float64
}

// Holdings is the normalized portfolio, ordered by descending cost value
// on the ledger path and source order on the holdings-table path.
type Holdings []Holding

// TotalCost returns the sum of all cost values.
func (hs Holdings) TotalCost() float64 {
	var total float64
	for _, h := range hs {
		total += h.Cost
	}
	return total
}

// RecomputeAllocation refreshes every holding's allocation percentage
// against the current total cost value. It must be called whenever the
// holding set changes. With a non-positive total all percentages are 0.
func (hs Holdings) RecomputeAllocation() {
	total := hs.TotalCost()
	for i := range hs {
		if total > 0 {
			hs[i].AllocationPct = Percent(hs[i].Cost / total * 100)
		} else {
			hs[i].AllocationPct = 0
		}
	}
}

// Summary is the scalar overview handed to the presentation layer.
type Summary struct {
	TotalValue       float64
	TotalReturnValue float64
	TotalReturnPct   Percent
}

// HoldingsFromTable ingests a pre-aggregated holdings table.
//
// The seven required columns are mapped by header label on row 0; the
// optional columns (asset_class, country, sector and their allocations)
// are carried through when present. Rows whose monetary value cannot be
// parsed are excluded from the result rather than aborting the ingestion.
// Rows without a usable asset_class column are classified from their
// category text.
func HoldingsFromTable(t Table, classifier *Classifier) (Holdings, Summary, error) {
	det, err := Detect(t)
	if err != nil {
		return nil, Summary{}, err
	}
	if det.Format != FormatHoldingsTable {
		return nil, Summary{}, fmt.Errorf("expected a holdings table, got a %s", det.Format)
	}

	cols := make(map[string]int)
	for _, label := range RequiredColumns {
		cols[label] = t.columnIndex(0, label)
	}
	for _, label := range OptionalColumns {
		cols[label] = t.columnIndex(0, label)
	}

	get := func(row int, label string) string {
		i, ok := cols[label]
		if !ok || i < 0 {
			return ""
		}
		return strings.TrimSpace(t.Cell(row, i))
	}
	// number reads an optional numeric cell, 0 when blank or absent.
	number := func(row int, label string) (float64, error) {
		s := get(row, label)
		if s == "" {
			return 0, nil
		}
		return ParseNumber(s)
	}

	var hs Holdings
	for row := 1; row < t.Rows(); row++ {
		if t.RowEmpty(row) {
			continue
		}
		name := get(row, "Nome")
		if name == "" {
			continue
		}

		cost, err := number(row, "Controvalore")
		if err != nil {
			log.Printf("dropping row %d (%s): %v", row, name, err)
			continue
		}
		retValue, err := number(row, "Rendimento")
		if err != nil {
			log.Printf("dropping row %d (%s): %v", row, name, err)
			continue
		}
		// The remaining numeric columns are informative: a malformed cell
		// degrades to zero instead of costing the whole row.
		ter, _ := number(row, "TER")
		retPct, _ := number(row, "Rendimento %")
		alloc, _ := number(row, "Allocazione")
		countryAlloc, _ := number(row, "country_allocation")
		sectorAlloc, _ := number(row, "sector_allocation")

		h := Holding{
			Name:              name,
			Category:          get(row, "Categoria"),
			Cost:              cost,
			ExpenseRatio:      ter,
			AllocationPct:     Percent(alloc),
			ReturnPct:         Percent(retPct),
			ReturnValue:       retValue,
			CurrentValue:      cost,
			Country:           get(row, "country"),
			CountryAllocation: countryAlloc,
			Sector:            get(row, "sector"),
			SectorAllocation:  sectorAlloc,
		}
		if ac := get(row, "asset_class"); ac != "" {
			h.Class = AssetClass(ac)
		} else {
			h.Class = classifier.Class(h.Category)
		}
		hs = append(hs, h)
	}

	hs.RecomputeAllocation()
	return hs, summarize(hs), nil
}

// summarize computes the scalar overview of an ingested holding set. The
// total return percentage is measured against the cost basis, i.e. the
// current total minus the return already embedded in it.
func summarize(hs Holdings) Summary {
	var s Summary
	for _, h := range hs {
		s.TotalValue += h.Cost
		s.TotalReturnValue += h.ReturnValue
	}
	if basis := s.TotalValue - s.TotalReturnValue; basis > 0 {
		s.TotalReturnPct = Percent(s.TotalReturnValue / basis * 100)
	}
	return s
}
