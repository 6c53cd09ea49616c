package folio

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

// fakeQuotes is a QuoteProvider backed by a fixed price map.
type fakeQuotes struct {
	prices map[string]float64
	calls  atomic.Int64
}

func (f *fakeQuotes) Price(_ context.Context, symbol string) (float64, error) {
	f.calls.Add(1)
	p, ok := f.prices[symbol]
	if !ok {
		return 0, fmt.Errorf("no quote for %s: %w", symbol, ErrUnavailable)
	}
	return p, nil
}

func testSymbolTable() *SymbolTable {
	return NewSymbolTable(
		map[string]string{"IE00B4L5YC18": "IWDA.L"},
		[]NameFragment{{"physical gold", "SGLD.L"}},
	)
}

func TestReconcile_PricedHolding(t *testing.T) {
	hs := Holdings{{Name: "iShares Core MSCI World", ISIN: "IE00B4L5YC18", Cost: 1000, Quantity: 10}}
	quotes := &fakeQuotes{prices: map[string]float64{"IWDA.L": 120}}
	r := NewReconciler(quotes, testSymbolTable(), 1)

	report := r.Reconcile(context.Background(), hs)
	res := report.Results[0]
	if res.Status != Priced {
		t.Fatalf("Status = %v, want %v (err: %v)", res.Status, Priced, res.Err)
	}
	if res.Symbol != "IWDA.L" {
		t.Errorf("Symbol = %q, want IWDA.L", res.Symbol)
	}
	if res.Holding.CurrentValue != 1200 {
		t.Errorf("CurrentValue = %v, want 1200", res.Holding.CurrentValue)
	}
	if res.Holding.ReturnValue != 200 {
		t.Errorf("ReturnValue = %v, want 200", res.Holding.ReturnValue)
	}
	if !res.Holding.ReturnPct.Equal(20) {
		t.Errorf("ReturnPct = %v, want 20.00%%", res.Holding.ReturnPct)
	}
}

func TestReconcile_QuantityDerivedFromAvgPrice(t *testing.T) {
	// quantity missing, derived as cost/avgPrice = 1000/100 = 10 units
	hs := Holdings{{Name: "iShares Core MSCI World", ISIN: "IE00B4L5YC18", Cost: 1000, AvgPrice: 100}}
	quotes := &fakeQuotes{prices: map[string]float64{"IWDA.L": 120}}
	r := NewReconciler(quotes, testSymbolTable(), 1)

	report := r.Reconcile(context.Background(), hs)
	if got := report.Results[0].Holding.CurrentValue; got != 1200 {
		t.Errorf("CurrentValue = %v, want 1200", got)
	}
}

func TestReconcile_UnresolvedFallsBackToCost(t *testing.T) {
	hs := Holdings{
		{Name: "Fondo Sconosciuto", Cost: 500, Quantity: 5},
		{Name: "iShares Core MSCI World", ISIN: "IE00B4L5YC18", Cost: 1000, Quantity: 10},
	}
	quotes := &fakeQuotes{prices: map[string]float64{"IWDA.L": 120}}
	r := NewReconciler(quotes, testSymbolTable(), 1)

	report := r.Reconcile(context.Background(), hs)

	unknown := report.Results[0]
	if unknown.Status != Unresolved {
		t.Errorf("Status = %v, want %v", unknown.Status, Unresolved)
	}
	if unknown.Holding.CurrentValue != 500 {
		t.Errorf("CurrentValue = %v, want cost basis 500", unknown.Holding.CurrentValue)
	}
	if unknown.Holding.ReturnPct != 0 || unknown.Holding.ReturnValue != 0 {
		t.Errorf("unresolved holding must carry no return figures: %+v", unknown.Holding)
	}
	if !errors.Is(unknown.Err, ErrUnavailable) {
		t.Errorf("Err = %v, want ErrUnavailable", unknown.Err)
	}

	// the sibling holding is still processed
	if report.Results[1].Status != Priced {
		t.Errorf("sibling holding was not reconciled: %+v", report.Results[1])
	}
}

func TestReconcile_ProviderFailureIsLocal(t *testing.T) {
	hs := Holdings{
		{Name: "iShares Core MSCI World", ISIN: "IE00B4L5YC18", Cost: 1000, Quantity: 10},
		{Name: "Invesco Physical Gold A", Cost: 600, Quantity: 3},
	}
	// only gold is quotable; the world ETF lookup fails
	quotes := &fakeQuotes{prices: map[string]float64{"SGLD.L": 250}}
	r := NewReconciler(quotes, testSymbolTable(), 1)

	report := r.Reconcile(context.Background(), hs)

	failed := report.Results[0]
	if failed.Status != Failed {
		t.Errorf("Status = %v, want %v", failed.Status, Failed)
	}
	if failed.Holding.CurrentValue != 1000 {
		t.Errorf("CurrentValue = %v, want cost basis 1000", failed.Holding.CurrentValue)
	}

	gold := report.Results[1]
	if gold.Status != Priced || gold.Holding.CurrentValue != 750 {
		t.Errorf("sibling holding not reconciled: %+v", gold)
	}

	// totals mix priced and fallen-back values
	if report.TotalCost != 1600 {
		t.Errorf("TotalCost = %v, want 1600", report.TotalCost)
	}
	if report.TotalCurrent != 1750 {
		t.Errorf("TotalCurrent = %v, want 1750", report.TotalCurrent)
	}
	if report.TotalReturn != 150 {
		t.Errorf("TotalReturn = %v, want 150", report.TotalReturn)
	}
	if !report.TotalReturnPct.Equal(Percent(150.0 / 1600.0 * 100)) {
		t.Errorf("TotalReturnPct = %v", report.TotalReturnPct)
	}
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	hs := Holdings{{Name: "iShares Core MSCI World", ISIN: "IE00B4L5YC18", Cost: 1000, Quantity: 10}}
	quotes := &fakeQuotes{prices: map[string]float64{"IWDA.L": 120}}
	r := NewReconciler(quotes, testSymbolTable(), 1)

	r.Reconcile(context.Background(), hs)
	if hs[0].CurrentValue != 0 || hs[0].ReturnValue != 0 {
		t.Errorf("input holdings were mutated: %+v", hs[0])
	}
}

func TestReconcile_ParallelKeepsOrder(t *testing.T) {
	var hs Holdings
	prices := make(map[string]float64)
	isin := make(map[string]string)
	for i := 0; i < 50; i++ {
		code := fmt.Sprintf("IE%010d", i)
		sym := fmt.Sprintf("S%d.L", i)
		isin[code] = sym
		prices[sym] = float64(i + 1)
		hs = append(hs, Holding{Name: fmt.Sprintf("fund %d", i), ISIN: code, Cost: 100, Quantity: 1})
	}
	quotes := &fakeQuotes{prices: prices}
	r := NewReconciler(quotes, NewSymbolTable(isin, nil), 8)

	report := r.Reconcile(context.Background(), hs)
	for i, res := range report.Results {
		want := float64(i + 1)
		if res.Holding.CurrentValue != want {
			t.Fatalf("result %d out of order: CurrentValue = %v, want %v", i, res.Holding.CurrentValue, want)
		}
	}
	if n := quotes.calls.Load(); n != 50 {
		t.Errorf("provider called %d times, want 50", n)
	}
	if report.PricedCount() != 50 {
		t.Errorf("PricedCount = %d, want 50", report.PricedCount())
	}
}
