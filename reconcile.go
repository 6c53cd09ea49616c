package folio

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// QuoteProvider is the external market-price lookup. Implementations are
// expected to be read-only and idempotent; Price must not block
// indefinitely (a per-request timeout is the provider's concern).
type QuoteProvider interface {
	Price(ctx context.Context, symbol string) (float64, error)
}

// ReconcileStatus is the outcome of reconciling one holding.
type ReconcileStatus int

const (
	// Priced means a symbol resolved and a current price was fetched.
	Priced ReconcileStatus = iota
	// Unresolved means no tradable symbol could be found; the holding
	// keeps its cost-basis values.
	Unresolved
	// Failed means a symbol resolved but the provider lookup failed; the
	// holding keeps its cost-basis values.
	Failed
)

func (s ReconcileStatus) String() string {
	switch s {
	case Priced:
		return "priced"
	case Unresolved:
		return "unresolved"
	default:
		return "failed"
	}
}

// ReconcileResult is the per-holding outcome of a reconciliation pass.
// Holding is an updated copy; the ingested set is never mutated, so the
// source-of-truth cost basis stays auditable.
type ReconcileResult struct {
	Holding Holding
	Symbol  string
	Status  ReconcileStatus
	Err     error
}

// Priced reports whether the holding was marked to market.
func (r ReconcileResult) Priced() bool { return r.Status == Priced }

// ReconcileReport collects the outcomes of one reconciliation pass, in the
// original holding order, plus the aggregate totals.
type ReconcileReport struct {
	Results []ReconcileResult

	TotalCost      float64
	TotalCurrent   float64
	TotalReturn    float64
	TotalReturnPct Percent
}

// PricedCount returns how many holdings were marked to market.
func (r *ReconcileReport) PricedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Priced() {
			n++
		}
	}
	return n
}

// Holdings returns the reconciled copies, in the original order.
func (r *ReconcileReport) Holdings() Holdings {
	hs := make(Holdings, len(r.Results))
	for i, res := range r.Results {
		hs[i] = res.Holding
	}
	return hs
}

// Summary returns the aggregate totals as presentation scalars.
func (r *ReconcileReport) Summary() Summary {
	return Summary{
		TotalValue:       r.TotalCurrent,
		TotalReturnValue: r.TotalReturn,
		TotalReturnPct:   r.TotalReturnPct,
	}
}

// Reconciler refreshes holdings against live market prices.
type Reconciler struct {
	quotes  QuoteProvider
	symbols *SymbolTable
	workers int
}

// NewReconciler builds a reconciler over a quote provider and a symbol
// table. workers bounds the concurrent lookups; values below 1 mean
// sequential. Lookups are independent, read-only and idempotent, so
// running them in parallel is safe; results are merged back by index and
// the output order is deterministic either way.
func NewReconciler(quotes QuoteProvider, symbols *SymbolTable, workers int) *Reconciler {
	if workers < 1 {
		workers = 1
	}
	return &Reconciler{quotes: quotes, symbols: symbols, workers: workers}
}

// Reconcile marks every holding to market and recomputes its return
// against the original cost basis.
//
// Per holding: resolve a tradable symbol (ISIN table first, then name
// inference), fetch the current price, and compute
// current = price * quantity. A missing quantity is derived as
// cost/avgPrice when the average price is known. Unresolved symbols and
// provider failures are recovered locally: the holding falls back to its
// cost-basis values and the pass continues with the next one. One failing
// security never aborts reconciliation of the others.
func (r *Reconciler) Reconcile(ctx context.Context, hs Holdings) *ReconcileReport {
	report := &ReconcileReport{Results: make([]ReconcileResult, len(hs))}

	var wg sync.WaitGroup
	sem := make(chan struct{}, r.workers)
	for i := range hs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			report.Results[i] = r.reconcileOne(ctx, hs[i])
		}(i)
	}
	wg.Wait()

	for _, res := range report.Results {
		report.TotalCost += res.Holding.Cost
		report.TotalCurrent += res.Holding.CurrentValue
	}
	report.TotalReturn = report.TotalCurrent - report.TotalCost
	if report.TotalCost > 0 {
		report.TotalReturnPct = Percent(report.TotalReturn / report.TotalCost * 100)
	}
	return report
}

func (r *Reconciler) reconcileOne(ctx context.Context, h Holding) ReconcileResult {
	res := ReconcileResult{Holding: h}
	// Whatever happens below, an unpriced holding is worth its cost basis
	// and carries no return figures.
	res.Holding.CurrentValue = h.Cost
	res.Holding.ReturnValue = 0
	res.Holding.ReturnPct = 0

	symbol := r.symbols.Resolve(h.ISIN, h.Name)
	if symbol == "" {
		res.Status = Unresolved
		res.Err = fmt.Errorf("no tradable symbol for %q: %w", h.Name, ErrUnavailable)
		log.Printf("reconcile: %v", res.Err)
		return res
	}
	res.Symbol = symbol

	quantity := h.Quantity
	if quantity == 0 && h.AvgPrice > 0 {
		quantity = h.Cost / h.AvgPrice
	}
	if quantity <= 0 {
		res.Status = Unresolved
		res.Err = fmt.Errorf("no quantity for %q (%s): %w", h.Name, symbol, ErrUnavailable)
		log.Printf("reconcile: %v", res.Err)
		return res
	}

	price, err := r.quotes.Price(ctx, symbol)
	if err != nil {
		res.Status = Failed
		res.Err = fmt.Errorf("price lookup for %q (%s): %w", h.Name, symbol, err)
		log.Printf("reconcile: %v", res.Err)
		return res
	}

	res.Status = Priced
	res.Holding.CurrentValue = price * quantity
	res.Holding.ReturnValue = res.Holding.CurrentValue - h.Cost
	if h.Cost > 0 {
		res.Holding.ReturnPct = Percent(res.Holding.ReturnValue / h.Cost * 100)
	}
	return res
}
