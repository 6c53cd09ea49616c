package yahoo

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Index is a market index tracked by the dashboard.
type Index struct {
	Name   string
	Symbol string
}

// Indices returns the curated list of market indices relevant to a
// European portfolio, in display order.
func Indices() []Index {
	return []Index{
		{"S&P 500", "^GSPC"},
		{"Dow Jones", "^DJI"},
		{"NASDAQ", "^IXIC"},
		{"FTSE MIB", "FTSEMIB.MI"},
		{"DAX", "^GDAXI"},
		{"FTSE 100", "^FTSE"},
		{"Euro Stoxx 50", "^STOXX50E"},
	}
}

// IndexQuote pairs an index with its current snapshot.
type IndexQuote struct {
	Index
	Quote Snapshot
}

// IndexQuotes fetches a snapshot for every tracked index. A failing index
// is logged and skipped; partial results are expected when a venue is
// closed or throttled. The returned error joins the per-index failures
// and is non-nil only when at least one index failed.
func (c *Client) IndexQuotes(ctx context.Context) ([]IndexQuote, error) {
	var quotes []IndexQuote
	var errs []error
	for _, idx := range Indices() {
		snap, err := c.Snapshot(ctx, idx.Symbol)
		if err != nil {
			log.Printf("skipping index %s (%s): %v", idx.Name, idx.Symbol, err)
			errs = append(errs, fmt.Errorf("%s (%s): %w", idx.Name, idx.Symbol, err))
			continue
		}
		quotes = append(quotes, IndexQuote{Index: idx, Quote: snap})
	}
	return quotes, errors.Join(errs...)
}
