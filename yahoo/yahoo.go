// Package yahoo implements a quote provider backed by the public Yahoo
// Finance chart endpoint. It resolves current prices for the market
// reconciler and index snapshots for the dashboard.
package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/folio"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Yahoo Finance query host.
	DefaultBaseURL = "https://query1.finance.yahoo.com"

	// DefaultTimeout bounds a single quote request; a stuck provider must
	// never block the whole reconciliation pass.
	DefaultTimeout = 10 * time.Second

	// DefaultRateLimit is the request budget per second. Yahoo throttles
	// aggressively beyond a handful of requests per second.
	DefaultRateLimit = 5
)

// Client queries the Yahoo Finance chart API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient sets a custom HTTP client, bypassing the hourly cache.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithRateLimit sets a custom request budget per second.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// NewClient returns a ready-to-use Yahoo Finance client. By default
// responses are cached on disk with hourly expiry, so re-analyzing the
// same upload doesn't hammer the API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: hourlyCachingClient(DefaultTimeout),
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chart fetches the raw chart payload for a symbol.
func (c *Client) chart(ctx context.Context, symbol string) (any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", c.baseURL, url.PathEscape(symbol))
	var jobj any
	if err := jwget(ctx, c.httpClient, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch chart for %q: %w", symbol, err)
	}
	return jobj, nil
}

// meta extracts a numeric field from the chart metadata. The payload
// nests the answer under chart.result[0].meta; jsonpath keeps us from
// declaring the whole envelope.
func meta(jobj any, symbol, field string) (float64, error) {
	path := "$.chart.result[0].meta." + field
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("no %s for %q: %w", field, symbol, folio.ErrUnavailable)
	}
	// jsonpath sometimes returns a single-element list instead of the value
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%s for %q is %T, not a number: %w", field, symbol, jval, folio.ErrUnavailable)
	}
	return val, nil
}

// Price returns the last regular market price for a symbol. It implements
// folio.QuoteProvider.
func (c *Client) Price(ctx context.Context, symbol string) (float64, error) {
	jobj, err := c.chart(ctx, symbol)
	if err != nil {
		return 0, err
	}
	return meta(jobj, symbol, "regularMarketPrice")
}

// Snapshot is a current quote with its move against the previous close.
type Snapshot struct {
	Symbol    string
	Price     float64
	Change    float64
	PctChange folio.Percent
}

// Snapshot returns the current price of a symbol together with its change
// against the previous close.
func (c *Client) Snapshot(ctx context.Context, symbol string) (Snapshot, error) {
	jobj, err := c.chart(ctx, symbol)
	if err != nil {
		return Snapshot{}, err
	}
	price, err := meta(jobj, symbol, "regularMarketPrice")
	if err != nil {
		return Snapshot{}, err
	}
	prev, err := meta(jobj, symbol, "chartPreviousClose")
	if err != nil {
		return Snapshot{}, err
	}
	s := Snapshot{Symbol: symbol, Price: price, Change: price - prev}
	if prev > 0 {
		s.PctChange = folio.Percent(s.Change / prev * 100)
	}
	return s, nil
}
