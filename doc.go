// Package folio ingests a spreadsheet describing an investment portfolio
// and derives a normalized holdings model from it.
//
// Two input shapes are supported:
//   - a pre-aggregated holdings table (one row per security, with category,
//     expense ratio, allocation and return columns), and
//   - a raw transaction ledger (one row per trade) that is collapsed into
//     per-security holdings by aggregation.
//
// The core functionalities include:
//   - Format Detection: deciding which of the two shapes was uploaded and
//     locating the header row when it is embedded mid-sheet.
//   - Ledger Aggregation: collapsing trades into one holding per security,
//     summing quantities and monetary totals.
//   - Classification: mapping free-text categories and security names to a
//     closed set of asset classes via ordered keyword rules.
//   - Allocation: computing each holding's and each asset class' share of
//     the total portfolio value, with every canonical asset class always
//     represented in the result.
//   - Market Reconciliation: resolving holdings to tradable symbols,
//     fetching current prices from a quote provider, and recomputing
//     current values and returns against the original cost basis.
//
// Everything operates on one uploaded snapshot per invocation, entirely in
// memory. This package serves as the foundational logic for the `pfa`
// command-line tool.
package folio
