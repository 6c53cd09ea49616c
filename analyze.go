package folio

// CanonicalCategories is the localized canonical label set zero-filled on
// the ledger path, mirroring the asset classes a broker statement shows.
func CanonicalCategories() []string {
	return []string{CategoryAzionario, CategoryObbligazionario, CategoryMateriePrime, "Liquidità"}
}

// Analysis is the normalized model handed to the presentation layer: the
// holding list, the allocation rows and the scalar summary.
type Analysis struct {
	Format     Format
	Holdings   Holdings
	Allocation []AssetAllocationRow
	Summary    Summary
}

// Analyze runs the full ingestion pipeline on a raw table: format
// detection, ledger aggregation or holdings mapping, classification and
// allocation. It is the single entry point the presentation layer needs.
//
// On the ledger path the allocation is grouped by the localized category
// labels; on the holdings path by canonical asset class. An unrecognized
// shape returns the *FormatError from detection: fatal for the upload,
// no partial processing.
func Analyze(t Table) (*Analysis, error) {
	det, err := Detect(t)
	if err != nil {
		return nil, err
	}

	classifier := NewClassifier(DefaultCategoryRules())
	switch det.Format {
	case FormatTransactionLedger:
		rows, err := LedgerFromTable(t, det.HeaderRow)
		if err != nil {
			return nil, err
		}
		hs := AggregateLedger(rows, NewNameClassifier(DefaultNameRules()), classifier)
		total, rows2 := AllocateByCategory(hs, CanonicalCategories())
		return &Analysis{
			Format:     det.Format,
			Holdings:   hs,
			Allocation: rows2,
			Summary:    Summary{TotalValue: total},
		}, nil

	case FormatHoldingsTable:
		hs, summary, err := HoldingsFromTable(t, classifier)
		if err != nil {
			return nil, err
		}
		_, alloc := Allocate(hs)
		return &Analysis{
			Format:     det.Format,
			Holdings:   hs,
			Allocation: alloc,
			Summary:    summary,
		}, nil
	}
	// Detect never returns FormatUnknown without an error.
	return nil, &FormatError{}
}
