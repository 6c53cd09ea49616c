package folio

import "strings"

// Format identifies the shape of an uploaded table.
type Format int

const (
	// FormatUnknown is returned when neither shape could be recognized.
	FormatUnknown Format = iota
	// FormatHoldingsTable is a pre-aggregated table, one row per security.
	FormatHoldingsTable
	// FormatTransactionLedger is a raw list of trades, one row per trade.
	FormatTransactionLedger
)

func (f Format) String() string {
	switch f {
	case FormatHoldingsTable:
		return "holdings table"
	case FormatTransactionLedger:
		return "transaction ledger"
	default:
		return "unknown"
	}
}

// ledgerSentinel is the header cell that marks a transaction ledger export.
// The match is a raw, case-sensitive substring search over the stringified
// row: that is what the exports actually contain, and normalizing would
// start matching unrelated prose rows.
const ledgerSentinel = "Operazione"

// RequiredColumns are the seven column labels a holdings table must carry.
var RequiredColumns = []string{
	"Nome", "Categoria", "TER", "Allocazione", "Controvalore", "Rendimento %", "Rendimento",
}

// OptionalColumns may enrich a holdings table; they are carried through to
// the presentation layer when present.
var OptionalColumns = []string{
	"asset_class", "country", "country_allocation", "sector", "sector_allocation",
}

// Detection is the outcome of inspecting a raw table.
type Detection struct {
	Format Format
	// HeaderRow is the index of the row holding the column labels. For a
	// transaction ledger the header is often embedded mid-sheet below a
	// preamble; for a holdings table it is always row 0.
	HeaderRow int
}

// Detect inspects a raw table and decides whether it is a transaction
// ledger or a pre-aggregated holdings table.
//
// Rows are scanned top-to-bottom for the ledger sentinel; the first match
// wins and that row becomes the header (no validation of the following
// rows). If the sentinel never appears, the table's first row is checked
// against the required holdings columns. When neither matches, Detect
// returns a *FormatError enumerating the missing columns.
func Detect(t Table) (Detection, error) {
	for i := range t {
		if strings.Contains(t.RowString(i), ledgerSentinel) {
			return Detection{Format: FormatTransactionLedger, HeaderRow: i}, nil
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if t.columnIndex(0, col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return Detection{Format: FormatHoldingsTable, HeaderRow: 0}, nil
	}
	return Detection{Format: FormatUnknown}, &FormatError{MissingColumns: missing}
}
