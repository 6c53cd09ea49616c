package folio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable reports that a quote provider could not return a price for
// a symbol. It is always recovered per holding, never fatal for a batch.
var ErrUnavailable = errors.New("quote unavailable")

// FormatError reports an upload whose shape could not be recognized. It is
// fatal for the current upload: no partial processing happens after it.
type FormatError struct {
	// MissingColumns enumerates the required holdings-table columns that
	// were not found, so the user knows exactly what to fix.
	MissingColumns []string
}

func (e *FormatError) Error() string {
	if len(e.MissingColumns) == 0 {
		return "unrecognized table format"
	}
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.MissingColumns, ", "))
}
