package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/etnz/folio"
)

// eur formats a euro amount the way the rest of the reports do.
func eur(v float64) string {
	return money.NewFromFloat(v, money.EUR).Display()
}

// signedEur formats a euro amount with an explicit sign for gains and losses.
func signedEur(v float64) string {
	if v > 0 {
		return "+" + eur(v)
	}
	return eur(v)
}

// signedPct formats a percentage with an explicit sign.
func signedPct(p folio.Percent) string {
	return p.SignedString()
}

// ter formats an expense ratio, which is already a percentage of assets.
func ter(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
