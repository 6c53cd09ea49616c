package folio

import "fmt"

// Percent is a percentage value (0-100 scale, not a ratio).
type Percent float64

// Equal compares two percentages with the rounding tolerance used across
// allocation computations.
func (p Percent) Equal(q Percent) bool {
	const tolerance = 0.01
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders the percentage with an explicit sign, and zero as
// "-" so flat positions don't read as gains.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
