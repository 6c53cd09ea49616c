package folio

import "strings"

// AssetClass is the coarse grouping of a holding. It is always a member of
// the canonical set returned by CanonicalAssetClasses, never empty.
type AssetClass string

const (
	Stocks       AssetClass = "Stocks"
	Bonds        AssetClass = "Bonds"
	MoneyMarket  AssetClass = "Money Market"
	Commodities  AssetClass = "Commodities"
	RealEstate   AssetClass = "Real Estate"
	Alternatives AssetClass = "Alternatives"
	Other        AssetClass = "Other"
)

// CanonicalAssetClasses returns the closed set of asset classes, in the
// fixed order used when synthesizing zero-value allocation rows.
func CanonicalAssetClasses() []AssetClass {
	return []AssetClass{Stocks, Bonds, MoneyMarket, Commodities, RealEstate, Alternatives, Other}
}

// CategoryRule maps a set of lower-case keywords to an asset class.
type CategoryRule struct {
	Keywords []string
	Class    AssetClass
}

// DefaultCategoryRules is the ordered rule table for classifying an
// explicit category label (or, failing that, a security name) into an
// asset class. First match wins. The keywords cover both the Italian
// labels found in broker exports and their English equivalents.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Keywords: []string{"azioni", "azion", "stock", "equity", "share"}, Class: Stocks},
		{Keywords: []string{"obblig", "bond", "fixed income", "treasury"}, Class: Bonds},
		{Keywords: []string{"monetario", "money market", "liquidity", "cash"}, Class: MoneyMarket},
		{Keywords: []string{"commodit", "materie prime", "gold", "silver", "oil"}, Class: Commodities},
		{Keywords: []string{"immobil", "real estate", "reit"}, Class: RealEstate},
		{Keywords: []string{"alternativ", "hedge", "private equity"}, Class: Alternatives},
	}
}

// Classifier maps free-text category labels to asset classes using an
// ordered, immutable keyword rule table. It is total: every input maps to
// exactly one class, with Other as the catch-all.
type Classifier struct {
	rules []CategoryRule
}

// NewClassifier builds a classifier over the given rule table. The table
// is copied so later mutation of the argument cannot change the policy.
func NewClassifier(rules []CategoryRule) *Classifier {
	c := &Classifier{rules: make([]CategoryRule, len(rules))}
	copy(c.rules, rules)
	return c
}

// Class returns the asset class for a category or name string.
func (c *Classifier) Class(category string) AssetClass {
	s := strings.ToLower(category)
	for _, r := range c.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(s, kw) {
				return r.Class
			}
		}
	}
	return Other
}

// NameRule maps a set of lower-case keywords found in a security name to a
// localized coarse category label.
type NameRule struct {
	Keywords []string
	Category string
}

// Localized category labels produced by the name policy on the ledger
// path. They are the labels the broker itself uses, so the aggregated
// holdings read like the broker's own statements.
const (
	CategoryAzionario       = "Azionario"
	CategoryObbligazionario = "Obbligazionario"
	CategoryMateriePrime    = "Materie Prime"
	CategoryAltro           = "Altro"
)

// DefaultNameRules is the ordered rule table used when holdings are built
// directly from security names (the ledger path). It is a distinct,
// deliberately looser policy than DefaultCategoryRules: a fund name like
// "iShares CR 500" carries much weaker signal than an explicit category
// field, so the keywords are fragments seen in real ETF names rather than
// asset-class vocabulary. The two policies classify different input
// granularity and are kept separate on purpose.
func DefaultNameRules() []NameRule {
	return []NameRule{
		{Keywords: []string{"cr 500", "msci", "equity", "wd"}, Category: CategoryAzionario},
		{Keywords: []string{"gov", "bond", "ehycb"}, Category: CategoryObbligazionario},
		{Keywords: []string{"gold", "or", "commodity"}, Category: CategoryMateriePrime},
	}
}

// NameClassifier maps security names to localized category labels using an
// ordered keyword rule table. Like Classifier it is total, with Altro as
// the catch-all.
type NameClassifier struct {
	rules []NameRule
}

// NewNameClassifier builds a name classifier over the given rule table.
func NewNameClassifier(rules []NameRule) *NameClassifier {
	c := &NameClassifier{rules: make([]NameRule, len(rules))}
	copy(c.rules, rules)
	return c
}

// Category returns the localized category label for a security name.
func (c *NameClassifier) Category(name string) string {
	s := strings.ToLower(name)
	for _, r := range c.rules {
		for _, kw := range r.Keywords {
			if strings.Contains(s, kw) {
				return r.Category
			}
		}
	}
	return CategoryAltro
}
