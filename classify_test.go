package folio

import "testing"

func TestClassifier_Class(t *testing.T) {
	c := NewClassifier(DefaultCategoryRules())

	testCases := []struct {
		in   string
		want AssetClass
	}{
		{"Azionario", Stocks},
		{"Azioni Internazionali", Stocks},
		{"Global Equity Fund", Stocks},
		{"Obbligazionario", Bonds},
		{"US Treasury 7-10y", Bonds},
		{"Fixed Income Euro", Bonds},
		{"Monetario", MoneyMarket},
		{"Cash & Liquidity", MoneyMarket},
		{"Materie Prime", Commodities},
		{"Physical Gold", Commodities},
		{"REIT Europe", RealEstate},
		{"Fondo Immobiliare", RealEstate},
		{"Hedge Strategies", Alternatives},
		{"Private Equity Fund", Alternatives},
		{"", Other},
		{"boh", Other},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := c.Class(tc.in); got != tc.want {
				t.Errorf("Class(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestClassifier_OrderMatters(t *testing.T) {
	// "gold equity" contains keywords of both Stocks and Commodities: the
	// first matching rule (Stocks) must win.
	c := NewClassifier(DefaultCategoryRules())
	if got := c.Class("Gold Equity"); got != Stocks {
		t.Errorf("Class(\"Gold Equity\") = %q, want %q", got, Stocks)
	}
}

func TestClassifier_Total(t *testing.T) {
	// Every input maps to exactly one member of the canonical set.
	c := NewClassifier(DefaultCategoryRules())
	canonical := make(map[AssetClass]bool)
	for _, cl := range CanonicalAssetClasses() {
		canonical[cl] = true
	}
	inputs := []string{"", " ", "123", "???", "azionigold", "AZIONI", "\x00weird"}
	for _, in := range inputs {
		if got := c.Class(in); !canonical[got] {
			t.Errorf("Class(%q) = %q, not a canonical asset class", in, got)
		}
	}
}

func TestNameClassifier_Category(t *testing.T) {
	c := NewNameClassifier(DefaultNameRules())

	testCases := []struct {
		in   string
		want string
	}{
		{"iShares CR 500 UCITS ETF", CategoryAzionario},
		{"Xtrackers MSCI Emerging Markets", CategoryAzionario},
		{"Amundi Euro Government Bond 7-10Y", CategoryObbligazionario},
		{"EHYCB High Yield", CategoryObbligazionario},
		{"Invesco Physical Gold A", CategoryMateriePrime},
		{"Qualcosa di strano", CategoryAltro},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := c.Category(tc.in); got != tc.want {
				t.Errorf("Category(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestClassifiers_AreIndependentPolicies(t *testing.T) {
	// The same string can legitimately classify differently under the two
	// policies: they target different input granularity.
	names := NewNameClassifier(DefaultNameRules())
	categories := NewClassifier(DefaultCategoryRules())

	// "gov" marks bonds in a fund name, but as a category label it means
	// nothing and falls into the catch-all.
	if got := names.Category("gov"); got != CategoryObbligazionario {
		t.Errorf("name policy: %q", got)
	}
	if got := categories.Class("gov"); got != Other {
		t.Errorf("category policy: %q", got)
	}
}

func TestNewClassifier_CopiesRules(t *testing.T) {
	rules := []CategoryRule{{Keywords: []string{"foo"}, Class: Stocks}}
	c := NewClassifier(rules)
	rules[0] = CategoryRule{Keywords: []string{"foo"}, Class: Bonds}
	if got := c.Class("foo"); got != Stocks {
		t.Errorf("rule table was not copied: Class(\"foo\") = %q", got)
	}
}
