package folio

import "strings"

// NameFragment maps a lower-case fragment of a security name to a tradable
// symbol. Fragments are tried in order, so more specific entries must come
// before generic ones.
type NameFragment struct {
	Fragment string
	Symbol   string
}

// SymbolTable resolves a holding to a tradable symbol, first by exact ISIN
// lookup, then by ordered substring inference on the security name. Both
// tables are static configuration data, not computed.
type SymbolTable struct {
	isin      map[string]string
	fragments []NameFragment
}

// NewSymbolTable builds a symbol table from an ISIN map and an ordered
// fragment list. Both are copied.
func NewSymbolTable(isin map[string]string, fragments []NameFragment) *SymbolTable {
	t := &SymbolTable{
		isin:      make(map[string]string, len(isin)),
		fragments: make([]NameFragment, len(fragments)),
	}
	for k, v := range isin {
		t.isin[k] = v
	}
	copy(t.fragments, fragments)
	return t
}

// Resolve returns the tradable symbol for a holding, or "" when neither
// the ISIN nor the name resolves.
func (t *SymbolTable) Resolve(isin, name string) string {
	if s, ok := t.isin[strings.TrimSpace(isin)]; ok {
		return s
	}
	lower := strings.ToLower(name)
	for _, f := range t.fragments {
		if strings.Contains(lower, f.Fragment) {
			return f.Symbol
		}
	}
	return ""
}

// DefaultSymbolTable covers the European UCITS ETFs commonly found in the
// broker exports this tool ingests. Symbols follow the quote provider's
// exchange-suffix convention (".L" London, ".DE" Xetra, ".MI" Milan).
func DefaultSymbolTable() *SymbolTable {
	isin := map[string]string{
		// equity
		"IE00B4L5Y983": "IWDA.L",  // iShares Core MSCI World
		"IE00B3RBWM25": "IWRD.L",  // iShares Core MSCI World (Dist)
		"IE00B5BMR087": "SPY5.DE", // iShares Core S&P 500
		"IE00BK5BQT80": "VWCE.DE", // Vanguard FTSE All-World
		"IE00B4WXJJ64": "XMEM.DE", // Xtrackers MSCI Emerging Markets
		"IE00B60SWX25": "EIMI.L",  // iShares Core MSCI EM IMI
		"IE00B3XXRP09": "XSXE.DE", // Xtrackers Stoxx Europe 600
		"IE00B3ZW0K18": "CSX5.MI", // iShares Core S&P 500 (Acc)
		"IE00B42W4L06": "IWSM.L",  // iShares MSCI World Small Cap
		"IE00B4L5YC18": "IWDA.L",  // iShares Core MSCI World (Acc)

		// fixed income
		"IE00B4WPHX27": "IEAA.MI", // iShares Euro Aggregate Bond
		"IE00B9M6RS56": "JPST.SW", // JPMorgan USD Ultra-Short Income
		"LU1650487413": "EUNH.DE", // Lyxor EuroMTS
		"IE00B3F81R35": "IBCX.DE", // iShares Euro Corp Bond Large Cap
		"IE00B0M62X26": "IBGX.DE", // iShares Euro Govt Bond 7-10yr
		"FR0010754184": "A35A.DE", // Amundi Euro Government Bond 7-10Y
		"IE00B3FH7618": "IEGE.L",  // iShares Euro Government Bond 1-3yr
		"IE00B5L01S80": "XBUH.DE", // Xtrackers EUR High Yield Corp Bond

		// commodities
		"IE00B4ND3602": "IGLN.L", // iShares Physical Gold
		"IE00B4MKCJ84": "SGLD.L", // WisdomTree Physical Gold
		"IE00B579F325": "SGLD.L", // Invesco Physical Gold

		// money market
		"IE00B3VTMJ91": "XEIN.MI", // Xtrackers II EUR Overnight Rate Swap
		"LU0290358497": "XEON.DE", // Xtrackers II EUR Overnight Rate Swap 1C
	}

	// Specific fund names first, then popular generic fragments: the list
	// is matched in order and "gold" must not shadow "invesco physical
	// gold".
	fragments := []NameFragment{
		{"amundi euro government bond 7-10y", "A35A.DE"},
		{"ishares euro government bond 1-3yr", "IEGE.L"},
		{"xtrackers eur high yield corporate bond", "XBUH.DE"},
		{"ishares core msci emerging markets imi", "EIMI.L"},
		{"xtrackers stoxx europe 600", "XSXE.DE"},
		{"ishares core s&p 500", "CSX5.MI"},
		{"ishares msci world small cap", "IWSM.L"},
		{"ishares core msci world", "IWDA.L"},
		{"xtrackers ii eur overnight rate swap", "XEON.DE"},
		{"invesco physical gold", "SGLD.L"},

		{"ishares msci world", "URTH"},
		{"msci world", "IWDA.L"},
		{"core s&p 500", "IVV"},
		{"s&p 500", "SPY"},
		{"vanguard ftse", "VGK"},
		{"xtrackers msci", "XMWO.DE"},
		{"xtrackers s&p", "XSPD.DE"},
		{"euro government bond", "EGOV.MI"},
		{"euro gov", "EGOV.MI"},
		{"treasury bond", "IDTL.L"},
		{"emerging markets", "EEM"},
		{"msci emerging", "EIMI.L"},
		{"high yield corporate bond", "HYG"},
		{"corporate bond", "LQDE.L"},
		{"euro high yield", "IHYG.L"},
		{"oro", "GLD"},
		{"gold", "GLD"},
		{"amundi euro gov", "EGOV.PA"},
	}

	return NewSymbolTable(isin, fragments)
}
