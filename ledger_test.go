package folio

import (
	"math"
	"testing"
)

func ledgerTable() Table {
	return Table{
		{"Lista movimenti titoli"},
		{"Operazione", "Titolo", "Isin", "Quantita", "Prezzo", "Controvalore"},
		{"Acquisto", "iShares Core MSCI World", "IE00B4L5YC18", "10", "100", "1000"},
		{"", "", "", "", "", ""},
		{"Acquisto", "iShares Core MSCI World", "IE00B4L5YC18", "5", "110", "550"},
		{"Acquisto", "Amundi Euro Government Bond 7-10Y", "FR0010754184", "20", "25", "500"},
	}
}

func TestLedgerFromTable(t *testing.T) {
	tbl := ledgerTable()
	det, err := Detect(tbl)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := LedgerFromTable(tbl, det.HeaderRow)
	if err != nil {
		t.Fatal(err)
	}
	// the entirely empty row is dropped before grouping
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].Name != "iShares Core MSCI World" || rows[0].Quantity != 10 || rows[0].Value != 1000 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
}

func TestLedgerFromTable_MalformedRowExcluded(t *testing.T) {
	tbl := ledgerTable()
	tbl = append(tbl, []string{"Acquisto", "Broken", "XX0000000000", "dieci", "1", "10"})
	rows, err := LedgerFromTable(tbl, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range rows {
		if r.Name == "Broken" {
			t.Error("malformed row should have been excluded from aggregation")
		}
	}
}

func TestLedgerFromTable_MissingColumn(t *testing.T) {
	tbl := Table{{"Operazione", "Titolo", "Quantita"}}
	if _, err := LedgerFromTable(tbl, 0); err == nil {
		t.Fatal("expected an error for a ledger header without all expected columns")
	}
}

func TestAggregateLedger(t *testing.T) {
	rows := []LedgerRow{
		{Name: "iShares Core MSCI World", ISIN: "IE00B4L5YC18", Quantity: 10, Price: 100, Value: 1000},
		{Name: "iShares Core MSCI World", ISIN: "IE00B4L5YC18", Quantity: 5, Price: 110, Value: 550},
		{Name: "Amundi Euro Government Bond 7-10Y", ISIN: "FR0010754184", Quantity: 20, Price: 25, Value: 500},
	}
	hs := AggregateLedger(rows, NewNameClassifier(DefaultNameRules()), NewClassifier(DefaultCategoryRules()))
	if len(hs) != 2 {
		t.Fatalf("got %d holdings, want 2", len(hs))
	}

	// sorted by cost value descending
	world := hs[0]
	if world.Name != "iShares Core MSCI World" {
		t.Fatalf("expected the MSCI World group first, got %q", world.Name)
	}
	if world.Quantity != 15 {
		t.Errorf("Quantity = %v, want 15", world.Quantity)
	}
	// simple arithmetic mean of per-trade prices, not volume-weighted
	if world.AvgPrice != 105 {
		t.Errorf("AvgPrice = %v, want 105", world.AvgPrice)
	}
	if world.Cost != 1550 {
		t.Errorf("Cost = %v, want 1550", world.Cost)
	}
	if world.Category != CategoryAzionario {
		t.Errorf("Category = %q, want %q", world.Category, CategoryAzionario)
	}
	if world.Class != Stocks {
		t.Errorf("Class = %q, want %q", world.Class, Stocks)
	}
	if world.ExpenseRatio != 0.20 {
		t.Errorf("ExpenseRatio = %v, want 0.20", world.ExpenseRatio)
	}

	bond := hs[1]
	if bond.Category != CategoryObbligazionario {
		t.Errorf("Category = %q, want %q", bond.Category, CategoryObbligazionario)
	}
	if bond.ExpenseRatio != 0.15 {
		t.Errorf("ExpenseRatio = %v, want 0.15", bond.ExpenseRatio)
	}

	// allocation percentages are already computed over the total
	wantPct := Percent(1550.0 / 2050.0 * 100)
	if !world.AllocationPct.Equal(wantPct) {
		t.Errorf("AllocationPct = %v, want %v", world.AllocationPct, wantPct)
	}
}

func TestAggregateLedger_SellsReduceQuantity(t *testing.T) {
	rows := []LedgerRow{
		{Name: "X MSCI", ISIN: "IE1", Quantity: 10, Price: 100, Value: 1000},
		{Name: "X MSCI", ISIN: "IE1", Quantity: -4, Price: 120, Value: -480},
	}
	hs := AggregateLedger(rows, NewNameClassifier(DefaultNameRules()), NewClassifier(DefaultCategoryRules()))
	if len(hs) != 1 {
		t.Fatalf("got %d holdings, want 1", len(hs))
	}
	if hs[0].Quantity != 6 {
		t.Errorf("Quantity = %v, want 6", hs[0].Quantity)
	}
	if hs[0].Cost != 520 {
		t.Errorf("Cost = %v, want 520", hs[0].Cost)
	}
	if hs[0].AvgPrice != 110 {
		t.Errorf("AvgPrice = %v, want 110", hs[0].AvgPrice)
	}
}

func TestAggregateLedger_DistinctIdentity(t *testing.T) {
	// The identity is the (name, ISIN) pair: same name under two ISINs
	// stays two holdings.
	rows := []LedgerRow{
		{Name: "Gold", ISIN: "IE00B4ND3602", Quantity: 1, Price: 10, Value: 10},
		{Name: "Gold", ISIN: "IE00B579F325", Quantity: 1, Price: 10, Value: 10},
	}
	hs := AggregateLedger(rows, NewNameClassifier(DefaultNameRules()), NewClassifier(DefaultCategoryRules()))
	if len(hs) != 2 {
		t.Fatalf("got %d holdings, want 2", len(hs))
	}
}

func TestAggregateLedger_LongLedgerExactSums(t *testing.T) {
	// 0.1-style floats accumulate drift when summed naively; the decimal
	// accumulation must stay exact.
	var rows []LedgerRow
	for i := 0; i < 1000; i++ {
		rows = append(rows, LedgerRow{Name: "X MSCI", ISIN: "IE1", Quantity: 0.1, Price: 1, Value: 0.1})
	}
	hs := AggregateLedger(rows, NewNameClassifier(DefaultNameRules()), NewClassifier(DefaultCategoryRules()))
	if math.Abs(hs[0].Quantity-100) > 1e-9 {
		t.Errorf("Quantity = %v, want 100", hs[0].Quantity)
	}
	if math.Abs(hs[0].Cost-100) > 1e-9 {
		t.Errorf("Cost = %v, want 100", hs[0].Cost)
	}
}
