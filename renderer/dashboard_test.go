package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/folio"
	"github.com/etnz/folio/yahoo"
)

func TestDashboardMarkdown(t *testing.T) {
	quotes := []yahoo.IndexQuote{
		{
			Index: yahoo.Index{Name: "S&P 500", Symbol: "^GSPC"},
			Quote: yahoo.Snapshot{Symbol: "^GSPC", Price: 5000, Change: 25, PctChange: folio.Percent(0.5)},
		},
	}
	got := DashboardMarkdown(quotes)

	for _, want := range []string{"# Market Dashboard", "S&P 500", "^GSPC", "5000.00", "+25.00", "+0.50%"} {
		if !strings.Contains(got, want) {
			t.Errorf("dashboard markdown missing %q:\n%s", want, got)
		}
	}
}

func TestDashboardMarkdown_Empty(t *testing.T) {
	got := DashboardMarkdown(nil)
	if !strings.Contains(got, "No index quotes available.") {
		t.Errorf("empty dashboard = %q", got)
	}
}
