package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rentflow/internal/ui/testutil"
)

var tabs = []Tab{
	{Key: "1", Name: "Dashboard", View: "dashboard"},
	{Key: "2", Name: "Leads", View: "leads"},
	{Key: "5", Name: "Reviews", View: "reviews", Badge: 3},
}

func TestRender_TooNarrow(t *testing.T) {
	if got := Render(tabs, "leads", 10); got != "" {
		t.Errorf("Render() = %q, want empty below 20 columns", got)
	}
}

func TestRender_Wide(t *testing.T) {
	out := Render(tabs, "leads", 100)
	plain := testutil.StripANSI(out)

	if !strings.HasPrefix(plain, "RentFlow") {
		t.Errorf("brand missing: %q", plain)
	}
	for _, want := range []string{"1 Dashboard", "2 Leads", "5 Reviews (3)"} {
		if !strings.Contains(plain, want) {
			t.Errorf("missing %q in %q", want, plain)
		}
	}
	if w := lipgloss.Width(out); w != 100 {
		t.Errorf("width = %d, want 100", w)
	}
}

func TestRender_CentersWithoutBrand(t *testing.T) {
	plain := testutil.StripANSI(Render(tabs, "dashboard", 45))
	if strings.Contains(plain, "RentFlow") {
		t.Errorf("brand should be dropped when it does not fit: %q", plain)
	}
	if !strings.Contains(plain, "1 Dashboard") {
		t.Errorf("tabs missing: %q", plain)
	}
}

func TestBadge(t *testing.T) {
	if got := badge(7); got != "7" {
		t.Errorf("badge(7) = %q", got)
	}
	if got := badge(120); got != "99+" {
		t.Errorf("badge(120) = %q", got)
	}
}
