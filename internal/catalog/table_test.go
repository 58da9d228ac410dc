package catalog

import (
	"strings"
	"testing"
	"time"
)

func TestWriteSummaryTable(t *testing.T) {
	bodies := []Body{
		{ID: "mars", Name: "Mars", EnglishName: "Mars", BodyType: TypeRocky, MeanRadius: 3389.5, AvgTemp: 210, Density: 3.93, AxialTilt: 25.19},
		{ID: "haumea-moon", Name: "Namaka", BodyType: "Moon", AroundPlanet: &AroundPlanet{Planet: "haumea"}},
	}

	var sb strings.Builder
	WriteSummaryTable(&sb, bodies, time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC))
	out := sb.String()

	if !strings.Contains(out, "2 bodies") {
		t.Errorf("missing body count:\n%s", out)
	}
	if !strings.Contains(out, "Mars") || !strings.Contains(out, "210 K") {
		t.Errorf("missing Mars row:\n%s", out)
	}
	// Host with no reference data prints a dash, not a zero Kelvin.
	if !strings.Contains(out, "Namaka") || !strings.Contains(out, "-") {
		t.Errorf("missing no-data marker for Namaka:\n%s", out)
	}
}

func TestWriteSummaryTable_Empty(t *testing.T) {
	var sb strings.Builder
	WriteSummaryTable(&sb, nil, time.Now())
	if !strings.Contains(sb.String(), "no data available") {
		t.Errorf("empty table output = %q", sb.String())
	}
}

func TestFindBody(t *testing.T) {
	bodies := []Body{
		{ID: "terre", Name: "La Terre", EnglishName: "Earth"},
		{ID: "mars", Name: "Mars", EnglishName: "Mars"},
	}

	if b, ok := FindBody(bodies, "earth"); !ok || b.ID != "terre" {
		t.Errorf("FindBody(earth) = %+v, %v", b, ok)
	}
	if b, ok := FindBody(bodies, "MARS"); !ok || b.ID != "mars" {
		t.Errorf("FindBody(MARS) = %+v, %v", b, ok)
	}
	if _, ok := FindBody(bodies, "vulcan"); ok {
		t.Error("FindBody(vulcan) should miss")
	}
}
