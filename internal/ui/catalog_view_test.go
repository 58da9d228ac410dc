package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/litescript/ls-atlas/internal/catalog"
)

func testBodies() []catalog.Body {
	return []catalog.Body{
		{ID: "jupiter", Name: "Jupiter", EnglishName: "Jupiter", BodyType: catalog.TypeGasGiant},
		{ID: "mars", Name: "Mars", EnglishName: "Mars", BodyType: catalog.TypeRocky},
		{ID: "terre", Name: "La Terre", EnglishName: "Earth", BodyType: catalog.TypeRocky},
		{ID: "eris", Name: "Eris", EnglishName: "Eris", BodyType: "Dwarf Planet"},
	}
}

func TestCatalogModel_Navigation(t *testing.T) {
	m := NewCatalogModel().SetSize(28, 20).SetBodies(testBodies())

	sel, ok := m.Selected()
	if !ok || sel.ID != "jupiter" {
		t.Fatalf("initial selection = %+v, want jupiter", sel)
	}

	m = m.MoveDown()
	if sel, _ = m.Selected(); sel.ID != "mars" {
		t.Errorf("after MoveDown selection = %q, want mars", sel.ID)
	}

	m = m.MoveUp().MoveUp() // clamps at the top
	if sel, _ = m.Selected(); sel.ID != "jupiter" {
		t.Errorf("after MoveUp selection = %q, want jupiter", sel.ID)
	}

	m = m.MoveBottom()
	if sel, _ = m.Selected(); sel.ID != "eris" {
		t.Errorf("after MoveBottom selection = %q, want eris", sel.ID)
	}
	m = m.MoveDown() // clamps at the bottom
	if sel, _ = m.Selected(); sel.ID != "eris" {
		t.Errorf("MoveDown past end moved selection to %q", sel.ID)
	}
}

func TestCatalogModel_Filter(t *testing.T) {
	m := NewCatalogModel().SetSize(28, 20).SetBodies(testBodies())

	m = m.SetFilter(catalog.TypeRocky)
	if len(m.filtered) != 2 {
		t.Fatalf("rocky filter kept %d bodies, want 2", len(m.filtered))
	}
	if sel, _ := m.Selected(); sel.ID != "mars" {
		t.Errorf("filter should reset cursor to first match, got %q", sel.ID)
	}

	m = m.SetFilter("")
	if len(m.filtered) != 4 {
		t.Errorf("cleared filter kept %d bodies, want 4", len(m.filtered))
	}
}

func TestCatalogModel_EmptyList(t *testing.T) {
	m := NewCatalogModel().SetSize(28, 20)

	if _, ok := m.Selected(); ok {
		t.Error("empty list must have no selection")
	}
	if view := m.View(); !strings.Contains(view, "nothing to select") {
		t.Errorf("empty view = %q, want a nothing-to-select notice", view)
	}

	// Navigation on an empty list must not panic.
	m = m.MoveDown().MoveUp().MoveBottom()
	if _, ok := m.Selected(); ok {
		t.Error("navigation conjured a selection out of nothing")
	}
}

func TestTruncate_AccentedNames(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Ganymède", 20, "Ganymède"}, // short enough, untouched
		{"Ganymède", 6, "Ganym…"},
		{"1 Cérès", 5, "1 Cé…"},
		{"Hélène", 4, "Hél…"},
		{"Io", 1, "Io"}, // degenerate width, untouched
	}
	for _, tc := range cases {
		got := truncate(tc.in, tc.max)
		if got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tc.in, tc.max, got)
		}
	}
}

func TestCatalogModel_ViewMarksCursor(t *testing.T) {
	m := NewCatalogModel().SetSize(28, 20).SetBodies(testBodies()).MoveDown()

	view := m.View()
	if !strings.Contains(view, "▸ Mars") {
		t.Errorf("view missing cursor marker on Mars:\n%s", view)
	}
	if !strings.Contains(view, "(4)") {
		t.Errorf("view missing body count:\n%s", view)
	}
}
