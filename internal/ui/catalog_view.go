package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-atlas/internal/catalog"
)

// CatalogModel renders the scrollable body list with an optional type filter.
type CatalogModel struct {
	bodies   []catalog.Body
	filtered []catalog.Body
	filter   string // bodyType filter, "" means all

	cursor int
	offset int // scroll offset
	width  int
	height int
}

// NewCatalogModel creates an empty catalog list.
func NewCatalogModel() CatalogModel {
	return CatalogModel{}
}

// SetSize updates the viewport size.
func (m CatalogModel) SetSize(width, height int) CatalogModel {
	m.width = width
	m.height = height
	return m
}

// SetBodies replaces the body list and resets the cursor.
func (m CatalogModel) SetBodies(bodies []catalog.Body) CatalogModel {
	m.bodies = bodies
	return m.applyFilter()
}

// SetFilter restricts the list to one bodyType ("" clears the filter).
func (m CatalogModel) SetFilter(bodyType string) CatalogModel {
	m.filter = bodyType
	return m.applyFilter()
}

func (m CatalogModel) applyFilter() CatalogModel {
	if m.filter == "" {
		m.filtered = m.bodies
	} else {
		filtered := make([]catalog.Body, 0, len(m.bodies))
		for _, b := range m.bodies {
			if b.BodyType == m.filter {
				filtered = append(filtered, b)
			}
		}
		m.filtered = filtered
	}
	m.cursor = 0
	m.offset = 0
	return m
}

// Selected returns the body under the cursor.
func (m CatalogModel) Selected() (catalog.Body, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return catalog.Body{}, false
	}
	return m.filtered[m.cursor], true
}

// MoveDown advances the cursor.
func (m CatalogModel) MoveDown() CatalogModel {
	if m.cursor < len(m.filtered)-1 {
		m.cursor++
	}
	return m.scrollToCursor()
}

// MoveUp retreats the cursor.
func (m CatalogModel) MoveUp() CatalogModel {
	if m.cursor > 0 {
		m.cursor--
	}
	return m.scrollToCursor()
}

// MoveBottom jumps to the last entry.
func (m CatalogModel) MoveBottom() CatalogModel {
	if len(m.filtered) > 0 {
		m.cursor = len(m.filtered) - 1
	}
	return m.scrollToCursor()
}

func (m CatalogModel) scrollToCursor() CatalogModel {
	visible := m.visibleRows()
	if visible <= 0 {
		return m
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	return m
}

func (m CatalogModel) visibleRows() int {
	return m.height - 2 // header line + filter line
}

var (
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	listItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	listTypeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
)

// View renders the list.
func (m CatalogModel) View() string {
	if len(m.filtered) == 0 {
		return listTypeStyle.Render("nothing to select")
	}

	filterLabel := "all"
	if m.filter != "" {
		filterLabel = m.filter
	}
	out := listTypeStyle.Render(fmt.Sprintf("bodies · %s (%d)", filterLabel, len(m.filtered))) + "\n\n"

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.offset; i < end; i++ {
		b := m.filtered[i]
		name := truncate(b.DisplayName(), listWidth-4)
		if i == m.cursor {
			out += cursorStyle.Render("▸ "+name) + "\n"
		} else {
			out += listItemStyle.Render("  "+name) + "\n"
		}
	}

	return out
}

// truncate shortens s to max runes. Catalog names carry accented French
// characters, so slicing must happen on rune boundaries.
func truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
