// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-atlas/internal/catalog"
	"github.com/litescript/ls-atlas/internal/state"
	"github.com/litescript/ls-atlas/internal/texture"
	"github.com/litescript/ls-atlas/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates (spinner animation).
	TickMsg time.Time

	// CatalogMsg signals the body catalog has been fetched.
	CatalogMsg struct {
		Snapshot state.Snapshot
	}

	// TextureMsg signals a synthesis attempt finished for a body.
	TextureMsg struct {
		BodyID string
		Image  *image.RGBA
		Err    error
	}
)

const tickInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager
	synth *texture.Synthesizer

	// UI state
	width    int
	height   int
	ready    bool
	animTick int

	fetching     bool   // catalog fetch in flight
	synthBodyID  string // body whose texture is being synthesized, "" if none
	statusMsg    string

	// Sub-models
	list    CatalogModel
	preview PreviewModel

	snapshot state.Snapshot
}

// New creates a new root UI model. previewSize caps the texture preview
// width in cells; 0 fits the terminal.
func New(stateMgr *state.Manager, synth *texture.Synthesizer, previewSize int) Model {
	return Model{
		state:    stateMgr,
		synth:    synth,
		fetching: true,
		list:     NewCatalogModel(),
		preview:  NewPreviewModel().SetMaxWidth(previewSize),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list = m.list.SetSize(listWidth, m.height-4)
		m.preview = m.preview.SetSize(m.width-listWidth-detailWidth-6, m.height-4)
		return m, nil

	case TickMsg:
		m.animTick++
		return m, tickCmd()

	case CatalogMsg:
		m.fetching = false
		m.snapshot = msg.Snapshot
		m.list = m.list.SetBodies(msg.Snapshot.Bodies)
		if _, ok := m.list.Selected(); ok {
			return m.selectCurrent()
		}
		m.statusMsg = "no data available"
		return m, nil

	case TextureMsg:
		if msg.BodyID != m.synthBodyID {
			// Stale result from a superseded selection.
			return m, nil
		}
		m.synthBodyID = ""
		if msg.Err != nil {
			m.preview = m.preview.SetError(msg.Err)
			m.statusMsg = "body unrenderable"
			return m, nil
		}
		m.statusMsg = ""
		m.preview = m.preview.SetImage(msg.Image)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			m.list = m.list.MoveDown()
			return m.selectCurrent()
		case "k", "up":
			m.list = m.list.MoveUp()
			return m.selectCurrent()
		case "G":
			m.list = m.list.MoveBottom()
			return m.selectCurrent()

		case "g":
			m.list = m.list.SetFilter(catalog.TypeGasGiant)
			return m.selectCurrent()
		case "r":
			m.list = m.list.SetFilter(catalog.TypeRocky)
			return m.selectCurrent()
		case "a":
			m.list = m.list.SetFilter("")
			return m.selectCurrent()
		}
	}

	return m, nil
}

// selectCurrent kicks off synthesis for the body under the cursor.
func (m Model) selectCurrent() (Model, tea.Cmd) {
	body, ok := m.list.Selected()
	if !ok {
		return m, nil
	}
	m.synthBodyID = body.ID
	m.preview = m.preview.SetBusy()
	return m, synthesizeCmd(m.state, m.synth, body)
}

// synthesizeCmd returns a command that synthesizes (or fetches from cache)
// the texture for a body off the UI goroutine.
func synthesizeCmd(stateMgr *state.Manager, synth *texture.Synthesizer, body catalog.Body) tea.Cmd {
	return func() tea.Msg {
		if img, ok := stateMgr.Texture(body.ID); ok {
			return TextureMsg{BodyID: body.ID, Image: img}
		}
		img, err := synth.Synthesize(body)
		if err != nil {
			return TextureMsg{BodyID: body.ID, Err: err}
		}
		stateMgr.StoreTexture(body.ID, img)
		return TextureMsg{BodyID: body.ID, Image: img}
	}
}

// Layout constants
const (
	listWidth   = 28
	detailWidth = 34
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("103"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := titleStyle.Render("ls-atlas") + dimStyle.Render("  v"+version.Version)

	if m.fetching {
		frame := spinnerFrames[m.animTick%len(spinnerFrames)]
		return header + "\n\n " + accentStyle.Render(frame) + " Fetching body catalog..."
	}

	contentHeight := m.height - 4

	list := paneStyle.Height(contentHeight).Render(m.list.View())
	detail := paneStyle.Width(detailWidth).Height(contentHeight).Render(m.renderDetails())
	preview := paneStyle.Height(contentHeight).Render(m.preview.View(m.animTick))

	row := lipgloss.JoinHorizontal(lipgloss.Top, list, detail, preview)

	status := m.renderStatus()
	return header + "\n" + row + "\n" + status
}

func (m Model) renderStatus() string {
	if m.statusMsg != "" {
		return errorStyle.Render(" " + m.statusMsg)
	}
	help := " j/k select · g/r/a filter · q quit"
	if !m.snapshot.LastFetch.IsZero() {
		help += dimStyle.Render(fmt.Sprintf("  ·  %d bodies in %v",
			len(m.snapshot.Bodies), m.snapshot.FetchDuration.Round(time.Millisecond)))
	}
	return dimStyle.Render(help)
}

// renderDetails renders the selected body's attribute panel.
func (m Model) renderDetails() string {
	body, ok := m.list.Selected()
	if !ok {
		return dimStyle.Render("nothing to select")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(body.DisplayName()) + "\n")
	if body.AltName != "" {
		b.WriteString(dimStyle.Render(body.AltName) + "\n")
	}
	b.WriteString("\n")

	writeField := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-12s", label)) + valueStyle.Render(value) + "\n")
	}

	writeField("Type", body.BodyType)
	writeField("Mean radius", fmt.Sprintf("%.1f km", body.MeanRadius))

	tempK, known := catalog.EffectiveTemp(body)
	tempStr := "no data"
	if known {
		tempStr = fmt.Sprintf("%.0f K", tempK)
	}
	if body.AroundPlanet != nil && body.AroundPlanet.Planet != "" {
		if _, hosted := catalog.RefTemps[body.AroundPlanet.Planet]; hosted {
			tempStr += dimStyle.Render(" (host: " + body.AroundPlanet.Planet + ")")
		}
	}
	writeField("Eff. temp", tempStr)

	densityStr := fmt.Sprintf("%.2f g/cm3", body.Density)
	if body.IsDense() {
		densityStr += accentStyle.Render(" dense")
	}
	writeField("Density", densityStr)

	tiltStr := fmt.Sprintf("%.1f°", body.AxialTilt)
	if body.HasIceCaps() {
		tiltStr += accentStyle.Render(" ice caps")
	}
	writeField("Axial tilt", tiltStr)

	if body.Aphelion > 0 {
		writeField("Aphelion", fmt.Sprintf("%.0f km", body.Aphelion))
	}
	if body.Eccentricity > 0 {
		writeField("Eccentricity", fmt.Sprintf("%.4f", body.Eccentricity))
	}
	if body.DiscoveredBy != "" {
		b.WriteString("\n")
		writeField("Discovered", body.DiscoveredBy)
		if body.DiscoveryDate != "" {
			writeField("", body.DiscoveryDate)
		}
	}

	return b.String()
}
