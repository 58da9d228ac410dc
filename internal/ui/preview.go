package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PreviewModel renders a synthesized texture as half-block terminal cells.
// Each text row covers two pixel rows: ▀ with the upper pixel as foreground
// and the lower pixel as background.
type PreviewModel struct {
	img      *image.RGBA
	err      error
	busy     bool
	width    int
	height   int
	maxWidth int // downsample hint; 0 means fit the viewport

	// rendered caches the cell output for the current image and size.
	rendered string
}

// NewPreviewModel creates an empty preview.
func NewPreviewModel() PreviewModel {
	return PreviewModel{}
}

// SetMaxWidth caps the preview at a cell width regardless of viewport size.
// Zero removes the cap.
func (m PreviewModel) SetMaxWidth(cols int) PreviewModel {
	m.maxWidth = cols
	return m.rerender()
}

// SetSize updates the viewport size and re-renders the current image.
func (m PreviewModel) SetSize(width, height int) PreviewModel {
	m.width = width
	m.height = height
	return m.rerender()
}

// cols is the effective cell width after applying the downsample hint.
func (m PreviewModel) cols() int {
	if m.maxWidth > 0 && m.width > m.maxWidth {
		return m.maxWidth
	}
	return m.width
}

func (m PreviewModel) rerender() PreviewModel {
	m.rendered = ""
	if m.img != nil {
		m.rendered = renderHalfBlocks(m.img, m.cols(), m.height)
	}
	return m
}

// SetBusy marks a synthesis in flight.
func (m PreviewModel) SetBusy() PreviewModel {
	m.busy = true
	m.err = nil
	return m
}

// SetImage installs a finished texture and renders it once; View reuses the
// cached cell output every frame.
func (m PreviewModel) SetImage(img *image.RGBA) PreviewModel {
	m.img = img
	m.err = nil
	m.busy = false
	return m.rerender()
}

// SetError marks the selected body unrenderable.
func (m PreviewModel) SetError(err error) PreviewModel {
	m.err = err
	m.img = nil
	m.busy = false
	m.rendered = ""
	return m
}

// View renders the preview pane.
func (m PreviewModel) View(animTick int) string {
	if m.busy {
		frame := spinnerFrames[animTick%len(spinnerFrames)]
		return accentStyle.Render(frame) + " Synthesizing surface..."
	}
	if m.err != nil {
		return errorStyle.Render("unrenderable: " + m.err.Error())
	}
	if m.img == nil {
		return dimStyle.Render("no texture")
	}
	return m.rendered
}

// renderHalfBlocks downsamples img into a cells-wide by 2*rows-tall pixel
// grid and emits one ▀ per cell pair.
func renderHalfBlocks(img *image.RGBA, cols, rows int) string {
	if cols < 2 || rows < 2 {
		return ""
	}

	// Keep the square aspect: terminal cells are roughly twice as tall as
	// wide, and each row holds two pixels, so cols == 2*rows is square.
	if cols > rows*2 {
		cols = rows * 2
	} else {
		rows = cols / 2
	}

	b := img.Bounds()
	var sb strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := samplePixel(img, b, col, row*2, cols, rows*2)
			bottom := samplePixel(img, b, col, row*2+1, cols, rows*2)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			sb.WriteString(style.Render("▀"))
		}
		if row < rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// samplePixel maps a cell-grid coordinate onto the image and returns the
// pixel as a hex color string.
func samplePixel(img *image.RGBA, b image.Rectangle, cx, cy, gridW, gridH int) string {
	x := b.Min.X + cx*b.Dx()/gridW
	y := b.Min.Y + cy*b.Dy()/gridH
	i := img.PixOffset(x, y)
	return fmt.Sprintf("#%02x%02x%02x", img.Pix[i], img.Pix[i+1], img.Pix[i+2])
}
