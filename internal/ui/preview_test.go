package ui

import (
	"errors"
	"image"
	"strings"
	"testing"
)

// twoToneImage returns a 4x4 image, red on the top half, blue on the bottom.
func twoToneImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			i := img.PixOffset(x, y)
			if y < 2 {
				img.Pix[i] = 255
			} else {
				img.Pix[i+2] = 255
			}
			img.Pix[i+3] = 255
		}
	}
	return img
}

func TestRenderHalfBlocks_Dimensions(t *testing.T) {
	out := renderHalfBlocks(twoToneImage(), 8, 4)

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if got := strings.Count(line, "▀"); got != 8 {
			t.Errorf("row %d has %d cells, want 8", i, got)
		}
	}
}

func TestSamplePixel(t *testing.T) {
	img := twoToneImage()
	b := img.Bounds()

	// An 8x8 cell grid over the 4x4 image: the top-left cell lands in the
	// red half, the bottom-right in the blue half.
	if got := samplePixel(img, b, 0, 0, 8, 8); got != "#ff0000" {
		t.Errorf("top-left sample = %q, want #ff0000", got)
	}
	if got := samplePixel(img, b, 7, 7, 8, 8); got != "#0000ff" {
		t.Errorf("bottom-right sample = %q, want #0000ff", got)
	}
}

func TestRenderHalfBlocks_TinyViewport(t *testing.T) {
	if out := renderHalfBlocks(twoToneImage(), 1, 1); out != "" {
		t.Errorf("degenerate viewport should render nothing, got %q", out)
	}
}

func TestPreviewModel_MaxWidthCapsCells(t *testing.T) {
	m := NewPreviewModel().SetMaxWidth(6).SetSize(40, 20).SetImage(twoToneImage())

	lines := strings.Split(m.View(0), "\n")
	if len(lines) != 3 { // 6 cols keeps the square aspect at 3 rows
		t.Fatalf("expected 3 rows under a 6-cell cap, got %d", len(lines))
	}
	for i, line := range lines {
		if got := strings.Count(line, "▀"); got != 6 {
			t.Errorf("row %d has %d cells, want 6", i, got)
		}
	}

	// Zero removes the cap: the full viewport width applies again.
	m = m.SetMaxWidth(0)
	lines = strings.Split(m.View(0), "\n")
	if got := strings.Count(lines[0], "▀"); got != 40 {
		t.Errorf("uncapped row has %d cells, want 40", got)
	}
}

func TestPreviewModel_States(t *testing.T) {
	m := NewPreviewModel().SetSize(20, 10)

	if view := m.View(0); !strings.Contains(view, "no texture") {
		t.Errorf("empty preview = %q", view)
	}

	m = m.SetBusy()
	if view := m.View(0); !strings.Contains(view, "Synthesizing") {
		t.Errorf("busy preview = %q", view)
	}

	m = m.SetError(errors.New("load fallback asset textures/default.png: gone"))
	if view := m.View(0); !strings.Contains(view, "unrenderable") {
		t.Errorf("error preview = %q", view)
	}

	m = m.SetImage(twoToneImage())
	if view := m.View(0); !strings.Contains(view, "▀") {
		t.Errorf("image preview rendered no cells: %q", view)
	}
}
