//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"badge-life/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// BandHeight is the pixel height of the status band above the field.
const BandHeight = 25

const glyphAdvance = 7 // basicfont.Face7x13

// HUD renders the status band: pattern name on the left, generation
// counter on the right, a PAUSED marker in the middle. Text is formatted
// only when the snapshot changes, so steady-state frames allocate nothing.
type HUD struct {
	width int
	pixel *ebiten.Image

	snap    session.Snapshot
	genText string
}

// NewHUD constructs a HUD spanning the given pixel width.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 1
	}
	h := &HUD{width: width}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	h.genText = "Gen: 0"
	return h
}

// Update caches the latest session snapshot.
func (h *HUD) Update(snap session.Snapshot) {
	if snap == h.snap && h.genText != "" {
		return
	}
	h.snap = snap
	h.genText = fmt.Sprintf("Gen: %d", snap.Generation)
}

// Release drops cached formatted text; the next Update rebuilds it. Wired
// to the session's periodic reclaim hook.
func (h *HUD) Release() {
	h.genText = ""
}

// Draw paints the band across the top of the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width), float64(BandHeight-1))
	screen.DrawImage(h.pixel, op)

	line := &ebiten.DrawImageOptions{}
	line.GeoM.Scale(float64(h.width), 1)
	line.GeoM.Translate(0, float64(BandHeight-1))
	line.ColorScale.ScaleWithColor(color.Black)
	screen.DrawImage(h.pixel, line)

	face := basicfont.Face7x13
	text.Draw(screen, h.snap.Pattern, face, 4, 16, color.Black)

	gen := h.genText
	if gen == "" {
		gen = fmt.Sprintf("Gen: %d", h.snap.Generation)
	}
	text.Draw(screen, gen, face, h.width-len(gen)*glyphAdvance-4, 16, color.Black)

	if h.snap.Paused {
		const marker = "PAUSED"
		text.Draw(screen, marker, face, (h.width-len(marker)*glyphAdvance)/2, 16, color.Black)
	}
}
