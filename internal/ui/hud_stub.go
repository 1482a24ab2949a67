//go:build !ebiten

package ui

import "badge-life/internal/session"

// BandHeight is the pixel height of the status band above the field.
const BandHeight = 25

// HUD is a placeholder that satisfies the API expected by the GUI build.
type HUD struct{}

// NewHUD returns an inert HUD in the headless build.
func NewHUD(int) *HUD { return &HUD{} }

// Update is a no-op placeholder.
func (h *HUD) Update(session.Snapshot) {}

// Release is a no-op placeholder.
func (h *HUD) Release() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any) {}
