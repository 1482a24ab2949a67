//go:build ebiten

package app

import (
	"image/color"

	"badge-life/internal/core"
	"badge-life/internal/input"
	"badge-life/internal/render"
	"badge-life/internal/session"
	"badge-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyLines maps keyboard edges onto the device's five input lines.
var keyLines = [...]struct {
	key  ebiten.Key
	line input.Line
}{
	{ebiten.KeyArrowLeft, input.LinePrev},
	{ebiten.KeySpace, input.LinePause},
	{ebiten.KeyArrowRight, input.LineNext},
	{ebiten.KeyArrowUp, input.LineStep},
	{ebiten.KeyArrowDown, input.LineReset},
}

// Game adapts the session to the ebiten.Game interface. Key edges stand in
// for button interrupts: they feed the debouncer, which feeds the shared
// event queue the session drains each tick.
type Game struct {
	session   *session.Session
	debouncer *input.Debouncer
	painter   *render.GridPainter
	hud       *ui.HUD

	onColor  color.Color
	offColor color.Color
	scale    int
}

// New constructs a Game over a session and its debouncer.
func New(s *session.Session, debouncer *input.Debouncer, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := s.Size()
	g := &Game{
		session:   s,
		debouncer: debouncer,
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD(size.W * scale),
		onColor:   color.Black,
		offColor:  color.White,
		scale:     scale,
	}
	s.SetReclaim(g.hud.Release)
	return g
}

// Update feeds key edges into the input path and runs one session tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := core.NowMillis()
	for _, kl := range keyLines {
		if inpututil.IsKeyJustPressed(kl.key) {
			g.debouncer.Edge(kl.line, now)
		}
	}

	g.session.Tick(now)
	g.hud.Update(g.session.Snapshot())
	return nil
}

// Draw renders the status band and the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	g.painter.Blit(screen, g.session.Cells(), g.onColor, g.offColor, g.scale, ui.BandHeight)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.session.Size()
	return size.W * g.scale, size.H*g.scale + ui.BandHeight
}
