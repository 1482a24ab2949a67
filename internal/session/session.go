// Package session runs the single synchronous control loop: it drains
// queued input events, applies them to the simulation, advances the field
// on a fixed cadence while running, and asks the store to persist
// state-affecting changes. It is the sole owner of all mutable session
// state.
package session

import (
	"log/slog"

	"badge-life/internal/core"
	"badge-life/internal/input"
	"badge-life/internal/pattern"
	"badge-life/internal/store"
	"badge-life/pkg/life"
)

// Config sizes the field and sets the loop's timing policy.
type Config struct {
	Width  int
	Height int

	// CadenceMillis is the wall-clock interval between generation
	// advances while running.
	CadenceMillis int64

	// ReclaimEvery triggers the optional reclaim callback every N
	// generations. The hot path is allocation-free, so the callback is
	// only useful for frontends that build transient render state.
	ReclaimEvery int

	// Seed drives random soup fills deterministically.
	Seed int64
}

// DefaultConfig mirrors the reference device: a 74x25 field advancing
// every 500 ms.
func DefaultConfig() Config {
	return Config{Width: 74, Height: 25, CadenceMillis: 500, ReclaimEvery: 10, Seed: 42}
}

// Snapshot is the read-only view handed to the display collaborator. It is
// always taken between ticks, never mid-advance.
type Snapshot struct {
	Pattern    string
	Index      int
	Generation int
	Paused     bool
}

// Session owns one play session. Construct it once at startup and drive it
// from a single goroutine; only the event queue is shared with other
// execution contexts.
type Session struct {
	cfg     Config
	engine  *life.Engine
	catalog []pattern.Pattern
	events  *input.Queue
	store   *store.Store
	log     *slog.Logger
	reclaim func()

	index      int
	generation int
	paused     bool
	cadence    *core.Cadence
}

// New builds a session over the given catalog, restoring the selected
// pattern and pause mode from the store when a valid record exists. A
// missing or corrupt record falls back to the first pattern, unpaused.
// The store may be nil for headless use.
func New(cfg Config, catalog []pattern.Pattern, events *input.Queue, st *store.Store, logger *slog.Logger) *Session {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.CadenceMillis <= 0 {
		cfg.CadenceMillis = def.CadenceMillis
	}
	if cfg.ReclaimEvery <= 0 {
		cfg.ReclaimEvery = def.ReclaimEvery
	}
	if logger == nil {
		logger = slog.Default()
	}
	if len(catalog) == 0 {
		catalog = pattern.Builtins()
	}

	s := &Session{
		cfg:     cfg,
		engine:  life.New(cfg.Width, cfg.Height),
		catalog: catalog,
		events:  events,
		store:   st,
		log:     logger,
		cadence: core.NewCadence(cfg.CadenceMillis),
	}
	if st != nil {
		if rec, ok := st.Load(); ok {
			s.index = pattern.Wrap(int(rec.PatternIndex), len(catalog))
			s.paused = rec.Paused
		}
	}
	s.loadPattern()
	return s
}

// SetReclaim installs the periodic reclaim callback.
func (s *Session) SetReclaim(fn func()) { s.reclaim = fn }

// Size returns the field dimensions.
func (s *Session) Size() core.Size { return s.engine.Size() }

// Cells exposes the authoritative generation for rendering.
func (s *Session) Cells() []uint8 { return s.engine.Cells() }

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Pattern:    s.catalog[s.index].Name,
		Index:      s.index,
		Generation: s.generation,
		Paused:     s.paused,
	}
}

// Tick runs one pass of the control loop against the given monotonic
// millisecond reading. All pending events are applied before the cadence
// check so input bursts are never starved by the simulation. It reports
// whether anything changed that warrants a redraw.
func (s *Session) Tick(now int64) bool {
	dirty := false
	for {
		ev, ok := s.events.Pop()
		if !ok {
			break
		}
		s.apply(ev)
		s.persist()
		dirty = true
	}

	if !s.paused && s.cadence.Due(now) {
		s.step()
		dirty = true
	}
	return dirty
}

func (s *Session) apply(ev input.Event) {
	switch ev {
	case input.PreviousPattern:
		s.index = pattern.Wrap(s.index-1, len(s.catalog))
		s.loadPattern()
	case input.NextPattern:
		s.index = pattern.Wrap(s.index+1, len(s.catalog))
		s.loadPattern()
	case input.TogglePause:
		s.paused = !s.paused
	case input.StepOnce:
		if s.paused {
			s.step()
		}
	case input.ResetPattern:
		s.loadPattern()
	}
}

// loadPattern stamps the selected catalog entry and restarts the
// generation counter. The pause mode is deliberately left alone.
func (s *Session) loadPattern() {
	pattern.Load(s.engine, s.catalog[s.index], s.cfg.Seed)
	s.generation = 0
}

func (s *Session) step() {
	s.engine.Step()
	s.generation++
	if s.reclaim != nil && s.generation%s.cfg.ReclaimEvery == 0 {
		s.reclaim()
	}
}

func (s *Session) persist() {
	if s.store == nil {
		return
	}
	rec := store.Record{PatternIndex: uint8(s.index), Paused: s.paused}
	if err := s.store.Save(rec); err != nil {
		s.log.Warn("state save failed", "err", err)
	}
}
