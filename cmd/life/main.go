//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"badge-life/internal/app"
	"badge-life/internal/input"
	"badge-life/internal/pattern"
	"badge-life/internal/session"
	"badge-life/internal/store"
	"badge-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	queue := input.NewQueue(8)
	debouncer := input.NewDebouncer(queue, cfg.DebounceMillis)
	st := store.New(store.NewFileStorage(cfg.StateDir), "game_of_life")

	sess := session.New(session.Config{
		Width:         cfg.Width,
		Height:        cfg.Height,
		CadenceMillis: cfg.CadenceMillis,
		Seed:          cfg.Seed,
	}, pattern.Builtins(), queue, st, logger)

	game := app.New(sess, debouncer, cfg.Scale)
	size := sess.Size()

	ebiten.SetWindowTitle("badge-life — " + sess.Snapshot().Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale+ui.BandHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
