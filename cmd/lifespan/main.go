// Command lifespan surveys the built-in pattern catalog headlessly: each
// seed runs until it dies out, settles into a still life, or hits the
// generation cap. Useful for sanity-checking catalog metadata (Diehard
// must die at 130) and for sizing new field dimensions.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"badge-life/internal/pattern"
	"badge-life/pkg/life"
)

type outcome uint8

const (
	outcomeActive outcome = iota
	outcomeDied
	outcomeSettled
)

type result struct {
	name       string
	outcome    outcome
	generation int
	peak       int
	final      int
}

func (r result) String() string {
	switch r.outcome {
	case outcomeDied:
		return fmt.Sprintf("%-14s died at generation %d (peak %d cells)", r.name, r.generation, r.peak)
	case outcomeSettled:
		return fmt.Sprintf("%-14s settled at generation %d (%d cells, peak %d)", r.name, r.generation, r.final, r.peak)
	default:
		return fmt.Sprintf("%-14s still active after %d generations (%d cells, peak %d)", r.name, r.generation, r.final, r.peak)
	}
}

func main() {
	width := flag.Int("w", 74, "field width in cells")
	height := flag.Int("h", 25, "field height in cells")
	maxGen := flag.Int("max", 6000, "generation cap per pattern")
	seed := flag.Int64("seed", 42, "seed for random soup fills")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel pattern evaluations")
	flag.Parse()

	catalog := pattern.Builtins()
	results := make([]result, len(catalog))

	var g errgroup.Group
	g.SetLimit(*workers)
	for i, p := range catalog {
		i, p := i, p
		g.Go(func() error {
			results[i] = survey(p, *width, *height, *maxGen, *seed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("catalog survey on a %dx%d field, cap %d generations\n\n", *width, *height, *maxGen)
	for _, r := range results {
		fmt.Println(r)
	}
}

func survey(p pattern.Pattern, w, h, maxGen int, seed int64) result {
	eng := life.New(w, h)
	pattern.Load(eng, p, seed)

	r := result{name: p.Name, peak: eng.Population()}
	for gen := 1; gen <= maxGen; gen++ {
		eng.Step()
		if pop := eng.Population(); pop > r.peak {
			r.peak = pop
		}
		if eng.Extinct() {
			r.outcome = outcomeDied
			r.generation = gen
			return r
		}
		if !eng.Changed() {
			r.outcome = outcomeSettled
			r.generation = gen
			r.final = eng.Population()
			return r
		}
	}
	r.outcome = outcomeActive
	r.generation = maxGen
	r.final = eng.Population()
	return r
}
