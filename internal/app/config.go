package app

import "flag"

// Config represents the command-line parameters for the simulator.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64

	CadenceMillis  int64
	DebounceMillis int64

	StateDir string
}

// NewConfig returns a Config populated with the reference device's
// defaults: a 74x25 field advancing every 500 ms with a 10 ms debounce.
func NewConfig() *Config {
	return &Config{
		Width:          74,
		Height:         25,
		Scale:          8,
		TPS:            60,
		Seed:           42,
		CadenceMillis:  500,
		DebounceMillis: 10,
		StateDir:       "state",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "field width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "field height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soup fills")
	fs.Int64Var(&c.CadenceMillis, "cadence", c.CadenceMillis, "generation interval in ms")
	fs.Int64Var(&c.DebounceMillis, "debounce", c.DebounceMillis, "button quiet window in ms")
	fs.StringVar(&c.StateDir, "state", c.StateDir, "directory for persisted session state")
}
