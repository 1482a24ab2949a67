// Package input turns raw button edges into a bounded stream of discrete
// events. The producer side runs in whatever asynchronous context delivers
// edges (an interrupt handler on hardware, the frame callback in the
// simulator); the consumer is the session's synchronous tick loop.
package input

// Event identifies one discrete user action. Events are created when a
// press is accepted and consumed exactly once, in FIFO order.
type Event uint8

const (
	// PreviousPattern selects the catalog entry before the current one.
	PreviousPattern Event = iota
	// TogglePause flips the run/pause mode.
	TogglePause
	// NextPattern selects the catalog entry after the current one.
	NextPattern
	// StepOnce advances a single generation while paused.
	StepOnce
	// ResetPattern reloads the current catalog entry from scratch.
	ResetPattern
)

// String names the event for logging.
func (e Event) String() string {
	switch e {
	case PreviousPattern:
		return "previous-pattern"
	case TogglePause:
		return "toggle-pause"
	case NextPattern:
		return "next-pattern"
	case StepOnce:
		return "step-once"
	case ResetPattern:
		return "reset-pattern"
	}
	return "unknown"
}

// Line identifies a physical input line. Each line maps to exactly one
// event; there is no chord handling.
type Line uint8

const (
	// LinePrev is the "previous pattern" button.
	LinePrev Line = iota
	// LinePause is the run/pause button.
	LinePause
	// LineNext is the "next pattern" button.
	LineNext
	// LineStep is the single-step button.
	LineStep
	// LineReset is the pattern-reset button.
	LineReset

	// NumLines is the count of physical input lines.
	NumLines
)

// Event returns the fixed event this line produces.
func (l Line) Event() Event {
	switch l {
	case LinePrev:
		return PreviousPattern
	case LinePause:
		return TogglePause
	case LineNext:
		return NextPattern
	case LineStep:
		return StepOnce
	default:
		return ResetPattern
	}
}
