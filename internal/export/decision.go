package export

import (
	"context"
	"errors"
)

// Key is the classified keystroke read at an interactive prompt.
type Key int

const (
	KeyOther Key = iota
	KeyConfirm
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyConfirm:
		return "confirm"
	case KeyEscape:
		return "escape"
	default:
		return "other"
	}
}

// Decision is the engine's verdict for one recording.
type Decision int

const (
	Skip Decision = iota
	Export
)

func (d Decision) String() string {
	if d == Export {
		return "export"
	}
	return "skip"
}

// Decide maps a keystroke to a decision. Any key other than confirm skips,
// including keys that were probably pressed by mistake.
func Decide(k Key) Decision {
	if k == KeyConfirm {
		return Export
	}
	return Skip
}

// KeyReader blocks for exactly one keystroke while prompt is displayed.
// Implementations must restore the terminal before returning.
type KeyReader interface {
	ReadKey(ctx context.Context, prompt string) (Key, error)
}

// ErrNoKeyReader is returned when interactive mode has nothing to read from.
var ErrNoKeyReader = errors.New("interactive mode requires a key reader")

// Engine decides per recording. In batch mode every recording is exported
// without prompting.
type Engine struct {
	Interactive bool
	Keys        KeyReader
}

// Decide returns the decision and the key that produced it. Errors come only
// from the key reader (for example an operator interrupt) and mean the run
// should stop.
func (e Engine) Decide(ctx context.Context, prompt string) (Decision, Key, error) {
	if !e.Interactive {
		return Export, KeyConfirm, nil
	}
	if e.Keys == nil {
		return Skip, KeyOther, ErrNoKeyReader
	}
	key, err := e.Keys.ReadKey(ctx, prompt)
	if err != nil {
		return Skip, KeyOther, err
	}
	return Decide(key), key, nil
}
