package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyState turns the terminal's press-and-repeat key events into
// level-triggered key state. Terminals report a held key as one press, a
// pause of the auto-repeat delay, then a steady stream of repeats. A fresh
// press therefore counts as held for the longer first window; once repeats
// arrive, each one extends the hold by the shorter hold window. Every press
// is seen by at least one frame.
type KeyState struct {
	hold      time.Duration
	first     time.Duration
	last      map[core.Action]time.Time
	repeating map[core.Action]bool
	pending   core.InputFrame
}

// NewKeyState creates a key state. hold applies between auto-repeats and
// first applies after a fresh press; first is never shorter than hold.
func NewKeyState(hold, first time.Duration) *KeyState {
	return &KeyState{
		hold:      hold,
		first:     max(first, hold),
		last:      make(map[core.Action]time.Time),
		repeating: make(map[core.Action]bool),
		pending:   core.NewInputFrame(),
	}
}

// Press records a key press or auto-repeat at the given time.
func (k *KeyState) Press(a core.Action, at time.Time) {
	if a == core.ActionNone {
		return
	}
	k.repeating[a] = k.IsDown(a, at)
	k.last[a] = at
	k.pending.Set(a)
}

// window returns how long a stays held after its latest press.
func (k *KeyState) window(a core.Action) time.Duration {
	if k.repeating[a] {
		return k.hold
	}
	return k.first
}

// IsDown reports whether a counts as held at the given time.
func (k *KeyState) IsDown(a core.Action, at time.Time) bool {
	if k.pending.Has(a) {
		return true
	}
	t, ok := k.last[a]
	return ok && at.Sub(t) <= k.window(a)
}

// Frame samples the held actions for one frame and consumes pending presses.
func (k *KeyState) Frame(at time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a := range k.last {
		if k.IsDown(a, at) {
			frame.Set(a)
		}
	}
	k.pending.Clear()
	return frame
}
