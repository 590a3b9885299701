package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

const (
	testHold  = 120 * time.Millisecond
	testFirst = 500 * time.Millisecond
)

func TestKeyStateFirstPressCoversRepeatDelay(t *testing.T) {
	ks := NewKeyState(testHold, testFirst)
	t0 := time.Unix(1000, 0)

	ks.Press(core.ActionUp, t0)

	// The terminal is silent until auto-repeat starts; the key stays down.
	for _, dt := range []time.Duration{16 * time.Millisecond, 200 * time.Millisecond, 450 * time.Millisecond} {
		if !ks.Frame(t0.Add(dt)).Has(core.ActionUp) {
			t.Errorf("Up released %v after a fresh press", dt)
		}
	}
	if ks.Frame(t0.Add(600 * time.Millisecond)).Has(core.ActionUp) {
		t.Error("a single press should release after the repeat delay")
	}
}

func TestKeyStateRepeatsUseHoldWindow(t *testing.T) {
	ks := NewKeyState(testHold, testFirst)
	t0 := time.Unix(1000, 0)

	ks.Press(core.ActionDown, t0)
	repeatAt := t0.Add(450 * time.Millisecond)
	ks.Press(core.ActionDown, repeatAt)
	ks.Press(core.ActionDown, repeatAt.Add(30*time.Millisecond))
	last := repeatAt.Add(30 * time.Millisecond)

	if !ks.Frame(last.Add(100 * time.Millisecond)).Has(core.ActionDown) {
		t.Error("Down should stay down between repeats")
	}
	if ks.Frame(last.Add(200 * time.Millisecond)).Has(core.ActionDown) {
		t.Error("once repeats stop, Down should release after the hold window")
	}

	// A later press starts fresh with the long window again
	again := last.Add(2 * time.Second)
	ks.Press(core.ActionDown, again)
	if !ks.Frame(again.Add(300 * time.Millisecond)).Has(core.ActionDown) {
		t.Error("a fresh press after release should use the repeat delay")
	}
}

func TestKeyStateFirstNeverShorterThanHold(t *testing.T) {
	ks := NewKeyState(testHold, 10*time.Millisecond)
	t0 := time.Unix(1000, 0)

	ks.Press(core.ActionUp, t0)
	ks.Frame(t0)
	if !ks.Frame(t0.Add(100 * time.Millisecond)).Has(core.ActionUp) {
		t.Error("first window should be raised to the hold window")
	}
}

func TestKeyStatePressSeenByNextFrame(t *testing.T) {
	ks := NewKeyState(0, 0)
	t0 := time.Unix(1000, 0)

	ks.Press(core.ActionRestart, t0)

	// Even a late frame sees a press that no frame has consumed yet
	if !ks.Frame(t0.Add(time.Second)).Has(core.ActionRestart) {
		t.Error("pending press was lost")
	}
	if ks.Frame(t0.Add(time.Second)).Has(core.ActionRestart) {
		t.Error("pending press should be consumed by one frame")
	}
}

func TestKeyStateIgnoresNone(t *testing.T) {
	ks := NewKeyState(time.Second, time.Second)
	t0 := time.Unix(1000, 0)

	ks.Press(core.ActionNone, t0)
	if ks.Frame(t0).Has(core.ActionNone) {
		t.Error("ActionNone should never be reported")
	}
}
