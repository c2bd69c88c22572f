// Package game implements the color-match round engine and the session
// state machine. It contains pure logic with no external dependencies
// (especially no Bubble Tea); the platform handles input mapping, timing
// and rendering.
package game

import (
	"math/rand"

	"github.com/ferrovax/huematch/internal/colorspace"
)

// Round owns the state of a single target-color challenge: the target, the
// player's working color, and the hex text mirror of that color.
//
// The mirror and the color encode the same value whenever the player is not
// editing the hex field. While editing, the mirror echoes raw keystrokes
// (possibly invalid or partial) and the color keeps its last valid value.
type Round struct {
	rng *rand.Rand

	target colorspace.Color
	user   colorspace.Color

	hexText    string
	editingHex bool

	// One-shot flag: skip the next mirror resync. Set by StartNewRound so
	// the user-color reset does not overwrite the fresh "#" prompt.
	suppressSync bool

	// Formatted percentage of the last submitted attempt, "" when none.
	outcome string
}

// NewRound creates a round engine with the given rng. Call StartNewRound
// before use.
func NewRound(rng *rand.Rand) *Round {
	return &Round{rng: rng, hexText: "#"}
}

// StartNewRound draws a new target, resets the player's color to black and
// the hex mirror to "#", and clears the last outcome.
func (r *Round) StartNewRound() {
	r.target = colorspace.Random(r.rng)
	r.outcome = ""
	r.hexText = "#"
	r.suppressSync = true
	r.setUserColor(colorspace.Color{})
}

// setUserColor updates the working color and resyncs the hex mirror.
func (r *Round) setUserColor(c colorspace.Color) {
	r.user = c
	r.syncMirror()
}

// syncMirror rederives the hex mirror from the canonical color. Skipped
// while the player is editing the hex field, and once after StartNewRound.
func (r *Round) syncMirror() {
	if r.suppressSync {
		r.suppressSync = false
		return
	}
	if r.editingHex {
		return
	}
	r.hexText = r.user.Hex()
}

// SetChannel sets one RGB channel of the working color, clamped to
// [0, 255], and resyncs the mirror.
func (r *Round) SetChannel(ch int, v int) {
	r.setUserColor(r.user.WithChannel(ch, v))
}

// AdjustChannel shifts one channel by delta, clamping at the bounds.
func (r *Round) AdjustChannel(ch int, delta int) {
	r.SetChannel(ch, int(r.user.Channel(ch))+delta)
}

// SetHexText stores the raw hex field text verbatim. If it parses as a
// color, the working color follows; otherwise the text is kept as-is and
// the color retains its last valid value.
func (r *Round) SetHexText(s string) {
	r.hexText = s
	if c, ok := colorspace.ParseHex(s); ok {
		r.user = c
	}
}

// SetEditingHex tracks hex field focus. While true, color changes do not
// overwrite the mirror (the player may be mid-keystroke). On blur the
// mirror is rederived from the canonical color.
func (r *Round) SetEditingHex(editing bool) {
	r.editingHex = editing
	if !editing {
		r.hexText = r.user.Hex()
	}
}

// Target returns the color to match.
func (r *Round) Target() colorspace.Color { return r.target }

// UserColor returns the player's current working color.
func (r *Round) UserColor() colorspace.Color { return r.user }

// HexText returns the current hex field contents.
func (r *Round) HexText() string { return r.hexText }

// EditingHex reports whether the hex field has focus.
func (r *Round) EditingHex() bool { return r.editingHex }

// Outcome returns the formatted percentage of the last attempt, "" when
// no attempt has been made this round.
func (r *Round) Outcome() string { return r.outcome }
