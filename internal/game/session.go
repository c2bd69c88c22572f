package game

import (
	"fmt"
	"math/rand"

	"github.com/ferrovax/huematch/internal/colorspace"
	"github.com/ferrovax/huematch/internal/settings"
)

// State is the session lifecycle state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RoundRecord captures the target/user pair at the moment of a submit.
type RoundRecord struct {
	Target colorspace.Color
	User   colorspace.Color
}

// Outcome describes the result of one submit attempt.
type Outcome struct {
	Similarity float64
	Percentage string // Similarity * 100 formatted to one decimal
	Success    bool
	ResetGen   uint64 // Token for CompleteReset after the feedback delay
}

// Session is the top-level game state machine. It owns the score, the
// countdown, the focus-loss flag, the round history and the round engine,
// and applies the high-score rule through the settings manager.
//
// The session is a single logical actor: all transitions happen on
// discrete external events (input, one-second ticks, the delayed
// round-reset callback, focus notifications) delivered by the platform.
type Session struct {
	settings *settings.Manager
	round    *Round

	state     State
	score     int
	timeLeft  int
	focusLost bool
	history   []RoundRecord

	// resetGen invalidates pending delayed round resets: Start bumps it,
	// so a reset scheduled before a restart is ignored when it fires.
	resetGen uint64
}

// NewSession creates a session in the menu state.
func NewSession(mgr *settings.Manager, rng *rand.Rand) *Session {
	return &Session{
		settings: mgr,
		round:    NewRound(rng),
	}
}

// Start begins a fresh playing session: score zeroed, history cleared,
// focus-loss flag cleared, timer reset to the configured duration, and a
// new round started. Valid from any state; a pending delayed round reset
// is superseded by the generation bump.
func (s *Session) Start() {
	s.state = StatePlaying
	s.score = 0
	s.history = nil
	s.focusLost = false
	s.timeLeft = s.settings.TimerDuration()
	s.resetGen++
	s.round.StartNewRound()
}

// Submit scores the current round. Only valid while playing; otherwise a
// no-op with ok=false.
//
// The attempt is recorded in history whether or not it qualifies. A
// qualifying attempt (similarity strictly above threshold/100) increments
// the score and refills the timer. The returned ResetGen must be passed to
// CompleteReset after the platform's feedback delay; a submit arriving
// before that reset simply scores the stale pair as-is.
func (s *Session) Submit() (Outcome, bool) {
	if s.state != StatePlaying {
		return Outcome{}, false
	}

	target := s.round.Target()
	user := s.round.UserColor()

	sim := colorspace.Similarity(target, user)
	out := Outcome{
		Similarity: sim,
		Percentage: fmt.Sprintf("%.1f", sim*100),
	}

	s.history = append(s.history, RoundRecord{Target: target, User: user})

	if sim > s.settings.ScoreThreshold()/100 {
		out.Success = true
		s.score++
		s.timeLeft = s.settings.TimerDuration()
		s.commitHighScore()
	}

	s.round.outcome = out.Percentage

	s.resetGen++
	out.ResetGen = s.resetGen
	return out, true
}

// commitHighScore applies the strict-mode rule: a new best is persisted
// immediately unless strict mode is on and focus was lost this session.
func (s *Session) commitHighScore() {
	if s.settings.StrictMode() && s.focusLost {
		return
	}
	s.settings.CommitHighScore(s.score)
}

// CompleteReset starts the next round after the feedback delay. Stale
// generations (superseded by a later Start or Submit) are ignored, as are
// calls outside the playing state.
func (s *Session) CompleteReset(gen uint64) {
	if s.state != StatePlaying || gen != s.resetGen {
		return
	}
	s.round.StartNewRound()
}

// Tick advances the one-second countdown. No-op outside the playing state
// or in infinite mode (duration 0). Reaching zero ends the game.
func (s *Session) Tick() {
	if s.state != StatePlaying || s.settings.TimerDuration() == 0 {
		return
	}
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	if s.timeLeft == 0 {
		s.state = StateGameOver
	}
}

// EndGame stops the session early.
func (s *Session) EndGame() {
	if s.state == StatePlaying {
		s.state = StateGameOver
	}
}

// NoteFocusLost records that the application lost input focus. The flag is
// one-way for the session: regaining focus does not clear it, only Start.
func (s *Session) NoteFocusLost() {
	if s.state == StatePlaying {
		s.focusLost = true
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the current session score.
func (s *Session) Score() int { return s.score }

// TimeLeft returns the remaining seconds; meaningful only while playing
// with a nonzero timer duration.
func (s *Session) TimeLeft() int { return s.timeLeft }

// FocusLost reports whether focus was lost during this session.
func (s *Session) FocusLost() bool { return s.focusLost }

// HighScore returns the persisted best score.
func (s *Session) HighScore() int { return s.settings.HighScore() }

// Settings exposes the session's settings manager.
func (s *Session) Settings() *settings.Manager { return s.settings }

// Round exposes the round engine for input wiring and rendering.
func (s *Session) Round() *Round { return s.round }

// History returns a copy of the session's round records, oldest first.
func (s *Session) History() []RoundRecord {
	out := make([]RoundRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Rounds returns the number of submitted attempts this session.
func (s *Session) Rounds() int { return len(s.history) }

// BestMatch returns the highest similarity reached across the session's
// history, 0 when no attempts were made.
func (s *Session) BestMatch() float64 {
	best := 0.0
	for _, rec := range s.history {
		if sim := colorspace.Similarity(rec.Target, rec.User); sim > best {
			best = sim
		}
	}
	return best
}
