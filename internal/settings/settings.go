// Package settings manages user-tunable game settings on top of an
// injected key-value persistence port. Each setting validates
// independently and falls back to a hardcoded default when the stored
// value is absent or malformed. Every setter writes through immediately.
package settings

import (
	"strconv"
)

// Store is the persistence port. The SQLite implementation lives in
// internal/storage; tests use MemStore.
type Store interface {
	// Get returns the stored value for key and whether it was present.
	Get(key string) (string, bool)
	// Set persists key=value.
	Set(key, value string) error
}

// Persisted keys.
const (
	KeyBlindMode      = "blind_mode"
	KeyStrictMode     = "strict_mode"
	KeyScoreThreshold = "score_threshold"
	KeyTimerDuration  = "timer_duration"
	KeyHighScore      = "high_score"
)

// Defaults and validation bounds.
const (
	DefaultBlindMode      = false
	DefaultStrictMode     = true
	DefaultScoreThreshold = 90.0
	DefaultTimerDuration  = 30

	MinScoreThreshold = 50.0
	MaxScoreThreshold = 99.9
)

// Manager holds the validated in-memory settings and writes every change
// through to the store. Store write failures are swallowed: persistence is
// best-effort and the in-memory value stays authoritative for the session.
type Manager struct {
	store Store

	blindMode      bool
	strictMode     bool
	scoreThreshold float64
	timerDuration  int
	highScore      int
}

// FirstRun carries config-file defaults used to seed a store that has
// never persisted a value for a key.
type FirstRun struct {
	BlindMode      bool
	StrictMode     bool
	ScoreThreshold float64
	TimerDuration  int
}

// SeedDefaults writes the first-run values for any key not yet present in
// the store. Values already persisted, even invalid ones, are left alone;
// Load applies validation either way.
func SeedDefaults(store Store, fr FirstRun) {
	seed := func(key, value string) {
		if _, ok := store.Get(key); !ok {
			//nolint:errcheck // Best-effort seeding, Load falls back to hardcoded defaults
			store.Set(key, value)
		}
	}

	seed(KeyBlindMode, strconv.FormatBool(fr.BlindMode))
	seed(KeyStrictMode, strconv.FormatBool(fr.StrictMode))
	seed(KeyScoreThreshold, strconv.FormatFloat(fr.ScoreThreshold, 'f', -1, 64))
	seed(KeyTimerDuration, strconv.Itoa(fr.TimerDuration))
}

// Load reads all settings from the store, applying per-key validation
// and defaults.
func Load(store Store) *Manager {
	m := &Manager{store: store}

	m.blindMode = loadBool(store, KeyBlindMode, DefaultBlindMode)
	m.strictMode = loadBool(store, KeyStrictMode, DefaultStrictMode)

	m.scoreThreshold = DefaultScoreThreshold
	if raw, ok := store.Get(KeyScoreThreshold); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= MinScoreThreshold && v <= MaxScoreThreshold {
			m.scoreThreshold = v
		}
	}

	m.timerDuration = DefaultTimerDuration
	if raw, ok := store.Get(KeyTimerDuration); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			if v < 0 {
				v = 0
			}
			m.timerDuration = v
		}
	}

	m.highScore = 0
	if raw, ok := store.Get(KeyHighScore); ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			m.highScore = v
		}
	}

	return m
}

// loadBool reads a boolean setting. An absent key yields the default; a
// present key is compared literally against "true".
func loadBool(store Store, key string, def bool) bool {
	raw, ok := store.Get(key)
	if !ok {
		return def
	}
	return raw == "true"
}

// BlindMode reports whether the player's swatch is hidden until reveal.
func (m *Manager) BlindMode() bool { return m.blindMode }

// StrictMode reports whether focus loss blocks high-score commits.
func (m *Manager) StrictMode() bool { return m.strictMode }

// ScoreThreshold returns the success threshold as a percentage in
// [MinScoreThreshold, MaxScoreThreshold].
func (m *Manager) ScoreThreshold() float64 { return m.scoreThreshold }

// TimerDuration returns the round timer in seconds; 0 means no timer.
func (m *Manager) TimerDuration() int { return m.timerDuration }

// HighScore returns the persisted best score.
func (m *Manager) HighScore() int { return m.highScore }

// SetBlindMode updates and persists the blind mode flag.
func (m *Manager) SetBlindMode(v bool) {
	m.blindMode = v
	m.persist(KeyBlindMode, strconv.FormatBool(v))
}

// SetStrictMode updates and persists the strict mode flag.
func (m *Manager) SetStrictMode(v bool) {
	m.strictMode = v
	m.persist(KeyStrictMode, strconv.FormatBool(v))
}

// SetScoreThreshold updates the success threshold. Values outside
// [MinScoreThreshold, MaxScoreThreshold] are silently rejected and the
// previous value kept; returns whether the value was accepted.
func (m *Manager) SetScoreThreshold(v float64) bool {
	if v < MinScoreThreshold || v > MaxScoreThreshold {
		return false
	}
	m.scoreThreshold = v
	m.persist(KeyScoreThreshold, strconv.FormatFloat(v, 'f', -1, 64))
	return true
}

// SetTimerDuration updates the round timer, clamping negative input to 0.
func (m *Manager) SetTimerDuration(v int) {
	if v < 0 {
		v = 0
	}
	m.timerDuration = v
	m.persist(KeyTimerDuration, strconv.Itoa(v))
}

// CommitHighScore persists a new high score if it beats the current one.
// Returns whether the score was committed.
func (m *Manager) CommitHighScore(score int) bool {
	if score <= m.highScore {
		return false
	}
	m.highScore = score
	m.persist(KeyHighScore, strconv.Itoa(score))
	return true
}

// ResetHighScore zeroes the stored and in-memory high score. Destructive;
// callers are expected to confirm with the user first.
func (m *Manager) ResetHighScore() {
	m.highScore = 0
	m.persist(KeyHighScore, "0")
}

func (m *Manager) persist(key, value string) {
	//nolint:errcheck // Best-effort write-through, in-memory value stays authoritative
	m.store.Set(key, value)
}
