package settings

import (
	"testing"
)

func TestDefaultsOnEmptyStore(t *testing.T) {
	m := Load(NewMemStore())

	if m.BlindMode() != false {
		t.Error("blind mode should default to false")
	}
	if m.StrictMode() != true {
		t.Error("strict mode should default to true")
	}
	if m.ScoreThreshold() != 90.0 {
		t.Errorf("score threshold default = %f, expected 90", m.ScoreThreshold())
	}
	if m.TimerDuration() != 30 {
		t.Errorf("timer duration default = %d, expected 30", m.TimerDuration())
	}
	if m.HighScore() != 0 {
		t.Errorf("high score default = %d, expected 0", m.HighScore())
	}
}

func TestBoolValidation(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		stored string
		want   bool
	}{
		{"blind true", KeyBlindMode, "true", true},
		{"blind false", KeyBlindMode, "false", false},
		{"blind garbage", KeyBlindMode, "TRUE", false},
		{"blind numeric", KeyBlindMode, "1", false},
		{"strict true", KeyStrictMode, "true", true},
		{"strict false", KeyStrictMode, "false", false},
		{"strict garbage", KeyStrictMode, "yes", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMemStore()
			if err := store.Set(tc.key, tc.stored); err != nil {
				t.Fatal(err)
			}
			m := Load(store)

			var got bool
			if tc.key == KeyBlindMode {
				got = m.BlindMode()
			} else {
				got = m.StrictMode()
			}
			if got != tc.want {
				t.Errorf("stored %q: got %v, expected %v", tc.stored, got, tc.want)
			}
		})
	}
}

func TestThresholdValidationOnLoad(t *testing.T) {
	tests := []struct {
		stored string
		want   float64
	}{
		{"75", 75},
		{"50", 50},
		{"99.9", 99.9},
		{"49.9", 90},  // below range -> default
		{"100", 90},   // above range -> default
		{"abc", 90},   // unparseable -> default
		{"", 90},      // empty -> default
		{"-10", 90},   // negative -> default
		{"85.5", 85.5},
	}

	for _, tc := range tests {
		store := NewMemStore()
		if err := store.Set(KeyScoreThreshold, tc.stored); err != nil {
			t.Fatal(err)
		}
		m := Load(store)
		if m.ScoreThreshold() != tc.want {
			t.Errorf("stored %q: threshold = %f, expected %f", tc.stored, m.ScoreThreshold(), tc.want)
		}
	}
}

func TestSetScoreThresholdRejectsOutOfRange(t *testing.T) {
	m := Load(NewMemStore())

	if m.SetScoreThreshold(49.9) {
		t.Error("should reject threshold below 50")
	}
	if m.SetScoreThreshold(100) {
		t.Error("should reject threshold above 99.9")
	}
	if m.ScoreThreshold() != 90 {
		t.Errorf("rejected sets must keep previous value, got %f", m.ScoreThreshold())
	}

	if !m.SetScoreThreshold(72.5) {
		t.Error("should accept threshold 72.5")
	}
	if m.ScoreThreshold() != 72.5 {
		t.Errorf("threshold = %f, expected 72.5", m.ScoreThreshold())
	}
}

func TestSetTimerDurationClamps(t *testing.T) {
	m := Load(NewMemStore())

	m.SetTimerDuration(-5)
	if m.TimerDuration() != 0 {
		t.Errorf("negative duration should clamp to 0, got %d", m.TimerDuration())
	}

	m.SetTimerDuration(60)
	if m.TimerDuration() != 60 {
		t.Errorf("duration = %d, expected 60", m.TimerDuration())
	}
}

func TestWriteThrough(t *testing.T) {
	store := NewMemStore()
	m := Load(store)

	m.SetBlindMode(true)
	m.SetStrictMode(false)
	m.SetScoreThreshold(80)
	m.SetTimerDuration(45)
	m.CommitHighScore(12)

	// A fresh manager over the same store sees every change.
	reloaded := Load(store)
	if !reloaded.BlindMode() {
		t.Error("blind mode not persisted")
	}
	if reloaded.StrictMode() {
		t.Error("strict mode not persisted")
	}
	if reloaded.ScoreThreshold() != 80 {
		t.Errorf("threshold not persisted, got %f", reloaded.ScoreThreshold())
	}
	if reloaded.TimerDuration() != 45 {
		t.Errorf("duration not persisted, got %d", reloaded.TimerDuration())
	}
	if reloaded.HighScore() != 12 {
		t.Errorf("high score not persisted, got %d", reloaded.HighScore())
	}
}

func TestCommitHighScoreOnlyOnImprovement(t *testing.T) {
	m := Load(NewMemStore())

	if !m.CommitHighScore(5) {
		t.Error("first score should commit")
	}
	if m.CommitHighScore(5) {
		t.Error("equal score should not commit")
	}
	if m.CommitHighScore(3) {
		t.Error("lower score should not commit")
	}
	if !m.CommitHighScore(8) {
		t.Error("higher score should commit")
	}
	if m.HighScore() != 8 {
		t.Errorf("high score = %d, expected 8", m.HighScore())
	}
}

func TestResetHighScore(t *testing.T) {
	store := NewMemStore()
	m := Load(store)

	m.CommitHighScore(42)
	m.ResetHighScore()

	if m.HighScore() != 0 {
		t.Errorf("high score after reset = %d, expected 0", m.HighScore())
	}
	if v, _ := store.Get(KeyHighScore); v != "0" {
		t.Errorf("stored high score after reset = %q, expected \"0\"", v)
	}
}

func TestMalformedHighScoreFallsBackToZero(t *testing.T) {
	store := NewMemStore()
	if err := store.Set(KeyHighScore, "not-a-number"); err != nil {
		t.Fatal(err)
	}
	m := Load(store)
	if m.HighScore() != 0 {
		t.Errorf("malformed high score should load as 0, got %d", m.HighScore())
	}
}

func TestSeedDefaultsOnlyFillsAbsentKeys(t *testing.T) {
	store := NewMemStore()
	if err := store.Set(KeyTimerDuration, "60"); err != nil {
		t.Fatal(err)
	}

	SeedDefaults(store, FirstRun{
		BlindMode:      true,
		StrictMode:     false,
		ScoreThreshold: 95.5,
		TimerDuration:  10,
	})
	m := Load(store)

	if !m.BlindMode() {
		t.Error("seeded blind mode should be true")
	}
	if m.StrictMode() {
		t.Error("seeded strict mode should be false")
	}
	if m.ScoreThreshold() != 95.5 {
		t.Errorf("seeded threshold = %f, expected 95.5", m.ScoreThreshold())
	}
	if m.TimerDuration() != 60 {
		t.Errorf("persisted timer must win over seed, got %d", m.TimerDuration())
	}
}

func TestSeedDefaultsNeverTouchesHighScore(t *testing.T) {
	store := NewMemStore()
	SeedDefaults(store, FirstRun{ScoreThreshold: 90, TimerDuration: 30})
	if _, ok := store.Get(KeyHighScore); ok {
		t.Error("seeding must not create a high score entry")
	}
}
