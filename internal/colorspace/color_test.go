package colorspace

import (
	"math"
	"math/rand"
	"testing"
)

func TestSimilarityIdentical(t *testing.T) {
	colors := []Color{
		{0, 0, 0},
		{255, 255, 255},
		{200, 100, 50},
		{1, 2, 3},
	}

	for _, c := range colors {
		if sim := Similarity(c, c); sim != 1.0 {
			t.Errorf("Similarity(%v, %v) = %f, expected 1.0", c, c, sim)
		}
	}
}

func TestSimilarityOpposites(t *testing.T) {
	black := Color{0, 0, 0}
	white := Color{255, 255, 255}

	if sim := Similarity(black, white); sim != 0.0 {
		t.Errorf("Similarity(black, white) = %f, expected 0.0", sim)
	}
	// Symmetry
	if sim := Similarity(white, black); sim != 0.0 {
		t.Errorf("Similarity(white, black) = %f, expected 0.0", sim)
	}
}

func TestSimilarityRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		a := Random(rng)
		b := Random(rng)
		sim := Similarity(a, b)
		if sim < 0 || sim > 1 {
			t.Fatalf("Similarity(%v, %v) = %f, outside [0, 1]", a, b, sim)
		}
		if math.Abs(sim-Similarity(b, a)) > 1e-12 {
			t.Fatalf("Similarity not symmetric for %v, %v", a, b)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		c := Random(rng)
		parsed, ok := ParseHex(c.Hex())
		if !ok {
			t.Fatalf("ParseHex(%q) failed for valid color", c.Hex())
		}
		if parsed != c {
			t.Fatalf("round trip mismatch: %v -> %q -> %v", c, c.Hex(), parsed)
		}
	}
}

func TestHexFormat(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{Color{0, 0, 0}, "#000000"},
		{Color{255, 255, 255}, "#FFFFFF"},
		{Color{255, 0, 170}, "#FF00AA"},
		{Color{1, 2, 3}, "#010203"},
	}

	for _, tc := range tests {
		if got := tc.color.Hex(); got != tc.expected {
			t.Errorf("Hex(%v) = %q, expected %q", tc.color, got, tc.expected)
		}
	}
}

func TestParseHexShortForm(t *testing.T) {
	short, ok := ParseHex("f0a")
	if !ok {
		t.Fatal("ParseHex(\"f0a\") should succeed")
	}
	long, ok := ParseHex("ff00aa")
	if !ok {
		t.Fatal("ParseHex(\"ff00aa\") should succeed")
	}
	if short != long {
		t.Errorf("short form %v != long form %v", short, long)
	}
}

func TestParseHexValid(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
	}{
		{"#FF00AA", Color{255, 0, 170}},
		{"ff00aa", Color{255, 0, 170}},
		{"#f0a", Color{255, 0, 170}},
		{"  #AbCdEf  ", Color{171, 205, 239}},
		{"000", Color{0, 0, 0}},
		{"#FFFFFF", Color{255, 255, 255}},
	}

	for _, tc := range tests {
		got, ok := ParseHex(tc.input)
		if !ok {
			t.Errorf("ParseHex(%q) failed, expected %v", tc.input, tc.expected)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseHex(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"f",
		"f0",
		"f0aa",
		"f0aab",
		"ff00aa0",
		"gg00aa",
		"#ff00ag",
		"ff 0aa",
		"#ff00a ",
		"##f0a",
		"0x00ff00",
	}

	for _, input := range inputs {
		if _, ok := ParseHex(input); ok {
			t.Errorf("ParseHex(%q) succeeded, expected invalid", input)
		}
	}
}

func TestWithChannelClamps(t *testing.T) {
	c := Color{10, 20, 30}

	if got := c.WithChannel(ChannelR, 300); got.R != 255 {
		t.Errorf("WithChannel(R, 300).R = %d, expected 255", got.R)
	}
	if got := c.WithChannel(ChannelG, -5); got.G != 0 {
		t.Errorf("WithChannel(G, -5).G = %d, expected 0", got.G)
	}
	if got := c.WithChannel(ChannelB, 128); got.B != 128 {
		t.Errorf("WithChannel(B, 128).B = %d, expected 128", got.B)
	}

	// Original is unchanged (value semantics)
	if c != (Color{10, 20, 30}) {
		t.Errorf("WithChannel mutated receiver: %v", c)
	}
}

func TestChannelAccess(t *testing.T) {
	c := Color{11, 22, 33}
	if c.Channel(ChannelR) != 11 || c.Channel(ChannelG) != 22 || c.Channel(ChannelB) != 33 {
		t.Errorf("Channel access mismatch for %v", c)
	}
}

func TestRandomInRange(t *testing.T) {
	// Same seed produces the same color sequence
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		if Random(a) != Random(b) {
			t.Fatal("Random not deterministic for equal seeds")
		}
	}
}
