package analysis

import (
	"testing"

	"github.com/ferrovax/huematch/internal/colorspace"
	"github.com/ferrovax/huematch/internal/game"
)

func TestEmptyHistory(t *testing.T) {
	rep := Analyze(nil, LinearCurve)
	if rep.SampleCount != 0 || rep.Score != 0 {
		t.Errorf("empty history should yield zero report, got %+v", rep)
	}
}

func TestPerfectHistory(t *testing.T) {
	c := colorspace.Color{R: 120, G: 30, B: 200}
	history := []game.RoundRecord{
		{Target: c, User: c},
		{Target: c, User: c},
	}

	for _, curve := range []Curve{LinearCurve, PowerCurve} {
		rep := Analyze(history, curve)
		if rep.Score != 100 {
			t.Errorf("perfect history score = %f, expected 100", rep.Score)
		}
		for ch, e := range rep.MeanErr {
			if e != 0 {
				t.Errorf("channel %d mean error = %f, expected 0", ch, e)
			}
		}
	}
}

func TestPerChannelMeanError(t *testing.T) {
	history := []game.RoundRecord{
		{Target: colorspace.Color{R: 100, G: 50, B: 0}, User: colorspace.Color{R: 110, G: 30, B: 0}},
		{Target: colorspace.Color{R: 200, G: 50, B: 10}, User: colorspace.Color{R: 170, G: 70, B: 10}},
	}

	rep := Analyze(history, LinearCurve)
	// R errors: 10, 30 -> mean 20. G errors: 20, 20 -> mean 20. B: 0.
	if rep.MeanErr[colorspace.ChannelR] != 20 {
		t.Errorf("R mean error = %f, expected 20", rep.MeanErr[colorspace.ChannelR])
	}
	if rep.MeanErr[colorspace.ChannelG] != 20 {
		t.Errorf("G mean error = %f, expected 20", rep.MeanErr[colorspace.ChannelG])
	}
	if rep.MeanErr[colorspace.ChannelB] != 0 {
		t.Errorf("B mean error = %f, expected 0", rep.MeanErr[colorspace.ChannelB])
	}
}

func TestCurvesMonotonicDecreasing(t *testing.T) {
	for _, curve := range []Curve{LinearCurve, PowerCurve} {
		prev := curve(0)
		for err := 1.0; err <= 255; err++ {
			cur := curve(err)
			if cur > prev {
				t.Fatalf("curve not monotonically decreasing at err=%f: %f > %f", err, cur, prev)
			}
			prev = cur
		}
	}
}

func TestPowerCurveCeiling(t *testing.T) {
	if PowerCurve(PowerCurveCeiling) != 0 {
		t.Error("power curve must be 0 at the ceiling")
	}
	if PowerCurve(200) != 0 {
		t.Error("power curve must be 0 beyond the ceiling")
	}
	if PowerCurve(0) != 100 {
		t.Errorf("power curve at 0 = %f, expected 100", PowerCurve(0))
	}
}

func TestPowerCurveSteeperThanLinear(t *testing.T) {
	// Both variants are monotonic, but the power curve must punish a
	// moderate miss harder.
	if PowerCurve(64) >= LinearCurve(64) {
		t.Errorf("power(64)=%f should be below linear(64)=%f", PowerCurve(64), LinearCurve(64))
	}
}

func TestCurveByName(t *testing.T) {
	if CurveByName("power")(64) != PowerCurve(64) {
		t.Error("CurveByName(\"power\") should return the power curve")
	}
	if CurveByName("linear")(64) != LinearCurve(64) {
		t.Error("CurveByName(\"linear\") should return the linear curve")
	}
	if CurveByName("unknown")(64) != LinearCurve(64) {
		t.Error("unknown curve names default to linear")
	}
}
