// Package analysis computes post-game accuracy statistics from a session's
// round history. It is a consumer of the game engine's records, not part
// of the scoring loop.
package analysis

import (
	"math"

	"github.com/ferrovax/huematch/internal/colorspace"
	"github.com/ferrovax/huematch/internal/game"
)

// Report aggregates a session's per-channel accuracy.
type Report struct {
	SampleCount int
	// MeanErr is the mean absolute error per channel (R, G, B), in [0, 255].
	MeanErr [colorspace.ChannelCount]float64
	// Score maps the overall mean error through the chosen curve, 0-100.
	Score float64
}

// Curve maps a mean absolute channel error in [0, 255] to a 0-100 display
// score. Any monotonically decreasing mapping is acceptable.
type Curve func(meanErr float64) float64

// LinearCurve degrades the score proportionally to the error.
func LinearCurve(meanErr float64) float64 {
	score := 100 * (1 - meanErr/255)
	if score < 0 {
		return 0
	}
	return score
}

// PowerCurveCeiling is the error at which PowerCurve bottoms out.
const PowerCurveCeiling = 128.0

// PowerCurve punishes error steeply and treats anything at or beyond the
// ceiling as a complete miss.
func PowerCurve(meanErr float64) float64 {
	if meanErr >= PowerCurveCeiling {
		return 0
	}
	return 100 * math.Pow(1-meanErr/PowerCurveCeiling, 3)
}

// CurveByName resolves a configured curve name, defaulting to linear.
func CurveByName(name string) Curve {
	if name == "power" {
		return PowerCurve
	}
	return LinearCurve
}

// Analyze computes per-channel mean absolute error over the history and
// maps the overall mean through the given curve. An empty history yields a
// zero-count report with score 0.
func Analyze(history []game.RoundRecord, curve Curve) Report {
	var rep Report
	rep.SampleCount = len(history)
	if rep.SampleCount == 0 {
		return rep
	}

	var sums [colorspace.ChannelCount]float64
	for _, rec := range history {
		for ch := 0; ch < colorspace.ChannelCount; ch++ {
			diff := float64(rec.Target.Channel(ch)) - float64(rec.User.Channel(ch))
			sums[ch] += math.Abs(diff)
		}
	}

	total := 0.0
	for ch := 0; ch < colorspace.ChannelCount; ch++ {
		rep.MeanErr[ch] = sums[ch] / float64(rep.SampleCount)
		total += rep.MeanErr[ch]
	}

	rep.Score = curve(total / colorspace.ChannelCount)
	return rep
}
