package quality

import (
	"math/rand"
	"time"
)

// rateModel is the shared synthetic defect-rate model. The batch generator
// and the time-series generator used to carry two independent copies of the
// same additive logic; they now share this one model with per-variant effect
// constants.
type rateModel struct {
	Base          float64
	SummerBoost   float64 // Jun-Aug
	NightBoost    float64
	WeekendBoost  float64
	LineBoosts    map[string]float64
	SupplierBoost float64 // applied for the problem supplier
	Noise         float64 // uniform in [-Noise, Noise]
}

// rateContext carries the situational flags the model reacts to.
type rateContext struct {
	Timestamp  time.Time
	Shift      Shift
	LineID     string
	SupplierID string
}

// batchRateModel drives Batch records: supplier-sensitive, no weekend or
// line effects.
var batchRateModel = rateModel{
	Base:          2.5,
	SummerBoost:   1.2,
	NightBoost:    0.6,
	SupplierBoost: 2.5,
	Noise:         0.8,
}

// seriesRateModel drives TimeSeriesPoint records: calendar-sensitive, with
// a structural weakness on line L3, no supplier dimension.
var seriesRateModel = rateModel{
	Base:         2.5,
	SummerBoost:  1.5,
	NightBoost:   0.5,
	WeekendBoost: 0.3,
	LineBoosts:   map[string]float64{"L3": 0.4},
	Noise:        0.5,
}

// isSummer reports whether m falls in the June-August window.
func isSummer(m time.Month) bool {
	return m >= time.June && m <= time.August
}

// isWeekend reports whether d is Saturday or Sunday.
func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

// DefectRate produces one sampled defect rate for the given context,
// clamped at a minimum of 0.
func (m rateModel) DefectRate(ctx rateContext) float64 {
	rate := m.Base

	if isSummer(ctx.Timestamp.Month()) {
		rate += m.SummerBoost
	}
	if ctx.Shift == ShiftNight {
		rate += m.NightBoost
	}
	if isWeekend(ctx.Timestamp.Weekday()) {
		rate += m.WeekendBoost
	}
	if boost, ok := m.LineBoosts[ctx.LineID]; ok {
		rate += boost
	}
	if ctx.SupplierID == ProblemSupplierID {
		rate += m.SupplierBoost
	}

	rate += uniform(-m.Noise, m.Noise)
	if rate < 0 {
		return 0
	}
	return rate
}

// uniform returns a sample from [min, max). Ambient randomness on purpose:
// the dataset contract is deterministic shape, non-deterministic values.
func uniform(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// uniformInt returns an int sample from [min, max] inclusive.
func uniformInt(min, max int) int {
	return rand.Intn(max-min+1) + min
}

// clamp bounds v to [lo, hi].
func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
