package quality

import (
	"math"
	"sort"
)

// KPIs is the headline metric record with period-over-period deltas.
// Values carry full precision; use Rounded for presentation.
type KPIs struct {
	DefectRate float64 `json:"defectRate"`
	FPY        float64 `json:"fpy"`
	ScrapRate  float64 `json:"scrapRate"`
	Alarms     int     `json:"alarms"`
	Coverage   float64 `json:"coverage"`

	DefectRateDelta float64 `json:"defectRateDelta"`
	FPYDelta        float64 `json:"fpyDelta"`
	ScrapRateDelta  float64 `json:"scrapRateDelta"`
	AlarmsDelta     float64 `json:"alarmsDelta"`
	CoverageDelta   float64 `json:"coverageDelta"`
}

// Rounded returns the presentation form: rates at 2 decimals, FPY, coverage
// and all deltas at 1. Rounding happens only here, never inside aggregation.
func (k KPIs) Rounded() KPIs {
	return KPIs{
		DefectRate:      round2(k.DefectRate),
		FPY:             round1(k.FPY),
		ScrapRate:       round2(k.ScrapRate),
		Alarms:          k.Alarms,
		Coverage:        round1(k.Coverage),
		DefectRateDelta: round1(k.DefectRateDelta),
		FPYDelta:        round1(k.FPYDelta),
		ScrapRateDelta:  round1(k.ScrapRateDelta),
		AlarmsDelta:     round1(k.AlarmsDelta),
		CoverageDelta:   round1(k.CoverageDelta),
	}
}

// CalculateKPIs derives rolling metrics from a batch collection: the batches
// are sorted by timestamp and split at the midpoint into a previous and a
// current period (a simple two-window trend comparison, not a sliding
// window). Deltas are percentage changes of current vs previous.
//
// A previous-period mean or count of zero yields delta 0. That guard also
// hides "infinite improvement" cases; acceptable for a dashboard, but it is
// a deliberate choice, not an accident.
//
// Empty input returns the zero record, never NaN.
func CalculateKPIs(batches []Batch) KPIs {
	if len(batches) == 0 {
		return KPIs{}
	}

	sorted := make([]Batch, len(batches))
	copy(sorted, batches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	mid := len(sorted) / 2
	previous := sorted[:mid]
	current := sorted[mid:]

	currentDefect := mean(current, func(b Batch) float64 { return b.DefectRate })
	currentFPY := mean(current, func(b Batch) float64 { return b.FPY })
	currentScrap := mean(current, func(b Batch) float64 { return b.ScrapRate })

	previousDefect := mean(previous, func(b Batch) float64 { return b.DefectRate })
	previousFPY := mean(previous, func(b Batch) float64 { return b.FPY })
	previousScrap := mean(previous, func(b Batch) float64 { return b.ScrapRate })

	currentAlarms := countIf(current, func(b Batch) bool { return IsAlarm(b.DefectRate) })
	previousAlarms := countIf(previous, func(b Batch) bool { return IsAlarm(b.DefectRate) })

	currentCoverage := percentage(countIf(current, goodFPY), len(current))
	previousCoverage := percentage(countIf(previous, goodFPY), len(previous))

	return KPIs{
		DefectRate:      currentDefect,
		FPY:             currentFPY,
		ScrapRate:       currentScrap,
		Alarms:          currentAlarms,
		Coverage:        currentCoverage,
		DefectRateDelta: percentChange(currentDefect, previousDefect),
		FPYDelta:        percentChange(currentFPY, previousFPY),
		ScrapRateDelta:  percentChange(currentScrap, previousScrap),
		AlarmsDelta:     percentChange(float64(currentAlarms), float64(previousAlarms)),
		CoverageDelta:   percentChange(currentCoverage, previousCoverage),
	}
}

// CoverageFPYThreshold is the FPY bar a batch must clear to count toward
// coverage, in percent.
const CoverageFPYThreshold = 95.0

func goodFPY(b Batch) bool {
	return b.FPY > CoverageFPYThreshold
}

// CalculateQualityScore maps the three rates onto a 0-100 score, higher is
// better. The 10/1/5 weighting is fixed: the dashboard's badge thresholds
// (80 good, 60 warning) depend on it.
func CalculateQualityScore(defectRate, fpy, scrapRate float64) int {
	score := 100 - (defectRate*10 + (100 - fpy) + scrapRate*5)
	return int(clamp(0, 100, math.Round(score)))
}

func mean(batches []Batch, value func(Batch) float64) float64 {
	if len(batches) == 0 {
		return 0
	}
	var sum float64
	for _, b := range batches {
		sum += value(b)
	}
	return sum / float64(len(batches))
}

func countIf(batches []Batch, pred func(Batch) bool) int {
	n := 0
	for _, b := range batches {
		if pred(b) {
			n++
		}
	}
	return n
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// percentChange returns the percentage change from previous to current,
// or 0 when previous is 0 (the documented division-by-zero guard).
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
