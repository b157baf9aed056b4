package quality

// Severity is the 4-level classification derived solely from defect rate.
type Severity string

// Severity levels, highest first.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Defect-rate thresholds, in percent. Defined once and shared by severity
// classification, alarm counting, and the alerts listing: a rate strictly
// above a threshold belongs to that band.
const (
	CriticalDefectRate = 7.0
	HighDefectRate     = 5.0
	MediumDefectRate   = 3.0
)

// DetermineSeverity classifies a defect rate. Band boundaries are exclusive
// on the upper side: exactly 7.0 is high, not critical.
func DetermineSeverity(defectRate float64) Severity {
	switch {
	case defectRate > CriticalDefectRate:
		return SeverityCritical
	case defectRate > HighDefectRate:
		return SeverityHigh
	case defectRate > MediumDefectRate:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// IsAlarm reports whether a batch defect rate counts as an alarm. Alarm
// membership and the "high" severity band share the same threshold.
func IsAlarm(defectRate float64) bool {
	return defectRate > HighDefectRate
}
