// internal/risk/level.go
package risk

// Level is the ordinal risk classification of an overall risk score.
type Level string

const (
	LevelLow      Level = "Low"
	LevelMedium   Level = "Medium"
	LevelHigh     Level = "High"
	LevelCritical Level = "Critical"
)

// ClassifyLevel maps a risk score onto its level band. Bands are
// right-inclusive at the top: a score of exactly 0.75 is Critical.
func ClassifyLevel(score float64) Level {
	switch {
	case score >= 0.75:
		return LevelCritical
	case score >= 0.50:
		return LevelHigh
	case score >= 0.25:
		return LevelMedium
	default:
		return LevelLow
	}
}
