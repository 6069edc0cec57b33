// internal/risk/recommend.go
package risk

// Intervention texts per level. The default covers any value outside the
// closed level set reaching Recommend through untyped workflow variables.
const (
	RecommendationCritical = "Immediate intervention - Offer payment holiday or loan restructuring"
	RecommendationHigh     = "Priority contact - Propose debt consolidation plan"
	RecommendationMedium   = "Schedule check-in call - Offer financial counseling"
	RecommendationLow      = "Continue standard monitoring"
	RecommendationDefault  = "Monitor regularly"
)

// Recommend maps a risk level to its intervention text. Total over Level;
// unknown values fall back to RecommendationDefault rather than failing.
func Recommend(level Level) string {
	switch level {
	case LevelCritical:
		return RecommendationCritical
	case LevelHigh:
		return RecommendationHigh
	case LevelMedium:
		return RecommendationMedium
	case LevelLow:
		return RecommendationLow
	default:
		return RecommendationDefault
	}
}
