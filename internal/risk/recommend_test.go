// internal/risk/recommend_test.go
package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend_AllLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected string
	}{
		{"critical", LevelCritical, "Immediate intervention - Offer payment holiday or loan restructuring"},
		{"high", LevelHigh, "Priority contact - Propose debt consolidation plan"},
		{"medium", LevelMedium, "Schedule check-in call - Offer financial counseling"},
		{"low", LevelLow, "Continue standard monitoring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Recommend(tt.level))
		})
	}
}

func TestRecommend_UnknownLevelFallsBack(t *testing.T) {
	assert.Equal(t, RecommendationDefault, Recommend(Level("Severe")))
	assert.Equal(t, RecommendationDefault, Recommend(Level("")))
	assert.Equal(t, RecommendationDefault, Recommend(Level("low"))) // case-sensitive
}

func TestRecommend_Pure(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, RecommendationCritical, Recommend(LevelCritical))
	}
}
