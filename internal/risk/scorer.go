// internal/risk/scorer.go
package risk

import (
	"math/rand"
	"sync"
	"time"
)

// JitterRange bounds the uniform perturbation added to the raw weighted sum.
const JitterRange = 0.05

// JitterFunc supplies one jitter draw per evaluation. It is the only source
// of non-determinism in the scorer.
type JitterFunc func() float64

// FixedJitter returns a JitterFunc that always yields v. Used by tests to
// pin the scorer to deterministic output.
func FixedJitter(v float64) JitterFunc {
	return func() float64 { return v }
}

// UniformJitter returns a JitterFunc drawing uniformly from
// [-JitterRange, +JitterRange). Safe for concurrent use.
func UniformJitter() JitterFunc {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var mu sync.Mutex
	return func() float64 {
		mu.Lock()
		defer mu.Unlock()
		return JitterRange * (2*rng.Float64() - 1)
	}
}

// Assessment is the immutable result of one evaluation.
type Assessment struct {
	RiskScore float64         `json:"riskScore"`
	RiskLevel Level           `json:"riskLevel"`
	Impacts   ImpactBreakdown `json:"impacts"`
}

// Scorer maps an IndicatorRecord to an Assessment. It holds no mutable
// state beyond the jitter source and is safe to share across evaluations.
type Scorer struct {
	weights WeightSet
	jitter  JitterFunc
}

// NewScorer returns a Scorer with the production weights and random jitter.
func NewScorer() *Scorer {
	return NewScorerWithJitter(UniformJitter())
}

// NewScorerWithJitter returns a Scorer with an explicit jitter source.
func NewScorerWithJitter(jitter JitterFunc) *Scorer {
	return &Scorer{
		weights: DefaultWeights(),
		jitter:  jitter,
	}
}

// Score evaluates one record. The risk score is the jittered weighted sum
// clamped at 1.0. Only the upper bound is clamped: a near-zero raw sum with
// negative jitter yields a slightly negative score and classifies as Low.
func (s *Scorer) Score(record IndicatorRecord) Assessment {
	raw := s.weights.Apply(record)

	score := raw + s.jitter()
	if score > 1.0 {
		score = 1.0
	}

	return Assessment{
		RiskScore: score,
		RiskLevel: ClassifyLevel(score),
		Impacts:   ClassifyImpacts(record),
	}
}
