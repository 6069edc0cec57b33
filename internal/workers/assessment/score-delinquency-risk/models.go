// internal/workers/assessment/score-delinquency-risk/models.go
package scoredelinquencyrisk

import "delinquency-workers/internal/risk"

type Input struct {
	CustomerID string               `json:"customerId"`
	Indicators risk.IndicatorRecord `json:"indicators"`
}

type Output struct {
	AssessmentID   string               `json:"assessmentId"`
	CustomerID     string               `json:"customerId"`
	RiskScore      float64              `json:"riskScore"`
	RiskLevel      string               `json:"riskLevel"`
	Impacts        risk.ImpactBreakdown `json:"impacts"`
	Recommendation string               `json:"recommendation"`
}
