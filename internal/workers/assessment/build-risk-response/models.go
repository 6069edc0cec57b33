// internal/workers/assessment/build-risk-response/models.go
package buildriskresponse

import "delinquency-workers/internal/risk"

type Input struct {
	RequestID      string               `json:"requestId"`
	CustomerID     string               `json:"customerId"`
	AssessmentID   string               `json:"assessmentId"`
	RiskScore      float64              `json:"riskScore"`
	RiskLevel      string               `json:"riskLevel"`
	Indicators     risk.IndicatorRecord `json:"indicators"`
	Impacts        risk.ImpactBreakdown `json:"impacts"`
	Recommendation string               `json:"recommendation"`
}

type Output struct {
	Response ResponsePayload `json:"response"`
}

// ResponsePayload is everything a rendering client needs to draw the
// assessment: gauge, banner, factor table. It carries data only; no
// rendering happens here.
type ResponsePayload struct {
	RequestID      string           `json:"requestId"`
	CustomerID     string           `json:"customerId"`
	AssessmentID   string           `json:"assessmentId"`
	Status         string           `json:"status"`
	ScorePercent   float64          `json:"scorePercent"`
	DisplayScore   string           `json:"displayScore"`
	RiskLevel      string           `json:"riskLevel"`
	LevelColor     string           `json:"levelColor"`
	BannerSeverity string           `json:"bannerSeverity"`
	Gauge          GaugeSpec        `json:"gauge"`
	Factors        []FactorRow      `json:"factors"`
	Recommendation string           `json:"recommendation"`
	Metadata       ResponseMetadata `json:"metadata"`
}

type GaugeSpec struct {
	Min       float64     `json:"min"`
	Max       float64     `json:"max"`
	Threshold float64     `json:"threshold"`
	Bands     []GaugeBand `json:"bands"`
}

type GaugeBand struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Color string  `json:"color"`
}

type FactorRow struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Impact string `json:"impact"`
}

type ResponseMetadata struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
