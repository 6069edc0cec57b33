// internal/workers/assessment/build-risk-response/handler_test.go
package buildriskresponse

import (
	"context"
	"testing"

	"delinquency-workers/internal/common/logger"
	"delinquency-workers/internal/risk"

	"github.com/stretchr/testify/assert"
)

func createTestConfig() *Config {
	return &Config{AppVersion: "test"}
}

func criticalInput() *Input {
	return &Input{
		RequestID:    "req-001",
		CustomerID:   "CUST_001",
		AssessmentID: "a-001",
		RiskScore:    0.832,
		RiskLevel:    "Critical",
		Indicators: risk.IndicatorRecord{
			SalaryDelayDays:      20,
			SavingsDropPct:       0.8,
			FailedAutodebitCount: 4,
		},
		Impacts: risk.ImpactBreakdown{
			SalaryDelayDays:           risk.ImpactHigh,
			SavingsDropPct:            risk.ImpactHigh,
			UtilityPaymentDelayDays:   risk.ImpactLow,
			DiscretionarySpendDropPct: risk.ImpactLow,
			ATMWithdrawalIncrease:     risk.ImpactLow,
			UPILendingTxnCount:        risk.ImpactLow,
			FailedAutodebitCount:      risk.ImpactHigh,
		},
		Recommendation: risk.RecommendationCritical,
	}
}

func TestHandler_Execute_CriticalPayload(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), criticalInput())

	assert.NoError(t, err)
	resp := output.Response
	assert.Equal(t, "req-001", resp.RequestID)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 83.2, resp.ScorePercent)
	assert.Equal(t, "83.2%", resp.DisplayScore)
	assert.Equal(t, "Critical", resp.RiskLevel)
	assert.Equal(t, "#FF4B4B", resp.LevelColor)
	assert.Equal(t, "error", resp.BannerSeverity)
	assert.Equal(t, risk.RecommendationCritical, resp.Recommendation)
	assert.Equal(t, "test", resp.Metadata.Version)
	assert.NotEmpty(t, resp.Metadata.Timestamp)
}

func TestHandler_Execute_GaugeSpec(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), criticalInput())

	assert.NoError(t, err)
	gauge := output.Response.Gauge
	assert.Equal(t, 0.0, gauge.Min)
	assert.Equal(t, 100.0, gauge.Max)
	assert.Equal(t, 75.0, gauge.Threshold)
	assert.Len(t, gauge.Bands, 4)
	assert.Equal(t, GaugeBand{From: 0, To: 25, Color: "#E8F5E9"}, gauge.Bands[0])
	assert.Equal(t, GaugeBand{From: 75, To: 100, Color: "#FFCDD2"}, gauge.Bands[3])
}

func TestHandler_Execute_FactorRows(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), criticalInput())

	assert.NoError(t, err)
	factors := output.Response.Factors
	assert.Len(t, factors, 7)
	assert.Equal(t, FactorRow{Label: "Salary Delay", Value: "20", Impact: "High"}, factors[0])
	assert.Equal(t, FactorRow{Label: "Savings Drop", Value: "80%", Impact: "High"}, factors[1])
	assert.Equal(t, FactorRow{Label: "Spending Drop", Value: "0%", Impact: "Low"}, factors[3])
	assert.Equal(t, FactorRow{Label: "Failed Debits", Value: "4", Impact: "High"}, factors[6])
}

func TestHandler_Execute_LevelStyling(t *testing.T) {
	tests := []struct {
		level    string
		color    string
		severity string
	}{
		{"Critical", "#FF4B4B", "error"},
		{"High", "#FFA500", "warning"},
		{"Medium", "#FFD700", "info"},
		{"Low", "#4CAF50", "success"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))
			input := criticalInput()
			input.RiskLevel = tt.level

			output, err := handler.Execute(context.Background(), input)

			assert.NoError(t, err)
			assert.Equal(t, tt.color, output.Response.LevelColor)
			assert.Equal(t, tt.severity, output.Response.BannerSeverity)
		})
	}
}

func TestHandler_Execute_UnknownLevelDefaults(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))
	input := criticalInput()
	input.RiskLevel = "Severe"
	input.Recommendation = ""

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "#9E9E9E", output.Response.LevelColor)
	assert.Equal(t, "info", output.Response.BannerSeverity)
	// Unknown level falls through to the defensive default text.
	assert.Equal(t, risk.RecommendationDefault, output.Response.Recommendation)
}

func TestHandler_Execute_NegativeScoreRendersFaithfully(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))
	input := criticalInput()
	input.RiskScore = -0.05
	input.RiskLevel = "Low"

	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	// The score floor is intentionally absent upstream; the payload does
	// not hide that.
	assert.Equal(t, -5.0, output.Response.ScorePercent)
	assert.Equal(t, "-5.0%", output.Response.DisplayScore)
}
