// internal/workers/assessment/validate-indicator-record/handler_test.go
package validateindicatorrecord

import (
	"context"
	"testing"

	apperrors "delinquency-workers/internal/common/errors"
	"delinquency-workers/internal/common/logger"
	"delinquency-workers/internal/risk"

	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(&Config{}, logger.NewTestLogger(t))
}

func fullIndicatorMap() map[string]interface{} {
	// Decoded JSON numbers arrive as float64.
	return map[string]interface{}{
		"salaryDelayDays":           float64(5),
		"savingsDropPct":            0.35,
		"utilityPaymentDelayDays":   float64(2),
		"discretionarySpendDropPct": 0.1,
		"atmWithdrawalIncrease":     float64(4),
		"upiLendingTxnCount":        float64(1),
		"failedAutodebitCount":      float64(0),
	}
}

func TestHandler_Execute_ValidRecord(t *testing.T) {
	handler := newTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		CustomerID: "CUST_001",
		Indicators: fullIndicatorMap(),
	})

	assert.NoError(t, err)
	assert.True(t, output.IsValid)
	assert.Empty(t, output.ValidationErrors)
	assert.Equal(t, risk.IndicatorRecord{
		SalaryDelayDays:           5,
		SavingsDropPct:            0.35,
		UtilityPaymentDelayDays:   2,
		DiscretionarySpendDropPct: 0.1,
		ATMWithdrawalIncrease:     4,
		UPILendingTxnCount:        1,
		FailedAutodebitCount:      0,
	}, output.Indicators)
}

func TestHandler_Execute_ClampsAboveDomainMax(t *testing.T) {
	handler := newTestHandler(t)

	indicators := fullIndicatorMap()
	indicators["salaryDelayDays"] = float64(45)    // domain max 30
	indicators["savingsDropPct"] = 1.7             // domain max 1.0
	indicators["failedAutodebitCount"] = float64(9) // domain max 5

	output, err := handler.Execute(context.Background(), &Input{
		CustomerID: "CUST_002",
		Indicators: indicators,
	})

	assert.NoError(t, err)
	assert.True(t, output.IsValid)
	assert.Equal(t, 30, output.Indicators.SalaryDelayDays)
	assert.Equal(t, 1.0, output.Indicators.SavingsDropPct)
	assert.Equal(t, 5, output.Indicators.FailedAutodebitCount)
}

func TestHandler_Execute_MissingField(t *testing.T) {
	handler := newTestHandler(t)

	indicators := fullIndicatorMap()
	delete(indicators, "upiLendingTxnCount")

	output, err := handler.Execute(context.Background(), &Input{
		CustomerID: "CUST_003",
		Indicators: indicators,
	})

	assert.NoError(t, err)
	assert.False(t, output.IsValid)
	assert.NotEmpty(t, output.ValidationErrors)
	assert.Equal(t, risk.IndicatorRecord{}, output.Indicators)
	assert.NotNil(t, output.Error)
	assert.Equal(t, apperrors.ErrCodeIndicatorValidationFailed, output.Error.Code)
	assert.False(t, output.Error.Retryable)
}

func TestHandler_Execute_RejectsNegativeAndNonNumeric(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value interface{}
	}{
		{"negative delay", "salaryDelayDays", float64(-3)},
		{"string value", "savingsDropPct", "a lot"},
		{"boolean value", "failedAutodebitCount", true},
		{"fractional count", "atmWithdrawalIncrease", 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t)
			indicators := fullIndicatorMap()
			indicators[tt.field] = tt.value

			output, err := handler.Execute(context.Background(), &Input{
				CustomerID: "CUST_004",
				Indicators: indicators,
			})

			assert.NoError(t, err)
			assert.False(t, output.IsValid)
			assert.NotEmpty(t, output.ValidationErrors)
		})
	}
}

func TestHandler_Execute_RejectsUnknownField(t *testing.T) {
	handler := newTestHandler(t)

	indicators := fullIndicatorMap()
	indicators["creditScore"] = float64(700)

	output, err := handler.Execute(context.Background(), &Input{
		CustomerID: "CUST_005",
		Indicators: indicators,
	})

	assert.NoError(t, err)
	assert.False(t, output.IsValid)
}

func TestHandler_Execute_NilIndicators(t *testing.T) {
	handler := newTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		CustomerID: "CUST_006",
		Indicators: nil,
	})

	assert.NoError(t, err)
	assert.False(t, output.IsValid)
	// All seven required fields reported missing.
	assert.Len(t, output.ValidationErrors, 7)
}
