// internal/workers/assessment/validate-indicator-record/models.go
package validateindicatorrecord

import (
	apperrors "delinquency-workers/internal/common/errors"
	"delinquency-workers/internal/risk"
)

type Input struct {
	CustomerID string                 `json:"customerId"`
	Indicators map[string]interface{} `json:"indicators"`
}

type Output struct {
	IsValid          bool                     `json:"isValid"`
	CustomerID       string                   `json:"customerId"`
	Indicators       risk.IndicatorRecord     `json:"indicators"`
	ValidationErrors []ValidationError        `json:"validationErrors,omitempty"`
	Error            *apperrors.StandardError `json:"error,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
