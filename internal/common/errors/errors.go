// internal/common/errors/errors.go
package errors

import (
	"fmt"
	"time"
)

type ErrorCode string

const (
	ErrCodeParseError ErrorCode = "PARSE_ERROR"

	ErrCodeIndicatorValidationFailed ErrorCode = "INDICATOR_VALIDATION_FAILED"
	ErrCodeIndicatorSchemaInvalid    ErrorCode = "INDICATOR_SCHEMA_INVALID"

	ErrCodeRiskScoreFailed     ErrorCode = "RISK_SCORE_FAILED"
	ErrCodeResponseBuildFailed ErrorCode = "RESPONSE_BUILD_FAILED"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeRecipientMissing       ErrorCode = "RECIPIENT_MISSING"
)

// StandardError is the uniform error shape passed between worker plumbing.
// The risk core itself is total and never produces one of these; the codes
// cover parsing and collaborator failures only.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func NewIndicatorValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIndicatorValidationFailed,
		Message:   "Indicator record failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewNotificationSendError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Failed to deliver intervention notice",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewRecipientMissingError(customerID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecipientMissing,
		Message:   "No contact channel on record for customer",
		Details:   customerID,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// GetRetryCount maps an error code to the retries a failed job should keep.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeNotificationSendFailed:
		return 3
	default:
		return 0
	}
}
