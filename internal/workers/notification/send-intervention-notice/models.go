// internal/workers/notification/send-intervention-notice/models.go
package sendinterventionnotice

type Input struct {
	CustomerID     string  `json:"customerId"`
	AssessmentID   string  `json:"assessmentId"`
	RiskLevel      string  `json:"riskLevel"`
	RiskScore      float64 `json:"riskScore"`
	Recommendation string  `json:"recommendation"`
	Email          string  `json:"email,omitempty"`
	Phone          string  `json:"phone,omitempty"`
}

type Output struct {
	NotificationID string   `json:"notificationId"`
	Status         string   `json:"status"` // "sent", "skipped", "disabled"
	Channels       []string `json:"channels"`
	SentAt         string   `json:"sentAt"` // ISO 8601
}

// Statuses. Send failures fail the job for retry instead of completing
// with a status, so there is no "failed" here.
const (
	StatusSent     = "sent"
	StatusSkipped  = "skipped"
	StatusDisabled = "disabled"
)
