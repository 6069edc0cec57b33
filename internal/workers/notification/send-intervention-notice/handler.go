// internal/workers/notification/send-intervention-notice/handler.go
package sendinterventionnotice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	awsclients "delinquency-workers/internal/common/aws"
	apperrors "delinquency-workers/internal/common/errors"
	"delinquency-workers/internal/common/logger"
	"delinquency-workers/internal/common/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "send-intervention-notice"
)

// Interfaces over the AWS clients so tests can capture calls.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Handler struct {
	config    *Config
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	sesClient, err := awsclients.NewSESClient(context.Background(), config.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("init SES client: %w", err)
	}
	snsClient, err := awsclients.NewSNSClient(context.Background(), config.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("init SNS client: %w", err)
	}
	return NewHandlerWithClients(config, log, sesClient, snsClient), nil
}

// NewHandlerWithClients wires explicit SES/SNS implementations.
func NewHandlerWithClients(config *Config, log logger.Logger, sesClient SESService, snsClient SNSService) *Handler {
	return &Handler{
		config:    config,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, string(apperrors.ErrCodeParseError), fmt.Sprintf("parse input: %v", err), 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		code := apperrors.ErrCodeNotificationSendFailed
		var stdErr *apperrors.StandardError
		if errors.As(err, &stdErr) {
			code = stdErr.Code
		}
		h.failJob(client, job, string(code), err.Error(), h.retriesFor(code, job))
		return
	}

	h.completeJob(client, job, output)
}

// retriesFor returns the retry budget for a failed job. Codes without a
// retry budget never retry. The per-worker MaxRetries setting, when set,
// overrides the code default; either way the budget is capped by the
// retries the job has left, and an exhausted job escalates instead.
func (h *Handler) retriesFor(code apperrors.ErrorCode, job entities.Job) int32 {
	budget := int32(apperrors.GetRetryCount(code))
	if budget == 0 {
		return 0
	}
	if h.config.MaxRetries > 0 {
		budget = int32(h.config.MaxRetries)
	}
	if job.Retries == 0 {
		return 0
	}
	if job.Retries < budget {
		return job.Retries
	}
	return budget
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	notificationID := uuid.New().String()
	sentAt := time.Now().UTC().Format(time.RFC3339)

	// Only High and Critical assessments trigger outreach.
	if input.RiskLevel != "High" && input.RiskLevel != "Critical" {
		h.logger.Debug("risk level below notice threshold, skipping", map[string]interface{}{
			"customerId": input.CustomerID,
			"riskLevel":  input.RiskLevel,
		})
		return &Output{
			NotificationID: notificationID,
			Status:         StatusSkipped,
			Channels:       []string{},
			SentAt:         sentAt,
		}, nil
	}

	if input.Email == "" && input.Phone == "" {
		h.logger.Warn("no contact channel for customer", map[string]interface{}{
			"customerId": input.CustomerID,
		})
		return nil, apperrors.NewRecipientMissingError(input.CustomerID)
	}

	subject, body := h.composeNotice(input)

	channels := []string{}

	if h.config.EmailEnabled && input.Email != "" {
		if err := h.sendEmail(ctx, input.Email, subject, body); err != nil {
			h.logger.Error("email send failed", map[string]interface{}{
				"error":      err,
				"customerId": input.CustomerID,
			})
			return nil, apperrors.NewNotificationSendError(fmt.Sprintf("email: %v", err))
		}
		channels = append(channels, "email")
	}

	// SMS is reserved for Critical assessments.
	if h.config.SMSEnabled && input.Phone != "" && input.RiskLevel == "Critical" {
		if err := h.sendSMS(ctx, input.Phone, body); err != nil {
			h.logger.Error("SMS send failed", map[string]interface{}{
				"error":      err,
				"customerId": input.CustomerID,
			})
			return nil, apperrors.NewNotificationSendError(fmt.Sprintf("sms: %v", err))
		}
		channels = append(channels, "sms")
	}

	status := StatusSent
	if len(channels) == 0 {
		status = StatusDisabled
	} else {
		metrics.NoticesSent.WithLabelValues(input.RiskLevel).Inc()
	}

	return &Output{
		NotificationID: notificationID,
		Status:         status,
		Channels:       channels,
		SentAt:         sentAt,
	}, nil
}

func (h *Handler) composeNotice(input *Input) (string, string) {
	subject := fmt.Sprintf("[%s risk] Account review for customer %s", input.RiskLevel, input.CustomerID)
	body := fmt.Sprintf(
		"Customer %s has been assessed at %s risk (score %.2f).\n\nRecommended action: %s\n\nAssessment reference: %s",
		input.CustomerID, input.RiskLevel, input.RiskScore, input.Recommendation, input.AssessmentID,
	)
	return subject, body
}

func (h *Handler) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := h.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(h.config.FromEmail),
	})
	return err
}

func (h *Handler) sendSMS(ctx context.Context, to, message string) error {
	_, err := h.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	})
	return err
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string, retries int32) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
		"retries":      retries,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	// Retryable failures go back to the broker for another attempt; only
	// non-retryable codes raise a BPMN error.
	if retries > 0 {
		_, err := client.NewFailJobCommand().
			JobKey(job.Key).
			Retries(retries).
			ErrorMessage(errorMessage).
			Send(context.Background())
		if err != nil {
			h.logger.Error("failed to send fail job command", map[string]interface{}{
				"error": err,
			})
		}
		return
	}

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}
