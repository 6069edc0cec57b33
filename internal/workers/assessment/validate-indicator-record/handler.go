// internal/workers/assessment/validate-indicator-record/handler.go
package validateindicatorrecord

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "delinquency-workers/internal/common/errors"
	"delinquency-workers/internal/common/logger"
	"delinquency-workers/internal/common/metrics"
	"delinquency-workers/internal/risk"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-indicator-record"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, string(apperrors.ErrCodeParseError), fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, string(apperrors.ErrCodeIndicatorSchemaInvalid), err.Error())
		return
	}

	h.completeJob(client, job, output)
}

// Execute validates the raw indicator map and, when valid, emits the typed
// record with every value clamped into its domain. A record that fails
// validation completes the job with IsValid=false so the workflow can route
// to a correction step instead of retrying.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if input.Indicators == nil {
		input.Indicators = make(map[string]interface{})
	}

	validationErrors, err := validateIndicators(input.Indicators)
	if err != nil {
		return nil, err
	}

	if len(validationErrors) > 0 {
		h.logger.Warn("indicator record rejected", map[string]interface{}{
			"customerId": input.CustomerID,
			"errors":     len(validationErrors),
		})
		return &Output{
			IsValid:          false,
			CustomerID:       input.CustomerID,
			Indicators:       risk.IndicatorRecord{},
			ValidationErrors: validationErrors,
			Error:            apperrors.NewIndicatorValidationError(summarize(validationErrors)),
		}, nil
	}

	return &Output{
		IsValid:    true,
		CustomerID: input.CustomerID,
		Indicators: buildRecord(input.Indicators),
	}, nil
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

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

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
