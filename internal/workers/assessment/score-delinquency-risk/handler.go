// internal/workers/assessment/score-delinquency-risk/handler.go
package scoredelinquencyrisk

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "delinquency-workers/internal/common/errors"
	"delinquency-workers/internal/common/logger"
	"delinquency-workers/internal/common/metrics"
	"delinquency-workers/internal/common/observability"
	"delinquency-workers/internal/risk"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "score-delinquency-risk"
)

type Handler struct {
	config *Config
	scorer *risk.Scorer
	logger logger.Logger
	obs    *observability.Observability
}

// NewHandler wires the production scorer (random jitter). Tests inject a
// pinned scorer via NewHandlerWithScorer.
func NewHandler(config *Config, log logger.Logger) *Handler {
	return NewHandlerWithScorer(config, risk.NewScorer(), log)
}

func NewHandlerWithScorer(config *Config, scorer *risk.Scorer, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		scorer: scorer,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// WithObservability attaches OTel instrumentation to the handler.
func (h *Handler) WithObservability(obs *observability.Observability) *Handler {
	h.obs = obs
	return h
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
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
		h.failJob(client, job, string(apperrors.ErrCodeRiskScoreFailed), err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

// Execute evaluates one indicator record. The scorer is total over its
// domain; the only error path is upstream parsing. One jitter draw is
// consumed per call.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	start := time.Now()
	assessment := h.scorer.Score(input.Indicators)
	recommendation := risk.Recommend(assessment.RiskLevel)

	metrics.AssessmentsByLevel.WithLabelValues(string(assessment.RiskLevel)).Inc()
	if h.obs != nil {
		h.obs.RecordEvaluation(ctx, "success")
		h.obs.RecordEvaluationDuration(ctx, time.Since(start), "success")
		h.obs.RecordRiskScore(ctx, assessment.RiskScore, string(assessment.RiskLevel))
	}

	h.logger.Info("risk assessment produced", map[string]interface{}{
		"customerId": input.CustomerID,
		"riskScore":  assessment.RiskScore,
		"riskLevel":  assessment.RiskLevel,
	})

	return &Output{
		AssessmentID:   uuid.New().String(),
		CustomerID:     input.CustomerID,
		RiskScore:      assessment.RiskScore,
		RiskLevel:      string(assessment.RiskLevel),
		Impacts:        assessment.Impacts,
		Recommendation: recommendation,
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
