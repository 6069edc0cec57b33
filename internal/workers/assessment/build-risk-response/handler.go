// internal/workers/assessment/build-risk-response/handler.go
package buildriskresponse

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	apperrors "delinquency-workers/internal/common/errors"
	"delinquency-workers/internal/common/logger"
	"delinquency-workers/internal/common/metrics"
	"delinquency-workers/internal/risk"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "build-risk-response"
)

// levelColors is the display palette, keyed by level label.
var levelColors = map[string]string{
	"Critical": "#FF4B4B",
	"High":     "#FFA500",
	"Medium":   "#FFD700",
	"Low":      "#4CAF50",
}

// bannerSeverities maps levels to the client-side banner kind.
var bannerSeverities = map[string]string{
	"Critical": "error",
	"High":     "warning",
	"Medium":   "info",
	"Low":      "success",
}

// gaugeBands shades the score gauge background per risk band.
var gaugeBands = []GaugeBand{
	{From: 0, To: 25, Color: "#E8F5E9"},
	{From: 25, To: 50, Color: "#FFF9C4"},
	{From: 50, To: 75, Color: "#FFE0B2"},
	{From: 75, To: 100, Color: "#FFCDD2"},
}

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
		h.failJob(client, job, string(apperrors.ErrCodeResponseBuildFailed), err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	level := input.RiskLevel

	color, ok := levelColors[level]
	if !ok {
		// Unknown level still renders; neutral banner, default text.
		color = "#9E9E9E"
	}

	severity, ok := bannerSeverities[level]
	if !ok {
		severity = "info"
	}

	recommendation := input.Recommendation
	if recommendation == "" {
		recommendation = risk.Recommend(risk.Level(level))
	}

	scorePercent := math.Round(input.RiskScore*1000) / 10

	payload := ResponsePayload{
		RequestID:      input.RequestID,
		CustomerID:     input.CustomerID,
		AssessmentID:   input.AssessmentID,
		Status:         "success",
		ScorePercent:   scorePercent,
		DisplayScore:   fmt.Sprintf("%.1f%%", scorePercent),
		RiskLevel:      level,
		LevelColor:     color,
		BannerSeverity: severity,
		Gauge: GaugeSpec{
			Min:       0,
			Max:       100,
			Threshold: 75,
			Bands:     gaugeBands,
		},
		Factors:        factorRows(input.Indicators, input.Impacts),
		Recommendation: recommendation,
		Metadata: ResponseMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   h.config.AppVersion,
		},
	}

	return &Output{Response: payload}, nil
}

// factorRows lays the assessment out as display rows, one per indicator,
// in a stable order. Percentage indicators render as whole percents.
func factorRows(indicators risk.IndicatorRecord, impacts risk.ImpactBreakdown) []FactorRow {
	return []FactorRow{
		{Label: "Salary Delay", Value: fmt.Sprintf("%d", indicators.SalaryDelayDays), Impact: string(impacts.SalaryDelayDays)},
		{Label: "Savings Drop", Value: fmt.Sprintf("%.0f%%", indicators.SavingsDropPct*100), Impact: string(impacts.SavingsDropPct)},
		{Label: "Utility Delay", Value: fmt.Sprintf("%d", indicators.UtilityPaymentDelayDays), Impact: string(impacts.UtilityPaymentDelayDays)},
		{Label: "Spending Drop", Value: fmt.Sprintf("%.0f%%", indicators.DiscretionarySpendDropPct*100), Impact: string(impacts.DiscretionarySpendDropPct)},
		{Label: "ATM Increase", Value: fmt.Sprintf("%d", indicators.ATMWithdrawalIncrease), Impact: string(impacts.ATMWithdrawalIncrease)},
		{Label: "Lending Apps", Value: fmt.Sprintf("%d", indicators.UPILendingTxnCount), Impact: string(impacts.UPILendingTxnCount)},
		{Label: "Failed Debits", Value: fmt.Sprintf("%d", indicators.FailedAutodebitCount), Impact: string(impacts.FailedAutodebitCount)},
	}
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
