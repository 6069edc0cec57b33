// internal/workers/assessment/validate-indicator-record/validation.go
package validateindicatorrecord

import (
	"fmt"
	"strings"

	"delinquency-workers/internal/risk"

	"github.com/xeipuuv/gojsonschema"
)

// indicatorSchema mirrors the input-surface contract: all seven indicators
// present, numeric and non-negative. Upper bounds are handled by clamping
// (see buildRecord) the way a bounded input widget would, so a slightly
// out-of-range value degrades gracefully instead of failing the job.
const indicatorSchema = `{
	"type": "object",
	"required": [
		"salaryDelayDays",
		"savingsDropPct",
		"utilityPaymentDelayDays",
		"discretionarySpendDropPct",
		"atmWithdrawalIncrease",
		"upiLendingTxnCount",
		"failedAutodebitCount"
	],
	"properties": {
		"salaryDelayDays":           {"type": "integer", "minimum": 0},
		"savingsDropPct":            {"type": "number",  "minimum": 0},
		"utilityPaymentDelayDays":   {"type": "integer", "minimum": 0},
		"discretionarySpendDropPct": {"type": "number",  "minimum": 0},
		"atmWithdrawalIncrease":     {"type": "integer", "minimum": 0},
		"upiLendingTxnCount":        {"type": "integer", "minimum": 0},
		"failedAutodebitCount":      {"type": "integer", "minimum": 0}
	},
	"additionalProperties": false
}`

var schemaLoader = gojsonschema.NewStringLoader(indicatorSchema)

func validateIndicators(indicators map[string]interface{}) ([]ValidationError, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(indicators))
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	errors := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errors = append(errors, ValidationError{
			Field:   desc.Field(),
			Code:    desc.Type(),
			Message: desc.Description(),
		})
	}
	return errors, nil
}

func summarize(errs []ValidationError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, "; ")
}

// buildRecord converts the validated map into a typed record, clamping every
// value into its declared domain. The scorer never re-validates, so this is
// the single place where domains are enforced.
func buildRecord(indicators map[string]interface{}) risk.IndicatorRecord {
	return risk.IndicatorRecord{
		SalaryDelayDays:           clampInt(numberAt(indicators, "salaryDelayDays"), risk.MaxSalaryDelayDays),
		SavingsDropPct:            clampPct(numberAt(indicators, "savingsDropPct")),
		UtilityPaymentDelayDays:   clampInt(numberAt(indicators, "utilityPaymentDelayDays"), risk.MaxUtilityPaymentDelayDays),
		DiscretionarySpendDropPct: clampPct(numberAt(indicators, "discretionarySpendDropPct")),
		ATMWithdrawalIncrease:     clampInt(numberAt(indicators, "atmWithdrawalIncrease"), risk.MaxATMWithdrawalIncrease),
		UPILendingTxnCount:        clampInt(numberAt(indicators, "upiLendingTxnCount"), risk.MaxUPILendingTxnCount),
		FailedAutodebitCount:      clampInt(numberAt(indicators, "failedAutodebitCount"), risk.MaxFailedAutodebitCount),
	}
}

// numberAt reads a numeric field from decoded JSON. Workflow variables
// arrive as float64 regardless of the declared schema type.
func numberAt(indicators map[string]interface{}, key string) float64 {
	switch v := indicators[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

func clampInt(value float64, max int) int {
	if value < 0 {
		return 0
	}
	if value > float64(max) {
		return max
	}
	return int(value)
}

func clampPct(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1.0 {
		return 1.0
	}
	return value
}
