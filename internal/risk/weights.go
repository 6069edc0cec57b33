// internal/risk/weights.go
package risk

// WeightSet defines the contribution of each indicator to the raw risk sum.
type WeightSet struct {
	SalaryDelayDays           float64
	SavingsDropPct            float64
	UtilityPaymentDelayDays   float64
	DiscretionarySpendDropPct float64
	ATMWithdrawalIncrease     float64
	UPILendingTxnCount        float64
	FailedAutodebitCount      float64
}

// DefaultWeights returns the fixed production weighting.
func DefaultWeights() WeightSet {
	return WeightSet{
		SalaryDelayDays:           0.03,
		SavingsDropPct:            0.40,
		UtilityPaymentDelayDays:   0.02,
		DiscretionarySpendDropPct: 0.20,
		ATMWithdrawalIncrease:     0.02,
		UPILendingTxnCount:        0.05,
		FailedAutodebitCount:      0.08,
	}
}

// Apply computes the raw weighted sum for a record. The result is not
// bounded; clamping happens in the scorer after jitter.
func (w WeightSet) Apply(record IndicatorRecord) float64 {
	return float64(record.SalaryDelayDays)*w.SalaryDelayDays +
		record.SavingsDropPct*w.SavingsDropPct +
		float64(record.UtilityPaymentDelayDays)*w.UtilityPaymentDelayDays +
		record.DiscretionarySpendDropPct*w.DiscretionarySpendDropPct +
		float64(record.ATMWithdrawalIncrease)*w.ATMWithdrawalIncrease +
		float64(record.UPILendingTxnCount)*w.UPILendingTxnCount +
		float64(record.FailedAutodebitCount)*w.FailedAutodebitCount
}
