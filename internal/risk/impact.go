// internal/risk/impact.go
package risk

// Impact is the per-indicator classification. Unlike the level bands it is
// a function of the single raw indicator value only, never of the overall
// score, and its thresholds are strict (>, not >=).
type Impact string

const (
	ImpactLow    Impact = "Low"
	ImpactMedium Impact = "Medium"
	ImpactHigh   Impact = "High"
)

// ImpactBreakdown carries one impact label per indicator.
type ImpactBreakdown struct {
	SalaryDelayDays           Impact `json:"salaryDelayDays"`
	SavingsDropPct            Impact `json:"savingsDropPct"`
	UtilityPaymentDelayDays   Impact `json:"utilityPaymentDelayDays"`
	DiscretionarySpendDropPct Impact `json:"discretionarySpendDropPct"`
	ATMWithdrawalIncrease     Impact `json:"atmWithdrawalIncrease"`
	UPILendingTxnCount        Impact `json:"upiLendingTxnCount"`
	FailedAutodebitCount      Impact `json:"failedAutodebitCount"`
}

// ClassifyImpacts evaluates every indicator independently.
func ClassifyImpacts(record IndicatorRecord) ImpactBreakdown {
	return ImpactBreakdown{
		SalaryDelayDays:           classifyIntImpact(record.SalaryDelayDays, 15, 7),
		SavingsDropPct:            classifyPctImpact(record.SavingsDropPct, 0.5, 0.2),
		UtilityPaymentDelayDays:   classifyIntImpact(record.UtilityPaymentDelayDays, 15, 7),
		DiscretionarySpendDropPct: classifyPctImpact(record.DiscretionarySpendDropPct, 0.5, 0.2),
		ATMWithdrawalIncrease:     classifyIntImpact(record.ATMWithdrawalIncrease, 10, 5),
		UPILendingTxnCount:        classifyIntImpact(record.UPILendingTxnCount, 5, 2),
		FailedAutodebitCount:      classifyIntImpact(record.FailedAutodebitCount, 2, 0),
	}
}

func classifyIntImpact(value, high, medium int) Impact {
	if value > high {
		return ImpactHigh
	}
	if value > medium {
		return ImpactMedium
	}
	return ImpactLow
}

func classifyPctImpact(value, high, medium float64) Impact {
	if value > high {
		return ImpactHigh
	}
	if value > medium {
		return ImpactMedium
	}
	return ImpactLow
}
