// internal/risk/record.go
package risk

// IndicatorRecord holds the seven customer financial-behavior indicators
// consumed by one risk evaluation. Callers construct a fresh record per
// evaluation; nothing is retained after scoring.
//
// Each field is expected to be pre-clamped by the input surface:
//
//	SalaryDelayDays           [0,30]
//	SavingsDropPct            [0.0,1.0]
//	UtilityPaymentDelayDays   [0,30]
//	DiscretionarySpendDropPct [0.0,1.0]
//	ATMWithdrawalIncrease     [0,20]
//	UPILendingTxnCount        [0,10]
//	FailedAutodebitCount      [0,5]
type IndicatorRecord struct {
	SalaryDelayDays           int     `json:"salaryDelayDays"`
	SavingsDropPct            float64 `json:"savingsDropPct"`
	UtilityPaymentDelayDays   int     `json:"utilityPaymentDelayDays"`
	DiscretionarySpendDropPct float64 `json:"discretionarySpendDropPct"`
	ATMWithdrawalIncrease     int     `json:"atmWithdrawalIncrease"`
	UPILendingTxnCount        int     `json:"upiLendingTxnCount"`
	FailedAutodebitCount      int     `json:"failedAutodebitCount"`
}

// Domain bounds for the input surface. The scorer itself does not
// re-validate; see validate-indicator-record.
const (
	MaxSalaryDelayDays         = 30
	MaxUtilityPaymentDelayDays = 30
	MaxATMWithdrawalIncrease   = 20
	MaxUPILendingTxnCount      = 10
	MaxFailedAutodebitCount    = 5
)
