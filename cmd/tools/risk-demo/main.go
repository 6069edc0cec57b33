// cmd/tools/risk-demo/main.go
//
// risk-demo scores a single indicator record from the command line and
// prints the resulting assessment. Useful for trying out indicator
// combinations without a running broker.
//
// Usage:
//
//	risk-demo -salary-delay 10 -savings-drop 0.5 -failed-debits 3
//
// Exits with status 2 when the assessment is Critical, so shell scripts can
// branch on the outcome.
package main

import (
	"flag"
	"fmt"
	"os"

	"delinquency-workers/internal/risk"
)

func main() {
	customerID := flag.String("customer", "DEMO_CUSTOMER", "Customer identifier for display")
	salaryDelay := flag.Int("salary-delay", 0, "Salary credit delay in days (0-30)")
	savingsDrop := flag.Float64("savings-drop", 0, "Savings balance drop as a fraction (0.0-1.0)")
	utilityDelay := flag.Int("utility-delay", 0, "Utility bill payment delay in days (0-30)")
	spendDrop := flag.Float64("spend-drop", 0, "Discretionary spending drop as a fraction (0.0-1.0)")
	atmIncrease := flag.Int("atm-increase", 0, "Extra ATM withdrawals vs baseline (0-20)")
	upiLending := flag.Int("upi-lending", 0, "UPI transactions to lending apps (0-10)")
	failedDebits := flag.Int("failed-debits", 0, "Failed auto-debit attempts (0-5)")
	jitter := flag.Float64("jitter", 0, "Fixed jitter to apply instead of a random draw")
	randomJitter := flag.Bool("random-jitter", false, "Draw jitter uniformly from the standard range")
	flag.Parse()

	record := risk.IndicatorRecord{
		SalaryDelayDays:           clampInt(*salaryDelay, risk.MaxSalaryDelayDays),
		SavingsDropPct:            clampPct(*savingsDrop),
		UtilityPaymentDelayDays:   clampInt(*utilityDelay, risk.MaxUtilityPaymentDelayDays),
		DiscretionarySpendDropPct: clampPct(*spendDrop),
		ATMWithdrawalIncrease:     clampInt(*atmIncrease, risk.MaxATMWithdrawalIncrease),
		UPILendingTxnCount:        clampInt(*upiLending, risk.MaxUPILendingTxnCount),
		FailedAutodebitCount:      clampInt(*failedDebits, risk.MaxFailedAutodebitCount),
	}

	var scorer *risk.Scorer
	if *randomJitter {
		scorer = risk.NewScorer()
	} else {
		scorer = risk.NewScorerWithJitter(risk.FixedJitter(*jitter))
	}

	assessment := scorer.Score(record)
	impacts := assessment.Impacts

	fmt.Printf("Customer:       %s\n", *customerID)
	fmt.Printf("Risk score:     %.4f\n", assessment.RiskScore)
	fmt.Printf("Risk level:     %s\n", assessment.RiskLevel)
	fmt.Println()
	fmt.Println("Indicator            Value   Impact")
	fmt.Println("-----------------------------------")
	printRow("Salary delay", fmt.Sprintf("%dd", record.SalaryDelayDays), impacts.SalaryDelayDays)
	printRow("Savings drop", fmt.Sprintf("%.0f%%", record.SavingsDropPct*100), impacts.SavingsDropPct)
	printRow("Utility delay", fmt.Sprintf("%dd", record.UtilityPaymentDelayDays), impacts.UtilityPaymentDelayDays)
	printRow("Spending drop", fmt.Sprintf("%.0f%%", record.DiscretionarySpendDropPct*100), impacts.DiscretionarySpendDropPct)
	printRow("ATM increase", fmt.Sprintf("%d", record.ATMWithdrawalIncrease), impacts.ATMWithdrawalIncrease)
	printRow("Lending apps", fmt.Sprintf("%d", record.UPILendingTxnCount), impacts.UPILendingTxnCount)
	printRow("Failed debits", fmt.Sprintf("%d", record.FailedAutodebitCount), impacts.FailedAutodebitCount)
	fmt.Println()
	fmt.Printf("Recommendation: %s\n", risk.Recommend(assessment.RiskLevel))

	if assessment.RiskLevel == risk.LevelCritical {
		os.Exit(2)
	}
}

func printRow(label, value string, impact risk.Impact) {
	fmt.Printf("%-20s %-7s %s\n", label, value, impact)
}

func clampInt(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
