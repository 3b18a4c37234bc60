package finance

import (
	"math"

	"pyme-calc/domain"
)

// monthlyRate converts an annual percentage rate into a monthly fraction.
func monthlyRate(annualRate float64) float64 {
	return annualRate / 12 / 100
}

// LoanPayment returns the fixed monthly installment of an amortized loan.
// A zero rate is repaid in equal principal parts.
func LoanPayment(principal, annualRate float64, months int) float64 {
	if principal <= 0 || months <= 0 {
		return 0
	}
	n := float64(months)
	if annualRate == 0 {
		return principal / n
	}
	r := monthlyRate(annualRate)
	growth := math.Pow(1+r, n)
	return principal * (r * growth) / (growth - 1)
}

// AmortizationSchedule builds the French-system schedule of a loan. The last
// installment absorbs rounding so the final balance is exactly zero.
func AmortizationSchedule(principal, annualRate float64, months int) []domain.Installment {
	payment := LoanPayment(principal, annualRate, months)
	if payment == 0 {
		return nil
	}

	r := monthlyRate(annualRate)
	balance := principal
	schedule := make([]domain.Installment, 0, months)
	for i := 1; i <= months; i++ {
		interest := balance * r
		amortized := payment - interest
		if i == months {
			amortized = balance
		}
		balance -= amortized
		schedule = append(schedule, domain.Installment{
			Number:    i,
			Payment:   amortized + interest,
			Interest:  interest,
			Principal: amortized,
			Balance:   balance,
		})
	}
	return schedule
}
