package finance

import (
	"math"

	"pyme-calc/domain"
)

const (
	// DefaultBreakEvenHorizon is the number of months BreakEvenMonth scans
	// when the input leaves Horizon at zero.
	DefaultBreakEvenHorizon = 60
	// NoBreakEven is returned when the horizon ends with a negative balance.
	NoBreakEven = -1
)

func inflationFactor(inflationRate float64, month int) float64 {
	return math.Pow(1+inflationRate/100, float64(month))
}

// GenerateProjection simulates p.Months months under compounding monthly
// inflation. Fixed costs always inflate; revenue inflates only when the
// business can pass inflation through. Taxes stay flat. Months are folded
// in order: Accumulated carries the running total of RealProfit.
func GenerateProjection(p domain.ProjectionInput) []domain.MonthlyProjection {
	if p.Months <= 0 {
		return []domain.MonthlyProjection{}
	}

	projection := make([]domain.MonthlyProjection, 0, p.Months)
	accumulated := 0.0
	for m := 1; m <= p.Months; m++ {
		factor := inflationFactor(p.InflationRate, m)

		nominalRevenue := p.BaseRevenue
		if p.CanTransferInflation {
			nominalRevenue = p.BaseRevenue * factor
		}
		variableCosts := nominalRevenue * (p.VariableCostPercentage / 100)
		totalCosts := p.FixedCosts*factor + variableCosts

		nominalProfit := nominalRevenue - totalCosts - p.BaseTaxes - p.LoanPayment
		realProfit := nominalProfit / factor
		accumulated += realProfit

		projection = append(projection, domain.MonthlyProjection{
			Month:          m,
			NominalRevenue: nominalRevenue,
			RealRevenue:    nominalRevenue / factor,
			Costs:          totalCosts,
			Taxes:          p.BaseTaxes,
			LoanPayment:    p.LoanPayment,
			NominalProfit:  nominalProfit,
			RealProfit:     realProfit,
			Accumulated:    accumulated,
		})
	}
	return projection
}

// BreakEvenMonth returns the first month whose accumulated nominal profit is
// non-negative, or NoBreakEven if the horizon runs out first. Monthly profit
// is not monotonic under inflation, so every month is scanned.
func BreakEvenMonth(b domain.BreakEvenInput) int {
	horizon := b.Horizon
	if horizon <= 0 {
		horizon = DefaultBreakEvenHorizon
	}

	accumulated := 0.0
	for m := 1; m <= horizon; m++ {
		factor := inflationFactor(b.InflationRate, m)
		revenue := b.MonthlyRevenue * factor
		costs := b.FixedCosts*factor + revenue*(b.VariableCostPercentage/100)

		accumulated += revenue - costs - b.Taxes - b.LoanPayment
		if accumulated >= 0 {
			return m
		}
	}
	return NoBreakEven
}
