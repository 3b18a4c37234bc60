package finance

import "pyme-calc/domain"

type ScenarioName string

const (
	Pessimistic ScenarioName = "pessimistic"
	Realistic   ScenarioName = "realistic"
	Optimistic  ScenarioName = "optimistic"
)

const scenarioMonths = 12

// ScenarioParams describes how a scenario bends the base case.
type ScenarioParams struct {
	Name                 ScenarioName
	RevenueMultiplier    float64
	InflationRate        float64 // % mensual
	LoanRate             float64 // % anual; ignorado si UseBaseLoanRate o WithoutLoan
	UseBaseLoanRate      bool
	WithoutLoan          bool
	CanTransferInflation bool
	Months               int
}

// DefaultScenarios returns the pessimistic, realistic and optimistic
// parameter sets, in that order.
func DefaultScenarios() []ScenarioParams {
	return []ScenarioParams{
		{
			Name:              Pessimistic,
			RevenueMultiplier: 0.7,
			InflationRate:     10,
			LoanRate:          60,
			Months:            scenarioMonths,
		},
		{
			Name:                 Realistic,
			RevenueMultiplier:    1.0,
			InflationRate:        5,
			UseBaseLoanRate:      true,
			CanTransferInflation: true,
			Months:               scenarioMonths,
		},
		{
			Name:                 Optimistic,
			RevenueMultiplier:    1.3,
			InflationRate:        3,
			WithoutLoan:          true,
			CanTransferInflation: true,
			Months:               scenarioMonths,
		},
	}
}

// RunScenario projects the base case under one parameter set.
func RunScenario(base domain.ScenarioInput, params ScenarioParams) []domain.MonthlyProjection {
	var payment float64
	switch {
	case params.WithoutLoan:
		payment = 0
	case params.UseBaseLoanRate:
		payment = LoanPayment(base.LoanAmount, base.LoanRate, base.LoanMonths)
	default:
		payment = LoanPayment(base.LoanAmount, params.LoanRate, base.LoanMonths)
	}

	return GenerateProjection(domain.ProjectionInput{
		BaseRevenue:            base.BaseRevenue * params.RevenueMultiplier,
		FixedCosts:             base.FixedCosts,
		VariableCostPercentage: base.VariableCostPercentage,
		BaseTaxes:              base.Taxes,
		LoanPayment:            payment,
		InflationRate:          params.InflationRate,
		Months:                 params.Months,
		CanTransferInflation:   params.CanTransferInflation,
	})
}

// Assign stores a scenario projection in its slot of s.
func (n ScenarioName) Assign(s *domain.Scenarios, projection []domain.MonthlyProjection) {
	switch n {
	case Pessimistic:
		s.Pessimistic = projection
	case Realistic:
		s.Realistic = projection
	case Optimistic:
		s.Optimistic = projection
	}
}

// CalculateScenarios runs the three default scenarios one after another.
func CalculateScenarios(base domain.ScenarioInput) domain.Scenarios {
	var s domain.Scenarios
	for _, params := range DefaultScenarios() {
		params.Name.Assign(&s, RunScenario(base, params))
	}
	return s
}
