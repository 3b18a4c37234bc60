package service

import (
	"context"

	"pyme-calc/domain"
	"pyme-calc/finance"
	"pyme-calc/logging"
	"pyme-calc/repository"
)

type ProjectionService struct {
	history        recorder
	defaultHorizon int
}

// NewProjectionService creates a ProjectionService. defaultHorizon is used
// by BreakEven when the request leaves it unset.
func NewProjectionService(
	repo repository.CalculationRepository,
	logger *logging.Logger,
	defaultHorizon int,
) *ProjectionService {
	if defaultHorizon <= 0 {
		defaultHorizon = finance.DefaultBreakEvenHorizon
	}
	return &ProjectionService{
		history:        newRecorder(repo, logger),
		defaultHorizon: defaultHorizon,
	}
}

// Project validates the input and returns the month-by-month projection.
func (s *ProjectionService) Project(
	ctx context.Context,
	input domain.ProjectionInput,
) ([]domain.MonthlyProjection, error) {
	if err := validateProjection(input); err != nil {
		return nil, err
	}

	projection := finance.GenerateProjection(input)
	s.history.record(ctx, KindProjection, input, projection)
	return projection, nil
}

func validateProjection(input domain.ProjectionInput) error {
	if input.Months < 1 || input.Months > MaxProjectionMonths {
		return invalidf("plazo de proyección inválido: debe estar entre 1 y %d meses", MaxProjectionMonths)
	}
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"ingresos", input.BaseRevenue},
		{"costos fijos", input.FixedCosts},
		{"impuestos", input.BaseTaxes},
		{"cuota del préstamo", input.LoanPayment},
	} {
		if err := checkAmount(c.name, c.value); err != nil {
			return err
		}
	}
	if err := checkPercentage("porcentaje de costos variables", input.VariableCostPercentage); err != nil {
		return err
	}
	return checkInflation(input.InflationRate)
}

// BreakEven returns the first month with non-negative accumulated profit.
func (s *ProjectionService) BreakEven(
	ctx context.Context,
	input domain.BreakEvenInput,
) (domain.BreakEvenResult, error) {
	if input.Horizon < 0 || input.Horizon > MaxBreakEvenHorizon {
		return domain.BreakEvenResult{}, invalidf("horizonte inválido: debe estar entre 1 y %d meses", MaxBreakEvenHorizon)
	}
	if input.Horizon == 0 {
		input.Horizon = s.defaultHorizon
	}
	if err := validateProjection(domain.ProjectionInput{
		BaseRevenue:            input.MonthlyRevenue,
		FixedCosts:             input.FixedCosts,
		VariableCostPercentage: input.VariableCostPercentage,
		BaseTaxes:              input.Taxes,
		LoanPayment:            input.LoanPayment,
		InflationRate:          input.InflationRate,
		Months:                 1,
	}); err != nil {
		return domain.BreakEvenResult{}, err
	}

	month := finance.BreakEvenMonth(input)
	result := domain.BreakEvenResult{
		Month:   month,
		Reached: month != finance.NoBreakEven,
		Horizon: input.Horizon,
	}
	s.history.record(ctx, KindBreakEven, input, result)
	return result, nil
}
