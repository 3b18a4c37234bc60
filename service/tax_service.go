package service

import (
	"context"
	"errors"

	"pyme-calc/domain"
	"pyme-calc/finance"
	"pyme-calc/logging"
	"pyme-calc/repository"
)

type TaxService struct {
	history recorder
}

func NewTaxService(repo repository.CalculationRepository, logger *logging.Logger) *TaxService {
	return &TaxService{history: newRecorder(repo, logger)}
}

// Calculate estimates the monthly tax of input under the chosen regime.
func (s *TaxService) Calculate(ctx context.Context, input domain.TaxInput) (domain.TaxResult, error) {
	if err := checkAmount("facturación mensual", input.MonthlyRevenue); err != nil {
		return domain.TaxResult{}, err
	}
	if input.Regime == "" {
		return domain.TaxResult{}, invalid("régimen requerido: monotributo o general")
	}

	result, err := finance.CalculateTaxes(input.MonthlyRevenue, input.Regime, input.IsFacturaB)
	if errors.Is(err, finance.ErrUnknownRegime) {
		return domain.TaxResult{}, &ValidationError{Err: err, Message: "régimen inválido"}
	}
	if err != nil {
		return domain.TaxResult{}, err
	}

	s.history.record(ctx, KindTaxes, input, result)
	return result, nil
}

// WillExceed checks whether inflation will push revenue past the highest
// monotributo bracket by input.Month.
func (s *TaxService) WillExceed(ctx context.Context, input domain.ThresholdInput) (domain.ThresholdResult, error) {
	if err := checkAmount("facturación mensual", input.CurrentMonthlyRevenue); err != nil {
		return domain.ThresholdResult{}, err
	}
	if input.Month < 0 || input.Month > MaxTermMonths {
		return domain.ThresholdResult{}, invalidf("mes inválido: debe estar entre 0 y %d", MaxTermMonths)
	}
	if err := checkInflation(input.InflationRate); err != nil {
		return domain.ThresholdResult{}, err
	}

	result := domain.ThresholdResult{
		WillExceed:             finance.WillExceedMonotributo(input.CurrentMonthlyRevenue, input.Month, input.InflationRate),
		ProjectedAnnualRevenue: finance.ProjectedAnnualRevenue(input.CurrentMonthlyRevenue, input.Month, input.InflationRate),
		MaxAnnualLimit:         finance.MaxMonotributoLimit(),
	}
	s.history.record(ctx, KindThreshold, input, result)
	return result, nil
}

// Categories returns the monotributo bracket catalog.
func (s *TaxService) Categories() []domain.MonotributoCategory {
	return finance.MonotributoCategories()
}
