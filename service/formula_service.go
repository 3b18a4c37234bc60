package service

import (
	"context"
	"fmt"
	"sort"

	"pyme-calc/domain"
	"pyme-calc/finance"
	"pyme-calc/logging"
	"pyme-calc/repository"
)

type formulaFunc func(domain.FormulaRequest) domain.CalculationResult

var formulas = map[string]formulaFunc{
	"monthly-income": func(r domain.FormulaRequest) domain.CalculationResult {
		return finance.MonthlyIncome(r.Items)
	},
	"variable-costs": func(r domain.FormulaRequest) domain.CalculationResult {
		return finance.VariableCosts(r.Items)
	},
	"unit-margin": func(r domain.FormulaRequest) domain.CalculationResult {
		return finance.UnitMargin(r.Price, r.CostPerUnit)
	},
	"break-even-units": func(r domain.FormulaRequest) domain.CalculationResult {
		return finance.BreakEvenUnits(r.FixedCosts, r.UnitMargin)
	},
	"gross-margin": func(r domain.FormulaRequest) domain.CalculationResult {
		return finance.GrossMargin(r.Revenue, r.VariableCosts)
	},
	"ebitda": func(r domain.FormulaRequest) domain.CalculationResult {
		return finance.EBITDA(domain.EBITDAInput{
			Revenue:       r.Revenue,
			VariableCosts: r.VariableCosts,
			FixedCosts:    r.FixedCosts,
			Marketing:     r.Marketing,
		})
	},
	"monthly-cashflow": func(r domain.FormulaRequest) domain.CalculationResult {
		return finance.MonthlyCashflow(r.EBITDA, r.MonthlyCapex)
	},
	"ltv": func(r domain.FormulaRequest) domain.CalculationResult {
		return finance.LTV(r.ARPU, r.MonthlyChurn)
	},
	"cac-payback": func(r domain.FormulaRequest) domain.CalculationResult {
		return finance.CACPayback(r.CAC, r.ARPU, r.VariableCostPerUser)
	},
}

// Formulas lists the formula names Evaluate accepts.
func Formulas() []string {
	names := make([]string, 0, len(formulas))
	for name := range formulas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type FormulaService struct {
	history recorder
	logger  *logging.Logger
}

func NewFormulaService(repo repository.CalculationRepository, logger *logging.Logger) *FormulaService {
	return &FormulaService{
		history: newRecorder(repo, logger),
		logger:  logger,
	}
}

// Evaluate runs the formula named in req. Missing or degenerate inputs are
// part of the result, not errors.
func (s *FormulaService) Evaluate(
	ctx context.Context,
	req domain.FormulaRequest,
) (domain.CalculationResult, error) {
	fn, ok := formulas[req.Formula]
	if !ok {
		return domain.CalculationResult{}, &ValidationError{
			Err:     fmt.Errorf("%w: %q", ErrUnknownFormula, req.Formula),
			Message: "fórmula inválida",
		}
	}

	result := fn(req)
	s.logger.DebugContext(ctx, "formula evaluated",
		"formula", req.Formula,
		"status", result.Status,
		"missing", len(result.MissingInputs))

	// Sólo se guardan los cálculos completos
	if result.OK() {
		s.history.record(ctx, KindFormula, req, result)
	}
	return result, nil
}
