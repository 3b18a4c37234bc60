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

type FinancingService struct {
	history recorder
	logger  *logging.Logger
}

func NewFinancingService(repo repository.CalculationRepository, logger *logging.Logger) *FinancingService {
	return &FinancingService{
		history: newRecorder(repo, logger),
		logger:  logger,
	}
}

// Options returns the financing catalog.
func (s *FinancingService) Options() []domain.FinancingOption {
	return finance.FinancingOptions()
}

// Compare prices every catalog option that admits amount and ranks them by
// total interest, then by monthly payment.
func (s *FinancingService) Compare(ctx context.Context, amount float64) (domain.FinancingComparison, error) {
	if !finite(amount) || amount <= 0 {
		return domain.FinancingComparison{}, invalid("monto inválido")
	}
	if amount > MaxLoanAmount {
		return domain.FinancingComparison{}, invalidf("monto excede el máximo permitido de $%.2f", MaxLoanAmount)
	}

	comparison := domain.FinancingComparison{
		Amount:  amount,
		Options: []domain.FinancingQuote{},
	}
	for _, option := range finance.FinancingOptions() {
		// Filtrar por monto máximo de la línea
		if amount > option.MaxAmount {
			comparison.Skipped = append(comparison.Skipped, option)
			continue
		}

		q, err := quote(option, amount)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to quote financing option", "option", option.ID, "error", err)
			continue
		}
		q.Reason = generateReason(q)
		comparison.Options = append(comparison.Options, q)
	}

	sort.SliceStable(comparison.Options, func(i, j int) bool {
		a, b := comparison.Options[i], comparison.Options[j]
		if a.TotalInterest != b.TotalInterest {
			return a.TotalInterest < b.TotalInterest
		}
		return a.MonthlyPayment < b.MonthlyPayment
	})

	if len(comparison.Options) == 0 {
		return comparison, invalidf("ninguna línea de crédito admite un monto de %s", finance.FormatCurrency(amount))
	}

	s.history.record(ctx, KindFinancing, map[string]float64{"amount": amount}, comparison)
	return comparison, nil
}

func generateReason(q domain.FinancingQuote) string {
	if q.Option.AnnualRate == 0 {
		return fmt.Sprintf("Tasa cero: devolvés sólo el capital en %d cuotas de %s",
			q.Option.Months, finance.FormatCurrency(q.MonthlyPayment))
	}
	return fmt.Sprintf("%d cuotas de %s con intereses totales de %s (TNA %s)",
		q.Option.Months,
		finance.FormatCurrency(q.MonthlyPayment),
		finance.FormatCurrency(q.TotalInterest),
		finance.FormatPercentage(q.Option.AnnualRate))
}
