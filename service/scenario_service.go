package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"pyme-calc/domain"
	"pyme-calc/finance"
	"pyme-calc/logging"
	"pyme-calc/repository"
)

type ScenarioService struct {
	cache   repository.CacheRepository
	history recorder
	logger  *logging.Logger
	run     func(domain.ScenarioInput, finance.ScenarioParams) []domain.MonthlyProjection
}

func NewScenarioService(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *logging.Logger,
) *ScenarioService {
	return &ScenarioService{
		cache:   cache,
		history: newRecorder(repo, logger),
		logger:  logger,
		run:     finance.RunScenario,
	}
}

// Calculate returns the pessimistic, realistic and optimistic projections of
// input. The three scenarios are independent and run concurrently; results
// are cached by input.
func (s *ScenarioService) Calculate(
	ctx context.Context,
	input domain.ScenarioInput,
) (domain.Scenarios, error) {
	if err := validateScenario(input); err != nil {
		return domain.Scenarios{}, err
	}

	key, err := scenarioKey(input)
	if err != nil {
		return domain.Scenarios{}, err
	}
	if cached, ok := s.cache.Get(ctx, key); ok {
		var scenarios domain.Scenarios
		if err := json.Unmarshal([]byte(cached), &scenarios); err == nil {
			s.logger.DebugContext(ctx, "scenario cache hit", "key", key)
			return scenarios, nil
		}
		s.logger.WarnContext(ctx, "discarding unreadable cached scenarios", "key", key)
	}

	params := finance.DefaultScenarios()
	results := make([][]domain.MonthlyProjection, len(params))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range params {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.run(input, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Scenarios{}, fmt.Errorf("calculate scenarios: %w", err)
	}

	var scenarios domain.Scenarios
	for i, p := range params {
		p.Name.Assign(&scenarios, results[i])
	}

	if encoded, err := json.Marshal(scenarios); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
			s.logger.WarnContext(ctx, "failed to cache scenarios", "key", key, "error", err)
		}
	}
	s.history.record(ctx, KindScenarios, input, scenarios)
	return scenarios, nil
}

func validateScenario(input domain.ScenarioInput) error {
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"ingresos", input.BaseRevenue},
		{"costos fijos", input.FixedCosts},
		{"impuestos", input.Taxes},
	} {
		if err := checkAmount(c.name, c.value); err != nil {
			return err
		}
	}
	if err := checkPercentage("porcentaje de costos variables", input.VariableCostPercentage); err != nil {
		return err
	}
	if !finite(input.LoanAmount) || input.LoanAmount < 0 || input.LoanAmount > MaxLoanAmount {
		return invalidf("monto del préstamo inválido: debe estar entre 0 y $%.2f", MaxLoanAmount)
	}
	if !finite(input.LoanRate) || input.LoanRate < 0 || input.LoanRate > MaxInterestRate {
		return invalid("tasa del préstamo inválida")
	}
	if input.LoanMonths < 0 || input.LoanMonths > MaxTermMonths {
		return invalidf("plazo del préstamo inválido: debe estar entre 0 y %d meses", MaxTermMonths)
	}
	if input.LoanAmount > 0 && input.LoanMonths == 0 {
		return invalid("plazo del préstamo requerido cuando hay monto")
	}
	return nil
}

func scenarioKey(input domain.ScenarioInput) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encode scenario key: %w", err)
	}
	sum := sha256.Sum256(raw)
	return "scenarios:" + hex.EncodeToString(sum[:]), nil
}
