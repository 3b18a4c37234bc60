package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"pyme-calc/domain"
	"pyme-calc/logging"
	"pyme-calc/repository"
)

// Tipos de cálculo guardados en el historial.
const (
	KindFormula    = "formula"
	KindProjection = "projection"
	KindBreakEven  = "break_even"
	KindScenarios  = "scenarios"
	KindTaxes      = "taxes"
	KindThreshold  = "monotributo_threshold"
	KindLoan       = "loan"
	KindFinancing  = "financing_comparison"
)

// recorder saves calculations to the history. A failed save is logged and
// never fails the calculation.
type recorder struct {
	repo   repository.CalculationRepository
	logger *logging.Logger
	now    func() time.Time
}

func newRecorder(repo repository.CalculationRepository, logger *logging.Logger) recorder {
	return recorder{repo: repo, logger: logger, now: time.Now}
}

func (r recorder) record(ctx context.Context, kind string, input, output any) {
	in, err := json.Marshal(input)
	if err != nil {
		r.logger.WarnContext(ctx, "failed to encode calculation input", "kind", kind, "error", err)
		return
	}
	out, err := json.Marshal(output)
	if err != nil {
		r.logger.WarnContext(ctx, "failed to encode calculation output", "kind", kind, "error", err)
		return
	}

	rec := domain.CalculationRecord{
		ID:        uuid.New(),
		Kind:      kind,
		Input:     in,
		Output:    out,
		CreatedAt: r.now().UTC(),
	}
	if err := r.repo.Save(ctx, rec); err != nil {
		r.logger.WarnContext(ctx, "failed to save calculation", "kind", kind, "error", err)
	}
}

type HistoryService struct {
	repo repository.CalculationRepository
}

func NewHistoryService(repo repository.CalculationRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Recent returns the latest calculations, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.CalculationRecord, error) {
	if limit < 0 {
		return nil, invalid("límite inválido")
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.Recent(ctx, limit)
}
