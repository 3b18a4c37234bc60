package repository

import (
	"context"

	"pyme-calc/domain"
)

// CalculationRepository stores the history of calculations.
type CalculationRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.CalculationRecord, error)
	Close() error
}
