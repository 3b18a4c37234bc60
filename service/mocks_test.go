package service

import (
	"context"
	"errors"
	"sync"

	"pyme-calc/domain"
)

type MockCalculationRepository struct {
	mu         sync.Mutex
	Saved      []domain.CalculationRecord
	ForceError bool
}

func (m *MockCalculationRepository) Save(
	_ context.Context,
	record domain.CalculationRecord,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, record)
	return nil
}

func (m *MockCalculationRepository) Recent(_ context.Context, limit int) ([]domain.CalculationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.Saved) {
		limit = len(m.Saved)
	}
	return m.Saved[len(m.Saved)-limit:], nil
}

func (m *MockCalculationRepository) Close() error { return nil }

func (m *MockCalculationRepository) Kinds() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	kinds := make([]string, 0, len(m.Saved))
	for _, r := range m.Saved {
		kinds = append(kinds, r.Kind)
	}
	return kinds
}
