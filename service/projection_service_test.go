package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyme-calc/domain"
	"pyme-calc/finance"
	"pyme-calc/logging"
)

func TestProjectionService_Project(t *testing.T) {
	repo := &MockCalculationRepository{}
	svc := NewProjectionService(repo, logging.Discard(), 0)

	projection, err := svc.Project(context.Background(), domain.ProjectionInput{
		BaseRevenue:            100000,
		FixedCosts:             20000,
		VariableCostPercentage: 30,
		BaseTaxes:              5000,
		InflationRate:          5,
		Months:                 12,
		CanTransferInflation:   true,
	})
	require.NoError(t, err)
	assert.Len(t, projection, 12)
	assert.Equal(t, []string{KindProjection}, repo.Kinds())
}

func TestProjectionService_ProjectValidation(t *testing.T) {
	svc := NewProjectionService(&MockCalculationRepository{}, logging.Discard(), 0)
	valid := domain.ProjectionInput{BaseRevenue: 1000, Months: 12}

	tests := []struct {
		name   string
		mutate func(*domain.ProjectionInput)
	}{
		{"zero months", func(p *domain.ProjectionInput) { p.Months = 0 }},
		{"too many months", func(p *domain.ProjectionInput) { p.Months = MaxProjectionMonths + 1 }},
		{"negative revenue", func(p *domain.ProjectionInput) { p.BaseRevenue = -1 }},
		{"negative loan", func(p *domain.ProjectionInput) { p.LoanPayment = -1 }},
		{"variable costs above 100", func(p *domain.ProjectionInput) { p.VariableCostPercentage = 120 }},
		{"deflation of 100%", func(p *domain.ProjectionInput) { p.InflationRate = -100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := svc.Project(context.Background(), input)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestProjectionService_BreakEvenUsesConfiguredHorizon(t *testing.T) {
	svc := NewProjectionService(&MockCalculationRepository{}, logging.Discard(), 2)
	input := domain.BreakEvenInput{MonthlyRevenue: 100000, FixedCosts: 50000, LoanPayment: 60000, InflationRate: 10}

	result, err := svc.BreakEven(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, result.Reached)
	assert.Equal(t, finance.NoBreakEven, result.Month)
	assert.Equal(t, 2, result.Horizon)

	input.Horizon = 12
	result, err = svc.BreakEven(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, result.Reached)
	assert.Equal(t, 3, result.Month)
}

func TestProjectionService_BreakEvenDefaultHorizon(t *testing.T) {
	svc := NewProjectionService(&MockCalculationRepository{}, logging.Discard(), 0)
	result, err := svc.BreakEven(context.Background(), domain.BreakEvenInput{MonthlyRevenue: 1000, FixedCosts: 5000})
	require.NoError(t, err)
	assert.Equal(t, finance.DefaultBreakEvenHorizon, result.Horizon)
	assert.False(t, result.Reached)

	_, err = svc.BreakEven(context.Background(), domain.BreakEvenInput{Horizon: MaxBreakEvenHorizon + 1})
	assert.True(t, IsValidation(err))
}
