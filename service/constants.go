package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // mil millones de pesos
	MaxInterestRate = 1000.0          // 1000% anual
	MaxTermMonths   = 600             // 50 años
	MinTermMonths   = 1

	MaxProjectionMonths = 120   // 10 años
	MaxBreakEvenHorizon = 600   // 50 años
	MaxInflationRate    = 100.0 // % mensual
	MaxAmount           = 1_000_000_000_000.0

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)
