package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"pyme-calc/domain"
	"pyme-calc/finance"
	"pyme-calc/logging"
	"pyme-calc/repository"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type LoanService struct {
	history recorder
}

// NewLoanService creates a new LoanService with the given repository.
func NewLoanService(repo repository.CalculationRepository, logger *logging.Logger) *LoanService {
	return &LoanService{history: newRecorder(repo, logger)}
}

// CalculateLoan calculates the installment, totals and schedule of a loan.
// With OptionID set, rate and term come from the financing catalog.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {
	input, err := resolveOption(input)
	if err != nil {
		return domain.LoanResult{}, err
	}

	result, err := calculateLoan(input, true)
	if err != nil {
		return domain.LoanResult{}, err
	}

	// Guardar el resultado (no crítico si falla)
	s.history.record(ctx, KindLoan, input, result)
	return result, nil
}

func resolveOption(input domain.LoanInput) (domain.LoanInput, error) {
	if input.OptionID == "" {
		return input, nil
	}
	option, err := finance.FinancingOptionByID(input.OptionID)
	if errors.Is(err, finance.ErrUnknownFinancingOption) {
		return input, &ValidationError{Err: err, Message: "línea de crédito inválida"}
	}
	if err != nil {
		return input, err
	}
	if input.Amount > option.MaxAmount {
		return input, invalidf("monto excede el máximo de %s para %s", finance.FormatCurrency(option.MaxAmount), option.Name)
	}

	input.InterestRate = option.AnnualRate
	if input.TermMonths == 0 || input.TermMonths > option.Months {
		input.TermMonths = option.Months
	}
	return input, nil
}

func calculateLoan(input domain.LoanInput, withSchedule bool) (domain.LoanResult, error) {
	// Validar entrada
	if !finite(input.Amount) || input.Amount <= 0 {
		return domain.LoanResult{}, invalid("monto inválido")
	}
	if input.Amount > MaxLoanAmount {
		return domain.LoanResult{}, invalidf("monto excede el máximo permitido de $%.2f", MaxLoanAmount)
	}
	if !finite(input.InterestRate) || input.InterestRate < 0 {
		return domain.LoanResult{}, invalid("tasa inválida")
	}
	if input.InterestRate > MaxInterestRate {
		return domain.LoanResult{}, invalidf("tasa de interés excede el máximo permitido de %.2f%%", MaxInterestRate)
	}
	if input.TermMonths < MinTermMonths {
		return domain.LoanResult{}, invalid("plazo inválido")
	}
	if input.TermMonths > MaxTermMonths {
		return domain.LoanResult{}, invalidf("plazo excede el máximo permitido de %d meses", MaxTermMonths)
	}

	cuota := finance.LoanPayment(input.Amount, input.InterestRate, input.TermMonths)
	total := cuota * float64(input.TermMonths)
	intereses := total - input.Amount

	result := domain.LoanResult{
		OptionID:       input.OptionID,
		MonthlyPayment: roundTo2Decimals(cuota),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(intereses),
	}
	if withSchedule {
		result.Schedule = roundSchedule(finance.AmortizationSchedule(input.Amount, input.InterestRate, input.TermMonths))
	}
	return result, nil
}

func roundSchedule(schedule []domain.Installment) []domain.Installment {
	for i := range schedule {
		schedule[i].Payment = roundTo2Decimals(schedule[i].Payment)
		schedule[i].Interest = roundTo2Decimals(schedule[i].Interest)
		schedule[i].Principal = roundTo2Decimals(schedule[i].Principal)
		schedule[i].Balance = roundTo2Decimals(schedule[i].Balance)
	}
	return schedule
}

// quote prices a catalog option for amount without a schedule.
func quote(option domain.FinancingOption, amount float64) (domain.FinancingQuote, error) {
	result, err := calculateLoan(domain.LoanInput{
		OptionID:     option.ID,
		Amount:       amount,
		InterestRate: option.AnnualRate,
		TermMonths:   option.Months,
	}, false)
	if err != nil {
		return domain.FinancingQuote{}, fmt.Errorf("quote %s: %w", option.ID, err)
	}
	return domain.FinancingQuote{
		Option:         option,
		MonthlyPayment: result.MonthlyPayment,
		TotalInterest:  result.TotalInterest,
	}, nil
}
