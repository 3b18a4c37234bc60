package domain

// FinancingOption es una línea de crédito del catálogo.
type FinancingOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MaxAmount   float64 `json:"maxAmount"`
	AnnualRate  float64 `json:"annualRate"`
	Months      int     `json:"months"`
	Description string  `json:"description"`
}

type LoanInput struct {
	OptionID     string  `json:"optionId,omitempty"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interestRate"`
	TermMonths   int     `json:"termMonths"`
}

// Installment is one row of a French amortization schedule.
type Installment struct {
	Number    int     `json:"number"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

type LoanResult struct {
	OptionID       string        `json:"optionId,omitempty"`
	MonthlyPayment float64       `json:"monthlyPayment"`
	TotalPayment   float64       `json:"totalPayment"`
	TotalInterest  float64       `json:"totalInterest"`
	Schedule       []Installment `json:"schedule,omitempty"`
}

type FinancingComparison struct {
	Amount  float64           `json:"amount"`
	Options []FinancingQuote  `json:"options"`
	Skipped []FinancingOption `json:"skipped,omitempty"` // monto mayor al máximo
}

type FinancingQuote struct {
	Option         FinancingOption `json:"option"`
	MonthlyPayment float64         `json:"monthlyPayment"`
	TotalInterest  float64         `json:"totalInterest"`
	Reason         string          `json:"reason"`
}
