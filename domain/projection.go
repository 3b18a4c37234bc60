package domain

// ProjectionInput holds the parameters of a month-by-month projection.
type ProjectionInput struct {
	BaseRevenue            float64 `json:"baseRevenue"`
	FixedCosts             float64 `json:"fixedCosts"`
	VariableCostPercentage float64 `json:"variableCostPercentage"`
	BaseTaxes              float64 `json:"baseTaxes"`
	LoanPayment            float64 `json:"loanPayment"`
	InflationRate          float64 `json:"inflationRate"` // % mensual
	Months                 int     `json:"months"`
	CanTransferInflation   bool    `json:"canTransferInflation"`
}

// MonthlyProjection es un mes simulado. Accumulated es la suma de
// RealProfit de los meses 1..Month.
type MonthlyProjection struct {
	Month          int     `json:"month"`
	NominalRevenue float64 `json:"nominalRevenue"`
	RealRevenue    float64 `json:"realRevenue"`
	Costs          float64 `json:"costs"`
	Taxes          float64 `json:"taxes"`
	LoanPayment    float64 `json:"loanPayment"`
	NominalProfit  float64 `json:"nominalProfit"`
	RealProfit     float64 `json:"realProfit"`
	Accumulated    float64 `json:"accumulated"`
}

type BreakEvenInput struct {
	MonthlyRevenue         float64 `json:"monthlyRevenue"`
	FixedCosts             float64 `json:"fixedCosts"`
	VariableCostPercentage float64 `json:"variableCostPercentage"`
	Taxes                  float64 `json:"taxes"`
	LoanPayment            float64 `json:"loanPayment"`
	InflationRate          float64 `json:"inflationRate"`
	Horizon                int     `json:"horizon,omitempty"` // 0 = horizonte por defecto
}

type BreakEvenResult struct {
	Month   int  `json:"month"`
	Reached bool `json:"reached"`
	Horizon int  `json:"horizon"`
}

type ScenarioInput struct {
	BaseRevenue            float64 `json:"baseRevenue"`
	FixedCosts             float64 `json:"fixedCosts"`
	VariableCostPercentage float64 `json:"variableCostPercentage"`
	Taxes                  float64 `json:"taxes"`
	LoanAmount             float64 `json:"loanAmount"`
	LoanRate               float64 `json:"loanRate"` // % anual
	LoanMonths             int     `json:"loanMonths"`
}

type Scenarios struct {
	Pessimistic []MonthlyProjection `json:"pessimistic"`
	Realistic   []MonthlyProjection `json:"realistic"`
	Optimistic  []MonthlyProjection `json:"optimistic"`
}
