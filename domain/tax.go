package domain

type TaxRegime string

const (
	RegimeMonotributo TaxRegime = "monotributo"
	RegimeGeneral     TaxRegime = "general"
)

// MonotributoCategory is one bracket of the simplified tax regime.
type MonotributoCategory struct {
	Category    string  `json:"category"`
	AnnualLimit float64 `json:"annualLimit"`
	MonthlyTax  float64 `json:"monthlyTax"`
}

type TaxInput struct {
	MonthlyRevenue float64   `json:"monthlyRevenue"`
	Regime         TaxRegime `json:"regime"`
	IsFacturaB     bool      `json:"isFacturaB"`
}

type TaxResult struct {
	Amount    float64              `json:"amount"`
	Category  *MonotributoCategory `json:"category,omitempty"`
	Breakdown string               `json:"breakdown"`
}

type ThresholdInput struct {
	CurrentMonthlyRevenue float64 `json:"currentMonthlyRevenue"`
	Month                 int     `json:"month"`
	InflationRate         float64 `json:"inflationRate"`
}

type ThresholdResult struct {
	WillExceed             bool    `json:"willExceed"`
	ProjectedAnnualRevenue float64 `json:"projectedAnnualRevenue"`
	MaxAnnualLimit         float64 `json:"maxAnnualLimit"`
}
