package domain

type EBITDAInput struct {
	Revenue       *float64 `json:"revenue,omitempty"`
	VariableCosts *float64 `json:"variableCosts,omitempty"`
	FixedCosts    *float64 `json:"fixedCosts,omitempty"`
	Marketing     *float64 `json:"marketing,omitempty"` // 0 si falta
}

// FormulaRequest carries the inputs of any single formula, selected by name.
// Fields a formula does not use are ignored.
type FormulaRequest struct {
	Formula string     `json:"formula"`
	Items   []LineItem `json:"items,omitempty"`

	Price               *float64 `json:"price,omitempty"`
	CostPerUnit         *float64 `json:"costPerUnit,omitempty"`
	FixedCosts          *float64 `json:"fixedCosts,omitempty"`
	UnitMargin          *float64 `json:"unitMargin,omitempty"`
	Revenue             *float64 `json:"revenue,omitempty"`
	VariableCosts       *float64 `json:"variableCosts,omitempty"`
	Marketing           *float64 `json:"marketing,omitempty"`
	EBITDA              *float64 `json:"ebitda,omitempty"`
	MonthlyCapex        *float64 `json:"monthlyCapex,omitempty"`
	ARPU                *float64 `json:"arpu,omitempty"`
	MonthlyChurn        *float64 `json:"monthlyChurn,omitempty"`
	CAC                 *float64 `json:"cac,omitempty"`
	VariableCostPerUser *float64 `json:"variableCostPerUser,omitempty"`
}
