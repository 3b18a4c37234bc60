package domain

// ResultStatus distingue el tipo de resultado de una fórmula.
type ResultStatus string

const (
	StatusOK            ResultStatus = "ok"
	StatusMissingInputs ResultStatus = "missing_inputs"
	StatusInvalid       ResultStatus = "invalid"
)

// CalculationResult es el resultado de una fórmula financiera.
// Value es nil si y sólo si MissingInputs no está vacío.
type CalculationResult struct {
	Value         *float64           `json:"value"`
	Formula       string             `json:"formula"`
	Inputs        map[string]float64 `json:"inputs"`
	MissingInputs []string           `json:"missingInputs"`
	Status        ResultStatus       `json:"status"`
}

// OK reports whether the formula produced a value.
func (r CalculationResult) OK() bool {
	return r.Status == StatusOK
}

// Float returns a pointer to v, for optional formula inputs.
func Float(v float64) *float64 {
	return &v
}

// LineItem is one product or service line of a monthly income or cost sum.
type LineItem struct {
	Price       *float64 `json:"price,omitempty"`
	CostPerUnit *float64 `json:"costPerUnit,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
}
