// Package finance holds the stateless financial formulas of the engine:
// single-metric formulas, inflation projections, loan amortization,
// scenarios and tax regimes. Every function is pure and safe for
// concurrent use.
package finance

import "pyme-calc/domain"

// input is a named optional argument of a formula.
type input struct {
	label string
	value *float64
}

func in(label string, value *float64) input {
	return input{label: label, value: value}
}

// collect splits args into the values present and the labels missing, in
// argument order.
func collect(args ...input) (map[string]float64, []string) {
	values := make(map[string]float64, len(args))
	var missing []string
	for _, a := range args {
		if a.value == nil {
			missing = append(missing, a.label)
			continue
		}
		values[a.label] = *a.value
	}
	return values, missing
}

func ok(formula string, inputs map[string]float64, value float64) domain.CalculationResult {
	return domain.CalculationResult{
		Value:         &value,
		Formula:       formula,
		Inputs:        inputs,
		MissingInputs: []string{},
		Status:        domain.StatusOK,
	}
}

func missingInputs(formula string, inputs map[string]float64, missing []string) domain.CalculationResult {
	return domain.CalculationResult{
		Formula:       formula,
		Inputs:        inputs,
		MissingInputs: missing,
		Status:        domain.StatusMissingInputs,
	}
}

func invalid(formula string, inputs map[string]float64, warning string) domain.CalculationResult {
	return domain.CalculationResult{
		Formula:       formula,
		Inputs:        inputs,
		MissingInputs: []string{warning},
		Status:        domain.StatusInvalid,
	}
}
