package finance

import (
	"fmt"

	"pyme-calc/domain"
)

const (
	FormulaMonthlyIncome   = "Ingresos mensuales = Σ (precio × cantidad)"
	FormulaVariableCosts   = "Costos variables = Σ (costo unitario × cantidad)"
	FormulaUnitMargin      = "Margen unitario = Precio − Costo variable unitario"
	FormulaBreakEvenUnits  = "Punto de equilibrio (unidades) = Costos fijos ÷ Margen unitario"
	FormulaGrossMargin     = "Margen bruto % = (Ingresos − Costos variables) ÷ Ingresos × 100"
	FormulaEBITDA          = "EBITDA = Ingresos − Costos variables − Costos fijos − Marketing"
	FormulaMonthlyCashflow = "Flujo de caja mensual = EBITDA − CAPEX mensual"
	FormulaLTV             = "LTV = ARPU ÷ (Churn mensual % ÷ 100)"
	FormulaCACPayback      = "Payback CAC (meses) = CAC ÷ (ARPU − Costo variable por usuario)"
)

// Texto de advertencia para entradas completas pero matemáticamente inválidas.
const (
	WarningNonViableMargin = "⚠️ ALERTA: Margen unitario ≤ 0 → Negocio inviable con estos números"
	WarningZeroRevenue     = "⚠️ Ingresos = 0 → No se puede calcular el margen (división por cero)"
	WarningZeroChurn       = "⚠️ Churn = 0 → LTV infinito (división por cero)"
	WarningCACNeverPaid    = "⚠️ ARPU ≤ Costo variable por usuario → El CAC nunca se recupera"
)

const missingItems = "Al menos un producto con precio y cantidad"

// MonthlyIncome sums price × quantity over the line items.
func MonthlyIncome(items []domain.LineItem) domain.CalculationResult {
	return sumItems(FormulaMonthlyIncome, "Precio", items, func(it domain.LineItem) *float64 {
		return it.Price
	})
}

// VariableCosts sums unit cost × quantity over the line items.
func VariableCosts(items []domain.LineItem) domain.CalculationResult {
	return sumItems(FormulaVariableCosts, "Costo unitario", items, func(it domain.LineItem) *float64 {
		return it.CostPerUnit
	})
}

func sumItems(
	formula string,
	amountLabel string,
	items []domain.LineItem,
	amount func(domain.LineItem) *float64,
) domain.CalculationResult {
	if len(items) == 0 {
		return missingInputs(formula, map[string]float64{}, []string{missingItems})
	}

	args := make([]input, 0, len(items)*2)
	for i, it := range items {
		args = append(args,
			in(fmt.Sprintf("%s (producto %d)", amountLabel, i+1), amount(it)),
			in(fmt.Sprintf("Cantidad (producto %d)", i+1), it.Quantity),
		)
	}

	values, missing := collect(args...)
	if len(missing) > 0 {
		return missingInputs(formula, values, missing)
	}

	var total float64
	for _, it := range items {
		total += *amount(it) * *it.Quantity
	}
	return ok(formula, values, total)
}

// UnitMargin returns price − unit variable cost.
func UnitMargin(price, costPerUnit *float64) domain.CalculationResult {
	values, missing := collect(
		in("Precio de venta", price),
		in("Costo variable unitario", costPerUnit),
	)
	if len(missing) > 0 {
		return missingInputs(FormulaUnitMargin, values, missing)
	}
	return ok(FormulaUnitMargin, values, *price-*costPerUnit)
}

// BreakEvenUnits returns the units needed to cover fixed costs. A unit
// margin ≤ 0 makes the business non-viable.
func BreakEvenUnits(fixedCosts, unitMargin *float64) domain.CalculationResult {
	values, missing := collect(
		in("Costos fijos mensuales", fixedCosts),
		in("Margen unitario", unitMargin),
	)
	if len(missing) > 0 {
		return missingInputs(FormulaBreakEvenUnits, values, missing)
	}
	if *unitMargin <= 0 {
		return invalid(FormulaBreakEvenUnits, values, WarningNonViableMargin)
	}
	return ok(FormulaBreakEvenUnits, values, *fixedCosts / *unitMargin)
}

// GrossMargin returns the gross margin as a percentage of revenue.
func GrossMargin(revenue, variableCosts *float64) domain.CalculationResult {
	values, missing := collect(
		in("Ingresos mensuales", revenue),
		in("Costos variables", variableCosts),
	)
	if len(missing) > 0 {
		return missingInputs(FormulaGrossMargin, values, missing)
	}
	if *revenue == 0 {
		return invalid(FormulaGrossMargin, values, WarningZeroRevenue)
	}
	return ok(FormulaGrossMargin, values, (*revenue-*variableCosts) / *revenue * 100)
}

// EBITDA returns revenue minus variable, fixed and marketing costs.
func EBITDA(e domain.EBITDAInput) domain.CalculationResult {
	values, missing := collect(
		in("Ingresos mensuales", e.Revenue),
		in("Costos variables", e.VariableCosts),
		in("Costos fijos", e.FixedCosts),
	)
	marketing := 0.0
	if e.Marketing != nil {
		marketing = *e.Marketing
	}
	values["Marketing"] = marketing

	if len(missing) > 0 {
		return missingInputs(FormulaEBITDA, values, missing)
	}
	return ok(FormulaEBITDA, values, *e.Revenue-*e.VariableCosts-*e.FixedCosts-marketing)
}

// MonthlyCashflow returns EBITDA minus the monthly capex amortization.
func MonthlyCashflow(ebitda, monthlyCapex *float64) domain.CalculationResult {
	values, missing := collect(in("EBITDA", ebitda))
	capex := 0.0
	if monthlyCapex != nil {
		capex = *monthlyCapex
	}
	values["CAPEX mensual"] = capex

	if len(missing) > 0 {
		return missingInputs(FormulaMonthlyCashflow, values, missing)
	}
	return ok(FormulaMonthlyCashflow, values, *ebitda-capex)
}

// LTV returns the customer lifetime value. monthlyChurn is a percentage.
func LTV(arpu, monthlyChurn *float64) domain.CalculationResult {
	values, missing := collect(
		in("ARPU", arpu),
		in("Churn mensual %", monthlyChurn),
	)
	if len(missing) > 0 {
		return missingInputs(FormulaLTV, values, missing)
	}
	if *monthlyChurn == 0 {
		return invalid(FormulaLTV, values, WarningZeroChurn)
	}
	return ok(FormulaLTV, values, *arpu/(*monthlyChurn/100))
}

// CACPayback returns the months needed to recover the acquisition cost.
func CACPayback(cac, arpu, variableCostPerUser *float64) domain.CalculationResult {
	values, missing := collect(
		in("CAC", cac),
		in("ARPU", arpu),
		in("Costo variable por usuario", variableCostPerUser),
	)
	if len(missing) > 0 {
		return missingInputs(FormulaCACPayback, values, missing)
	}
	contribution := *arpu - *variableCostPerUser
	if contribution <= 0 {
		return invalid(FormulaCACPayback, values, WarningCACNeverPaid)
	}
	return ok(FormulaCACPayback, values, *cac/contribution)
}
