package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyme-calc/domain"
)

func ptr(v float64) *float64 { return &v }

func requireValue(t *testing.T, r domain.CalculationResult, expected float64) {
	t.Helper()
	require.True(t, r.OK(), "missing: %v", r.MissingInputs)
	require.NotNil(t, r.Value)
	assert.InDelta(t, expected, *r.Value, 1e-9)
	assert.Empty(t, r.MissingInputs)
	assert.NotEmpty(t, r.Formula)
}

func requireInvalid(t *testing.T, r domain.CalculationResult, warning string) {
	t.Helper()
	assert.Nil(t, r.Value)
	assert.Equal(t, domain.StatusInvalid, r.Status)
	assert.Equal(t, []string{warning}, r.MissingInputs)
	assert.NotEmpty(t, r.Formula)
}

func TestUnitMargin(t *testing.T) {
	r := UnitMargin(ptr(1000), ptr(400))
	requireValue(t, r, 600)
	assert.Equal(t, map[string]float64{"Precio de venta": 1000, "Costo variable unitario": 400}, r.Inputs)
}

func TestBreakEvenUnits(t *testing.T) {
	requireValue(t, BreakEvenUnits(ptr(120000), ptr(600)), 200)
}

func TestBreakEvenUnits_NonViable(t *testing.T) {
	r := BreakEvenUnits(ptr(100000), ptr(0))
	requireInvalid(t, r, "⚠️ ALERTA: Margen unitario ≤ 0 → Negocio inviable con estos números")

	requireInvalid(t, BreakEvenUnits(ptr(100000), ptr(-50)), WarningNonViableMargin)
}

func TestGrossMargin(t *testing.T) {
	requireValue(t, GrossMargin(ptr(200000), ptr(50000)), 75)
	requireInvalid(t, GrossMargin(ptr(0), ptr(50000)), WarningZeroRevenue)
}

func TestEBITDA(t *testing.T) {
	r := EBITDA(domain.EBITDAInput{
		Revenue:       ptr(500000),
		VariableCosts: ptr(150000),
		FixedCosts:    ptr(200000),
		Marketing:     ptr(30000),
	})
	requireValue(t, r, 120000)

	t.Run("marketing defaults to zero", func(t *testing.T) {
		r := EBITDA(domain.EBITDAInput{Revenue: ptr(500000), VariableCosts: ptr(150000), FixedCosts: ptr(200000)})
		requireValue(t, r, 150000)
		assert.Equal(t, 0.0, r.Inputs["Marketing"])
	})

	t.Run("revenue still required", func(t *testing.T) {
		r := EBITDA(domain.EBITDAInput{VariableCosts: ptr(150000), Marketing: ptr(1)})
		assert.Nil(t, r.Value)
		assert.Equal(t, domain.StatusMissingInputs, r.Status)
		assert.Equal(t, []string{"Ingresos mensuales", "Costos fijos"}, r.MissingInputs)
	})
}

func TestMonthlyCashflow(t *testing.T) {
	requireValue(t, MonthlyCashflow(ptr(120000), ptr(20000)), 100000)
	requireValue(t, MonthlyCashflow(ptr(120000), nil), 120000)

	r := MonthlyCashflow(nil, ptr(20000))
	assert.Nil(t, r.Value)
	assert.Equal(t, []string{"EBITDA"}, r.MissingInputs)
}

func TestLTV(t *testing.T) {
	requireValue(t, LTV(ptr(500), ptr(5)), 10000)
	requireInvalid(t, LTV(ptr(500), ptr(0)), WarningZeroChurn)
}

func TestCACPayback(t *testing.T) {
	requireValue(t, CACPayback(ptr(3000), ptr(800), ptr(200)), 5)
	requireInvalid(t, CACPayback(ptr(3000), ptr(200), ptr(200)), WarningCACNeverPaid)
	requireInvalid(t, CACPayback(ptr(3000), ptr(100), ptr(200)), WarningCACNeverPaid)
}

func TestMonthlyIncomeAndVariableCosts(t *testing.T) {
	items := []domain.LineItem{
		{Price: ptr(1500), CostPerUnit: ptr(600), Quantity: ptr(100)},
		{Price: ptr(800), CostPerUnit: ptr(300), Quantity: ptr(50)},
	}
	requireValue(t, MonthlyIncome(items), 190000)
	requireValue(t, VariableCosts(items), 75000)

	t.Run("empty list", func(t *testing.T) {
		r := MonthlyIncome(nil)
		assert.Nil(t, r.Value)
		assert.Len(t, r.MissingInputs, 1)
	})

	t.Run("missing fields per item", func(t *testing.T) {
		r := MonthlyIncome([]domain.LineItem{
			{Price: ptr(1500)},
			{Quantity: ptr(3)},
		})
		assert.Nil(t, r.Value)
		assert.Equal(t, []string{"Cantidad (producto 1)", "Precio (producto 2)"}, r.MissingInputs)
		assert.Equal(t, 1500.0, r.Inputs["Precio (producto 1)"])
	})
}

// Every subset of absent required inputs yields one label per absent input.
func TestMissingInputCompleteness(t *testing.T) {
	type formula struct {
		name  string
		arity int
		call  func(args []*float64) domain.CalculationResult
	}
	formulas := []formula{
		{"UnitMargin", 2, func(a []*float64) domain.CalculationResult { return UnitMargin(a[0], a[1]) }},
		{"BreakEvenUnits", 2, func(a []*float64) domain.CalculationResult { return BreakEvenUnits(a[0], a[1]) }},
		{"GrossMargin", 2, func(a []*float64) domain.CalculationResult { return GrossMargin(a[0], a[1]) }},
		{"LTV", 2, func(a []*float64) domain.CalculationResult { return LTV(a[0], a[1]) }},
		{"CACPayback", 3, func(a []*float64) domain.CalculationResult { return CACPayback(a[0], a[1], a[2]) }},
		{"EBITDA", 3, func(a []*float64) domain.CalculationResult {
			return EBITDA(domain.EBITDAInput{Revenue: a[0], VariableCosts: a[1], FixedCosts: a[2]})
		}},
	}

	for _, f := range formulas {
		t.Run(f.name, func(t *testing.T) {
			for mask := 1; mask < 1<<f.arity; mask++ {
				args := make([]*float64, f.arity)
				absent := 0
				for i := range args {
					if mask&(1<<i) != 0 {
						absent++
						continue
					}
					args[i] = ptr(10)
				}
				r := f.call(args)
				assert.Nil(t, r.Value, "mask %b", mask)
				assert.Equal(t, domain.StatusMissingInputs, r.Status)
				assert.Len(t, r.MissingInputs, absent, "mask %b", mask)
				assert.NotEmpty(t, r.Formula)
			}
		})
	}
}

func TestFormulasAreDeterministic(t *testing.T) {
	a := CACPayback(ptr(1234.56), ptr(321.1), ptr(17.3))
	b := CACPayback(ptr(1234.56), ptr(321.1), ptr(17.3))
	assert.Equal(t, a, b)
}
