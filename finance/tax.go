package finance

import (
	"errors"
	"fmt"

	"pyme-calc/domain"
)

var ErrUnknownRegime = errors.New("régimen impositivo desconocido")

const (
	iibbRate         = 3.5 // % Ingresos Brutos
	iibbRateFacturaB = 1.5
	gananciasRate    = 2.0 // % estimado de Ganancias
)

// Escalas anuales del Monotributo, ordenadas por límite ascendente.
var monotributoCategories = []domain.MonotributoCategory{
	{Category: "A", AnnualLimit: 6_450_000, MonthlyTax: 26_619},
	{Category: "B", AnnualLimit: 9_450_000, MonthlyTax: 30_451},
	{Category: "C", AnnualLimit: 13_250_000, MonthlyTax: 35_519},
	{Category: "D", AnnualLimit: 16_450_000, MonthlyTax: 45_186},
	{Category: "E", AnnualLimit: 19_350_000, MonthlyTax: 57_815},
	{Category: "F", AnnualLimit: 24_250_000, MonthlyTax: 68_555},
	{Category: "G", AnnualLimit: 29_000_000, MonthlyTax: 80_434},
	{Category: "H", AnnualLimit: 44_000_000, MonthlyTax: 166_042},
	{Category: "I", AnnualLimit: 49_250_000, MonthlyTax: 231_430},
	{Category: "J", AnnualLimit: 56_400_000, MonthlyTax: 271_007},
	{Category: "K", AnnualLimit: 68_000_000, MonthlyTax: 335_913},
}

// MonotributoCategories returns a copy of the bracket catalog.
func MonotributoCategories() []domain.MonotributoCategory {
	out := make([]domain.MonotributoCategory, len(monotributoCategories))
	copy(out, monotributoCategories)
	return out
}

// MaxMonotributoLimit is the annual limit of the highest bracket.
func MaxMonotributoLimit() float64 {
	return monotributoCategories[len(monotributoCategories)-1].AnnualLimit
}

// MonotributoCategoryFor returns the first bracket whose annual limit covers
// twelve months of monthlyRevenue. Revenue above every limit saturates to
// the highest bracket.
func MonotributoCategoryFor(monthlyRevenue float64) domain.MonotributoCategory {
	annual := monthlyRevenue * 12
	for _, c := range monotributoCategories {
		if c.AnnualLimit >= annual {
			return c
		}
	}
	return monotributoCategories[len(monotributoCategories)-1]
}

// GeneralRegimeTaxes estimates the monthly burden under the general regime:
// gross receipts tax plus an income tax estimate.
func GeneralRegimeTaxes(monthlyRevenue float64, isFacturaB bool) float64 {
	iibb, ganancias := generalComponents(monthlyRevenue, isFacturaB)
	return iibb + ganancias
}

func generalComponents(monthlyRevenue float64, isFacturaB bool) (iibb, ganancias float64) {
	rate := iibbRate
	if isFacturaB {
		rate = iibbRateFacturaB
	}
	return monthlyRevenue * rate / 100, monthlyRevenue * gananciasRate / 100
}

// CalculateTaxes returns the estimated monthly tax and a readable breakdown.
func CalculateTaxes(monthlyRevenue float64, regime domain.TaxRegime, isFacturaB bool) (domain.TaxResult, error) {
	switch regime {
	case domain.RegimeMonotributo:
		c := MonotributoCategoryFor(monthlyRevenue)
		return domain.TaxResult{
			Amount:    c.MonthlyTax,
			Category:  &c,
			Breakdown: fmt.Sprintf("Monotributo Categoría %s: %s/mes", c.Category, FormatCurrency(c.MonthlyTax)),
		}, nil
	case domain.RegimeGeneral:
		iibb, ganancias := generalComponents(monthlyRevenue, isFacturaB)
		rate := iibbRate
		if isFacturaB {
			rate = iibbRateFacturaB
		}
		return domain.TaxResult{
			Amount: iibb + ganancias,
			Breakdown: fmt.Sprintf("IIBB (%s): %s + Ganancias estimado (%s): %s",
				FormatPercentage(rate), FormatCurrency(iibb),
				FormatPercentage(gananciasRate), FormatCurrency(ganancias)),
		}, nil
	default:
		return domain.TaxResult{}, fmt.Errorf("%w: %q", ErrUnknownRegime, regime)
	}
}

// ProjectedAnnualRevenue compounds monthlyRevenue for month months and
// annualizes the result.
func ProjectedAnnualRevenue(monthlyRevenue float64, month int, inflationRate float64) float64 {
	return monthlyRevenue * inflationFactor(inflationRate, month) * 12
}

// WillExceedMonotributo reports whether revenue grown by inflation will
// leave the simplified regime by the given month.
func WillExceedMonotributo(currentMonthlyRevenue float64, month int, inflationRate float64) bool {
	return ProjectedAnnualRevenue(currentMonthlyRevenue, month, inflationRate) > MaxMonotributoLimit()
}
