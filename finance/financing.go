package finance

import (
	"errors"

	"pyme-calc/domain"
)

var ErrUnknownFinancingOption = errors.New("opción de financiamiento desconocida")

var financingOptions = []domain.FinancingOption{
	{
		ID:          "bna-mipyme",
		Name:        "Banco Nación MiPyME",
		MaxAmount:   50_000_000,
		AnnualRate:  45,
		Months:      36,
		Description: "Crédito para inversión productiva de micro y pequeñas empresas",
	},
	{
		ID:          "bice-capital-trabajo",
		Name:        "BICE Capital de Trabajo",
		MaxAmount:   30_000_000,
		AnnualRate:  38,
		Months:      24,
		Description: "Financiamiento de capital de trabajo con garantía SGR",
	},
	{
		ID:          "fondo-semilla",
		Name:        "Fondo Semilla",
		MaxAmount:   5_000_000,
		AnnualRate:  0,
		Months:      48,
		Description: "Préstamo de honor a tasa cero para emprendimientos nuevos",
	},
	{
		ID:          "microcredito",
		Name:        "Microcrédito",
		MaxAmount:   1_500_000,
		AnnualRate:  60,
		Months:      12,
		Description: "Microcrédito de rápida aprobación para emprendedores",
	},
	{
		ID:          "tarjeta-empresa",
		Name:        "Tarjeta de crédito empresa",
		MaxAmount:   3_000_000,
		AnnualRate:  95,
		Months:      12,
		Description: "Financiación en cuotas con tarjeta corporativa",
	},
}

// FinancingOptions returns a copy of the financing catalog.
func FinancingOptions() []domain.FinancingOption {
	out := make([]domain.FinancingOption, len(financingOptions))
	copy(out, financingOptions)
	return out
}

func FinancingOptionByID(id string) (domain.FinancingOption, error) {
	for _, o := range financingOptions {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.FinancingOption{}, ErrUnknownFinancingOption
}
