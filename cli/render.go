package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"pyme-calc/domain"
	"pyme-calc/finance"
)

func header(w io.Writer, columns ...string) {
	rendered := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, c := range columns {
		rendered[i] = HeaderStyle.Render(c)
		rules[i] = strings.Repeat("-", len([]rune(c)))
	}
	fmt.Fprintln(w, strings.Join(rendered, "\t")+"\t")
	fmt.Fprintln(w, strings.Join(rules, "\t")+"\t")
}

// Projection prints one row per month.
func Projection(out io.Writer, title string, rows []domain.MonthlyProjection) error {
	fmt.Fprintln(out, TitleStyle.Render(title))
	if len(rows) == 0 {
		fmt.Fprintln(out, SubtleStyle.Render("Sin meses para proyectar."))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	header(w, "Mes", "Ingresos", "Costos", "Impuestos", "Cuota", "Ganancia real", "Acumulado")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Month,
			finance.FormatCurrency(r.NominalRevenue),
			finance.FormatCurrency(r.Costs),
			finance.FormatCurrency(r.Taxes),
			finance.FormatCurrency(r.LoanPayment),
			Money(r.RealProfit, finance.FormatCurrency(r.RealProfit)),
			Money(r.Accumulated, finance.FormatCurrency(r.Accumulated)),
		)
	}
	return w.Flush()
}

type namedProjection struct {
	name string
	rows []domain.MonthlyProjection
}

// Scenarios prints the accumulated result and worst month of each scenario
// followed by the detail tables.
func Scenarios(out io.Writer, s domain.Scenarios) error {
	scenarios := []namedProjection{
		{"Pesimista", s.Pessimistic},
		{"Realista", s.Realistic},
		{"Optimista", s.Optimistic},
	}

	fmt.Fprintln(out, TitleStyle.Render("Escenarios"))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header(w, "Escenario", "Acumulado real", "Peor mes")
	for _, sc := range scenarios {
		total, worst := summarize(sc.rows)
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", sc.name,
			Money(total, finance.FormatCurrency(total)),
			Money(worst, finance.FormatCurrency(worst)))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	for _, sc := range scenarios {
		if err := Projection(out, sc.name, sc.rows); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}

func summarize(rows []domain.MonthlyProjection) (total, worst float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	worst = rows[0].RealProfit
	for _, r := range rows {
		worst = min(worst, r.RealProfit)
	}
	return rows[len(rows)-1].Accumulated, worst
}

func BreakEven(out io.Writer, r domain.BreakEvenResult) {
	if !r.Reached {
		fmt.Fprintln(out, WarningStyle.Render(
			fmt.Sprintf("No se alcanza el punto de equilibrio en %d meses.", r.Horizon)))
		return
	}
	fmt.Fprintln(out, SuccessStyle.Render(
		fmt.Sprintf("Punto de equilibrio en el mes %d.", r.Month)))
}

func Tax(out io.Writer, regime domain.TaxRegime, r domain.TaxResult) {
	lines := []string{
		TitleStyle.UnsetMarginBottom().Render("Impuestos (" + string(regime) + ")"),
		"Monto mensual: " + finance.FormatCurrency(r.Amount),
	}
	if r.Category != nil {
		lines = append(lines, fmt.Sprintf("Categoría %s (tope anual %s)",
			r.Category.Category, finance.FormatCurrency(r.Category.AnnualLimit)))
	}
	lines = append(lines, SubtleStyle.Render(r.Breakdown))
	fmt.Fprintln(out, BoxStyle.Render(strings.Join(lines, "\n")))
}

func Threshold(out io.Writer, r domain.ThresholdResult) {
	msg := fmt.Sprintf("Facturación anual proyectada %s (tope %s)",
		finance.FormatCurrency(r.ProjectedAnnualRevenue), finance.FormatCurrency(r.MaxAnnualLimit))
	if r.WillExceed {
		fmt.Fprintln(out, WarningStyle.Render("⚠️ "+msg+": supera el monotributo"))
		return
	}
	fmt.Fprintln(out, SuccessStyle.Render(msg))
}

func Financing(out io.Writer, c domain.FinancingComparison) error {
	fmt.Fprintln(out, TitleStyle.Render("Financiamiento para "+finance.FormatCurrency(c.Amount)))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header(w, "Línea", "TNA", "Plazo", "Cuota", "Intereses", "")
	for _, q := range c.Options {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t\n",
			q.Option.Name,
			finance.FormatPercentage(q.Option.AnnualRate),
			q.Option.Months,
			finance.FormatCurrency(q.MonthlyPayment),
			finance.FormatCurrency(q.TotalInterest),
			SubtleStyle.Render(q.Reason),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, o := range c.Skipped {
		fmt.Fprintln(out, SubtleStyle.Render(
			fmt.Sprintf("%s: máximo %s", o.Name, finance.FormatCurrency(o.MaxAmount))))
	}
	return nil
}

// Schedule prints a loan amortization table.
func Schedule(out io.Writer, r domain.LoanResult) error {
	fmt.Fprintf(out, "Cuota %s · Total %s · Intereses %s\n\n",
		finance.FormatCurrency(r.MonthlyPayment),
		finance.FormatCurrency(r.TotalPayment),
		finance.FormatCurrency(r.TotalInterest))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	header(w, "N°", "Cuota", "Interés", "Capital", "Saldo")
	for _, in := range r.Schedule {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			in.Number,
			finance.FormatCurrency(in.Payment),
			finance.FormatCurrency(in.Interest),
			finance.FormatCurrency(in.Principal),
			finance.FormatCurrency(in.Balance),
		)
	}
	return w.Flush()
}

func History(out io.Writer, records []domain.CalculationRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(out, SubtleStyle.Render("Sin cálculos guardados."))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header(w, "Fecha", "Tipo", "ID")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Kind,
			SubtleStyle.Render(r.ID.String()))
	}
	return w.Flush()
}
