package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pyme-calc/cli"
	"pyme-calc/domain"
	"pyme-calc/finance"
)

// amountFlags reads peso amounts written the Argentine way ("1.500.000,50").
type amountFlags map[string]*string

func (a amountFlags) add(fs *pflag.FlagSet, name, usage string) {
	a[name] = fs.String(name, "", usage)
}

func (a amountFlags) get(name string) (float64, error) {
	raw := *a[name]
	if raw == "" {
		return 0, nil
	}
	v, err := finance.ParseCurrency(raw)
	if err != nil {
		return 0, fmt.Errorf("--%s %q: %w", name, raw, err)
	}
	return v, nil
}

// parse fills each destination with the value of its flag.
func (a amountFlags) parse(dst map[string]*float64) error {
	for name, p := range dst {
		v, err := a.get(name)
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	a, err := newApp(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("error closing resources", "error", err)
		}
	}()
	return fn(cmd.Context(), a)
}

func projectCmd() *cobra.Command {
	var input domain.ProjectionInput
	amounts := amountFlags{}

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Month-by-month projection under inflation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := amounts.parse(map[string]*float64{
				"revenue":      &input.BaseRevenue,
				"fixed-costs":  &input.FixedCosts,
				"taxes":        &input.BaseTaxes,
				"loan-payment": &input.LoanPayment,
			}); err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				rows, err := a.projection.Project(ctx, input)
				if err != nil {
					return err
				}
				return cli.Projection(cmd.OutOrStdout(), "Proyección", rows)
			})
		},
	}

	fs := cmd.Flags()
	amounts.add(fs, "revenue", "monthly revenue")
	amounts.add(fs, "fixed-costs", "monthly fixed costs")
	amounts.add(fs, "taxes", "monthly taxes")
	amounts.add(fs, "loan-payment", "monthly loan installment")
	fs.Float64Var(&input.VariableCostPercentage, "variable-pct", 0, "variable costs as % of revenue")
	fs.Float64Var(&input.InflationRate, "inflation", 0, "monthly inflation %")
	fs.IntVar(&input.Months, "months", 12, "months to project")
	fs.BoolVar(&input.CanTransferInflation, "pass-through", false, "prices follow inflation")
	return cmd
}

func breakEvenCmd() *cobra.Command {
	var input domain.BreakEvenInput
	amounts := amountFlags{}

	cmd := &cobra.Command{
		Use:   "break-even",
		Short: "First month with non-negative accumulated profit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := amounts.parse(map[string]*float64{
				"revenue":      &input.MonthlyRevenue,
				"fixed-costs":  &input.FixedCosts,
				"taxes":        &input.Taxes,
				"loan-payment": &input.LoanPayment,
			}); err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				result, err := a.projection.BreakEven(ctx, input)
				if err != nil {
					return err
				}
				cli.BreakEven(cmd.OutOrStdout(), result)
				return nil
			})
		},
	}

	fs := cmd.Flags()
	amounts.add(fs, "revenue", "monthly revenue")
	amounts.add(fs, "fixed-costs", "monthly fixed costs")
	amounts.add(fs, "taxes", "monthly taxes")
	amounts.add(fs, "loan-payment", "monthly loan installment")
	fs.Float64Var(&input.VariableCostPercentage, "variable-pct", 0, "variable costs as % of revenue")
	fs.Float64Var(&input.InflationRate, "inflation", 0, "monthly inflation %")
	fs.IntVar(&input.Horizon, "horizon", 0, "months to scan (default from config)")
	return cmd
}

func scenariosCmd() *cobra.Command {
	var input domain.ScenarioInput
	amounts := amountFlags{}

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Pessimistic, realistic and optimistic 12-month projections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := amounts.parse(map[string]*float64{
				"revenue":     &input.BaseRevenue,
				"fixed-costs": &input.FixedCosts,
				"taxes":       &input.Taxes,
				"loan-amount": &input.LoanAmount,
			}); err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				scenarios, err := a.scenarios.Calculate(ctx, input)
				if err != nil {
					return err
				}
				return cli.Scenarios(cmd.OutOrStdout(), scenarios)
			})
		},
	}

	fs := cmd.Flags()
	amounts.add(fs, "revenue", "monthly revenue")
	amounts.add(fs, "fixed-costs", "monthly fixed costs")
	amounts.add(fs, "taxes", "monthly taxes")
	amounts.add(fs, "loan-amount", "loan principal")
	fs.Float64Var(&input.VariableCostPercentage, "variable-pct", 0, "variable costs as % of revenue")
	fs.Float64Var(&input.LoanRate, "loan-rate", 0, "loan annual rate %")
	fs.IntVar(&input.LoanMonths, "loan-months", 0, "loan term in months")
	return cmd
}

func taxesCmd() *cobra.Command {
	var (
		regime    string
		facturaB  bool
		month     int
		inflation float64
	)
	amounts := amountFlags{}

	cmd := &cobra.Command{
		Use:   "taxes",
		Short: "Monthly tax burden under monotributo or the general regime",
		RunE: func(cmd *cobra.Command, _ []string) error {
			revenue, err := amounts.get("revenue")
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out := cmd.OutOrStdout()
				input := domain.TaxInput{
					MonthlyRevenue: revenue,
					Regime:         domain.TaxRegime(regime),
					IsFacturaB:     facturaB,
				}
				result, err := a.taxes.Calculate(ctx, input)
				if err != nil {
					return err
				}
				cli.Tax(out, input.Regime, result)

				if month <= 0 {
					return nil
				}
				threshold, err := a.taxes.WillExceed(ctx, domain.ThresholdInput{
					CurrentMonthlyRevenue: revenue,
					Month:                 month,
					InflationRate:         inflation,
				})
				if err != nil {
					return err
				}
				cli.Threshold(out, threshold)
				return nil
			})
		},
	}

	fs := cmd.Flags()
	amounts.add(fs, "revenue", "monthly revenue")
	fs.StringVar(&regime, "regime", string(domain.RegimeMonotributo), "monotributo or general")
	fs.BoolVar(&facturaB, "factura-b", false, "general regime invoicing with Factura B")
	fs.IntVar(&month, "month", 0, "also check the monotributo ceiling projected to this month")
	fs.Float64Var(&inflation, "inflation", 0, "monthly inflation % for the ceiling check")
	return cmd
}

func financingCmd() *cobra.Command {
	var (
		optionID string
		months   int
	)
	amounts := amountFlags{}

	cmd := &cobra.Command{
		Use:   "financing",
		Short: "Compare financing lines, or simulate one with --option",
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := amounts.get("amount")
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out := cmd.OutOrStdout()
				if optionID == "" {
					comparison, err := a.financing.Compare(ctx, amount)
					if err != nil {
						return err
					}
					return cli.Financing(out, comparison)
				}

				result, err := a.loans.CalculateLoan(ctx, domain.LoanInput{
					OptionID:   optionID,
					Amount:     amount,
					TermMonths: months,
				})
				if err != nil {
					return err
				}
				return cli.Schedule(out, result)
			})
		},
	}

	fs := cmd.Flags()
	amounts.add(fs, "amount", "amount to finance")
	fs.StringVar(&optionID, "option", "", "financing line id (see GET /finance/financing)")
	fs.IntVar(&months, "months", 0, "term in months, capped at the line's maximum")
	return cmd
}

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the latest stored calculations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				records, err := a.history.Recent(ctx, limit)
				if err != nil {
					return err
				}
				return cli.History(cmd.OutOrStdout(), records)
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "max records (default 20)")
	return cmd
}
