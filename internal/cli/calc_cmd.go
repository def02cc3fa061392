package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finovahq/finova/internal/cli/formatter"
	"github.com/finovahq/finova/internal/finance"
)

func newCalcCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Standalone financial calculators",
	}

	cmd.AddCommand(newCalcCompoundCmd(), newCalcLoanCmd(), newCalcRetirementCmd())
	return cmd
}

func newCalcCompoundCmd() *cobra.Command {
	var (
		principal float64
		rate      float64
		years     float64
		compounds int
	)

	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Project compound interest growth",
		RunE: func(cmd *cobra.Command, args []string) error {
			fv, err := finance.CompoundInterest(principal, rate, years, compounds)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Future Value: %s\n", formatter.Currency(fv))
			fmt.Fprintf(out, "Total Growth: %s\n", formatter.Currency(fv-principal))
			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 1000, "initial amount")
	cmd.Flags().Float64Var(&rate, "rate", 0.07, "annual rate as a fraction (0.07 = 7%)")
	cmd.Flags().Float64Var(&years, "years", 10, "investment horizon in years")
	cmd.Flags().IntVar(&compounds, "compounds", 12, "compounding periods per year")
	return cmd
}

func newCalcLoanCmd() *cobra.Command {
	var (
		principal float64
		rate      float64
		years     int
	)

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Compute the monthly payment on an amortizing loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if years <= 0 {
				return fmt.Errorf("loan term must be a positive number of years, got %d", years)
			}
			payment := finance.LoanPayment(principal, rate, years)
			totalPaid := payment * float64(years*12)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Monthly Payment: %s\n", formatter.Currency(payment))
			fmt.Fprintf(out, "Total Interest:  %s\n", formatter.Currency(totalPaid-principal))
			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 200000, "loan amount")
	cmd.Flags().Float64Var(&rate, "rate", 0.04, "annual rate as a fraction")
	cmd.Flags().IntVar(&years, "years", 30, "loan term in years")
	return cmd
}

func newCalcRetirementCmd() *cobra.Command {
	var (
		age         int
		income      float64
		replacement float64
	)

	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Estimate the nest egg needed at retirement",
		RunE: func(cmd *cobra.Command, args []string) error {
			const retirementAge = 65
			needs := finance.RetirementNeeds(age, retirementAge, income, replacement)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Estimated Need: %s (4%% withdrawal rule)\n", formatter.Currency(needs))
			if years := retirementAge - age; years > 0 {
				fmt.Fprintf(out, "Monthly Target: %s over %d years\n",
					formatter.Currency(needs/float64(years*12)), years)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&age, "age", 30, "current age")
	cmd.Flags().Float64Var(&income, "income", 60000, "current annual income")
	cmd.Flags().Float64Var(&replacement, "replacement", 0.8, "income replacement ratio")
	return cmd
}
