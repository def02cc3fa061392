package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/finovahq/finova/internal/cli/formatter"
	"github.com/finovahq/finova/internal/domain"
)

var occupationOptions = []string{
	"Student", "Software Engineer", "Teacher", "Doctor", "Nurse",
	"Business Owner", "Sales", "Marketing", "Finance", "Other",
}

var goalOptions = []string{
	"Emergency Fund", "Buy a House", "Retirement", "Pay off Debt",
	"Investment Growth", "Education", "Travel", "Start Business",
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Create or replace your financial profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileForm(cmd, app)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Display the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfileShow(cmd, app)
		},
	})

	return cmd
}

func runProfileForm(cmd *cobra.Command, app *App) error {
	var (
		name       string
		ageStr     = "25"
		incomeStr  = "50000"
		occupation = "Other"
		userType   = string(domain.UserProfessional)
		risk       = string(domain.RiskModerate)
		savingsStr = "5000"
		expStr     = "3000"
		goals      []string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Full Name").Value(&name).
				Validate(validateNonEmpty),
			huh.NewInput().Title("Age").Value(&ageStr).
				Validate(validateInt),
			huh.NewInput().Title("Annual Income ($)").Value(&incomeStr).
				Validate(validateAmount),
			huh.NewSelect[string]().Title("Occupation").
				Options(huh.NewOptions(occupationOptions...)...).
				Value(&occupation),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("User Type").
				Options(huh.NewOptions(
					string(domain.UserStudent),
					string(domain.UserProfessional),
					string(domain.UserRetiree),
				)...).
				Value(&userType),
			huh.NewSelect[string]().Title("Risk Tolerance").
				Options(huh.NewOptions(
					string(domain.RiskConservative),
					string(domain.RiskModerate),
					string(domain.RiskAggressive),
				)...).
				Value(&risk),
			huh.NewInput().Title("Current Savings ($)").Value(&savingsStr).
				Validate(validateAmount),
			huh.NewInput().Title("Monthly Expenses ($)").Value(&expStr).
				Validate(validateAmount),
			huh.NewMultiSelect[string]().Title("Financial Goals").
				Options(huh.NewOptions(goalOptions...)...).
				Value(&goals),
		),
	).WithTheme(finovaHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("running profile form: %w", err)
	}

	age, _ := strconv.Atoi(strings.TrimSpace(ageStr))
	income, _ := strconv.ParseFloat(strings.TrimSpace(incomeStr), 64)
	savings, _ := strconv.ParseFloat(strings.TrimSpace(savingsStr), 64)
	expenses, _ := strconv.ParseFloat(strings.TrimSpace(expStr), 64)

	profile := domain.NewUserProfile(
		strings.TrimSpace(name), age, income, occupation, goals,
		domain.ParseRiskTolerance(risk), savings, expenses,
		domain.UserType(userType),
	)

	errs, warnings := domain.ValidateProfile(profile)
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleRed.Render("✗ "+e))
		}
		return fmt.Errorf("profile validation failed")
	}
	for _, w := range warnings {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("! "+w))
	}

	if err := app.Profiles.Upsert(cmd.Context(), profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("✓ Profile saved"))
	return nil
}

func runProfileShow(cmd *cobra.Command, app *App) error {
	profile, err := app.Profiles.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.StyleHeader.Render(profile.Name))
	fmt.Fprintf(out, "Age:              %d\n", profile.Age)
	fmt.Fprintf(out, "Occupation:       %s\n", profile.Occupation)
	fmt.Fprintf(out, "User Type:        %s\n", profile.UserType)
	fmt.Fprintf(out, "Risk Tolerance:   %s\n", formatter.RiskStyle(profile.RiskTolerance).Render(string(profile.RiskTolerance)))
	fmt.Fprintf(out, "Annual Income:    %s\n", formatter.Currency(profile.Income))
	fmt.Fprintf(out, "Current Savings:  %s\n", formatter.Currency(profile.SavingsAmount))
	fmt.Fprintf(out, "Monthly Expenses: %s\n", formatter.Currency(profile.MonthlyExpenses))
	if len(profile.FinancialGoals) > 0 {
		fmt.Fprintf(out, "Goals:            %s\n", strings.Join(profile.FinancialGoals, ", "))
	}
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("must be a non-negative amount")
	}
	return nil
}
