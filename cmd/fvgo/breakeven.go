package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/fvgo/internal/breakeven"
	"github.com/rgehrsitz/fvgo/internal/config"
	"github.com/rgehrsitz/fvgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type breakEvenFlags struct {
	format        string
	min, max      string
	maxIterations int
}

func (f *breakEvenFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "table", "Output format (table, json)")
	cmd.Flags().StringVar(&f.min, "min", "", "Lower bound of the searched monthly amount")
	cmd.Flags().StringVar(&f.max, "max", "", "Upper bound of the searched monthly amount")
	cmd.Flags().IntVar(&f.maxIterations, "max-iterations", 0, "Bisection iteration limit (default 50)")
}

func (f *breakEvenFlags) constraints() (breakeven.Constraints, error) {
	var c breakeven.Constraints
	for _, b := range []struct {
		raw string
		dst **decimal.Decimal
	}{{f.min, &c.Min}, {f.max, &c.Max}} {
		if b.raw == "" {
			continue
		}
		d, err := decimal.NewFromString(b.raw)
		if err != nil {
			return c, fmt.Errorf("invalid bound %q: %w", b.raw, err)
		}
		*b.dst = &d
	}
	return c, nil
}

func breakEvenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break-even",
		Short: "Solve for the monthly amount that meets a goal",
	}
	cmd.AddCommand(sustainableWithdrawalCmd(a), requiredContributionCmd(a))
	return cmd
}

// firstInput returns the first calculation in path, which must be of kind
func firstInput(path string, kind domain.Kind) (domain.Input, error) {
	file, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	env := file.Calculations[0]
	if env.Kind != kind {
		return nil, fmt.Errorf("%s holds a %s calculation, expected %s", path, env.Kind, kind)
	}
	return env.Input, nil
}

func sustainableWithdrawalCmd(a *app) *cobra.Command {
	flags := &breakEvenFlags{}
	cmd := &cobra.Command{
		Use:   "sustainable-withdrawal [input-file]",
		Short: "Largest monthly withdrawal that never depletes the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := firstInput(args[0], domain.KindWithdrawals)
			if err != nil {
				return err
			}
			w := in.(domain.WithdrawalsInput)
			return a.solve(cmd, flags, breakeven.Request{
				Target:      breakeven.TargetSustainableWithdrawal,
				Withdrawals: &w,
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func requiredContributionCmd(a *app) *cobra.Command {
	flags := &breakEvenFlags{}
	var goal string
	var goals []string

	cmd := &cobra.Command{
		Use:   "required-contribution [input-file]",
		Short: "Smallest monthly contribution that reaches a future value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := firstInput(args[0], domain.KindMonthlyContributions)
			if err != nil {
				return err
			}
			contrib := in.(domain.MonthlyContributionsInput)

			if len(goals) > 0 {
				return a.ladder(cmd, flags, contrib, goals)
			}
			if goal == "" {
				return fmt.Errorf("--goal or --goals is required")
			}
			g, err := decimal.NewFromString(goal)
			if err != nil {
				return fmt.Errorf("invalid goal %q: %w", goal, err)
			}
			return a.solve(cmd, flags, breakeven.Request{
				Target:        breakeven.TargetRequiredContribution,
				Contributions: &contrib,
				Goal:          g,
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&goal, "goal", "", "Future value to reach")
	cmd.Flags().StringSliceVar(&goals, "goals", nil, "Comma-separated goals; prints one contribution per goal")
	return cmd
}

func (a *app) solve(cmd *cobra.Command, flags *breakEvenFlags, req breakeven.Request) error {
	c, err := flags.constraints()
	if err != nil {
		return err
	}
	req.Constraints = c
	req.MaxIterations = flags.maxIterations

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := breakeven.NewDefaultSolver(a.engine).Solve(ctx, req)
	if err != nil {
		return err
	}
	a.logger.Debugf("break-even %s: %s after %d iterations", req.Target, result.Amount, result.Iterations)

	switch strings.ToLower(flags.format) {
	case "json":
		jf := &breakeven.JSONFormatter{Pretty: true}
		out, err := jf.Format(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	case "table", "":
		tf := &breakeven.TableFormatter{Currency: a.settings.Currency}
		fmt.Fprint(cmd.OutOrStdout(), tf.Format(result))
	default:
		return fmt.Errorf("unknown output format %q (valid: table, json)", flags.format)
	}
	return nil
}

func (a *app) ladder(cmd *cobra.Command, flags *breakEvenFlags, in domain.MonthlyContributionsInput, raw []string) error {
	goals := make([]decimal.Decimal, 0, len(raw))
	for _, r := range raw {
		g, err := decimal.NewFromString(strings.TrimSpace(r))
		if err != nil {
			return fmt.Errorf("invalid goal %q: %w", r, err)
		}
		goals = append(goals, g)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ladder, err := breakeven.NewDefaultSolver(a.engine).ContributionLadder(ctx, in, goals)
	if err != nil {
		return err
	}
	tf := &breakeven.TableFormatter{Currency: a.settings.Currency}
	fmt.Fprint(cmd.OutOrStdout(), tf.FormatLadder(ladder))
	return nil
}
