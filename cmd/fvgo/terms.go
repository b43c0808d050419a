package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

type term struct {
	Title       string
	Description string
	Formula     string
	Example     string
}

var financialTerms = []term{
	{
		Title:       "Future Value (FV)",
		Description: "What a sum of money or a stream of payments is worth at a later date, given a growth rate.",
		Formula:     "FV = PV × (1 + r)^n",
		Example:     "$1,000 invested at 5% a year for 3 years grows to $1,157.63.",
	},
	{
		Title:       "Present Value (PV)",
		Description: "What a future sum is worth today at a given rate of return.",
		Formula:     "PV = FV ÷ (1 + r)^n",
		Example:     "Reaching $10,000 in 5 years at 6% takes $7,472.58 today.",
	},
	{
		Title:       "Compound Interest",
		Description: "Interest earned on the principal and on the interest already credited.",
		Formula:     "A = P(1 + r/n)^(nt)",
		Example:     "$1,000 at 5% compounded monthly ends higher than at 5% compounded annually.",
	},
	{
		Title:       "Annual Percentage Rate (APR)",
		Description: "The yearly rate before any compounding within the year.",
		Example:     "A 12% APR compounded monthly credits 1% per month.",
	},
	{
		Title:       "Time Value of Money",
		Description: "Money held now can earn a return, so it is worth more than the same amount received later.",
		Example:     "$100 today beats $100 a year from now.",
	},
	{
		Title:       "Annuity",
		Description: "A series of equal payments made at regular intervals.",
		Formula:     "FV = PMT × ((1 + r)^n - 1) / r",
		Example:     "Monthly deposits of $100 into a retirement account.",
	},
	{
		Title:       "Depletion",
		Description: "The month in which a withdrawal schedule drives the balance to zero or below.",
	},
	{
		Title:       "Marginal Tax Bracket",
		Description: "A progressive rate table: only income above each threshold is taxed at that threshold's rate.",
	},
}

func termsMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Financial Terms\n\n")
	for _, t := range financialTerms {
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", t.Title, t.Description)
		if t.Formula != "" {
			fmt.Fprintf(&sb, "`%s`\n\n", t.Formula)
		}
		if t.Example != "" {
			fmt.Fprintf(&sb, "*Example:* %s\n\n", t.Example)
		}
	}
	return sb.String()
}

func termsCmd() *cobra.Command {
	var style string
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Explain the financial terms used by the calculators",
		Args:  cobra.NoArgs,
		// settings are not needed for the glossary
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			md := termsMarkdown()
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}

			opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
			if style == "" {
				opts = append(opts, glamour.WithAutoStyle())
			} else {
				opts = append(opts, glamour.WithStandardStyle(style))
			}
			r, err := glamour.NewTermRenderer(opts...)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			out, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("failed to render terms: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "Glamour style (dark, light, notty); detected from the terminal by default")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source")
	cmd.Flags().IntVar(&width, "width", 80, "Word wrap width")
	return cmd
}
