package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fvgo/internal/compare"
	"github.com/rgehrsitz/fvgo/internal/config"
	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	var with, format string
	var compact bool

	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare calculations of the same kind against the first one",
		Long: `Compare the first calculation of an input file (the base) against the others,
or against what-if variations of it given with --with, e.g.

  fvgo compare plan.yaml --with "annual_rate+1,years=30,monthly_contribution*2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			scenarios := make([]compare.Scenario, len(file.Calculations))
			for i, env := range file.Calculations {
				scenarios[i] = compare.Scenario{Name: env.Name, Input: env.Input}
			}

			engine := compare.NewCompareEngine(a.engine)
			engine.Currency = a.settings.Currency

			var compSet *compare.ComparisonSet
			if with != "" {
				var variations []compare.Variation
				for _, raw := range strings.Split(with, ",") {
					v, err := compare.ParseVariation(raw)
					if err != nil {
						return err
					}
					variations = append(variations, v)
				}
				compSet, err = engine.CompareVariations(cmd.Context(), scenarios[0], variations)
			} else {
				if len(scenarios) < 2 {
					return fmt.Errorf("%s holds a single calculation; add more or use --with", args[0])
				}
				compSet, err = engine.CompareScenarios(cmd.Context(), scenarios[0], scenarios[1:])
			}
			if err != nil {
				return err
			}
			compSet.Source = args[0]

			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "table", "":
				tf := &compare.TableFormatter{Currency: a.settings.Currency}
				if compact {
					fmt.Fprintln(out, tf.FormatCompact(compSet))
				} else {
					fmt.Fprint(out, tf.Format(compSet))
				}
			case "csv":
				s, err := (&compare.CSVFormatter{}).Format(compSet)
				if err != nil {
					return err
				}
				fmt.Fprint(out, s)
			case "json":
				s, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			default:
				return fmt.Errorf("unknown output format %q (valid: table, csv, json)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&with, "with", "", "Comma-separated variations of the base (field+n, field-n, field*n, field=v)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, csv, json)")
	cmd.Flags().BoolVar(&compact, "compact", false, "One-line summary (table format only)")
	return cmd
}
