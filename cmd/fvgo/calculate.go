package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rgehrsitz/fvgo/internal/config"
	"github.com/rgehrsitz/fvgo/internal/export"
	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/spf13/cobra"
)

// runFile loads and computes every calculation in an input file
func (a *app) runFile(path string) ([]output.Calculation, error) {
	file, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	calcs := make([]output.Calculation, 0, len(file.Calculations))
	for i, env := range file.Calculations {
		res, err := a.engine.Calculate(env.Input)
		if err != nil {
			return nil, fmt.Errorf("calculation %d (%s): %w", i, env.Kind, err)
		}
		calcs = append(calcs, output.Calculation{Name: env.Name, Input: env.Input, Result: res})
	}
	a.logger.Debugf("computed %d calculation(s) from %s", len(calcs), path)
	return calcs, nil
}

func calculateCmd(a *app) *cobra.Command {
	var format, outPath, saveName string
	var save bool

	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Run the calculations in an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calcs, err := a.runFile(args[0])
			if err != nil {
				return err
			}

			f := output.NewFormatter(format, a.settings.Currency)
			if f == nil {
				return fmt.Errorf("unknown output format %q (valid: %s; aliases: %s)", format,
					strings.Join(output.AvailableFormatterNames(), ", "),
					strings.Join(output.AvailableFormatAliases(), ", "))
			}

			switch {
			case outPath != "":
				data, err := f.Format(calcs)
				if err != nil {
					return err
				}
				if err := os.WriteFile(outPath, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
			case f.Name() == "html":
				filename, err := output.WriteFormatted(f, calcs, "html")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
			default:
				data, err := f.Format(calcs)
				if err != nil {
					return err
				}
				cmd.OutOrStdout().Write(data)
			}

			if save || saveName != "" {
				return a.saveAll(cmd, calcs, saveName)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "Save the calculations to the store")
	cmd.Flags().StringVar(&saveName, "save-as", "", "Save under this name (implies --save)")
	return cmd
}

func (a *app) saveAll(cmd *cobra.Command, calcs []output.Calculation, name string) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	for i, c := range calcs {
		label := c.Name
		if name != "" {
			label = name
			if len(calcs) > 1 {
				label = fmt.Sprintf("%s #%d", name, i+1)
			}
		}
		rec, err := st.Save(cmd.Context(), label, c.Input, c.Result)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %q as %s\n", rec.Name, rec.ID)
	}
	return nil
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Input file %s is valid (%d calculation(s))\n", args[0], len(file.Calculations))
			return nil
		},
	}
}

func exportCmd(a *app) *cobra.Command {
	var outPath string
	var width int

	cmd := &cobra.Command{
		Use:   "export [input-file]",
		Short: "Render the first calculation of an input file as a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calcs, err := a.runFile(args[0])
			if err != nil {
				return err
			}
			calc := calcs[0]
			if outPath == "" {
				outPath = export.FileName(calc.Title(), time.Now())
			}
			return a.writePNG(cmd, outPath, width, func(e *export.PNGExporter, f *os.File) error {
				return e.Export(f, calc.Title(), calc.Result)
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output PNG path (default <title>-<date>.png)")
	cmd.Flags().IntVar(&width, "width", 800, "Image width in pixels")
	return cmd
}

func (a *app) writePNG(cmd *cobra.Command, path string, width int, draw func(*export.PNGExporter, *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	e := export.NewPNGExporter(a.settings.Currency)
	e.Width = width
	if err := draw(e, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Image written to %s\n", path)
	return nil
}
