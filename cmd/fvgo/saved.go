package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rgehrsitz/fvgo/internal/export"
	"github.com/rgehrsitz/fvgo/internal/output"
	"github.com/rgehrsitz/fvgo/internal/store"
	"github.com/spf13/cobra"
)

func savedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved calculations",
	}
	cmd.AddCommand(savedListCmd(a), savedShowCmd(a), savedDeleteCmd(a), savedClearCmd(a), savedExportCmd(a))
	return cmd
}

// withStore opens the store for the duration of fn
func (a *app) withStore(fn func(st store.Store) error) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func savedListCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st store.Store) error {
				records, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if asJSON {
					if records == nil {
						records = []store.Record{}
					}
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(records)
				}
				if len(records) == 0 {
					fmt.Fprintln(out, "No saved calculations")
					return nil
				}
				fmt.Fprintf(out, "%-36s  %-22s  %-28s  %-16s  %s\n", "ID", "CALCULATOR", "NAME", "SAVED", "HEADLINE")
				for _, rec := range records {
					headline := ""
					if ms := output.Headlines(rec.Result); len(ms) > 0 {
						headline = ms[0].Format(a.settings.Currency)
					}
					fmt.Fprintf(out, "%-36s  %-22s  %-28s  %-16s  %s\n",
						rec.ID, rec.Kind.Title(), truncate(rec.Name, 28), rec.Timestamp.Local().Format("2006-01-02 15:04"), headline)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")
	return cmd
}

func savedShowCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a saved calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st store.Store) error {
				rec, err := st.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				f := output.NewFormatter(format, a.settings.Currency)
				if f == nil {
					return fmt.Errorf("unknown output format %q", format)
				}
				data, err := f.Format([]output.Calculation{recordCalculation(*rec)})
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format")
	return cmd
}

func savedDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a saved calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st store.Store) error {
				if err := st.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func savedClearCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved calculation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear saved calculations without --yes")
			}
			return a.withStore(func(st store.Store) error {
				if err := st.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cleared all saved calculations")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm clearing the store")
	return cmd
}

func savedExportCmd(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export [id]",
		Short: "Render one saved calculation, or the whole list, as a PNG image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(st store.Store) error {
				if len(args) == 1 {
					rec, err := st.Get(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					calc := recordCalculation(*rec)
					path := outPath
					if path == "" {
						path = export.FileName(calc.Title(), time.Now())
					}
					return a.writePNG(cmd, path, 800, func(e *export.PNGExporter, f *os.File) error {
						return e.Export(f, calc.Title(), calc.Result)
					})
				}

				records, err := st.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(records) == 0 {
					return fmt.Errorf("no saved calculations to export")
				}
				calcs := make([]output.Calculation, len(records))
				for i, rec := range records {
					calcs[i] = recordCalculation(rec)
				}
				path := outPath
				if path == "" {
					path = export.FileName("saved calculations", time.Now())
				}
				return a.writePNG(cmd, path, 800, func(e *export.PNGExporter, f *os.File) error {
					return e.ExportSaved(f, calcs)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output PNG path")
	return cmd
}

func recordCalculation(rec store.Record) output.Calculation {
	return output.Calculation{Name: rec.Name, Input: rec.Inputs, Result: rec.Result}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
