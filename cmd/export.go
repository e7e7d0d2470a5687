package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/cleanplan/pkg/export"
)

var (
	exportFormat string
	exportOut    string
	pricesOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the full planning to a file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "xlsx", "output format: xlsx, csv or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", `output file, "-" for stdout (default planning_interventions.<format>)`)
	exportCmd.Flags().StringVar(&pricesOut, "prices", "", "also write the price table as CSV to this file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(exportFormat)
	var write func(io.Writer, []export.Row) error
	switch format {
	case "xlsx":
		write = export.WriteXLSX
	case "csv":
		write = export.WriteCSV
	case "json":
		write = export.WriteJSON
	default:
		return fmt.Errorf("unsupported export format %q", exportFormat)
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	rep, err := svc.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = "planning_interventions." + format
	}
	rows := export.Rows(rep.Schedule.Tasks)
	if err := writeTo(cmd.OutOrStdout(), out, func(w io.Writer) error { return write(w, rows) }); err != nil {
		return fmt.Errorf("export planning: %w", err)
	}
	if pricesOut != "" {
		if err := writeTo(cmd.OutOrStdout(), pricesOut, func(w io.Writer) error {
			return export.WritePricesCSV(w, rep.Pricing.Table)
		}); err != nil {
			return fmt.Errorf("export prices: %w", err)
		}
	}
	if out != "-" {
		_, err = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", len(rows), out)
	}
	return err
}

func writeTo(stdout io.Writer, path string, write func(io.Writer) error) (err error) {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f)
}
