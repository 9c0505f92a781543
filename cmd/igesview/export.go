package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zooyer/iges/store"
)

func newExportCmd() *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export entities to a SQLite catalog or CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd, args)
			if err != nil {
				return err
			}

			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(out), ".")
			}
			switch format {
			case "csv":
				if out == "" {
					out = strings.TrimSuffix(c.Source, filepath.Ext(c.Source)) + ".csv"
				}
				if err = store.ExportCSV(out, c); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			case "", "db", "sqlite":
				if out == "" {
					out = strings.TrimSuffix(c.Source, filepath.Ext(c.Source)) + ".db"
				}
				runID, err := store.ExportSQLite(cmd.Context(), out, c)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (run %s)\n", out, runID)
			default:
				return fmt.Errorf("unknown export format %q", format)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file")
	cmd.Flags().StringVar(&format, "format", "", "sqlite or csv (default: from --out extension)")

	return cmd
}
