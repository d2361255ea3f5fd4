package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okian/dnindex/internal/domain/filter"
)

func newOptionsCmd(c *cli) *cobra.Command {
	var (
		table  string
		column string
		format string
	)

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the selectable values of a table column",
		Long: `List the distinct values of a column, preceded by the "All" entry,
exactly as the dashboard selection controls present them.

Examples:
  dnindex options --column category
  dnindex options --table composition --column role --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			svc, err := c.newService(cmd.Context())
			if err != nil {
				return err
			}
			opts, err := svc.FilterOptions(cmd.Context(), filter.Table(table), filter.Column(column))
			if err != nil {
				return err
			}
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), opts)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "LABEL\tVALUE")
			for _, o := range opts {
				fmt.Fprintf(tw, "%s\t%s\n", o.Label, o.Value)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&table, "table", string(filter.TableInitiatives), "Table: initiatives or composition")
	cmd.Flags().StringVar(&column, "column", "", "Column: company, year, practice_area, category, role")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format (table|json)")
	return cmd
}
