package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okian/dnindex/internal/domain/filter"
	"github.com/okian/dnindex/internal/domain/scoring"
	"github.com/okian/dnindex/internal/domain/types"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// filterFlags mirror the HTTP query filters. Zero values leave a field
// unfiltered.
type filterFlags struct {
	companies []string
	year      int
	area      string
	category  string
	role      string
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringSliceVar(&f.companies, "company", nil, "Only these companies (repeatable or comma separated)")
	fs.IntVar(&f.year, "year", 0, "Only this reporting year")
	fs.StringVar(&f.area, "area", "", "Only this practice area")
	fs.StringVar(&f.category, "category", "", "Only this diversity category")
	fs.StringVar(&f.role, "role", "", "Only this composition role")
}

func (f *filterFlags) spec() filter.Spec {
	spec := filter.Spec{
		PracticeArea: optional(f.area),
		Category:     optional(f.category),
		Role:         optional(f.role),
	}
	for _, c := range f.companies {
		if c = strings.TrimSpace(c); c != "" {
			spec.Companies = append(spec.Companies, c)
		}
	}
	if f.year != 0 {
		spec.Year = filter.Only(f.year)
	}
	return spec
}

func optional(v string) filter.Selector[string] {
	if v = strings.TrimSpace(v); v == "" {
		return filter.Any[string]()
	}
	return filter.Only(v)
}

func newRankCmd(c *cli) *cobra.Command {
	var (
		filters  filterFlags
		strategy string
		format   string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the ranked index table",
		Long: `Compute the index table for the filtered scope and print it.

Examples:
  dnindex rank
  dnindex rank --strategy weighted-count --year 2023
  dnindex rank --company "Acme SpA" --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			svc, err := c.newService(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := svc.Ranked(cmd.Context(), filters.spec(), strategy)
			if err != nil {
				return err
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			return writeRankTable(cmd.OutOrStdout(), entries)
		},
	}

	filters.bind(cmd)
	cmd.Flags().StringVar(&strategy, "strategy", "",
		"Scoring strategy: "+strings.Join(scoring.Strategies(), ", ")+" (default from config)")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format (table|json)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Print at most this many rows (0 = all)")
	return cmd
}

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (use %s or %s)", format, formatTable, formatJSON)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRankTable(w io.Writer, entries []types.RankedEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tCOMPANY\tINITIATIVE\tCATEGORY\tPARITY\tCOMPOSITE\tRAW")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			e.Rank, e.Company, e.InitiativeIndex, e.CategoryIndex, e.GenderParityIndex, e.CompositeIndex, e.Raw)
	}
	return tw.Flush()
}
