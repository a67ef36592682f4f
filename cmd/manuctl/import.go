package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gunal77/web-hackathon/importer"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Count the rows of a CSV, Excel or PDF petition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := importer.ParseVariant(variant)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()

			res, err := importer.CountFile(filepath.Base(args[0]), f, v)
			if err != nil {
				return err
			}
			zap.S().Debugw("import counted", "file", args[0], "variant", v, "total", res.Total)

			out := cmd.OutOrStdout()
			summary := opts.newTable(out, "Import: "+filepath.Base(args[0]))
			summary.AppendRows([]table.Row{
				{"Variant", v},
				{"Rows", res.Total},
				{"Critical", res.Critical},
				{"PDF", res.IsPDF},
			})
			summary.Render()

			if len(res.ByDistrict) > 0 {
				renderCounts(opts.newTable(out, "By district"), "District", res.ByDistrict)
			}
			if len(res.ByTaluk) > 0 {
				renderCounts(opts.newTable(out, "By taluk"), "Taluk", res.ByTaluk)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", string(importer.VariantStrict), "header matching variant (strict, extended)")
	return cmd
}

// renderCounts prints a name/count table sorted by descending count then name
func renderCounts(t table.Writer, label string, counts map[string]int) {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	t.AppendHeader(table.Row{label, "Count"})
	for _, name := range names {
		t.AppendRow(table.Row{name, counts[name]})
	}
	t.Render()
}
