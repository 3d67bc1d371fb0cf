package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/comps-gg/tft-cli/internal/datastore"
	"github.com/comps-gg/tft-cli/internal/model"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Summarize the published documents",
	Long:  "Reads the documents back from the output directory and prints record counts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := datastore.New(cfg.Sync.OutputDir)
		bundle, err := store.All()
		if err != nil {
			return eris.Wrap(err, "show")
		}
		formatBundleSummary(os.Stdout, bundle)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// formatBundleSummary prints record counts for each document, with items
// broken down by category.
func formatBundleSummary(out io.Writer, bundle *datastore.Bundle) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "champions\t%d\n", len(bundle.Champions))
	_, _ = fmt.Fprintf(w, "traits\t%d\n", len(bundle.Traits))
	_, _ = fmt.Fprintf(w, "items\t%d\n", len(bundle.Items))

	counts := map[model.Category]int{}
	for _, it := range bundle.Items {
		counts[it.Category]++
	}
	for _, cat := range []model.Category{
		model.CategoryComponent,
		model.CategoryCombined,
		model.CategoryBilgewater,
		model.CategoryEmblem,
		model.CategoryArtifact,
	} {
		if counts[cat] > 0 {
			_, _ = fmt.Fprintf(w, "  %s\t%d\n", cat, counts[cat])
		}
	}
	_ = w.Flush()
}
