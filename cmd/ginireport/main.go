// Command ginireport renders the pre-tax vs post-tax income inequality
// comparison from a World Bank Gini CSV.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sartorproj/ginireport/charts"
	"github.com/sartorproj/ginireport/dataset"
	"github.com/sartorproj/ginireport/report"
	"github.com/sartorproj/ginireport/timeseries"
)

var (
	inputPath string
	outDir    string
	year      int
	window    int
	topN      int
)

var rootCmd = &cobra.Command{
	Use:   "ginireport",
	Short: "Render pre-tax vs post-tax income inequality charts",
	Long: `ginireport loads a World Bank Gini-coefficient CSV, repairs sparse
per-country coverage by propagating known values across up to five missing
years in each direction, and renders a scatter plot and a lollipop chart
comparing pre-tax and post-tax inequality for one year. The complete
single-year table is also exported as an Excel workbook.`,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "gini.csv", "input CSV file")
	rootCmd.Flags().StringVarP(&outDir, "outdir", "o", ".", "directory for the rendered artifacts")
	rootCmd.Flags().IntVarP(&year, "year", "y", 2020, "snapshot year")
	rootCmd.Flags().IntVarP(&window, "window", "w", timeseries.DefaultFillWindow, "max years a known value is propagated across")
	rootCmd.Flags().IntVar(&topN, "top", 30, "countries shown in the lollipop chart (0 = all)")
}

func run(cmd *cobra.Command, args []string) error {
	table, err := dataset.Load(inputPath, nil)
	if err != nil {
		return fmt.Errorf("load %s: %w", inputPath, err)
	}
	log.Printf("loaded %d rows across %d entities", table.Len(), len(table.Entities()))

	table = table.FillGaps(window).SpreadContinent()
	log.Printf("after gap repair: %d rows", table.Len())

	snap := report.Build(table, year)
	if len(snap.Countries) == 0 {
		return fmt.Errorf("no country has both Gini metrics and a continent for %d", year)
	}
	log.Printf("snapshot %d: %d countries on %d continents", year, len(snap.Countries), len(snap.Continents()))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	scatterPath := filepath.Join(outDir, fmt.Sprintf("gini_scatter_%d.png", year))
	if err := charts.Scatter(snap, scatterPath, nil); err != nil {
		return fmt.Errorf("render scatter: %w", err)
	}

	lollipopOpts := charts.DefaultLollipopOptions()
	lollipopOpts.Top = topN
	lollipopPath := filepath.Join(outDir, fmt.Sprintf("gini_lollipop_%d.png", year))
	if err := charts.Lollipop(snap, lollipopPath, lollipopOpts); err != nil {
		return fmt.Errorf("render lollipop: %w", err)
	}

	xlsxPath := filepath.Join(outDir, fmt.Sprintf("gini_%d.xlsx", year))
	if err := report.WriteXLSX(snap, xlsxPath); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	log.Printf("wrote %s, %s, %s", scatterPath, lollipopPath, xlsxPath)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
