package cmd

import (
	"github.com/huangsam/healthdash/core"
	"github.com/huangsam/healthdash/internal/contract"
	"github.com/spf13/cobra"
)

// normalizeCmd reshapes a single wide dataset into long records.
var normalizeCmd = &cobra.Command{
	Use:   "normalize <dataset>",
	Short: "Reshape a wide indicator table into (country, year, value) records.",
	Long: `Load a wide table with one row per country and one column per year,
keep the configured columns and countries, and melt it into long records.

Blank or NA cells are kept as missing values unless --missing error is set.
Non-numeric cells always fail the run.

Examples:
  # Normalize the bundled cholesterol table
  healthdash normalize data/female_cholesterol.csv

  # Melt more years for a custom allow-list
  healthdash normalize data/female_BMI.csv --keep-columns Country,1980,1995,2008 \
    --value-columns 1980,1995,2008 --countries "United States,Mexico"

  # Export to Parquet for downstream tools
  healthdash normalize data/female_BMI.csv --output parquet --output-file bmi.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteNormalize(rootCtx, cfg, loader, writer); err != nil {
			contract.LogFatal("Cannot normalize dataset", err)
		}
	},
}
