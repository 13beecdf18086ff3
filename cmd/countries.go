package cmd

import (
	"github.com/huangsam/healthdash/core"
	"github.com/huangsam/healthdash/internal/contract"
	"github.com/spf13/cobra"
)

// countriesCmd compares the allow-list with the countries of a dataset.
var countriesCmd = &cobra.Command{
	Use:   "countries [dataset]",
	Short: "Show which allow-listed countries a dataset covers.",
	Long: `List the configured countries and whether each one has rows in the dataset,
followed by the dataset countries that the allow-list leaves out.

Defaults to the cholesterol dataset when no path is given.

Examples:
  healthdash countries
  healthdash countries data/female_BMI.csv --countries "United States,Mexico"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.InputPath == "" {
			cfg.InputPath = cfg.CholesterolPath
		}
		if err := core.ExecuteCountries(rootCtx, cfg, loader, writer); err != nil {
			contract.LogFatal("Cannot list countries", err)
		}
	},
}
