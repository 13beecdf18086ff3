package cmd

import (
	"github.com/huangsam/healthdash/core"
	"github.com/huangsam/healthdash/internal/contract"
	"github.com/spf13/cobra"
)

// figuresCmd builds the three dashboard charts.
var figuresCmd = &cobra.Command{
	Use:   "figures",
	Short: "Build the cholesterol, BMI and cholesterol vs BMI charts.",
	Long: `Normalize the cholesterol and BMI datasets and assemble the dashboard charts:

1. Cholesterol levels over time (one line per country)
2. BMI levels over time (one line per country)
3. Cholesterol vs BMI (one marker set per country, points paired by year)

Use --output json to get plotly-compatible figure descriptions.

Examples:
  # Inspect the charts in the terminal
  healthdash figures

  # Write plotly figures for the dashboard
  healthdash figures --output json --output-file figures.json

  # Use other datasets
  healthdash figures --cholesterol male_cholesterol.csv --bmi male_BMI.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteFigures(rootCtx, cfg, loader, writer); err != nil {
			contract.LogFatal("Cannot build figures", err)
		}
	},
}
