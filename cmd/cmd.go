// Package cmd defines the command-line interface for healthdash.
package cmd

import (
	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(figuresCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcpCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("format", string(schema.AutoFormat), "Input format: auto or csv or xlsx")
	rootCmd.PersistentFlags().String("sheet", "", "Worksheet to read from xlsx inputs (default: first sheet)")
	rootCmd.PersistentFlags().String("id-column", schema.DefaultIDColumn, "Column holding the country name")
	rootCmd.PersistentFlags().StringSlice("keep-columns", schema.DefaultKeepColumns(), "Columns retained from the wide table")
	rootCmd.PersistentFlags().StringSlice("value-columns", schema.DefaultValueColumns(), "Year columns melted into records, in output order")
	rootCmd.PersistentFlags().StringSliceP("countries", "c", schema.DefaultCountries(), "Country allow-list (exact names)")
	rootCmd.PersistentFlags().String("missing", string(schema.KeepMissing), "Missing value policy: keep or error")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored titles in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of figuresCmd to Viper
	figuresCmd.Flags().String("cholesterol", schema.DefaultCholesterolPath, "Path to the cholesterol dataset")
	figuresCmd.Flags().String("bmi", schema.DefaultBMIPath, "Path to the BMI dataset")
	if err := viper.BindPFlags(figuresCmd.Flags()); err != nil {
		contract.LogFatal("Error binding figures flags", err)
	}
}
