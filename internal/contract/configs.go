package contract

import (
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/healthdash/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	MaxPrecision     = 4
)

// Config holds the runtime configuration for normalization and chart assembly.
// This struct is the "final, validated" config.
type Config struct {
	InputPath       string // Dataset for the normalize command
	CholesterolPath string
	BMIPath         string

	Format schema.InputFormat
	Sheet  string // Worksheet for xlsx inputs (empty = first sheet)

	IDColumn     string
	KeepColumns  []string
	ValueColumns []string
	Countries    []string
	Missing      schema.MissingPolicy

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	UseColors bool // Enable colored titles in table output
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Format       string   `mapstructure:"format"`
	Sheet        string   `mapstructure:"sheet"`
	IDColumn     string   `mapstructure:"id-column"`
	KeepColumns  []string `mapstructure:"keep-columns"`
	ValueColumns []string `mapstructure:"value-columns"`
	Countries    []string `mapstructure:"countries"`
	Missing      string   `mapstructure:"missing"`
	Output       string   `mapstructure:"output"`
	OutputFile   string   `mapstructure:"output-file"`
	Precision    int      `mapstructure:"precision"`
	Width        int      `mapstructure:"width"`
	Color        string   `mapstructure:"color"`

	// --- Fields from figuresCmd.Flags() ---
	Cholesterol string `mapstructure:"cholesterol"`
	BMI         string `mapstructure:"bmi"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.KeepColumns = slices.Clone(c.KeepColumns)
	clone.ValueColumns = slices.Clone(c.ValueColumns)
	clone.Countries = slices.Clone(c.Countries)
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processColumns(cfg, input); err != nil {
		return err
	}
	if err := processCountries(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-column fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.InputPath = strings.TrimSpace(input.InputPathStr)
	cfg.OutputFile = input.OutputFile
	cfg.Sheet = input.Sheet
	cfg.Width = input.Width

	cfg.CholesterolPath = input.Cholesterol
	if cfg.CholesterolPath == "" {
		cfg.CholesterolPath = schema.DefaultCholesterolPath
	}
	cfg.BMIPath = input.BMI
	if cfg.BMIPath == "" {
		cfg.BMIPath = schema.DefaultBMIPath
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Format Validation ---
	cfg.Format = schema.InputFormat(strings.ToLower(input.Format))
	if cfg.Format == "" {
		cfg.Format = schema.AutoFormat
	}
	if _, ok := schema.ValidInputFormats[cfg.Format]; !ok {
		return fmt.Errorf("invalid input format '%s'. must be auto, csv, xlsx", input.Format)
	}

	// --- 2. Missing Policy Validation ---
	cfg.Missing = schema.MissingPolicy(strings.ToLower(input.Missing))
	if cfg.Missing == "" {
		cfg.Missing = schema.KeepMissing
	}
	if _, ok := schema.ValidMissingPolicies[cfg.Missing]; !ok {
		return fmt.Errorf("invalid missing policy '%s'. must be keep, error", input.Missing)
	}

	// --- 3. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for %s output", cfg.Output)
	}

	return nil
}

// processColumns validates the retained columns and the value columns melted from them.
func processColumns(cfg *Config, input *ConfigRawInput) error {
	cfg.IDColumn = strings.TrimSpace(input.IDColumn)
	if cfg.IDColumn == "" {
		cfg.IDColumn = schema.DefaultIDColumn
	}

	cfg.KeepColumns = ParseList(input.KeepColumns)
	if len(cfg.KeepColumns) == 0 {
		cfg.KeepColumns = schema.DefaultKeepColumns()
	}
	if !schema.ContainsString(cfg.KeepColumns, cfg.IDColumn) {
		return fmt.Errorf("keep-columns must include the id column %q", cfg.IDColumn)
	}

	cfg.ValueColumns = ParseList(input.ValueColumns)
	if len(cfg.ValueColumns) == 0 {
		cfg.ValueColumns = schema.DefaultValueColumns()
	}

	seen := make(map[string]struct{}, len(cfg.ValueColumns))
	for _, col := range cfg.ValueColumns {
		if col == cfg.IDColumn {
			return fmt.Errorf("value-columns cannot include the id column %q", cfg.IDColumn)
		}
		if !schema.ContainsString(cfg.KeepColumns, col) {
			return fmt.Errorf("value column %q is not among keep-columns", col)
		}
		if _, dup := seen[col]; dup {
			return fmt.Errorf("value column %q is listed more than once", col)
		}
		seen[col] = struct{}{}
		if _, err := schema.ParseYear(col); err != nil {
			return fmt.Errorf("value column %q does not name a year: %w", col, err)
		}
	}
	return nil
}

// processCountries resolves the country allow-list.
func processCountries(cfg *Config, input *ConfigRawInput) error {
	cfg.Countries = ParseList(input.Countries)
	if len(cfg.Countries) == 0 {
		cfg.Countries = schema.DefaultCountries()
	}
	return nil
}

// RevalidateColumns re-runs column validation after overrides on an existing config.
// It is used by callers that patch a cloned config, such as MCP tool handlers.
func RevalidateColumns(cfg *Config) error {
	input := &ConfigRawInput{
		IDColumn:     cfg.IDColumn,
		KeepColumns:  cfg.KeepColumns,
		ValueColumns: cfg.ValueColumns,
		Countries:    cfg.Countries,
	}
	if err := processColumns(cfg, input); err != nil {
		return err
	}
	return processCountries(cfg, input)
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if prefix := strings.TrimSpace(profilePrefix); prefix != "" {
		profile.Enabled = true
		profile.Prefix = prefix
	}
	return nil
}
