package core

import (
	"context"
	"fmt"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/schema"
)

// CompareCountries lists the allow-list in configured order followed by the dataset
// countries that the allow-list leaves out, in file order.
func CompareCountries(table *schema.WideTable, idColumn string, allowList []string) ([]schema.CountryEntry, error) {
	idIdx := table.ColumnIndex(idColumn)
	if idIdx < 0 {
		return nil, &schema.SchemaError{Path: table.Source, Column: idColumn}
	}

	present := make(map[string]struct{}, len(table.Rows))
	var datasetOrder []string
	for _, row := range table.Rows {
		name := cellAt(row, idIdx)
		if _, seen := present[name]; seen {
			continue
		}
		present[name] = struct{}{}
		datasetOrder = append(datasetOrder, name)
	}

	entries := make([]schema.CountryEntry, 0, len(allowList)+len(datasetOrder))
	selected := make(map[string]struct{}, len(allowList))
	for _, name := range allowList {
		selected[name] = struct{}{}
		_, ok := present[name]
		entries = append(entries, schema.CountryEntry{Name: name, Selected: true, Present: ok})
	}
	for _, name := range datasetOrder {
		if _, ok := selected[name]; ok {
			continue
		}
		entries = append(entries, schema.CountryEntry{Name: name, Present: true})
	}
	return entries, nil
}

// GetCountriesResults compares the configured allow-list with the countries in cfg.InputPath.
func GetCountriesResults(ctx context.Context, cfg *contract.Config, loader contract.TableLoader) ([]schema.CountryEntry, error) {
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("dataset path is required")
	}
	table, err := loader.Load(ctx, cfg.InputPath)
	if err != nil {
		return nil, err
	}
	return CompareCountries(table, cfg.IDColumn, cfg.Countries)
}

// ExecuteCountries runs the allow-list comparison and writes the entries.
func ExecuteCountries(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, writer contract.OutputWriter) error {
	entries, err := GetCountriesResults(ctx, cfg, loader)
	if err != nil {
		return err
	}
	return writer.WriteCountries(entries, cfg)
}
