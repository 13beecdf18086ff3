// Package core has the normalization and chart assembly logic for healthdash.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/schema"
)

// GetNormalizeResults normalizes the dataset at cfg.InputPath.
// It returns the long table and the time spent producing it.
func GetNormalizeResults(ctx context.Context, cfg *contract.Config, loader contract.TableLoader) (*schema.LongTable, time.Duration, error) {
	start := time.Now()
	if cfg.InputPath == "" {
		return nil, 0, fmt.Errorf("dataset path is required")
	}
	if !shouldSuppressHeader(ctx) {
		logNormalizeHeader(cfg)
	}

	table, err := CleanData(ctx, loader, cfg.InputPath, NormalizeOptionsFromConfig(cfg))
	if err != nil {
		return nil, 0, err
	}
	return table, time.Since(start), nil
}

// GetFiguresResults normalizes the cholesterol and BMI datasets and assembles the charts.
// It returns the figures and the time spent producing them.
func GetFiguresResults(ctx context.Context, cfg *contract.Config, loader contract.TableLoader) (schema.Figures, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		logFiguresHeader(cfg)
	}

	opts := NormalizeOptionsFromConfig(cfg)
	chol, err := CleanData(ctx, loader, cfg.CholesterolPath, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("cholesterol data: %w", err)
	}
	bmi, err := CleanData(ctx, loader, cfg.BMIPath, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("BMI data: %w", err)
	}

	return BuildFigures(chol, bmi), time.Since(start), nil
}

// ExecuteNormalize runs the normalizer and writes the long table.
// It serves as the main entry point for the 'normalize' command.
func ExecuteNormalize(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, writer contract.OutputWriter) error {
	table, duration, err := GetNormalizeResults(ctx, cfg, loader)
	if err != nil {
		return err
	}
	return writer.WriteRecords(table, cfg, duration)
}

// ExecuteFigures runs the full pipeline and writes the chart descriptions.
// It serves as the main entry point for the 'figures' command.
func ExecuteFigures(ctx context.Context, cfg *contract.Config, loader contract.TableLoader, writer contract.OutputWriter) error {
	if cfg.Output == schema.ParquetOut {
		return fmt.Errorf("%s output is not supported for figures", cfg.Output)
	}
	figures, duration, err := GetFiguresResults(ctx, cfg, loader)
	if err != nil {
		return err
	}
	return writer.WriteFigures(figures, cfg, duration)
}
