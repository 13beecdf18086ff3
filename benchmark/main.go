// Package main provides a performance benchmarking tool for the healthdash CLI.
// It generates synthetic wide datasets of increasing size, runs each command
// several times, treats the first successful run as cold and averages the rest as warm,
// and writes a CSV summary for performance analysis and documentation.
//
// Prerequisites:
// - healthdash binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where the synthetic datasets are written
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/healthdash/schema"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset  string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	Sizes    []int // Number of country rows per synthetic dataset
	FirstYr  int
	LastYr   int
	AllYears bool // Melt every year column instead of the default pair
}

// datasetPair is a cholesterol and BMI dataset of the same size.
type datasetPair struct {
	name        string
	cholesterol string
	bmi         string
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:  os.Args[1],
		Timeout:  2 * time.Minute,
		Runs:     5,
		Sizes:    []int{200, 2_000, 20_000, 200_000},
		FirstYr:  1980,
		LastYr:   2008,
		AllYears: true,
	}

	if _, err := exec.LookPath("healthdash"); err != nil {
		fmt.Printf("Prerequisites check failed: healthdash binary not found in PATH\n")
		os.Exit(1)
	}

	pairs, err := generateDatasets(config)
	if err != nil {
		fmt.Printf("Failed to generate datasets: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config, pairs)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// generateDatasets writes one synthetic cholesterol/BMI pair per configured size.
// Every dataset contains the default allow-list so that filtering keeps rows.
func generateDatasets(config BenchmarkConfig) ([]datasetPair, error) {
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(42, 1980))
	var pairs []datasetPair
	for _, size := range config.Sizes {
		name := fmt.Sprintf("rows_%d", size)
		pair := datasetPair{
			name:        name,
			cholesterol: filepath.Join(config.WorkDir, name+"_cholesterol.csv"),
			bmi:         filepath.Join(config.WorkDir, name+"_bmi.csv"),
		}
		if err := writeSyntheticCSV(pair.cholesterol, config, size, 4.0, 2.0, rng); err != nil {
			return nil, err
		}
		if err := writeSyntheticCSV(pair.bmi, config, size, 20.0, 10.0, rng); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// writeSyntheticCSV writes a wide table with values drawn from [base, base+spread).
func writeSyntheticCSV(path string, config BenchmarkConfig, rows int, base, spread float64, rng *rand.Rand) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{schema.DefaultIDColumn}
	for year := config.FirstYr; year <= config.LastYr; year++ {
		header = append(header, strconv.Itoa(year))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	countries := schema.DefaultCountries()
	for i := range rows {
		name := fmt.Sprintf("Synthetic %06d", i)
		if i < len(countries) {
			name = countries[i]
		}
		record := []string{name}
		for range header[1:] {
			record = append(record, strconv.FormatFloat(base+rng.Float64()*spread, 'f', 3, 64))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// yearColumns returns the value-column flags for the configured year range.
func yearColumns(config BenchmarkConfig) []string {
	if !config.AllYears {
		return nil
	}
	years := make([]string, 0, config.LastYr-config.FirstYr+1)
	for year := config.FirstYr; year <= config.LastYr; year++ {
		years = append(years, strconv.Itoa(year))
	}
	cols := strings.Join(years, ",")
	return []string{
		"--keep-columns", schema.DefaultIDColumn + "," + cols,
		"--value-columns", cols,
	}
}

// runBenchmarks executes both commands against every dataset pair.
func runBenchmarks(config BenchmarkConfig, pairs []datasetPair) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d runs each\n", len(pairs), config.Timeout, config.Runs)

	cols := yearColumns(config)
	for _, pair := range pairs {
		fmt.Printf("Benchmarking %s\n", pair.name)

		normalizeArgs := append([]string{"normalize", pair.cholesterol, "--output", "csv"}, cols...)
		results = append(results, runBenchmarkSuite(config, pair.name, "normalize", normalizeArgs))

		figuresArgs := append([]string{"figures", "--cholesterol", pair.cholesterol, "--bmi", pair.bmi, "--output", "json"}, cols...)
		results = append(results, runBenchmarkSuite(config, pair.name, "figures", figuresArgs))
	}

	return results
}

// runBenchmarkSuite runs a command several times and summarizes the timings.
func runBenchmarkSuite(config BenchmarkConfig, dataset, command string, args []string) BenchmarkResult {
	times := runBenchmark(config, args)

	coldTime, warmAvg := "TIMEOUT", "TIMEOUT"
	if len(times) > 0 {
		coldTime = fmt.Sprintf("%.3fs", times[0])
	}
	if len(times) > 1 {
		var sum float64
		for _, t := range times[1:] {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(times)-1))
	}

	fmt.Printf("  %-10s Cold time: %s, Warm average: %s\n", command, coldTime, warmAvg)
	return BenchmarkResult{Dataset: dataset, Command: command, ColdTime: coldTime, WarmTime: warmAvg}
}

// runBenchmark executes a healthdash command and returns the timings of the successful runs.
func runBenchmark(config BenchmarkConfig, args []string) []float64 {
	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("healthdash", args...)
		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.Output()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && len(output) > 0 {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
			<-done
		}
	}
	return times
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("healthdash_benchmark_%s.csv", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"dataset", "cmd", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, command := range []string{"normalize", "figures"} {
		fmt.Printf("%s:\n", strings.ToUpper(command[:1])+command[1:])
		for _, result := range results {
			if result.Command == command {
				fmt.Printf("  %-12s: Cold: %s, Warm: %s\n", result.Dataset, result.ColdTime, result.WarmTime)
			}
		}
	}
}
