package main

import (
	"fmt"
	"os"

	"github.com/coleaeason/descstats/internal/log"
	"github.com/coleaeason/descstats/internal/math"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var version = "dev"

var (
	meanCollection   = []float64{1525, 257, 378, 9543, 7854, 152}
	sampleCollection = []float64{9, 5, 9, 4, 3, 6, 7, 1, 2, 3, 9, 1, 2}
)

type options struct {
	percentile float64
	precision  int
	summary    bool
}

func logMean(values []float64, precision int) error {
	mean, err := math.Mean(values)
	if err != nil {
		return fmt.Errorf("failed to compute mean: %w", err)
	}
	log.PrintSection("Mean")
	log.PrintFloat("Mean", mean, precision, "", log.Green)
	return nil
}

func logMode(values []float64) error {
	mode, err := math.Mode(values)
	if err != nil {
		return fmt.Errorf("failed to compute mode: %w", err)
	}
	log.PrintSection("Mode")
	log.PrintValue("Mode", mode, log.Magenta)
	return nil
}

func logMedian(values []float64, precision int) error {
	median, err := math.Median(values)
	if err != nil {
		return fmt.Errorf("failed to compute median: %w", err)
	}
	log.PrintSection("Median")
	log.PrintFloat("Median", median, precision, "", log.Yellow)
	return nil
}

func logPercentile(values []float64, p float64, precision int) error {
	pct, err := math.Percentile(values, p)
	if err != nil {
		return fmt.Errorf("failed to compute percentile: %w", err)
	}
	log.PrintSection("Percentiles")
	log.PrintFloat(fmt.Sprintf("P%v", p), pct, precision, "", log.Blue)
	return nil
}

func logSummary(p float64, precision int) error {
	collections := []struct {
		name   string
		values []float64
	}{
		{"mean", meanCollection},
		{"sample", sampleCollection},
	}

	var rows [][]string
	for _, c := range collections {
		s, err := math.Describe(c.values, p)
		if err != nil {
			return fmt.Errorf("failed to describe %s collection: %w", c.name, err)
		}
		rows = append(rows, []string{
			c.name,
			fmt.Sprintf("%d", s.Count),
			log.FormatFloat(s.Min, precision),
			log.FormatFloat(s.Max, precision),
			log.FormatFloat(s.Mean, precision),
			fmt.Sprintf("%v", s.Mode),
			log.FormatFloat(s.Median, precision),
			log.FormatFloat(s.Percentile, precision),
		})
	}

	log.PrintSection("Summary")
	return log.PrintTable(
		[]string{"Collection", "Count", "Min", "Max", "Mean", "Mode", "Median", fmt.Sprintf("P%v", p)},
		rows,
	)
}

func describe(opts options) error {
	if err := logMean(meanCollection, opts.precision); err != nil {
		return err
	}
	if err := logMode(sampleCollection); err != nil {
		return err
	}
	if err := logMedian(sampleCollection, opts.precision); err != nil {
		return err
	}
	if err := logPercentile(sampleCollection, opts.percentile, opts.precision); err != nil {
		return err
	}
	if opts.summary {
		return logSummary(opts.percentile, opts.precision)
	}
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "descstats",
		Usage:   "Descriptive statistics over the built-in sample collections",
		Version: version,
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:    "percentile",
				Aliases: []string{"p"},
				Value:   75,
				Usage:   "Percentile to report, between 0 and 100",
				EnvVars: []string{"DESCSTATS_PERCENTILE"},
			},
			&cli.IntFlag{
				Name:  "precision",
				Value: 4,
				Usage: "Decimal places for printed values",
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "Also print a summary table for every collection",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("no-color") {
				color.NoColor = true
			}
			return describe(options{
				percentile: c.Float64("percentile"),
				precision:  c.Int("precision"),
				summary:    c.Bool("summary"),
			})
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
