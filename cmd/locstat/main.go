// Package main provides a command line view of a loc log: the corpus
// statistics, the commit list, the scatterplot SVG and brush selections.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kamar-Folarin/portfolio-analytics/internal/analytics"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/chart"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/config"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/dashboard"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/loader"
	"github.com/Kamar-Folarin/portfolio-analytics/internal/utils"
)

const (
	defaultDataPath  = "meta/loc.csv"
	defaultChartFile = "chart.toml"
	defaultTimezone  = "UTC"
)

var (
	dataPath      string
	repoURL       string
	timezone      string
	chartFilePath string
	inferLanguage bool
	verbose       bool

	commitsLimit int
	renderOutput string
	selectRect   chart.Rect
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "locstat",
		Short:        "Inspect a lines-of-code log",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataPath, "data", defaultDataPath, "path or URL of loc.csv")
	flags.StringVar(&repoURL, "repo", "", "repository URL used for commit links")
	flags.StringVar(&timezone, "tz", defaultTimezone, "timezone commits are displayed in")
	flags.StringVar(&chartFilePath, "chart-config", defaultChartFile, "TOML chart config")
	flags.BoolVar(&inferLanguage, "infer-language", false, "detect missing languages from file names")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log loader progress to stderr")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newCommitsCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newSelectCmd())

	return rootCmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the corpus summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, _, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), data)
		},
	}
}

func newCommitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commits",
		Short: "List commits in first-seen order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, _, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			commits := data.Commits
			if commitsLimit > 0 && commitsLimit < len(commits) {
				commits = commits[:commitsLimit]
			}
			out := cmd.OutOrStdout()
			for _, c := range commits {
				fmt.Fprintf(out, "%s\t%s\t%s\t%d\n", c.ID, c.Author, data.Calendar.FormatFull(c.DateTime), c.TotalLines)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&commitsLimit, "limit", "n", 0, "maximum number of commits to print (0 for all)")
	return cmd
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the scatterplot as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, opts, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if renderOutput != "" && renderOutput != "-" {
				f, err := os.Create(renderOutput)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			return dashboard.New("", data, opts).WriteSVG(out)
		},
	}
	cmd.Flags().StringVarP(&renderOutput, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Brush a plot-area rectangle and print the selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, opts, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			rect := selectRect
			frame, err := dashboard.New("", data, opts).Dispatch(dashboard.Event{
				Type:      dashboard.BrushEnd,
				Selection: &rect,
			})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(frame.Selection)
		},
	}
	cmd.Flags().Float64Var(&selectRect.X0, "x0", 0, "left edge in plot coordinates")
	cmd.Flags().Float64Var(&selectRect.Y0, "y0", 0, "top edge in plot coordinates")
	cmd.Flags().Float64Var(&selectRect.X1, "x1", 0, "right edge in plot coordinates")
	cmd.Flags().Float64Var(&selectRect.Y1, "y1", 0, "bottom edge in plot coordinates")
	return cmd
}

func loadDataset(ctx context.Context) (*analytics.Dataset, dashboard.Options, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.ErrorLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, dashboard.Options{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	chartFile, err := config.LoadChartFile(chartFilePath)
	if err != nil {
		return nil, dashboard.Options{}, err
	}
	cal, err := chartFile.Calendar(loc)
	if err != nil {
		return nil, dashboard.Options{}, err
	}

	rows, err := loader.New(logger,
		loader.WithCalendar(cal),
		loader.WithLanguageInference(inferLanguage),
	).Load(ctx, dataPath)
	if err != nil {
		return nil, dashboard.Options{}, err
	}
	return analytics.NewDataset(rows, utils.CommitURLPrefix(repoURL), cal), chartFile.Options(), nil
}

func printSummary(w io.Writer, data *analytics.Dataset) error {
	for _, item := range data.Summary() {
		label := item.Label
		if item.Abbr != "" {
			label += " " + item.Abbr
		}
		if _, err := fmt.Fprintf(w, "%-24s %s\n", label, item.Value); err != nil {
			return err
		}
	}
	return nil
}
