package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-toolkit/internal/config"
	"github.com/jonathan/seo-toolkit/internal/pipeline"
)

var pollCmd = &cobra.Command{
	Use:   "poll <run-id>",
	Short: "Poll job status until completion",
	Args:  cobra.ExactArgs(1),
	RunE:  runPoll,
}

var (
	pollInterval  int
	pollURL       string
	pollOutputDir string
)

func init() {
	pollCmd.Flags().IntVar(&pollInterval, "interval", 2, "Polling interval in seconds")
	pollCmd.Flags().StringVar(&pollURL, "url", "", "URL to organize saved files by domain")
	pollCmd.Flags().StringVar(&pollOutputDir, "output-dir", "files", "Base directory to save output files")

	rootCmd.AddCommand(pollCmd)
}

func runPoll(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadPipeline()
	if err != nil {
		return err
	}

	client := pipeline.NewClient(cfg)
	interval := time.Duration(pollInterval) * time.Second
	return pollRun(cmd, client, args[0], interval, pollURL, pollOutputDir)
}

// pollRun drives the poll loop and reports the terminal outcome. A SIGINT
// mid-poll is a clean stop, not an error.
func pollRun(cmd *cobra.Command, client *pipeline.Client, runID string, interval time.Duration, url, outputDir string) error {
	run, err := client.Poll(cmd.Context(), os.Stdout, runID, interval)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stdout, "\nPolling interrupted by user")
			return nil
		}
		return err
	}

	client.ReportOutcome(os.Stdout, run, outputDir, url)
	return nil
}
