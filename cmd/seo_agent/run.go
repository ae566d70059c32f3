package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-toolkit/internal/config"
	"github.com/jonathan/seo-toolkit/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run <url>",
	Short: "Start a pipeline run for a URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

var (
	runPollAfter bool
	runOutputDir string
)

func init() {
	runCmd.Flags().BoolVar(&runPollAfter, "poll", false, "Automatically poll for results after starting")
	runCmd.Flags().StringVar(&runOutputDir, "output-dir", "files", "Base directory to save output files")

	rootCmd.AddCommand(runCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadPipeline()
	if err != nil {
		return err
	}

	url := args[0]
	client := pipeline.NewClient(cfg)
	resp, err := client.Start(cmd.Context(), url)
	if err != nil {
		return err
	}
	if resp.RunID == "" {
		fmt.Fprintf(os.Stdout, "Failed to retrieve run_id. Response: %s\n", string(resp.Raw))
		return fmt.Errorf("pipeline start did not return a run_id")
	}

	fmt.Fprintf(os.Stdout, "Pipeline started with run_id: %s\n", resp.RunID)

	if runPollAfter {
		fmt.Fprintln(os.Stdout, "\nStarting automatic polling...")
		return pollRun(cmd, client, resp.RunID, pipeline.DefaultPollInterval, url, runOutputDir)
	}

	fmt.Fprintf(os.Stdout, "Use 'seo_agent poll %s --url %s' to monitor progress\n", resp.RunID, url)
	return nil
}
