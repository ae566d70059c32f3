package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-toolkit/internal/config"
	"github.com/jonathan/seo-toolkit/internal/pipeline"
)

var resultsCmd = &cobra.Command{
	Use:   "results <run-id>",
	Short: "Get results for a given run ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runResults,
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadPipeline()
	if err != nil {
		return err
	}

	client := pipeline.NewClient(cfg)
	run, err := client.GetRun(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, string(run.Raw))
	return nil
}
