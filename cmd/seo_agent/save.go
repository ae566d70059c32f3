package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-toolkit/internal/config"
	"github.com/jonathan/seo-toolkit/internal/pipeline"
)

var saveCmd = &cobra.Command{
	Use:   "save <run-id>",
	Short: "Save markdown output from a completed job",
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

var (
	saveURL       string
	saveOutputDir string
)

func init() {
	saveCmd.Flags().StringVar(&saveURL, "url", "", "URL to organize saved files by domain")
	saveCmd.Flags().StringVar(&saveOutputDir, "output-dir", "files", "Base directory to save output files")

	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadPipeline()
	if err != nil {
		return err
	}

	runID := args[0]
	client := pipeline.NewClient(cfg)
	run, err := client.GetRun(cmd.Context(), runID)
	if err != nil {
		return err
	}

	_, err = pipeline.SaveMarkdown(os.Stdout, saveOutputDir, runID, saveURL, run)
	return err
}
