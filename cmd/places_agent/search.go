package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-toolkit/internal/config"
	"github.com/jonathan/seo-toolkit/internal/places"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for places by text query",
	Long:  `Searches for places matching a text query, e.g. "Starbucks in New York".`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var (
	searchSave      bool
	searchOutputDir string
)

func init() {
	searchCmd.Flags().BoolVar(&searchSave, "save", false, "Save results to a JSON file")
	searchCmd.Flags().StringVar(&searchOutputDir, "output-dir", ".", "Directory to save results in")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadPlaces()
	if err != nil {
		return err
	}

	query := args[0]
	fmt.Fprintf(os.Stdout, "Searching for: %s\n", query)

	client := places.NewClient(cfg.APIKey)
	resp, err := client.Search(cmd.Context(), query)
	if err != nil {
		return err
	}

	places.DisplaySearchResults(os.Stdout, resp)

	if searchSave {
		path, err := places.SaveSearch(searchOutputDir, query, resp)
		if err != nil {
			fmt.Fprintf(os.Stdout, "Error saving search results: %v\n", err)
			return nil
		}
		fmt.Fprintf(os.Stdout, "Search results saved to %s\n", path)
	}

	return nil
}
