package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-toolkit/internal/config"
	"github.com/jonathan/seo-toolkit/internal/places"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews <place-id>",
	Short: "Fetch reviews for a place",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviews,
}

var (
	reviewsSave      bool
	reviewsOutputDir string
)

func init() {
	reviewsCmd.Flags().BoolVar(&reviewsSave, "save", false, "Save results to a JSON file")
	reviewsCmd.Flags().StringVar(&reviewsOutputDir, "output-dir", ".", "Directory to save results in")

	rootCmd.AddCommand(reviewsCmd)
}

func runReviews(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadPlaces()
	if err != nil {
		return err
	}

	placeID := args[0]
	fmt.Fprintf(os.Stdout, "Fetching reviews for place ID: %s\n", placeID)

	client := places.NewClient(cfg.APIKey)
	place, err := client.FetchReviews(cmd.Context(), placeID)
	if err != nil {
		return err
	}

	places.DisplayReviews(os.Stdout, place)

	if reviewsSave {
		path, err := places.SaveReviews(reviewsOutputDir, place)
		if err != nil {
			fmt.Fprintf(os.Stdout, "Error saving reviews: %v\n", err)
			return nil
		}
		fmt.Fprintf(os.Stdout, "Reviews saved to %s\n", path)
	}

	return nil
}
