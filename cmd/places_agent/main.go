// Package main implements the places_agent CLI for place search and review
// retrieval via the Google Places API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "places_agent",
	Short: "Google Places API CLI tool",
	Long:  "Searches for places by text query and fetches reviews for a specific place using the Google Places API. Requires GOOGLE_PLACES_API_KEY.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
