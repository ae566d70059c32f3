// Package main implements the scrape_agent CLI for scraping URLs to markdown
// and screenshots via the Firecrawl API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scrape_agent <url>",
	Short: "Firecrawl API CLI tool",
	Long:  "Scrapes a URL for markdown content and/or a full-page screenshot using the Firecrawl API, saving results under a per-URL directory. Requires FIRECRAWL_API_KEY.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScrape,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
