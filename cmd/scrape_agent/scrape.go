package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/seo-toolkit/internal/config"
	"github.com/jonathan/seo-toolkit/internal/scrape"
)

var (
	scrapeMarkdownOnly    bool
	scrapeScreenshotOnly  bool
	scrapeOnlyMainContent bool
	scrapeWaitFor         int
	scrapeMaxAge          int
	scrapeNoSave          bool
	scrapeOutputDir       string
)

func init() {
	rootCmd.Flags().BoolVar(&scrapeMarkdownOnly, "markdown-only", false, "Extract only markdown content (no screenshot)")
	rootCmd.Flags().BoolVar(&scrapeScreenshotOnly, "screenshot-only", false, "Take only a screenshot (no markdown)")
	rootCmd.Flags().BoolVar(&scrapeOnlyMainContent, "only-main-content", false, "Extract only main content (skip ads, navigation, etc.)")
	rootCmd.Flags().IntVar(&scrapeWaitFor, "wait-for", scrape.DefaultWaitFor, "Time to wait for page load in seconds")
	rootCmd.Flags().IntVar(&scrapeMaxAge, "max-age", scrape.DefaultMaxAge, "Maximum age of cached content in milliseconds")
	rootCmd.Flags().BoolVar(&scrapeNoSave, "no-save", false, "Do not save results to files")
	rootCmd.Flags().StringVar(&scrapeOutputDir, "output-dir", "files", "Base directory to save output files")

	rootCmd.MarkFlagsMutuallyExclusive("markdown-only", "screenshot-only")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadScrape()
	if err != nil {
		return err
	}

	opts := scrape.DefaultOptions()
	opts.OnlyMainContent = scrapeOnlyMainContent
	opts.WaitFor = scrapeWaitFor
	opts.MaxAge = scrapeMaxAge
	if scrapeMarkdownOnly {
		opts.Screenshot = false
	}
	if scrapeScreenshotOnly {
		opts.Markdown = false
	}

	url := args[0]
	fmt.Fprintf(os.Stdout, "Scraping URL: %s\n", url)
	fmt.Fprintf(os.Stdout, "Formats: %s\n", strings.Join(opts.FormatNames(), ", "))

	client := scrape.NewClient(cfg.APIKey)
	resp, err := client.Scrape(cmd.Context(), url, opts)
	if err != nil {
		return err
	}

	scrape.DisplayResults(os.Stdout, resp)

	if !scrapeNoSave {
		if err := client.SaveResults(cmd.Context(), os.Stdout, scrapeOutputDir, url, opts, resp); err != nil {
			return err
		}
	}

	return nil
}
