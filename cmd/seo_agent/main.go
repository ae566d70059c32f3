// Package main implements the seo_agent CLI for submitting URLs to the
// content-optimization pipeline and polling runs to completion.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seo_agent",
	Short: "Content-optimization pipeline CLI",
	Long:  "Starts content-optimization pipeline runs, polls them to completion, and saves the resulting reports. Requires PIPELINE_API_KEY, PIPELINE_USER_ID and PIPELINE_SAVED_ITEM_ID.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Interrupt cancels an in-flight poll loop; the remote job keeps running.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
