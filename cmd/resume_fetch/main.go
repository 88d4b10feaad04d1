// Package main provides the entry point for the resume_fetch CLI.
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
	Use:   "resume_fetch [URL]",
	Short: "Fetch a JSON resume and print a summary",
	Long: `Fetches a resume document (JSON) from a remote endpoint, optionally with basic auth, and prints a formatted summary of contact info, projects, education, experience and skills.

Configuration is layered: environment (and .env) < --config file < flags < positional URL.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFetch,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
