package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-fetch/internal/rendering"
	"github.com/jonathan/resume-fetch/internal/resume"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print a summary of a local resume JSON file",
	Long:  "Reads a resume document from a file instead of fetching it, and prints the same summary as the root command.",
	RunE:  runPrint,
}

var (
	printInputFile string
	printFormat    string
)

func init() {
	printCmd.Flags().StringVarP(&printInputFile, "in", "i", "", "Path to input resume JSON file (required)")
	printCmd.Flags().StringVar(&printFormat, "format", rendering.FormatText, "Output format: text or json")

	if err := printCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(printInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", printInputFile, err)
	}
	return printResume(cmd, content, printFormat)
}

// printResume builds the model from a JSON document, defaults ongoing end
// dates to "Current" and renders it to the command's output.
func printResume(cmd *cobra.Command, content []byte, format string) error {
	model, err := resume.Parse(content)
	if err != nil {
		return fmt.Errorf("failed to build resume: %w", err)
	}
	model.FillCurrentEndDates()

	if err := rendering.Render(cmd.OutOrStdout(), model, format); err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}
	return nil
}
