package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-fetch/internal/resume"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a resume JSON file can be loaded",
	Long:  "Parses a resume document and reports missing sections or field names that collide with record operations.",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to input resume JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(validateInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", validateInputFile, err)
	}

	model, err := resume.Parse(content)
	if err != nil {
		return fmt.Errorf("invalid resume: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "valid: %d contact fields, %d experience, %d projects, %d skill categories, %d education\n",
		model.Contact().Len(), len(model.Experience()), len(model.Projects()), model.Skills().Len(), len(model.Education()))
	return nil
}
