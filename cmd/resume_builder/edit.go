package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/pipeline"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Apply an AI edit to a resume document",
	Long:  "Runs the edit pipeline against a resume document JSON file: generates LaTeX when needed, sends it to Gemini with the instruction, re-parses the result, and re-scores it.",
	RunE:  runEdit,
}

var (
	editInputFile   string
	editOutputFile  string
	editInstruction string
	editTimeout     time.Duration
)

func init() {
	editCmd.Flags().StringVarP(&editInputFile, "input", "i", "", "Path to resume document JSON file (required)")
	editCmd.Flags().StringVarP(&editInstruction, "instruction", "m", "", "Edit instruction, e.g. \"make the summary more concise\" (required)")
	editCmd.Flags().StringVarP(&editOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	editCmd.Flags().DurationVar(&editTimeout, "timeout", 2*time.Minute, "Timeout for the rewrite call")
	_ = editCmd.MarkFlagRequired("input")
	_ = editCmd.MarkFlagRequired("instruction")

	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	doc, err := loadDocument(editInputFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), editTimeout)
	defer cancel()

	rewriter, err := llm.NewGeminiRewriter(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		return fmt.Errorf("failed to create rewriter: %w", err)
	}
	defer rewriter.Close()

	result, err := pipeline.Edit(ctx, doc, editInstruction, rewriter)
	if err != nil {
		return fmt.Errorf("edit failed: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if editOutputFile == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(editOutputFile, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Result written to %s (score %d/100)\n", editOutputFile, result.Report.Score)
	return nil
}
