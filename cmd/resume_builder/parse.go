package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/latex"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract structured data from LaTeX source",
	Long:  "Reads a .tex file and extracts a structured resume document. Parsing is best-effort: sections that cannot be recognized come back empty.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "input", "i", "", "Path to .tex file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	_ = parseCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	doc := latex.Parse(string(content))

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document JSON: %w", err)
	}

	if parseOutputFile == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(parseOutputFile, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Document written to %s\n", parseOutputFile)
	return nil
}
