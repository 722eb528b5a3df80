package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/latex"
	"github.com/jonathan/resume-builder/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate LaTeX source from a resume document",
	Long:  "Reads a structured resume document from a JSON file and renders complete, compilable LaTeX source for the selected template.",
	RunE:  runGenerate,
}

var (
	generateInputFile  string
	generateOutputFile string
	generateTemplate   string
)

func init() {
	generateCmd.Flags().StringVarP(&generateInputFile, "input", "i", "", "Path to resume document JSON file (required)")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to output .tex file (defaults to stdout)")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Template to use: modern or classic (defaults to the document's selection)")
	_ = generateCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(generateInputFile)
	if err != nil {
		return err
	}

	tmpl := doc.SelectedTemplate
	if generateTemplate != "" {
		tmpl = types.NormalizeTemplate(generateTemplate)
	}

	source := latex.Generate(doc, tmpl)

	if generateOutputFile == "" {
		fmt.Println(source)
		return nil
	}
	if err := os.WriteFile(generateOutputFile, []byte(source), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "LaTeX written to %s\n", generateOutputFile)
	return nil
}

// loadDocument reads a ResumeDocument from a JSON file.
func loadDocument(path string) (*types.ResumeDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document JSON: %w", err)
	}
	return &doc, nil
}
