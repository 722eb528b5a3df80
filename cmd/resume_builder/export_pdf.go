package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/pdf"
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Render a resume document to PDF",
	Long:  "Renders a resume document JSON file to an A4 PDF using headless Chrome. Requires Chrome or Chromium on the machine (set CHROME_PATH to override discovery).",
	RunE:  runExportPDF,
}

var (
	exportPDFInputFile  string
	exportPDFOutputFile string
)

func init() {
	exportPDFCmd.Flags().StringVarP(&exportPDFInputFile, "input", "i", "", "Path to resume document JSON file (required)")
	exportPDFCmd.Flags().StringVarP(&exportPDFOutputFile, "out", "o", "resume.pdf", "Path to output PDF file")
	_ = exportPDFCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(exportPDFInputFile)
	if err != nil {
		return err
	}

	html, err := pdf.BuildHTML(doc)
	if err != nil {
		return fmt.Errorf("failed to build preview HTML: %w", err)
	}

	data, err := pdf.NewRenderer().RenderHTML(context.Background(), html)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	if err := os.WriteFile(exportPDFOutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "PDF written to %s (%d bytes)\n", exportPDFOutputFile, len(data))
	return nil
}
