package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score [files...]",
	Short: "Score resume documents for ATS compatibility",
	Long:  "Scores one or more resume document JSON files on a 0-100 scale with actionable feedback. Multiple files are scored concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScore,
}

var scoreConcurrency int

func init() {
	scoreCmd.Flags().IntVar(&scoreConcurrency, "concurrency", 4, "Maximum number of files scored in parallel")
	rootCmd.AddCommand(scoreCmd)
}

type scoredFile struct {
	File   string          `json:"file"`
	Report *scoring.Report `json:"report"`
}

func runScore(_ *cobra.Command, args []string) error {
	var (
		mu      sync.Mutex
		results []scoredFile
	)

	g := new(errgroup.Group)
	g.SetLimit(scoreConcurrency)

	for _, path := range args {
		g.Go(func() error {
			doc, err := loadDocument(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			report := scoring.Score(doc)

			mu.Lock()
			results = append(results, scoredFile{File: path, Report: report})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Println(string(out))

	for _, res := range results {
		fmt.Fprintf(os.Stderr, "%s: %d/100\n", res.File, res.Report.Score)
	}
	return nil
}
