package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mayalegal/internal/batch"
)

// analyzeCmd analyzes a single document file.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [document]",
	Short: "Analyze a legal document file",
	Long: `Reads a document, classifies it, and prints the category decision with
its symbol encodings.

Example:
  mayalegal analyze contract.txt
  mayalegal analyze contract.txt --json -o result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyzeFile,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the result to a file")
	analyzeCmd.Flags().StringVarP(&outputFm, "format", "f", "json", "Output file format (json or yaml)")
}

func runAnalyzeFile(cmd *cobra.Command, args []string) error {
	a, err := buildAnalyzer()
	if err != nil {
		return err
	}

	text, err := batch.ReadDocument(args[0])
	if err != nil {
		return err
	}

	cache := openCache()
	if cache != nil {
		defer cache.Close()
		if cached, ok, err := cache.Get(text, a.LexiconVersion()); err == nil && ok {
			return emitResult(cmd, cached)
		}
	}

	result, err := a.Analyze(text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cache != nil {
		if err := cache.Put(text, a.LexiconVersion(), "", result); err != nil {
			logger.Warn("cache write failed")
		}
	}

	return emitResult(cmd, result)
}
