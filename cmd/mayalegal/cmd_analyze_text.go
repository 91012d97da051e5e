package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// analyzeTextCmd analyzes text passed directly on the command line.
var analyzeTextCmd = &cobra.Command{
	Use:   "analyze-text [text]",
	Short: "Analyze legal text directly",
	Long: `Classifies the given text without touching the filesystem.

Example:
  mayalegal analyze-text "This contract establishes terms for fair compensation"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyzeText,
}

func runAnalyzeText(cmd *cobra.Command, args []string) error {
	a, err := buildAnalyzer()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	result, err := a.Analyze(text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return emitResult(cmd, result)
}
