package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mayalegal/internal/batch"
)

// batchAnalyzeCmd analyzes every document in a directory.
var batchAnalyzeCmd = &cobra.Command{
	Use:   "batch-analyze [directory]",
	Short: "Analyze all legal documents in a directory",
	Long: `Discovers documents by extension (default .txt and .md), analyzes them
across a bounded worker pool, and prints a per-document summary. A
document that fails to read or exceeds the size limit is reported and
skipped; it never aborts the rest of the batch.

Example:
  mayalegal batch-analyze ./contracts --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatchAnalyze,
}

var batchWorkers int

func init() {
	batchAnalyzeCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent workers (default from config)")
}

func runBatchAnalyze(cmd *cobra.Command, args []string) error {
	a, err := buildAnalyzer()
	if err != nil {
		return err
	}

	workers := cfg.Batch.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}

	cache := openCache()
	if cache != nil {
		defer cache.Close()
		// Entries computed under older keyword tables can never be served
		// again, so drop them before the run.
		if n, err := cache.Purge(a.LexiconVersion()); err == nil && n > 0 {
			logger.Debug("purged stale cache entries", zap.Int64("entries", n))
		}
	}

	runner := batch.NewRunner(a, cache, workers, cfg.Batch.Extensions, logger)
	summary, err := runner.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return emitBatchSummary(cmd, summary)
}
