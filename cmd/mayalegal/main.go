package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mayalegal/internal/analyzer"
	"mayalegal/internal/config"
	"mayalegal/internal/store"
)

var (
	// Global flags
	cfgPath  string
	verbose  bool
	jsonOut  bool
	noCache  bool
	outPath  string
	outputFm string

	// Loaded at startup
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mayalegal",
	Short: "mayalegal - Symbolic legal document analysis",
	Long: `mayalegal classifies legal text into a fixed set of weighted domain
categories (justice, statute, authority, enforcement, contract, evidence,
penalty, rights) and renders the decision in two parallel symbol
alphabets.

The classifier is fully deterministic: the same text and keyword table
always produce the same category, confidence, and symbols.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		// Load configuration; a malformed file aborts startup.
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildAnalyzer constructs the pipeline from the loaded configuration.
// Lexicon or alphabet validation failures are fatal here, before any
// document is touched.
func buildAnalyzer() (*analyzer.Analyzer, error) {
	return analyzer.NewDefault(analyzer.Options{
		MaxInputSize:    cfg.Analyzer.MaxInputSize,
		SymbolThreshold: cfg.Analyzer.SymbolThreshold,
	}, logger)
}

// openCache returns the configured result cache, or nil when caching is
// disabled. Cache failures degrade to uncached operation rather than
// failing the analysis.
func openCache() *store.ResultCache {
	if noCache || !cfg.Cache.Enabled {
		return nil
	}
	cache, err := store.NewResultCache(cfg.Cache.Path, logger)
	if err != nil {
		logger.Warn("result cache unavailable, continuing without it", zap.Error(err))
		return nil
	}
	return cache
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", ".mayalegal/config.yaml", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print results as JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the result cache")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(analyzeTextCmd)
	rootCmd.AddCommand(batchAnalyzeCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(lexiconCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
