// Package analyzer is the single entry point of the classification core.
// It orchestrates mapping, fusion, and symbolic encoding into one linear
// pipeline per call. The analyzer holds no per-call state: every Analyze
// call is independent and callers may run them concurrently without
// locking.
package analyzer

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mayalegal/internal/classify"
	"mayalegal/internal/encoding"
	"mayalegal/internal/lexicon"
)

// ErrInputTooLarge is returned when input exceeds the configured maximum
// size. The input is rejected rather than truncated so results stay
// reproducible.
var ErrInputTooLarge = errors.New("input exceeds maximum document size")

// DefaultMaxInputSize bounds accepted input at 1 MiB of UTF-8 text.
const DefaultMaxInputSize = 1 << 20

// Options carries the construction-time parameters supplied by the
// configuration loader. The analyzer treats them as immutable for its
// lifetime.
type Options struct {
	// MaxInputSize is the largest accepted input in bytes. Zero means
	// DefaultMaxInputSize.
	MaxInputSize int

	// SymbolThreshold is the normalized score above which secondary
	// categories are included in the symbol output. Zero means
	// encoding.DefaultThreshold.
	SymbolThreshold float64
}

// Result is the immutable record produced by one Analyze call. It is
// owned by the caller; the analyzer keeps no reference to it.
type Result struct {
	InputText        string                `json:"input_text"`
	Scores           classify.ScoreVector  `json:"score_vector"`
	Fusion           classify.FusionResult `json:"fusion_result"`
	UniversalSymbols []string              `json:"universal_symbols"`
	DomainSymbols    []string              `json:"domain_symbols"`
}

// Analyzer is the pipeline facade.
type Analyzer struct {
	lex     *lexicon.Lexicon
	mapper  *classify.SymbolMapper
	encoder *encoding.Encoder
	maxSize int
	log     *zap.Logger
}

// New wires the pipeline over a validated lexicon and the two symbol
// alphabets. Alphabet or option validation failures are configuration
// errors and abort construction.
func New(lex *lexicon.Lexicon, universal, domain *encoding.Alphabet, opts Options, log *zap.Logger) (*Analyzer, error) {
	if lex == nil {
		return nil, fmt.Errorf("analyzer: lexicon required")
	}
	if universal == nil || domain == nil {
		return nil, fmt.Errorf("analyzer: both symbol alphabets required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MaxInputSize < 0 {
		return nil, fmt.Errorf("analyzer: negative max input size %d", opts.MaxInputSize)
	}
	if opts.MaxInputSize == 0 {
		opts.MaxInputSize = DefaultMaxInputSize
	}
	if opts.SymbolThreshold < 0 || opts.SymbolThreshold >= 1 {
		return nil, fmt.Errorf("analyzer: symbol threshold %v outside [0,1)", opts.SymbolThreshold)
	}

	return &Analyzer{
		lex:     lex,
		mapper:  classify.NewSymbolMapper(lex),
		encoder: encoding.NewEncoder(universal, domain, opts.SymbolThreshold),
		maxSize: opts.MaxInputSize,
		log:     log,
	}, nil
}

// NewDefault builds an analyzer over the built-in lexicon and alphabets.
func NewDefault(opts Options, log *zap.Logger) (*Analyzer, error) {
	return New(lexicon.Default(), encoding.Universal(), encoding.Domain(), opts, log)
}

// Analyze classifies one text. Empty input is not an error: it yields the
// Unclassified sentinel with confidence 0 and the none tokens. Input over
// the size limit returns ErrInputTooLarge and no result.
func (a *Analyzer) Analyze(text string) (*Result, error) {
	if len(text) > a.maxSize {
		a.log.Debug("rejecting oversized input",
			zap.Int("size", len(text)),
			zap.Int("limit", a.maxSize))
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrInputTooLarge, len(text), a.maxSize)
	}

	scores := a.mapper.Map(text)
	fusion := classify.Fuse(scores)
	universal, domain := a.encoder.Encode(fusion)

	a.log.Debug("analysis complete",
		zap.String("best", string(fusion.Best)),
		zap.Float64("confidence", fusion.Confidence),
		zap.Int("symbols", len(universal)))

	return &Result{
		InputText:        text,
		Scores:           scores,
		Fusion:           fusion,
		UniversalSymbols: universal,
		DomainSymbols:    domain,
	}, nil
}

// Lexicon exposes the read-only keyword table for introspection tooling.
func (a *Analyzer) Lexicon() *lexicon.Lexicon { return a.lex }

// LexiconVersion is the fingerprint cache collaborators must mix into
// their keys.
func (a *Analyzer) LexiconVersion() string { return a.lex.Version() }

// MaxInputSize returns the configured input bound in bytes.
func (a *Analyzer) MaxInputSize() int { return a.maxSize }
