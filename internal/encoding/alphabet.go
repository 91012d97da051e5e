// Package encoding renders classification decisions as symbol tokens.
// Two parallel alphabets exist over the same category set: a universal
// geometric set and a domain-flavored hieroglyphic set. They are pure
// lookup tables; swapping an alphabet never touches scoring logic.
package encoding

import (
	"fmt"

	"mayalegal/internal/lexicon"
)

// Alphabet is a total mapping from the closed category set to display
// tokens, plus a designated token for the Unclassified sentinel.
type Alphabet struct {
	name   string
	tokens map[lexicon.Category]string
	none   string
}

// NewAlphabet validates totality over the category set. A missing category
// is a startup configuration error: partial alphabets could silently drop
// symbols at render time.
func NewAlphabet(name string, tokens map[lexicon.Category]string, none string) (*Alphabet, error) {
	if name == "" {
		return nil, fmt.Errorf("alphabet: name required")
	}
	if none == "" {
		return nil, fmt.Errorf("alphabet %q: none token required", name)
	}
	for _, cat := range lexicon.Categories {
		if tokens[cat] == "" {
			return nil, fmt.Errorf("alphabet %q: missing token for category %q", name, cat)
		}
	}
	cp := make(map[lexicon.Category]string, len(tokens))
	for _, cat := range lexicon.Categories {
		cp[cat] = tokens[cat]
	}
	return &Alphabet{name: name, tokens: cp, none: none}, nil
}

// Name returns the alphabet identifier ("universal" or "domain" for the
// built-ins).
func (a *Alphabet) Name() string { return a.name }

// Token returns the symbol for a category. Total over the closed set plus
// the Unclassified sentinel; unknown categories also map to the none
// token so rendering can never fail.
func (a *Alphabet) Token(c lexicon.Category) string {
	if tok, ok := a.tokens[c]; ok {
		return tok
	}
	return a.none
}

// NoneToken returns the token rendered for the Unclassified sentinel.
func (a *Alphabet) NoneToken() string { return a.none }

// Tokens returns a copy of the category-to-token table for introspection.
func (a *Alphabet) Tokens() map[lexicon.Category]string {
	cp := make(map[lexicon.Category]string, len(a.tokens))
	for k, v := range a.tokens {
		cp[k] = v
	}
	return cp
}

func mustAlphabet(name string, tokens map[lexicon.Category]string, none string) *Alphabet {
	a, err := NewAlphabet(name, tokens, none)
	if err != nil {
		panic(fmt.Sprintf("encoding: built-in alphabet invalid: %v", err))
	}
	return a
}

// Universal is the geometric symbol set.
func Universal() *Alphabet {
	return mustAlphabet("universal", map[lexicon.Category]string{
		lexicon.Justice:     "⚖️",
		lexicon.Statute:     "📜",
		lexicon.Authority:   "🏛️",
		lexicon.Enforcement: "⚡",
		lexicon.Contract:    "📋",
		lexicon.Evidence:    "🔍",
		lexicon.Penalty:     "⚠️",
		lexicon.Rights:      "🛡️",
	}, "∅")
}

// Domain is the hieroglyphic symbol set. Purely cosmetic relabeling of the
// same categories; kept separate so branding changes stay out of scoring.
func Domain() *Alphabet {
	return mustAlphabet("domain", map[lexicon.Category]string{
		lexicon.Justice:     "𓊪𓏏𓇯",
		lexicon.Statute:     "𓈖𓏏𓈖",
		lexicon.Authority:   "𓉐𓂋𓏏",
		lexicon.Enforcement: "𓊃𓈖𓏏",
		lexicon.Contract:    "𓈖𓃀𓏏",
		lexicon.Evidence:    "𓌃𓂋𓏏",
		lexicon.Penalty:     "𓊃𓈖𓂋",
		lexicon.Rights:      "𓊪𓏏𓊪",
	}, "𓂜")
}
