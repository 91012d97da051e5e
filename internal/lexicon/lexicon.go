// Package lexicon defines the closed legal category set and the static
// keyword table that drives scoring. Both are loaded once at startup and
// never mutated afterwards; a malformed table is a fatal configuration
// error, not a per-call failure.
package lexicon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Category is one label in the closed classification set.
type Category string

const (
	Justice     Category = "justice"
	Statute     Category = "statute"
	Authority   Category = "authority"
	Enforcement Category = "enforcement"
	Contract    Category = "contract"
	Evidence    Category = "evidence"
	Penalty     Category = "penalty"
	Rights      Category = "rights"

	// Unclassified is the sentinel outcome when no entry matches.
	// It never appears in the lexicon itself.
	Unclassified Category = "unclassified"
)

// Categories lists the classification set in priority order. Score ties
// resolve to the earliest category here, so the order is part of the
// engine's contract and must stay stable across releases.
var Categories = []Category{
	Justice,
	Statute,
	Authority,
	Enforcement,
	Contract,
	Evidence,
	Penalty,
	Rights,
}

// Priority returns the tie-break rank of a category (lower wins).
// Unclassified and unknown categories rank last.
func Priority(c Category) int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return len(Categories)
}

// Valid reports whether c is a member of the closed set (sentinel excluded).
func Valid(c Category) bool {
	return Priority(c) < len(Categories)
}

// Entry maps one keyword or phrase to a category with a positive weight.
// Phrases are matched case-insensitively on word boundaries; every
// occurrence in a text contributes the weight again.
type Entry struct {
	Phrase   string   `json:"phrase" yaml:"phrase"`
	Category Category `json:"category" yaml:"category"`
	Weight   float64  `json:"weight" yaml:"weight"`
}

// DefaultEntries is the built-in keyword table. Weights are tiered per
// category: justice terms carry full weight, evidentiary and violation
// vocabulary less.
var DefaultEntries = []Entry{
	{"justice", Justice, 1.0},
	{"fair", Justice, 1.0},
	{"equitable", Justice, 1.0},
	{"balance", Justice, 1.0},
	{"just treatment", Justice, 1.0},
	{"due process", Justice, 1.0},

	{"law", Statute, 0.9},
	{"statute", Statute, 0.9},
	{"regulation", Statute, 0.9},
	{"legal code", Statute, 0.9},
	{"legislation", Statute, 0.9},

	{"court", Authority, 0.8},
	{"judge", Authority, 0.8},
	{"tribunal", Authority, 0.8},
	{"authority", Authority, 0.8},
	{"jurisdiction", Authority, 0.8},

	{"enforcement", Enforcement, 0.7},
	{"enforce", Enforcement, 0.7},
	{"sanction", Enforcement, 0.7},
	{"compel", Enforcement, 0.7},
	{"injunction", Enforcement, 0.7},

	{"contract", Contract, 0.8},
	{"agreement", Contract, 0.8},
	{"covenant", Contract, 0.8},
	{"terms and conditions", Contract, 0.8},
	{"breach of contract", Contract, 0.8},
	{"party", Contract, 0.4},

	{"evidence", Evidence, 0.6},
	{"proof", Evidence, 0.6},
	{"testimony", Evidence, 0.6},
	{"witness", Evidence, 0.6},
	{"burden of proof", Evidence, 0.6},

	{"penalty", Penalty, 0.5},
	{"penalties", Penalty, 0.5},
	{"fine", Penalty, 0.5},
	{"punishment", Penalty, 0.5},
	{"violation", Penalty, 0.5},
	{"breach", Penalty, 0.5},
	{"infringement", Penalty, 0.5},

	{"rights", Rights, 0.9},
	{"protection", Rights, 0.9},
	{"freedom", Rights, 0.9},
	{"liberty", Rights, 0.9},
	{"entitlement", Rights, 0.9},
}

// Lexicon is an immutable, validated keyword table.
type Lexicon struct {
	entries []Entry
	version string
}

// New validates entries and builds a Lexicon. It fails if any entry has an
// empty phrase, a non-positive weight, or an unknown category, or if any
// category in the closed set is left without coverage (an uncovered
// category could never be selected).
func New(entries []Entry) (*Lexicon, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("lexicon: no entries")
	}

	covered := make(map[Category]int, len(Categories))
	for i, e := range entries {
		phrase := strings.TrimSpace(e.Phrase)
		if phrase == "" {
			return nil, fmt.Errorf("lexicon: entry %d has an empty phrase", i)
		}
		if e.Weight <= 0 {
			return nil, fmt.Errorf("lexicon: entry %q has non-positive weight %v", e.Phrase, e.Weight)
		}
		if !Valid(e.Category) {
			return nil, fmt.Errorf("lexicon: entry %q references unknown category %q", e.Phrase, e.Category)
		}
		covered[e.Category]++
	}
	for _, cat := range Categories {
		if covered[cat] == 0 {
			return nil, fmt.Errorf("lexicon: category %q has no entries", cat)
		}
	}

	cp := make([]Entry, len(entries))
	copy(cp, entries)

	return &Lexicon{entries: cp, version: fingerprint(cp)}, nil
}

// Default returns a Lexicon built from DefaultEntries. The built-in table
// is known-valid; a failure here means the binary itself is broken.
func Default() *Lexicon {
	lex, err := New(DefaultEntries)
	if err != nil {
		panic(fmt.Sprintf("lexicon: built-in table invalid: %v", err))
	}
	return lex
}

// Entries returns a copy of the table for introspection tooling.
func (l *Lexicon) Entries() []Entry {
	cp := make([]Entry, len(l.entries))
	copy(cp, l.entries)
	return cp
}

// EntriesFor returns the entries mapped to a single category.
func (l *Lexicon) EntriesFor(c Category) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Coverage returns the entry count per category.
func (l *Lexicon) Coverage() map[Category]int {
	out := make(map[Category]int, len(Categories))
	for _, e := range l.entries {
		out[e.Category]++
	}
	return out
}

// Version is a stable fingerprint of the table contents. Cache keys must
// include it so results computed under an older table are never reused.
func (l *Lexicon) Version() string {
	return l.version
}

func fingerprint(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s|%s|%g", strings.ToLower(e.Phrase), e.Category, e.Weight)
	}
	sort.Strings(lines)
	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:])[:16]
}
