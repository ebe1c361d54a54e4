// ═══════════════════════════════════════════════════════════════════════════════
// TEXT ANALYSIS
// ═══════════════════════════════════════════════════════════════════════════════
// Adapted from the donor's analyzer.go. Tokenization, stopwording, and
// stemming are how the donor turns prose into search terms; this package
// reuses the same pipeline for exactly one purpose — turning fixture text
// into realistic (docid, freq) posting streams for tests and benchmarks of
// the core FreqIndex. It is deliberately not exported outside this internal
// package and is not a lexicon: it never persists a dictionary artifact or
// performs binary-search lookup (SPEC_FULL.md §1, §6.3).
// ═══════════════════════════════════════════════════════════════════════════════

package corpus

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// analyzerConfig mirrors the donor's AnalyzerConfig.
type analyzerConfig struct {
	MinTokenLength  int
	EnableStemming  bool
	EnableStopwords bool
}

func defaultAnalyzerConfig() analyzerConfig {
	return analyzerConfig{MinTokenLength: 2, EnableStemming: true, EnableStopwords: true}
}

// analyze tokenizes, lowercases, strips stopwords, filters short tokens, and
// stems, in that order — the donor's AnalyzeWithConfig pipeline.
func analyze(text string) []string {
	cfg := defaultAnalyzerConfig()
	tokens := tokenize(text)
	tokens = lowercaseFilter(tokens)
	if cfg.EnableStopwords {
		tokens = stopwordFilter(tokens)
	}
	tokens = lengthFilter(tokens, cfg.MinTokenLength)
	if cfg.EnableStemming {
		tokens = stemmerFilter(tokens)
	}
	return tokens
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func lowercaseFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = strings.ToLower(token)
	}
	return r
}

func stopwordFilter(tokens []string) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isStopword(token) {
			r = append(r, token)
		}
	}
	return r
}

func lengthFilter(tokens []string, minLength int) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) >= minLength {
			r = append(r, token)
		}
	}
	return r
}

func stemmerFilter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = snowballeng.Stem(token, false)
	}
	return r
}

func isStopword(token string) bool {
	_, exists := englishStopwords[token]
	return exists
}

// englishStopwords is a short fixture-scale subset of the donor's full list
// (see _examples in the original repository for the ~300-entry version);
// this package only needs enough to make corpus fixtures read naturally.
var englishStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {}, "such": {},
	"that": {}, "the": {}, "their": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "to": {}, "was": {}, "will": {}, "with": {},
}
