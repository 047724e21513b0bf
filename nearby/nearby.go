// Package nearby generates the words one edit away from a given word,
// filtered through a Dictionary. Words implements ladder.Provider.
package nearby

import (
	"errors"
	"unicode/utf8"
)

// DefaultAlphabet is used when no alphabet option is given.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// ErrDictionaryNil is returned by DistanceOne when no dictionary is set.
var ErrDictionaryNil = errors.New("nearby: dictionary is nil")

// Dictionary reports whether a string is a known word.
type Dictionary interface {
	IsWord(w string) bool
}

// Option configures Words.
type Option func(*Words)

// WithAlphabet sets the letters tried for substitution and insertion.
// An empty alphabet leaves the default in place.
func WithAlphabet(alphabet string) Option {
	return func(w *Words) {
		if alphabet != "" {
			w.alphabet = dedupe([]rune(alphabet))
		}
	}
}

// Words finds dictionary words at edit distance one.
type Words struct {
	dict     Dictionary
	alphabet []rune
}

// New returns Words backed by dict.
func New(dict Dictionary, opts ...Option) *Words {
	w := &Words{dict: dict, alphabet: []rune(DefaultAlphabet)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// DistanceOne returns the distinct dictionary words one substitution away
// from word and, unless sameLengthOnly is set, one insertion or deletion
// away. word itself is never included. Substitutions come first, then
// insertions, then deletions, each ordered by position then alphabet.
// A word that is not valid UTF-8 has no neighbors.
func (w *Words) DistanceOne(word string, sameLengthOnly bool) ([]string, error) {
	if w.dict == nil {
		return nil, ErrDictionaryNil
	}
	if !utf8.ValidString(word) {
		return nil, nil
	}
	seen := map[string]struct{}{word: {}}
	out := w.Substitutions(word, nil, seen)
	if !sameLengthOnly {
		out = w.Insertions(word, out, seen)
		out = w.Deletions(word, out, seen)
	}
	return out, nil
}

// Substitutions appends to out every unseen dictionary word formed by
// replacing one letter of s, and marks it seen. A nil seen map starts
// fresh with s already marked.
func (w *Words) Substitutions(s string, out []string, seen map[string]struct{}) []string {
	if seen == nil {
		seen = map[string]struct{}{s: {}}
	}
	rs := []rune(s)
	for i := range rs {
		orig := rs[i]
		for _, c := range w.alphabet {
			if c == orig {
				continue
			}
			rs[i] = c
			out = w.keep(string(rs), out, seen)
		}
		rs[i] = orig
	}
	return out
}

// Insertions appends to out every unseen dictionary word formed by
// inserting one letter into s, and marks it seen.
func (w *Words) Insertions(s string, out []string, seen map[string]struct{}) []string {
	if seen == nil {
		seen = map[string]struct{}{s: {}}
	}
	rs := []rune(s)
	buf := make([]rune, len(rs)+1)
	for i := 0; i <= len(rs); i++ {
		copy(buf, rs[:i])
		copy(buf[i+1:], rs[i:])
		for _, c := range w.alphabet {
			buf[i] = c
			out = w.keep(string(buf), out, seen)
		}
	}
	return out
}

// Deletions appends to out every unseen dictionary word formed by
// removing one letter of s, and marks it seen.
func (w *Words) Deletions(s string, out []string, seen map[string]struct{}) []string {
	if seen == nil {
		seen = map[string]struct{}{s: {}}
	}
	rs := []rune(s)
	if len(rs) < 2 {
		return out
	}
	buf := make([]rune, len(rs)-1)
	for i := range rs {
		copy(buf, rs[:i])
		copy(buf[i:], rs[i+1:])
		out = w.keep(string(buf), out, seen)
	}
	return out
}

func (w *Words) keep(cand string, out []string, seen map[string]struct{}) []string {
	if _, ok := seen[cand]; ok {
		return out
	}
	if !w.dict.IsWord(cand) {
		return out
	}
	seen[cand] = struct{}{}
	return append(out, cand)
}

func dedupe(rs []rune) []rune {
	seen := make(map[rune]bool, len(rs))
	out := rs[:0]
	for _, r := range rs {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}
