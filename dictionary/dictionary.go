// Package dictionary holds the in-memory word list consulted by the
// neighbor provider, with loaders for plain-text and YAML word files.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmpty is returned when a source yields no words.
	ErrEmpty = errors.New("dictionary: no words loaded")

	// ErrFormat is returned when a YAML source cannot be decoded.
	ErrFormat = errors.New("dictionary: bad format")

	// ErrInvalidWord is returned when a source holds a word that is not
	// valid UTF-8.
	ErrInvalidWord = errors.New("dictionary: word is not valid UTF-8")
)

// Set is a thread-safe set of lowercase words.
type Set struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

// yamlDoc is the layout accepted by LoadYAML.
type yamlDoc struct {
	Words []string `yaml:"words"`
}

// New returns a Set holding words.
func New(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add normalizes w and inserts it. Blank words and words that are not
// valid UTF-8 are ignored. Reports whether w was new.
func (s *Set) Add(w string) bool {
	if !utf8.ValidString(w) {
		return false
	}
	w = normalize(w)
	if w == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.words[w]; ok {
		return false
	}
	s.words[w] = struct{}{}
	return true
}

// IsWord reports whether w is in the set. w must already be lowercase.
func (s *Set) IsWord(w string) bool {
	s.mu.RLock()
	_, ok := s.words[w]
	s.mu.RUnlock()
	return ok
}

// Len returns the number of words.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Words returns the words in sorted order.
func (s *Set) Words() []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	s.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Load reads one word per line, skipping blanks and '#' comments.
// A line that is not valid UTF-8 fails the load with ErrInvalidWord.
func Load(r io.Reader) (*Set, error) {
	s := New()
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidWord, n)
		}
		s.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read: %w", err)
	}
	if s.Len() == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}

// LoadYAML reads a document of the form:
//
//	words:
//	  - cold
//	  - cord
func LoadYAML(r io.Reader) (*Set, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	for i, w := range doc.Words {
		if !utf8.ValidString(w) {
			return nil, fmt.Errorf("%w: entry %d", ErrInvalidWord, i)
		}
	}
	s := New(doc.Words...)
	if s.Len() == 0 {
		return nil, ErrEmpty
	}
	return s, nil
}

// LoadFile opens path and loads it with LoadYAML for .yaml/.yml files and
// Load otherwise.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %q: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return Load(f)
	}
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
