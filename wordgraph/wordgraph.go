// Package wordgraph materializes the implicit "one edit away" graph of a
// word list as explicit adjacency lists.
//
// A Graph is itself a ladder.Provider, and Distances gives plain BFS levels
// over the explicit edges. With the same sameLengthOnly setting as the
// search, those levels are a reference to check ladder results against.
//
// All methods are safe for concurrent use.
package wordgraph

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/ladder"
)

var (
	// ErrEmptyWord indicates an empty word was passed to AddWord or AddEdge.
	ErrEmptyWord = errors.New("wordgraph: word is empty")

	// ErrLoopNotAllowed indicates an edge from a word to itself.
	ErrLoopNotAllowed = errors.New("wordgraph: self-loop not allowed")

	// ErrWordNotFound indicates a lookup of an unknown word.
	ErrWordNotFound = errors.New("wordgraph: word not found")
)

// Graph is an undirected graph of words.
type Graph struct {
	mu  sync.RWMutex
	adj map[string]map[string]struct{}
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

// Build adds every word in words and links each one to the neighbors p
// reports for it (insertions and deletions included) that are also in
// words.
func Build(words []string, p ladder.Provider) (*Graph, error) {
	g := New()
	for _, w := range words {
		if err := g.AddWord(w); err != nil {
			return nil, err
		}
	}
	for _, w := range words {
		nbrs, err := p.DistanceOne(w, false)
		if err != nil {
			return nil, fmt.Errorf("wordgraph: neighbors of %q: %w", w, err)
		}
		for _, n := range nbrs {
			if !g.HasWord(n) {
				continue
			}
			if err := g.AddEdge(w, n); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// AddWord inserts w as an isolated vertex if absent.
func (g *Graph) AddWord(w string) error {
	if w == "" {
		return ErrEmptyWord
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(w)
	return nil
}

// AddEdge links a and b, adding either word if absent. Repeated edges
// are collapsed.
func (g *Graph) AddEdge(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyWord
	}
	if a == b {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(a)[b] = struct{}{}
	g.ensure(b)[a] = struct{}{}
	return nil
}

func (g *Graph) ensure(w string) map[string]struct{} {
	m, ok := g.adj[w]
	if !ok {
		m = make(map[string]struct{})
		g.adj[w] = m
	}
	return m
}

// HasWord reports whether w is a vertex.
func (g *Graph) HasWord(w string) bool {
	g.mu.RLock()
	_, ok := g.adj[w]
	g.mu.RUnlock()
	return ok
}

// Words returns all vertices, sorted.
func (g *Graph) Words() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.adj))
	for w := range g.adj {
		out = append(out, w)
	}
	g.mu.RUnlock()
	sort.Strings(out)
	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, m := range g.adj {
		n += len(m)
	}
	return n / 2
}

// NeighborIDs returns the sorted neighbors of w.
func (g *Graph) NeighborIDs(w string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.adj[w]
	if !ok {
		return nil, ErrWordNotFound
	}
	out := make([]string, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

// DistanceOne implements ladder.Provider. Unknown words have no neighbors.
// With sameLengthOnly set, neighbors of a different length are dropped.
func (g *Graph) DistanceOne(word string, sameLengthOnly bool) ([]string, error) {
	nbrs, err := g.NeighborIDs(word)
	if errors.Is(err, ErrWordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !sameLengthOnly {
		return nbrs, nil
	}
	size := utf8.RuneCountInString(word)
	out := nbrs[:0]
	for _, n := range nbrs {
		if utf8.RuneCountInString(n) == size {
			out = append(out, n)
		}
	}
	return out, nil
}

// Distances returns the BFS level of every word reachable from `from`.
// With sameLengthOnly set, only edges between words of equal length are
// followed, matching ladder.Search's default; otherwise every edge is.
// `from` itself is at level 0.
func (g *Graph) Distances(from string, sameLengthOnly bool) (map[string]int, error) {
	if !g.HasWord(from) {
		return nil, ErrWordNotFound
	}
	dist := map[string]int{from: 0}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nbrs, err := g.DistanceOne(cur, sameLengthOnly)
		if err != nil {
			return nil, err
		}
		for _, n := range nbrs {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist, nil
}

// Components groups the words into connected components, following only
// equal-length edges when sameLengthOnly is set. Each component is sorted
// and components are ordered by their first word.
func (g *Graph) Components(sameLengthOnly bool) [][]string {
	seen := make(map[string]bool)
	var out [][]string
	for _, w := range g.Words() {
		if seen[w] {
			continue
		}
		dist, _ := g.Distances(w, sameLengthOnly)
		comp := make([]string, 0, len(dist))
		for n := range dist {
			seen[n] = true
			comp = append(comp, n)
		}
		sort.Strings(comp)
		out = append(out, comp)
	}
	return out
}
