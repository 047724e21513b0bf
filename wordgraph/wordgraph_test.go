package wordgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/nearby"
	"github.com/katalvlaran/wordladder/wordgraph"
)

var _ ladder.Provider = (*wordgraph.Graph)(nil)

// TestAddEdge_Errors covers the rejected edge shapes.
func TestAddEdge_Errors(t *testing.T) {
	g := wordgraph.New()
	if err := g.AddEdge("", "a"); !errors.Is(err, wordgraph.ErrEmptyWord) {
		t.Errorf("empty word: want ErrEmptyWord, got %v", err)
	}
	if err := g.AddEdge("a", "a"); !errors.Is(err, wordgraph.ErrLoopNotAllowed) {
		t.Errorf("loop: want ErrLoopNotAllowed, got %v", err)
	}
	if err := g.AddWord(""); !errors.Is(err, wordgraph.ErrEmptyWord) {
		t.Errorf("AddWord: want ErrEmptyWord, got %v", err)
	}
	if _, err := g.NeighborIDs("nope"); !errors.Is(err, wordgraph.ErrWordNotFound) {
		t.Errorf("NeighborIDs: want ErrWordNotFound, got %v", err)
	}
}

// TestBuild links dictionary words through the nearby provider.
func TestBuild(t *testing.T) {
	dict := dictionary.New("cat", "cot", "cog", "dog", "dot", "bat", "at")
	g, err := wordgraph.Build(dict.Words(), nearby.New(dict))
	if err != nil {
		t.Fatal(err)
	}
	// at–bat, at–cat, bat–cat, cat–cot, cot–cog, cot–dot, cog–dog, dot–dog
	if got := g.EdgeCount(); got != 8 {
		t.Errorf("EdgeCount = %d; want 8", got)
	}
	nbrs, _ := g.NeighborIDs("cot")
	if want := []string{"cat", "cog", "dot"}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("NeighborIDs(cot) = %v; want %v", nbrs, want)
	}

	same, _ := g.DistanceOne("cat", true)
	if want := []string{"bat", "cot"}; !reflect.DeepEqual(same, want) {
		t.Errorf("DistanceOne(cat, true) = %v; want %v", same, want)
	}
	all, _ := g.DistanceOne("cat", false)
	if want := []string{"at", "bat", "cot"}; !reflect.DeepEqual(all, want) {
		t.Errorf("DistanceOne(cat, false) = %v; want %v", all, want)
	}
	if none, err := g.DistanceOne("zzz", true); err != nil || none != nil {
		t.Errorf("DistanceOne(zzz) = %v, %v; want nil, nil", none, err)
	}
}

// TestBuild_ProviderError propagates lookup failures.
func TestBuild_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	p := ladder.ProviderFunc(func(string, bool) ([]string, error) { return nil, boom })
	if _, err := wordgraph.Build([]string{"a"}, p); !errors.Is(err, boom) {
		t.Errorf("want boom, got %v", err)
	}
}

// TestDistances checks BFS levels and unknown start handling.
func TestDistances(t *testing.T) {
	g := wordgraph.New()
	_ = g.AddEdge("cat", "cot")
	_ = g.AddEdge("cot", "dot")
	_ = g.AddEdge("dot", "dog")
	_ = g.AddWord("zzz")

	dist, err := g.Distances("cat", true)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{"cat": 0, "cot": 1, "dot": 2, "dog": 3}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances = %v; want %v", dist, want)
	}
	if _, err := g.Distances("nope", true); !errors.Is(err, wordgraph.ErrWordNotFound) {
		t.Errorf("want ErrWordNotFound, got %v", err)
	}
}

// TestComponents groups disconnected words.
func TestComponents(t *testing.T) {
	g := wordgraph.New()
	_ = g.AddEdge("cat", "cot")
	_ = g.AddEdge("dog", "dig")
	_ = g.AddWord("zzz")

	got := g.Components(true)
	want := [][]string{{"cat", "cot"}, {"dig", "dog"}, {"zzz"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Components = %v; want %v", got, want)
	}
}

// TestDistances_MixedLength checks that same-length levels agree with
// ladder.Search on a word list mixing lengths, while any-length levels
// may take shortcuts through shorter words.
func TestDistances_MixedLength(t *testing.T) {
	dict := dictionary.New("cold", "cord", "card", "ward", "warm", "word", "worm", "old", "wold", "col", "cool")
	p := nearby.New(dict)
	g, err := wordgraph.Build(dict.Words(), p)
	if err != nil {
		t.Fatal(err)
	}

	for _, from := range dict.Words() {
		for _, same := range []bool{true, false} {
			dist, err := g.Distances(from, same)
			if err != nil {
				t.Fatal(err)
			}
			var opts []ladder.Option
			if !same {
				opts = append(opts, ladder.WithAnyLength())
			}
			for _, to := range dict.Words() {
				res, err := ladder.Search(p, from, to, opts...)
				if err != nil {
					t.Fatal(err)
				}
				want, ok := dist[to]
				if !ok {
					want = -1
				}
				if res.Len() != want {
					t.Errorf("%s → %s (sameLength=%v): ladder %d steps; Distances %d", from, to, same, res.Len(), want)
				}
			}
		}
	}

	same, _ := g.Distances("cold", true)
	if _, ok := same["old"]; ok {
		t.Error("same-length levels must not reach a shorter word")
	}
	anyLen, _ := g.Distances("cold", false)
	if anyLen["old"] != 1 {
		t.Errorf("any-length level of old = %d; want 1", anyLen["old"])
	}
}

// TestComponents_MixedLength splits components by length when asked.
func TestComponents_MixedLength(t *testing.T) {
	g := wordgraph.New()
	_ = g.AddEdge("cat", "cot")
	_ = g.AddEdge("cat", "at")

	if got, want := g.Components(false), [][]string{{"at", "cat", "cot"}}; !reflect.DeepEqual(got, want) {
		t.Errorf("Components(false) = %v; want %v", got, want)
	}
	if got, want := g.Components(true), [][]string{{"at"}, {"cat", "cot"}}; !reflect.DeepEqual(got, want) {
		t.Errorf("Components(true) = %v; want %v", got, want)
	}
}
