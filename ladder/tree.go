package ladder

import (
	"fmt"
	"strings"
)

// NoParent is the parent id of the root node.
const NoParent = -1

// node is one visited word. parent indexes into Tree.nodes.
type node struct {
	word   string
	parent int
	depth  int
}

// Tree is the arena of nodes discovered during one search.
// Node 0 is the root and holds the start word.
type Tree struct {
	nodes []node
}

// newTree returns a tree whose root holds word.
func newTree(word string, capHint int) *Tree {
	t := &Tree{nodes: make([]node, 0, capHint)}
	t.nodes = append(t.nodes, node{word: word, parent: NoParent})
	return t
}

// add appends a child of parent and returns its id.
func (t *Tree) add(word string, parent int) int {
	t.nodes = append(t.nodes, node{word: word, parent: parent, depth: t.nodes[parent].depth + 1})
	return len(t.nodes) - 1
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the start word.
func (t *Tree) Root() string { return t.nodes[0].word }

// Word returns the word stored at id.
func (t *Tree) Word(id int) string { return t.nodes[id].word }

// Parent returns the parent id of id, or NoParent for the root.
func (t *Tree) Parent(id int) int { return t.nodes[id].parent }

// Depth returns the number of edges between the root and id.
func (t *Tree) Depth(id int) int { return t.nodes[id].depth }

// Find returns the id holding word, or -1.
func (t *Tree) Find(word string) int {
	for id := range t.nodes {
		if t.nodes[id].word == word {
			return id
		}
	}
	return -1
}

// Children returns the ids discovered from id, in discovery order.
func (t *Tree) Children(id int) []int {
	var out []int
	for i := id + 1; i < len(t.nodes); i++ {
		if t.nodes[i].parent == id {
			out = append(out, i)
		}
	}
	return out
}

// PathTo reconstructs the words from the root to id.
func (t *Tree) PathTo(id int) []string {
	path := make([]string, 0, t.nodes[id].depth+1)
	for cur := id; cur != NoParent; cur = t.nodes[cur].parent {
		path = append(path, t.nodes[cur].word)
	}
	// reverse to get root → id
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// String renders one line per node as "word <- parent".
// The root is rendered as "word <- nil".
func (t *Tree) String() string {
	var sb strings.Builder
	for _, n := range t.nodes {
		parent := "nil"
		if n.parent != NoParent {
			parent = t.nodes[n.parent].word
		}
		fmt.Fprintf(&sb, "%s <- %s\n", n.word, parent)
	}
	return sb.String()
}
