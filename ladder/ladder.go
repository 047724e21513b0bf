package ladder

import (
	"fmt"
)

// walker encapsulates mutable search state.
type walker struct {
	p       Provider
	opts    Options
	target  string
	tree    *Tree
	queue   []int
	visited map[string]struct{}
	res     *Result
}

// FindPath returns the shortest ladder from start to target, inclusive of
// both ends. A nil path with a nil error means target is unreachable.
func FindPath(p Provider, start, target string, opts ...Option) ([]string, error) {
	res, err := Search(p, start, target, opts...)
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search runs breadth-first search from start until target is discovered
// or the reachable words are exhausted.
// Returns ErrProviderNil, ErrEmptyWord or ErrOptionViolation for invalid
// input, ErrNeighbors wrapping the Provider's error on lookup failure, or
// the context error on cancellation. Not finding target is not an error.
func Search(p Provider, start, target string, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrProviderNil
	}
	if start == "" || target == "" {
		return nil, ErrEmptyWord
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		p:       p,
		opts:    o,
		target:  target,
		tree:    newTree(start, 16),
		queue:   make([]int, 0, 16),
		visited: make(map[string]struct{}, 16),
	}
	w.res = &Result{Tree: w.tree}
	w.visited[start] = struct{}{}
	w.res.Visited = 1
	o.OnEnqueue(start, 0)

	// zero-step ladder; the provider is never asked
	if start == target {
		w.res.Path = []string{start}
		return w.res, nil
	}

	w.queue = append(w.queue, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// loop processes the queue until target is found, the queue empties,
// or an error occurs.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		curr := w.dequeue()
		found, err := w.expand(curr)
		if err != nil {
			return err
		}
		if found != NoParent {
			w.res.Path = w.tree.PathTo(found)
			return nil
		}
	}
	return nil
}

// dequeue pops the first id and invokes OnDequeue.
func (w *walker) dequeue() int {
	id := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(w.tree.Word(id), w.tree.Depth(id))
	return id
}

// expand enqueues every unseen neighbor of curr in Provider order and
// returns the id of the node holding target, or NoParent. Nodes at
// MaxDepth are not passed to the Provider.
func (w *walker) expand(curr int) (int, error) {
	word := w.tree.Word(curr)
	nextDepth := w.tree.Depth(curr) + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return NoParent, nil
	}
	w.res.Expanded++
	w.opts.OnExpand(word, w.tree.Depth(curr))

	neighbors, err := w.p.DistanceOne(word, w.opts.SameLengthOnly)
	if err != nil {
		return NoParent, fmt.Errorf("%w: neighbors of %q: %w", ErrNeighbors, word, err)
	}
	for _, nbr := range neighbors {
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(word, nbr) {
			continue
		}
		w.visited[nbr] = struct{}{}
		w.res.Visited++
		id := w.tree.add(nbr, curr)
		w.opts.OnEnqueue(nbr, nextDepth)
		w.queue = append(w.queue, id)
		if nbr == w.target {
			return id, nil
		}
	}
	return NoParent, nil
}
