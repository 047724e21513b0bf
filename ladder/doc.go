// Package ladder finds the shortest word ladder between two words: a
// sequence in which every step changes a single letter and every
// intermediate string is a word known to a Provider.
//
// What
//
//   - Breadth-first search over the implicit graph whose edges are the
//     "one edit away" relation reported by a Provider.
//   - Visited words are stored in an arena Tree (node ids with parent ids),
//     so the ladder is rebuilt by walking parent links back to the root.
//   - Returns a Result containing:
//   - Path: start … target inclusive, nil when target is unreachable
//   - Tree: the search tree, for inspection or rendering
//   - Expanded / Visited counters
//   - Hooks at three stages: OnEnqueue (word discovered), OnDequeue (word
//     leaves the queue), OnExpand (word about to be passed to the Provider). Candidate edges may be pruned with
//     WithFilterNeighbor.
//
// Determinism
//
//	Neighbors are enqueued in the order the Provider returns them, and the
//	search stops as soon as target is discovered. For a deterministic
//	Provider the returned ladder is therefore reproducible, and the
//	Provider's order is the tie-break among equally short ladders.
//
// Edge cases
//
//   - start == target yields the one-word ladder [start] without asking the
//     Provider.
//   - Words are not validated against any dictionary: an unknown target is
//     simply never discovered and the search ends with no path.
//
// Complexity (V = words reachable from start, E = edges among them)
//
//   - Time:   O(V + E) Provider results inspected, V Provider calls at most
//   - Memory: O(V) for the queue, visited set and tree
//
// Usage
//
//	path, err := ladder.FindPath(provider, "cold", "warm")
//	if err != nil {
//		// ErrProviderNil, ErrEmptyWord, ErrOptionViolation, ErrNeighbors or ctx.Err()
//	}
//	if path == nil {
//		// no ladder
//	}
//
//	res, err := ladder.Search(
//		provider, "cold", "warm",
//		ladder.WithContext(ctx),
//		ladder.WithMaxDepth(6),
//		ladder.WithOnDequeue(func(word string, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrProviderNil      if the provider is nil.
//   - ErrEmptyWord        if start or target is "".
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors        wrapping the Provider's own error, which stays
//     reachable through errors.Is.
//   - ctx.Err()           when the context passed to WithContext is done.
package ladder
