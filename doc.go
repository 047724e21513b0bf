// Package wordladder finds word ladders: the shortest chain of words
// turning one word into another, changing a single letter per step, with
// every intermediate string a real word.
//
// What's inside?
//
//	ladder/     — breadth-first ladder search over any Provider, with an
//	              arena search tree for path reconstruction
//	nearby/     — Provider that generates one-edit neighbors and checks them
//	              against a Dictionary
//	dictionary/ — thread-safe word set, loaded from plain text or YAML
//	wordgraph/  — explicit adjacency graph of a word list; also a Provider
//	cmd/ladder  — CLI: find, neighbors, serve
//
// Quick example:
//
//	cold → cord → word → ward → warm
//
//	dict := dictionary.New("cold", "cord", "card", "ward", "warm", "word", "worm")
//	path, err := ladder.FindPath(nearby.New(dict), "cold", "warm")
//
// The search never owns the dictionary: it only asks its Provider for the
// words one edit away from the word being expanded. Any function of that
// shape can be plugged in with ladder.ProviderFunc.
//
//	go get github.com/katalvlaran/wordladder
package wordladder
