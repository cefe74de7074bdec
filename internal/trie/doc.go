// Package trie implements the dictionary index used by the word search.
//
// The index is a prefix tree stored in an arena. Nodes are addressed by
// NodeID, a stable index into the arena, rather than by pointer. Slot 0 is a
// sentinel whose children are the root nodes keyed by first letter.
//
// Each node carries an exhausted flag. The solver sets it once every word
// reachable through the node has been produced in the current solve; the
// flag is shared dictionary-wide and is only cleared by Reset.
//
// # Lifecycle
//
//	dict := trie.Build(words)      // built once
//	solver.Solve()                 // marks nodes exhausted
//	dict.Reset()                   // required before the next grid
//
// A Dictionary is not safe for concurrent solves: exhaustion state belongs
// to exactly one solve at a time.
package trie
