// Package solver implements the Boggle word search.
//
// The solver walks the grid depth-first from every cell in lock-step with
// the dictionary trie. A neighbor is only entered when the trie has a child
// for its letter, so paths that spell no dictionary prefix are never built.
//
// # Exhaustion pruning
//
// When every child of a trie node is exhausted (or it has none), the node
// itself is marked exhausted. An exhausted node is skipped from then on,
// whichever cell the walk reaches it from: the letters that can follow it are
// fixed by the node, so any word found through it again would be a duplicate.
// Flags are shared by the whole dictionary and survive until Reset or
// NewPuzzle.
//
// # Path locks
//
// A cell on the current path is claimed on the grid and released on every
// exit from the visit that claimed it, so no word reuses a cell and the grid
// is clean when Solve returns.
//
// A Solver is single-threaded. Concurrent solves need independent Grid and
// Dictionary instances.
package solver
