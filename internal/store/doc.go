// Package store provides SQLite-backed history for wordgrid.
//
// The store keeps an append-only record of:
//   - Solves: one row per (board, dictionary) pair with its total score
//   - Found words: the scored words of each solve
//   - Optimizer runs: the parameters of each genetic search
//   - Generations: best and worst board of every generation of a run
//
// # Identity
//
// Solve IDs are content-addressed (see internal/canon), so recording the
// same board against the same dictionary twice is a no-op. Optimizer run IDs
// are UUIDv7 tokens supplied by the caller.
//
// # Ordering
//
// Every row carries a seq from a logical clock. Reads order by seq and then
// id, never by wall time, so listings are reproducible.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
