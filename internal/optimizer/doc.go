// Package optimizer searches for high-scoring boards with a genetic
// algorithm.
//
// Each candidate is a flat, row-major letter string. Its fitness is the
// total score the solver finds on it against a fixed dictionary. A
// generation is produced by fitness-proportional selection, single-point
// crossover of parent pairs and per-letter mutation.
//
// Randomness comes from a seeded PCG source, so a run with the same
// dictionary, parameters and seed is reproducible. Runs are sequential:
// one solver is reused for every candidate via NewPuzzle.
//
// Observers receive each finished generation. The package provides
// observers that persist generations to a store, write the best board of
// each generation to a directory and log progress.
package optimizer
