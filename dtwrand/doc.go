// Package dtwrand generates deterministic random run-length-structured
// strings for property-based testing of package blockdtw against package
// oracle.
//
// Centralizes the RNG so every caller gets the same determinism guarantee:
// same seed, same *rand.Rand state, same generated pair, across platforms
// and runs.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; do not share one across
//     goroutines. Derive an independent stream per goroutine instead.
package dtwrand
