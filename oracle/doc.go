// Package oracle computes exact, quadratic-time Dynamic Time Warping and
// edit-distance alignments between symbol strings. It exists to define
// correctness: package blockdtw's sub-quadratic border solver is checked
// against this package by the differential property tests, and oracle's
// result is authoritative whenever the two disagree.
//
// Usage:
//
//	m, err := oracle.New(q, t, oracle.DefaultOptions())
//	dist := m.Value(len(q), len(t))
//
// For pattern-match mode, read the last row instead of a single cell:
//
//	opts := oracle.Options{Mode: oracle.PatternMatch, Recurrence: oracle.RecurrenceDTW}
//	m, err := oracle.New(q, t, opts)
//	best, j := m.MinLastRowWithIndex()
//
// Performance: O(|Q|*|T|) time and memory. There is no rolling-row variant
// — the full matrix is always retained, since blockdtw's differential
// tests need arbitrary cell access and traceback.
package oracle
