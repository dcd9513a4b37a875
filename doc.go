// Package blockdtw computes Dynamic Time Warping distances between
// run-length-compressible strings in O(|Q|*rT + rQ*|T|) time, where rQ and
// rT are the number of maximal runs in Q and T respectively — instead of
// the O(|Q|*|T|) a naive DP table would cost.
//
// 🚀 What is block DTW?
//
//	Ordinary DTW fills a |Q| x |T| matrix one cell at a time. When Q or T
//	is made of long runs of repeated symbols (genomic reads, compressed
//	sensor traces, run-length-encoded signals), most of that matrix is
//	redundant: every cell inside a Q-run x T-run rectangle shares the same
//	match/mismatch cost. block_dtw exploits this by solving each such
//	rectangle ("block") from its border alone, in time proportional to the
//	block's perimeter rather than its area.
//
// ✨ Key features:
//   - exact agreement with the quadratic oracle (package oracle) on every
//     match/mismatch cost combination
//   - two alignment modes: Global (end-to-end) and PatternMatch (Q may
//     start anywhere in T)
//   - optional saturating cap, for "is the distance at most k" queries
//     without paying for values far above k
//
// ⚙️ Usage:
//
//	dist, err := blockdtw.BlockDTW("AABBB", "AAABBBB", blockdtw.Global)
//
//	best, err := blockdtw.BlockDTWPatternMatch("ABC", "AXBXC")
//	// best[j] is the cost of aligning Q ending at text position j
//
// Performance:
//
//   - Time:   O(|Q|*rT + rQ*|T|)
//   - Memory: O(rQ*rT) blocks, each O(h+w) border space
//
// Under the hood, everything is organized under six subpackages:
//
//	runlen/  — run-length compression of a string into (symbol, length) runs
//	cutlist/ — compact (value, first-position) encoding of a border
//	block/   — the per-block border solver, this package's computational core
//	oracle/  — quadratic reference implementation used to validate tests
//	numeric/ — saturating arithmetic and the +Inf sentinel
//	dtwrand/ — deterministic random run-structured strings for tests
//
//	go get github.com/blockdtw/blockdtw
package blockdtw
