// Package runlen compresses a string into maximal runs of identical
// symbols and exposes the positions where one run ends and the next begins.
//
// A run is a (symbol, length) pair with length >= 1; consecutive runs never
// share a symbol. The ordered sequence of runs reconstructs the original
// string exactly. This is the leaf component the block-DTW engine uses to
// turn a query/text pair into the row/column grid of blocks it evaluates.
package runlen
