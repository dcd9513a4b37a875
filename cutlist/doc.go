// Package cutlist implements the compact CutList encoding used to represent
// a block's border: a monotone non-decreasing integer sequence of length L
// stored as a sorted list of (value, first_position) pairs. Unpacking a
// CutList replicates each value from its first_position up to (but not
// including) the next entry's first_position, or L for the last entry.
package cutlist
