// Package block implements the per-block border solver: given a block's
// height, width, whether its two defining run symbols are equal, the
// scalar north-west corner, and the north/west border CutLists, it derives
// the block's four internal border CutLists (top, left, bottom, right) and
// four corner scalars (TL, TR, BL, BR) in O(h+w) time — without
// materialising the O(h*w) interior.
//
// This is the engine's core: the border-propagation identities that let a
// run-length-compressed DTW matrix be evaluated in time proportional to
// the number of blocks' perimeters rather than the matrix area.
package block
