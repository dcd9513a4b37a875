package cutlist

// Cut is a single (value, first_position) entry of a CutList: value holds
// from first_position up to (exclusive) the next cut's first_position, or
// up to the CutList's length for the last cut.
type Cut struct {
	Value int64
	Pos   int
}

// CutList is a compact encoding of a non-decreasing integer sequence of a
// fixed Length as a sorted list of Cuts. Invariants (checked by Pack and
// Append, never assumed silently):
//
//   - cuts[0].Pos == 0
//   - cuts[i].Value > cuts[i-1].Value and cuts[i].Pos > cuts[i-1].Pos for i>0
//   - cuts[i].Pos < Length for every i
type CutList struct {
	cuts   []Cut
	length int
}

// New returns an empty CutList of the given length, ready to be built up
// with Append.
func New(length int) CutList {
	return CutList{length: length}
}

// Len reports the logical length L of the sequence this CutList encodes.
func (c CutList) Len() int {
	return c.length
}

// NumCuts reports how many (value, position) entries are stored.
func (c CutList) NumCuts() int {
	return len(c.cuts)
}

// At returns the i-th raw cut entry.
func (c CutList) At(i int) Cut {
	return c.cuts[i]
}

// Pack scans seq left-to-right and emits a new entry whenever
// seq[i] > seq[i-1]. Returns ErrEmptySequence for a zero-length input and
// ErrNotNonDecreasing if any step decreases.
//
// Complexity: O(len(seq)) time, O(r) space where r is the number of cuts.
func Pack(seq []int64) (CutList, error) {
	if len(seq) == 0 {
		return CutList{}, ErrEmptySequence
	}

	c := CutList{length: len(seq), cuts: make([]Cut, 0, 4)}
	c.cuts = append(c.cuts, Cut{Value: seq[0], Pos: 0})
	var i int
	for i = 1; i < len(seq); i++ {
		if seq[i] < seq[i-1] {
			return CutList{}, ErrNotNonDecreasing
		}
		if seq[i] > seq[i-1] {
			c.cuts = append(c.cuts, Cut{Value: seq[i], Pos: i})
		}
	}

	return c, nil
}

// Unpack reconstitutes the length-L sequence by replicating each cut's
// value until the next cut's position (or L for the last cut). Returns
// ErrEmptyCutList if c has no entries.
//
// Complexity: O(Length) time.
func (c CutList) Unpack() ([]int64, error) {
	if len(c.cuts) == 0 {
		return nil, ErrEmptyCutList
	}

	seq := make([]int64, c.length)
	var i int
	var nextPos int
	for i = range c.cuts {
		nextPos = c.length
		if i+1 < len(c.cuts) {
			nextPos = c.cuts[i+1].Pos
		}
		for j := c.cuts[i].Pos; j < nextPos; j++ {
			seq[j] = c.cuts[i].Value
		}
	}

	return seq, nil
}

// Append adds a new (value, pos) entry in O(1), enforcing that value is
// strictly greater than the last entry's value, pos is strictly greater
// than the last entry's position, and pos is within [0, Length). The very
// first Append on an empty CutList must use pos == 0.
func (c *CutList) Append(value int64, pos int) error {
	if pos < 0 || pos >= c.length {
		return ErrInvalidAppend
	}
	if len(c.cuts) == 0 {
		if pos != 0 {
			return ErrInvalidAppend
		}
		c.cuts = append(c.cuts, Cut{Value: value, Pos: pos})
		return nil
	}

	last := c.cuts[len(c.cuts)-1]
	if value <= last.Value || pos <= last.Pos {
		return ErrInvalidAppend
	}
	c.cuts = append(c.cuts, Cut{Value: value, Pos: pos})

	return nil
}

// Last returns the final (value, position) entry. Returns ErrEmptyCutList
// if c has no entries.
func (c CutList) Last() (Cut, error) {
	if len(c.cuts) == 0 {
		return Cut{}, ErrEmptyCutList
	}

	return c.cuts[len(c.cuts)-1], nil
}

// First returns the initial (value, position) entry, i.e. the value at
// position 0. Returns ErrEmptyCutList if c has no entries.
func (c CutList) First() (Cut, error) {
	if len(c.cuts) == 0 {
		return Cut{}, ErrEmptyCutList
	}

	return c.cuts[0], nil
}
