package oracle

import (
	"fmt"
	"sort"

	"github.com/blockdtw/blockdtw/numeric"
)

// Matrix is a fully materialised DP matrix of size (len(Q)+1) x (len(T)+1),
// stored as a dense row-major int64 slice.
type Matrix struct {
	q, t []rune
	rows int
	cols int
	data []int64
	opts Options
}

// New allocates and fills the full DP matrix for q against t under opts.
// Complexity: O(|q|*|t|) time and memory.
func New(q, t string, opts Options) (*Matrix, error) {
	qr, tr := []rune(q), []rune(t)
	if len(qr) == 0 || len(tr) == 0 {
		return nil, ErrEmptyInput
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m := &Matrix{
		q:    qr,
		t:    tr,
		rows: len(qr) + 1,
		cols: len(tr) + 1,
		data: make([]int64, (len(qr)+1)*(len(tr)+1)),
		opts: opts,
	}
	m.fill()

	return m, nil
}

func (m *Matrix) index(i, j int) int {
	return i*m.cols + j
}

func (m *Matrix) at(i, j int) int64 {
	return m.data[m.index(i, j)]
}

func (m *Matrix) set(i, j int, v int64) {
	m.data[m.index(i, j)] = v
}

// fill populates the boundary row/column per Mode, then the interior per
// Recurrence. Under Global, row 0 and column 0 ramp by incremental gap
// cost; under PatternMatch, row 0 is free (an alignment may start
// anywhere in T) and column 0 beyond the origin is unreachable.
func (m *Matrix) fill() {
	// 1) Boundary row 0 and column 0.
	switch m.opts.Mode {
	case Global:
		for j := 0; j < m.cols; j++ {
			m.set(0, j, int64(j))
		}
		for i := 0; i < m.rows; i++ {
			m.set(i, 0, int64(i))
		}
	case PatternMatch:
		for j := 0; j < m.cols; j++ {
			m.set(0, j, 0)
		}
		m.set(0, 0, 0)
		for i := 1; i < m.rows; i++ {
			m.set(i, 0, numeric.Inf)
		}
	}

	// 2) Interior cells, row by row.
	for i := 1; i < m.rows; i++ {
		for j := 1; j < m.cols; j++ {
			cost := int64(1)
			if m.q[i-1] == m.t[j-1] {
				cost = 0
			}

			diag := numeric.SaturateAdd(m.at(i-1, j-1), cost)

			var up, left int64
			if m.opts.Recurrence == RecurrenceDTW {
				up = numeric.SaturateAdd(m.at(i-1, j), cost)
				left = numeric.SaturateAdd(m.at(i, j-1), cost)
			} else {
				up = numeric.SaturateAdd(m.at(i-1, j), 1)
				left = numeric.SaturateAdd(m.at(i, j-1), 1)
			}

			m.set(i, j, numeric.Min3(diag, up, left))
		}
	}
}

// Rows reports len(Q)+1.
func (m *Matrix) Rows() int { return m.rows }

// Cols reports len(T)+1.
func (m *Matrix) Cols() int { return m.cols }

// Value returns the DP cell at (i, j), 0 <= i <= len(Q), 0 <= j <= len(T).
func (m *Matrix) Value(i, j int) int64 {
	return m.at(i, j)
}

// LastRow returns a copy of row len(Q), the final row of the matrix.
func (m *Matrix) LastRow() []int64 {
	row := make([]int64, m.cols)
	copy(row, m.data[m.index(m.rows-1, 0):m.index(m.rows-1, 0)+m.cols])

	return row
}

// MinLastRowWithIndex returns the smallest value in the last row and the
// largest column index attaining it (ties favour the longest match
// against T) — the pattern-match result.
func (m *Matrix) MinLastRowWithIndex() (int64, int) {
	row := m.LastRow()
	best, bestJ := row[0], 0
	for j := 1; j < len(row); j++ {
		if row[j] <= best {
			best, bestJ = row[j], j
		}
	}

	return best, bestJ
}

// KSmallestLastRow returns the coordinates of up to k last-row cells in
// ascending order of their value, ties broken by ascending column index.
// Read a cell's value with Value(c.I, c.J).
func (m *Matrix) KSmallestLastRow(k int) []Coord {
	row := m.LastRow()
	idx := make([]int, len(row))
	for j := range idx {
		idx[j] = j
	}
	sort.Slice(idx, func(a, b int) bool {
		if row[idx[a]] != row[idx[b]] {
			return row[idx[a]] < row[idx[b]]
		}

		return idx[a] < idx[b]
	})
	if k > len(idx) {
		k = len(idx)
	}

	out := make([]Coord, k)
	for i := 0; i < k; i++ {
		out[i] = Coord{I: m.rows - 1, J: idx[i]}
	}

	return out
}

// Traceback walks backward from (i, j) to a valid start boundary,
// preferring the diagonal predecessor, then left (i, j-1), then up
// (i-1, j). Returns ErrUntraceableCell if some cell on the
// path has no predecessor consistent with the recurrence; the path
// accumulated so far is discarded since a partial path is not a
// meaningful alignment.
func (m *Matrix) Traceback(i, j int) ([]Coord, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return nil, fmt.Errorf("%w: start (%d,%d) out of range", ErrUntraceableCell, i, j)
	}

	path := make([]Coord, 0, i+j+1)
	for {
		path = append(path, Coord{I: i, J: j})

		if i == 0 {
			if m.opts.Mode == PatternMatch || j == 0 {
				break
			}
		}

		cur := m.at(i, j)
		moved := false

		if i > 0 && j > 0 {
			cost := int64(1)
			if m.q[i-1] == m.t[j-1] {
				cost = 0
			}
			if cur == numeric.SaturateAdd(m.at(i-1, j-1), cost) {
				i, j = i-1, j-1
				moved = true
			}
		}
		if !moved && j > 0 {
			cost := m.horizontalCost(i, j)
			if cur == numeric.SaturateAdd(m.at(i, j-1), cost) {
				j--
				moved = true
			}
		}
		if !moved && i > 0 {
			cost := m.verticalCost(i, j)
			if cur == numeric.SaturateAdd(m.at(i-1, j), cost) {
				i--
				moved = true
			}
		}

		if !moved {
			return nil, fmt.Errorf("%w: at (%d,%d)", ErrUntraceableCell, i, j)
		}
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

func (m *Matrix) verticalCost(i, j int) int64 {
	if m.opts.Recurrence == RecurrenceEditDistance {
		return 1
	}
	if j > 0 && m.q[i-1] == m.t[j-1] {
		return 0
	}

	return 1
}

func (m *Matrix) horizontalCost(i, j int) int64 {
	if m.opts.Recurrence == RecurrenceEditDistance {
		return 1
	}
	if i > 0 && m.q[i-1] == m.t[j-1] {
		return 0
	}

	return 1
}
