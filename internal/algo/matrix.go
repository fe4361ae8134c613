package algo

// Movement records which predecessor matrix produced a cell's score, so the
// traceback knows which matrix to read from next.
type Movement int

const (
	Skip Movement = iota
	Match
)

// ScoreMatrix is a logically rows x cols grid of (score, movement) pairs,
// physically backed by a single flat slice addressed as row*cols+col, the
// same convention fzf's algo.go uses for its H/C score arrays, chosen for
// cache locality and to let Resize skip per-row bookkeeping.
type ScoreMatrix struct {
	scores    []int32
	movements []Movement
	Rows      int
	Cols      int
}

// Resize grows the backing slices to rows*cols, reusing capacity from a
// previous call. It never shrinks capacity; callers that want memory
// released build a fresh ScoreMatrix instead (see scratch.go).
func (m *ScoreMatrix) Resize(rows, cols int) {
	size := rows * cols
	if cap(m.scores) < size {
		m.scores = make([]int32, size)
		m.movements = make([]Movement, size)
	} else {
		m.scores = m.scores[:size]
		m.movements = m.movements[:size]
	}
	m.Rows, m.Cols = rows, cols
}

func (m *ScoreMatrix) Score(row, col int) int32 {
	return m.scores[row*m.Cols+col]
}

func (m *ScoreMatrix) Movement(row, col int) Movement {
	return m.movements[row*m.Cols+col]
}

func (m *ScoreMatrix) SetScore(row, col int, score int32) {
	m.scores[row*m.Cols+col] = score
}

func (m *ScoreMatrix) SetMovement(row, col int, mv Movement) {
	m.movements[row*m.Cols+col] = mv
}

func (m *ScoreMatrix) SetCell(row, col int, score int32, mv Movement) {
	i := row*m.Cols + col
	m.scores[i] = score
	m.movements[i] = mv
}

// Row returns the score slice for one row, used to find the argmax over the
// final pattern row without repeated index arithmetic.
func (m *ScoreMatrix) Row(row int) []int32 {
	start := row * m.Cols
	return m.scores[start : start+m.Cols]
}
