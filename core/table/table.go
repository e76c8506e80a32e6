// Package table provides the dense time × location matrices the scan
// statistic runs over. Row 0 is the most recent time step; callers with
// oldest-first data reverse rows before handing tables to the kernel.
package table

// IntTable is a dense matrix of event counts.
type IntTable struct {
	Rows, Cols int
	data       []int
}

// FloatTable is a dense matrix of baseline (expected count) values.
type FloatTable struct {
	Rows, Cols int
	data       []float64
}

func NewInt(rows, cols int) *IntTable {
	return &IntTable{Rows: rows, Cols: cols, data: make([]int, rows*cols)}
}

func NewFloat(rows, cols int) *FloatTable {
	return &FloatTable{Rows: rows, Cols: cols, data: make([]float64, rows*cols)}
}

func (t *IntTable) At(r, c int) int      { return t.data[r*t.Cols+c] }
func (t *IntTable) Set(r, c, v int)      { t.data[r*t.Cols+c] = v }
func (t *FloatTable) At(r, c int) float64 { return t.data[r*t.Cols+c] }
func (t *FloatTable) Set(r, c int, v float64) { t.data[r*t.Cols+c] = v }

// CumSum returns a new table whose column j at row i holds the sum of
// rows 0..i of column j. The receiver is not modified.
func (t *IntTable) CumSum() *IntTable {
	out := NewInt(t.Rows, t.Cols)
	for c := 0; c < t.Cols; c++ {
		run := 0
		for r := 0; r < t.Rows; r++ {
			run += t.At(r, c)
			out.Set(r, c, run)
		}
	}
	return out
}

// CumSum returns the column-wise running sum over rows, as for IntTable.
func (t *FloatTable) CumSum() *FloatTable {
	out := NewFloat(t.Rows, t.Cols)
	for c := 0; c < t.Cols; c++ {
		run := 0.0
		for r := 0; r < t.Rows; r++ {
			run += t.At(r, c)
			out.Set(r, c, run)
		}
	}
	return out
}

// Total sums every cell.
func (t *IntTable) Total() int {
	n := 0
	for _, v := range t.data {
		n += v
	}
	return n
}

// Total sums every cell.
func (t *FloatTable) Total() float64 {
	s := 0.0
	for _, v := range t.data {
		s += v
	}
	return s
}

// ReverseRows returns a copy with row order inverted, so oldest-first
// input becomes the most-recent-first layout the kernel expects.
func (t *IntTable) ReverseRows() *IntTable {
	out := NewInt(t.Rows, t.Cols)
	for r := 0; r < t.Rows; r++ {
		copy(out.data[r*t.Cols:(r+1)*t.Cols], t.data[(t.Rows-1-r)*t.Cols:(t.Rows-r)*t.Cols])
	}
	return out
}

// ReverseRows returns a copy with row order inverted.
func (t *FloatTable) ReverseRows() *FloatTable {
	out := NewFloat(t.Rows, t.Cols)
	for r := 0; r < t.Rows; r++ {
		copy(out.data[r*t.Cols:(r+1)*t.Cols], t.data[(t.Rows-1-r)*t.Cols:(t.Rows-r)*t.Cols])
	}
	return out
}
