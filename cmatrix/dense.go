package cmatrix

import "fmt"

// Dense is a row-major, flat-backed complex128 square matrix.
//
// Complexity: Time O(1) per At/Set, Space O(n^2).
type Dense struct {
	n    int
	data []complex128
}

// NewDense allocates an n x n zero matrix.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	return &Dense{n: n, data: make([]complex128, n*n)}, nil
}

// N returns the matrix dimension.
func (d *Dense) N() int { return d.n }

// At returns the entry at (i,j).
func (d *Dense) At(i, j int) (complex128, error) {
	if i < 0 || j < 0 || i >= d.n || j >= d.n {
		return 0, ErrOutOfRange
	}
	return d.data[i*d.n+j], nil
}

// Set assigns the entry at (i,j).
func (d *Dense) Set(i, j int, v complex128) error {
	if i < 0 || j < 0 || i >= d.n || j >= d.n {
		return ErrOutOfRange
	}
	d.data[i*d.n+j] = v
	return nil
}

// Add accumulates v into the entry at (i,j).
func (d *Dense) Add(i, j int, v complex128) error {
	if i < 0 || j < 0 || i >= d.n || j >= d.n {
		return ErrOutOfRange
	}
	d.data[i*d.n+j] += v
	return nil
}

// Sub returns a new Dense containing the rows/cols in [rowStart,rowEnd) x
// [colStart,colEnd) of d, used to carve out the Ygg/Ygn/Ynn/Yng blocks for
// Kron reduction.
func (d *Dense) Sub(rowStart, rowEnd, colStart, colEnd int) (*Dense, error) {
	rows, cols := rowEnd-rowStart, colEnd-colStart
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	out := &Dense{n: rows, data: make([]complex128, rows*cols)}
	if rows != cols {
		// Non-square sub-block: store with cols stride explicitly via a
		// rectangular helper instead of reusing the square Dense shape.
		return nil, fmt.Errorf("cmatrix: Sub requires square block: %w", ErrNonSquare)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[i*out.n+j] = d.data[(rowStart+i)*d.n+(colStart+j)]
		}
	}
	return out, nil
}

// Rect is a rectangular (non-square) row-major complex matrix, used for the
// off-diagonal Y_gn / Y_ng blocks in Kron reduction.
type Rect struct {
	Rows, Cols int
	Data       []complex128
}

// NewRect allocates a zero rows x cols matrix.
func NewRect(rows, cols int) (*Rect, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	return &Rect{Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}, nil
}

func (r *Rect) At(i, j int) complex128 { return r.Data[i*r.Cols+j] }
func (r *Rect) Set(i, j int, v complex128) { r.Data[i*r.Cols+j] = v }

// SubRect extracts the rectangular block [rowStart,rowEnd) x [colStart,colEnd) of d.
func (d *Dense) SubRect(rowStart, rowEnd, colStart, colEnd int) *Rect {
	rows, cols := rowEnd-rowStart, colEnd-colStart
	r := &Rect{Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			r.Data[i*cols+j] = d.data[(rowStart+i)*d.n+(colStart+j)]
		}
	}
	return r
}
