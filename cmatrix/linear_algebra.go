package cmatrix

// LU performs Doolittle decomposition A = L*U with unit diagonal on L, no
// pivoting, generalized from the teacher's real-valued Doolittle kernel
// (matrix/impl_linear_algebra.go) to complex128.
//
// Complexity: Time O(n^3), Space O(n^2).
func LU(m *Dense) (L, U *Dense, err error) {
	n := m.n
	Lm, err := NewDense(n)
	if err != nil {
		return nil, nil, err
	}
	Um, err := NewDense(n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		Lm.data[i*n+i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sum complex128
			for k := 0; k < i; k++ {
				sum += Lm.data[i*n+k] * Um.data[k*n+j]
			}
			Um.data[i*n+j] = m.data[i*n+j] - sum
		}
		pivot := Um.data[i*n+i]
		if pivot == 0 {
			return nil, nil, ErrSingular
		}
		for j := i + 1; j < n; j++ {
			var sum complex128
			for k := 0; k < i; k++ {
				sum += Lm.data[j*n+k] * Um.data[k*n+i]
			}
			Lm.data[j*n+i] = (m.data[j*n+i] - sum) / pivot
		}
	}
	return Lm, Um, nil
}

// solveLU solves L*U*x = rhs in-place for a single right-hand side via
// forward then backward substitution, reusing the teacher's Inverse() loop
// shape (matrix/impl_linear_algebra.go) generalized to complex128.
func solveLU(L, U *Dense, rhs []complex128) ([]complex128, error) {
	n := L.n
	y := make([]complex128, n)
	for i := 0; i < n; i++ {
		var sum complex128
		for k := 0; k < i; k++ {
			sum += L.data[i*n+k] * y[k]
		}
		y[i] = rhs[i] - sum
	}
	x := make([]complex128, n)
	for i := n - 1; i >= 0; i-- {
		var sum complex128
		for k := i + 1; k < n; k++ {
			sum += U.data[i*n+k] * x[k]
		}
		pivot := U.data[i*n+i]
		if pivot == 0 {
			return nil, ErrSingular
		}
		x[i] = (y[i] - sum) / pivot
	}
	return x, nil
}

// SolveMultiRHS solves A*X = B for X, where B is an n x m rectangular
// matrix of right-hand sides (one column per RHS), using a single LU
// factorization of A shared across all columns — "solve with many RHS"
// per the spec's numerical-choices note, never densifying A^-1 explicitly.
func SolveMultiRHS(A *Dense, B *Rect) (*Rect, error) {
	if A.n != B.Rows {
		return nil, ErrDimensionMismatch
	}
	L, U, err := LU(A)
	if err != nil {
		return nil, err
	}
	X, err := NewRect(B.Rows, B.Cols)
	if err != nil {
		return nil, err
	}
	rhs := make([]complex128, B.Rows)
	for col := 0; col < B.Cols; col++ {
		for row := 0; row < B.Rows; row++ {
			rhs[row] = B.At(row, col)
		}
		x, err := solveLU(L, U, rhs)
		if err != nil {
			return nil, err
		}
		for row := 0; row < B.Rows; row++ {
			X.Set(row, col, x[row])
		}
	}
	return X, nil
}

// mulRectSquare computes left (g x n) * right (n x n) -> (g x n),
// used for Y_gn * (Y_nn^-1 * Y_ng) style products where the left operand is
// rectangular and square multiplication utilities don't apply.
func mulRectSquare(left *Rect, right *Rect) (*Rect, error) {
	if left.Cols != right.Rows {
		return nil, ErrDimensionMismatch
	}
	out, err := NewRect(left.Rows, right.Cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < left.Rows; i++ {
		for j := 0; j < right.Cols; j++ {
			var sum complex128
			for k := 0; k < left.Cols; k++ {
				sum += left.At(i, k) * right.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out, nil
}

// KronReduce computes Y_red = Ygg - Ygn * Ynn^-1 * Yng via a single LU
// factorization of Ynn and a multi-RHS solve with Yng, never forming
// Ynn^-1 explicitly (§4.2 Reduction).
func KronReduce(Ygg *Dense, Ygn *Rect, Ynn *Dense, Yng *Rect) (*Dense, error) {
	// Ynn^-1 * Yng
	X, err := SolveMultiRHS(Ynn, Yng)
	if err != nil {
		return nil, err
	}
	// Ygn * X
	prod, err := mulRectSquare(Ygn, X)
	if err != nil {
		return nil, err
	}
	if prod.Rows != Ygg.n || prod.Cols != Ygg.n {
		return nil, ErrDimensionMismatch
	}
	out, err := NewDense(Ygg.n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < Ygg.n; i++ {
		for j := 0; j < Ygg.n; j++ {
			v, _ := Ygg.At(i, j)
			out.data[i*out.n+j] = v - prod.At(i, j)
		}
	}
	return out, nil
}
