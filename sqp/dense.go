package sqp

// dense is a minimal row-major matrix backing the QP subproblem: one row
// per linearized constraint, one column per decision variable. It keeps
// the flat-slice layout so row operations touch contiguous memory in the
// Gauss–Seidel hot path.
//
// Invariants:
//   - len(data) == r·c, row i occupying data[i·c : (i+1)·c].
//   - No aliasing: every dense owns its backing slice.
type dense struct {
	r, c int
	data []float64
}

// newDense allocates an r×c zero matrix. Callers guarantee r ≥ 0, c > 0.
func newDense(r, c int) *dense {
	return &dense{r: r, c: c, data: make([]float64, r*c)}
}

// row returns row i as a subslice of the backing array (no copy).
func (m *dense) row(i int) []float64 {
	return m.data[i*m.c : (i+1)*m.c]
}

// setRow copies v into row i. len(v) must equal the column count.
func (m *dense) setRow(i int, v []float64) {
	copy(m.row(i), v)
}

// rowDot returns row(i)·v without allocating.
//
// Complexity: O(c).
func (m *dense) rowDot(i int, v []float64) float64 {
	var sum float64
	for k, a := range m.row(i) {
		sum += a * v[k]
	}

	return sum
}

// rowNormSq returns ‖row(i)‖², the Gauss–Seidel diagonal element.
//
// Complexity: O(c).
func (m *dense) rowNormSq(i int) float64 {
	var sum float64
	for _, a := range m.row(i) {
		sum += a * a
	}

	return sum
}

// addScaledRow performs dst += coef·row(i). len(dst) must equal the column
// count. This is the multiplier-update primitive of the dual sweeps.
//
// Complexity: O(c).
func (m *dense) addScaledRow(i int, coef float64, dst []float64) {
	for k, a := range m.row(i) {
		dst[k] += coef * a
	}
}

// transMulVec computes Aᵀλ into dst (length c), the dual-to-primal map
// d = Aᵀλ − g of the QP subproblem.
//
// Complexity: O(r·c).
func (m *dense) transMulVec(lambda, dst []float64) {
	for k := range dst {
		dst[k] = 0
	}
	for i := 0; i < m.r; i++ {
		if lambda[i] != 0 {
			m.addScaledRow(i, lambda[i], dst)
		}
	}
}
