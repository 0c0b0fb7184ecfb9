package attention

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MaskedScore is added in place of the score of every masked position before
// the softmax, driving its weight to ~0.
const MaskedScore = -1e9

var (
	// ErrRank is returned when an input is not a non-empty rank-2 matrix.
	ErrRank = errors.New("attention: input is not a rank-2 matrix")
	// ErrDimensionMismatch is returned when input shapes are incompatible.
	ErrDimensionMismatch = errors.New("attention: dimension mismatch")
)

// Mask marks positions of the (queries x keys) score matrix that must be
// ignored. A true entry masks the position.
type Mask [][]bool

// CausalMask returns an n x n mask that hides every key after the query's own
// position.
func CausalMask(n int) Mask {
	mask := make(Mask, n)
	for i := range mask {
		mask[i] = make([]bool, n)
		for j := i + 1; j < n; j++ {
			mask[i][j] = true
		}
	}
	return mask
}

// FromRows builds a dense matrix from row slices. It returns ErrRank if rows
// is empty or ragged, or if a row is empty.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrRank)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRank, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// ScaledDotProduct computes softmax(q·kᵀ/√d)·v for q (m x d), k (n x d) and
// v (n x e). mask may be nil; otherwise it must be m x n. It returns the
// output (m x e) and the attention weights (m x n).
//
// A query whose keys are all masked gets an all-zero weights row, and hence
// an all-zero output row.
func ScaledDotProduct(q, k, v mat.Matrix, mask Mask) (out, weights *mat.Dense, err error) {
	for i, x := range []mat.Matrix{q, k, v} {
		if isEmpty(x) {
			return nil, nil, fmt.Errorf("%w: %s is empty", ErrRank, "QKV"[i:i+1])
		}
	}

	m, dq := q.Dims()
	n, dk := k.Dims()
	nv, _ := v.Dims()

	if dq != dk {
		return nil, nil, fmt.Errorf("%w: Q and K must have the same depth, got %d and %d", ErrDimensionMismatch, dq, dk)
	}
	if n != nv {
		return nil, nil, fmt.Errorf("%w: K and V must have the same length, got %d and %d", ErrDimensionMismatch, n, nv)
	}
	if mask != nil {
		if err := checkMask(mask, m, n); err != nil {
			return nil, nil, err
		}
	}

	// scores[i, j] = dot(Q_i, K_j) / sqrt(d)
	var scores mat.Dense
	scores.Mul(q, k.T())
	scores.Scale(1/math.Sqrt(float64(dq)), &scores)

	weights = mat.NewDense(m, n, nil)
	row := make([]float64, n)
	for i := 0; i < m; i++ {
		mat.Row(row, i, &scores)
		if mask != nil && applyMask(row, mask[i]) {
			continue // fully masked, leave the zero row
		}
		softmax(row)
		weights.SetRow(i, row)
	}

	out = &mat.Dense{}
	out.Mul(weights, v)
	return out, weights, nil
}

func isEmpty(x mat.Matrix) (empty bool) {
	if x == nil {
		return true
	}
	// gonum panics with ErrZeroLength on zero-value matrices.
	defer func() {
		if recover() != nil {
			empty = true
		}
	}()
	r, c := x.Dims()
	return r == 0 || c == 0
}

func checkMask(mask Mask, m, n int) error {
	if len(mask) != m {
		return fmt.Errorf("%w: mask has %d rows, scores have %d", ErrDimensionMismatch, len(mask), m)
	}
	for i, row := range mask {
		if len(row) != n {
			return fmt.Errorf("%w: mask row %d has %d columns, scores have %d", ErrDimensionMismatch, i, len(row), n)
		}
	}
	return nil
}

// applyMask replaces masked scores with MaskedScore and reports whether every
// position of the row was masked.
func applyMask(scores []float64, mask []bool) (allMasked bool) {
	allMasked = true
	for j, masked := range mask {
		if masked {
			scores[j] = MaskedScore
		} else {
			allMasked = false
		}
	}
	return allMasked
}

// softmax normalizes x in place, subtracting the maximum first for numerical
// stability.
func softmax(x []float64) {
	maxVal := math.Inf(-1)
	for _, v := range x {
		maxVal = math.Max(maxVal, v)
	}
	var sum float64
	for i, v := range x {
		x[i] = math.Exp(v - maxVal)
		sum += x[i]
	}
	if sum == 0 {
		return
	}
	for i := range x {
		x[i] /= sum
	}
}
