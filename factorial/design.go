package factorial

import "fmt"

// NewDesign builds a resolution-IV two-level design for k factors.
//
// The base size b is the smallest integer with b + C(b,2) ≥ k: b base
// columns supply up to C(b,2) generator columns as pairwise XOR
// products without aliasing any main effect against another main or a
// two-factor interaction. The matrix is the full 2^b factorial over the
// base columns; generator columns reuse each base pair at most once,
// assigned in a fixed enumeration order.
//
// k = 0 yields the trivial single empty row. k ≤ b skips generators.
func NewDesign(k int) (*Design, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadFactorCount, k)
	}
	b, err := baseSize(k)
	if err != nil {
		return nil, err
	}
	rows := 1 << b

	d := &Design{
		Matrix:   make([][]uint8, rows),
		BaseSize: b,
		NRows:    rows,
	}

	// 1. Full factorial over the b base columns: column j of row i is
	//    bit j of i.
	for i := 0; i < rows; i++ {
		row := make([]uint8, k)
		for j := 0; j < b && j < k; j++ {
			row[j] = uint8((i >> j) & 1)
		}
		d.Matrix[i] = row
	}
	if k <= b {
		return d, nil
	}

	// 2. Generator columns: XOR of distinct, not-yet-used base pairs in
	//    enumeration order (0,1), (0,2), (1,2), (0,3), (1,3), ...
	pairs := basePairs(b)
	for c := b; c < k; c++ {
		p := pairs[c-b]
		d.Generators = append(d.Generators, p)
		for i := 0; i < rows; i++ {
			d.Matrix[i][c] = d.Matrix[i][p[0]] ^ d.Matrix[i][p[1]]
		}
	}
	return d, nil
}

// baseSize returns the smallest b with b + C(b,2) ≥ k.
func baseSize(k int) (int, error) {
	for b := 0; b <= maxBaseSize; b++ {
		if b+b*(b-1)/2 >= k {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrTooManyFactors, k)
}

// basePairs enumerates all C(b,2) base-column pairs in a fixed order:
// for each j, all (i, j) with i < j.
func basePairs(b int) [][2]int {
	pairs := make([][2]int, 0, b*(b-1)/2)
	for j := 1; j < b; j++ {
		for i := 0; i < j; i++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}
