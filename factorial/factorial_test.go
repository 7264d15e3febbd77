package factorial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buildspace/core"
	"github.com/katalvlaran/buildspace/factorial"
)

// TestIdentify_PerKind checks the expansion rules for every node kind.
func TestIdentify_PerKind(t *testing.T) {
	nodes := []*core.Node{
		{ID: "s", Kind: core.Simple, MaxRanks: 1},
		{ID: "m1", Kind: core.MultiRank, MaxRanks: 1},
		{ID: "m3", Kind: core.MultiRank, MaxRanks: 3},
		{ID: "c", Kind: core.Choice, MaxRanks: 1, Entries: []string{"x", "y", "z"}},
	}
	fs := factorial.Identify(nodes)
	require.Len(t, fs, 5)

	require.Equal(t, factorial.Factor{Node: "s", Kind: factorial.Take}, fs[0])
	require.Equal(t, factorial.Factor{Node: "m1", Kind: factorial.Take}, fs[1])
	require.Equal(t, factorial.Factor{Node: "m3", Kind: factorial.Rank1, Rank: 1}, fs[2])
	require.Equal(t, factorial.Factor{Node: "m3", Kind: factorial.Rank2, Rank: 2}, fs[3])
	// >2 entries: the factor is restricted to the first two.
	require.Equal(t, factorial.Factor{Node: "c", Kind: factorial.Entry, EntryA: 0, EntryB: 1}, fs[4])
}

// TestIdentify_Stable verifies source order is preserved across runs.
func TestIdentify_Stable(t *testing.T) {
	nodes := []*core.Node{
		{ID: "b", Kind: core.Simple},
		{ID: "a", Kind: core.Simple},
	}
	fs := factorial.Identify(nodes)
	require.Equal(t, core.NodeID("b"), fs[0].Node)
	require.Equal(t, core.NodeID("a"), fs[1].Node)
}

// TestNewDesign_Shape checks b selection and row counts across K.
func TestNewDesign_Shape(t *testing.T) {
	cases := []struct {
		k, wantBase, wantRows, wantGens int
	}{
		{0, 0, 1, 0},
		{1, 1, 2, 0},
		{2, 2, 4, 0},
		{3, 2, 4, 1}, // b=2: 2+1 ≥ 3
		{4, 3, 8, 1}, // b=3: 3+3 ≥ 4
		{6, 3, 8, 3},
		{7, 4, 16, 3}, // b=4: 4+6 ≥ 7
		{10, 4, 16, 6},
		{11, 5, 32, 6},
	}
	for _, tc := range cases {
		d, err := factorial.NewDesign(tc.k)
		require.NoError(t, err, "k=%d", tc.k)
		require.Equal(t, tc.wantBase, d.BaseSize, "k=%d base", tc.k)
		require.Equal(t, tc.wantRows, d.NRows, "k=%d rows", tc.k)
		require.Len(t, d.Matrix, tc.wantRows, "k=%d matrix", tc.k)
		require.Len(t, d.Generators, tc.wantGens, "k=%d generators", tc.k)
		for _, row := range d.Matrix {
			require.Len(t, row, tc.k)
		}
	}
}

// TestNewDesign_Errors rejects invalid factor counts.
func TestNewDesign_Errors(t *testing.T) {
	_, err := factorial.NewDesign(-1)
	require.ErrorIs(t, err, factorial.ErrBadFactorCount)

	_, err = factorial.NewDesign(20 + 20*19/2 + 1)
	require.ErrorIs(t, err, factorial.ErrTooManyFactors)
}

// TestNewDesign_GeneratorColumns verifies each generator column equals
// the XOR of its recorded base pair and that pairs are distinct.
func TestNewDesign_GeneratorColumns(t *testing.T) {
	d, err := factorial.NewDesign(6)
	require.NoError(t, err)

	seen := map[[2]int]bool{}
	for gi, pair := range d.Generators {
		require.False(t, seen[pair], "pair %v reused", pair)
		seen[pair] = true
		col := d.BaseSize + gi
		for _, row := range d.Matrix {
			require.Equal(t, row[pair[0]]^row[pair[1]], row[col])
		}
	}
}

// TestNewDesign_PairCoverage asserts the pre-repair resolution-IV
// property: every factor pair exhibits all four level combinations.
func TestNewDesign_PairCoverage(t *testing.T) {
	for _, k := range []int{2, 4, 6, 9, 10} {
		d, err := factorial.NewDesign(k)
		require.NoError(t, err)
		q := factorial.Measure(d.Matrix)
		require.Equal(t, 1.0, q.PairCoverage, "k=%d", k)
		require.Equal(t, 0.0, q.Balance, "k=%d", k)
		require.True(t, q.Orthogonal, "k=%d maxCorr=%f", k, q.MaxCorrelation)
	}
}

// TestNewDesign_Determinism: identical K, identical matrix.
func TestNewDesign_Determinism(t *testing.T) {
	a, err := factorial.NewDesign(7)
	require.NoError(t, err)
	b, err := factorial.NewDesign(7)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestMeasure_Degenerate covers empty and single-column input.
func TestMeasure_Degenerate(t *testing.T) {
	q := factorial.Measure(nil)
	require.True(t, q.Orthogonal)
	require.Equal(t, 1.0, q.PairCoverage)

	q = factorial.Measure([][]uint8{{1}, {0}})
	require.Equal(t, 0.0, q.Balance)
	require.Equal(t, 1.0, q.PairCoverage)
}

// TestMeasure_CorrelatedColumns detects a fully aliased pair.
func TestMeasure_CorrelatedColumns(t *testing.T) {
	m := [][]uint8{
		{0, 0},
		{1, 1},
		{0, 0},
		{1, 1},
	}
	q := factorial.Measure(m)
	require.InDelta(t, 1.0, q.MaxCorrelation, 1e-9)
	require.False(t, q.Orthogonal)
	require.Equal(t, 0.0, q.PairCoverage)
}
