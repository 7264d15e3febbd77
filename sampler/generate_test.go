package sampler_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buildspace/classify"
	"github.com/katalvlaran/buildspace/core"
	"github.com/katalvlaran/buildspace/encode"
	"github.com/katalvlaran/buildspace/sampler"
	"github.com/katalvlaran/buildspace/variants"
)

// talentTree is a small but representative graph: a free root, a
// multi-rank node, a gated tier, and a choice node.
func talentTree(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]core.Node{
		{ID: "R", Free: true},
		{ID: "A", Kind: core.MultiRank, MaxRanks: 2, Prereqs: []core.NodeID{"R"}},
		{ID: "B", Prereqs: []core.NodeID{"R"}},
		{ID: "C", Kind: core.Choice, Entries: []string{"fire", "frost"}, Prereqs: []core.NodeID{"A", "B"}},
		{ID: "D", GateThreshold: 2, Prereqs: []core.NodeID{"B"}},
		{ID: "E", Prereqs: []core.NodeID{"D"}},
	})
	require.NoError(t, err)
	return g
}

// TestGenerate_EndToEnd checks report shape and per-build invariants.
func TestGenerate_EndToEnd(t *testing.T) {
	g := talentTree(t)
	res, err := sampler.Generate(g, 4, classify.Overrides{}, nil)
	require.NoError(t, err)

	// Factors: A → rank1+rank2, B → take, C → entry, D → take, E → take.
	require.Equal(t, 6, res.Report.K)
	require.Equal(t, 3, res.Report.BaseSize) // b=3: 3+3 ≥ 6
	require.Equal(t, 8, res.Report.NRows)
	require.Len(t, res.Report.Generators, 3)
	require.Equal(t, 1.0, res.Report.Quality.PairCoverage)
	require.True(t, res.Report.Quality.Orthogonal)

	require.NotEmpty(t, res.Builds)
	for _, c := range res.Builds {
		b := c.Build
		if !b.Feasible {
			require.NotEmpty(t, b.Errs, "infeasible build must carry errors")
			continue
		}
		require.Equal(t, 4, b.PointsSpent)
		for _, id := range b.Selected {
			n, _ := g.Node(id)
			if n.Root {
				continue
			}
			ok := false
			for _, p := range n.Prereqs {
				if b.Has(p) {
					ok = true
					break
				}
			}
			require.True(t, ok, "%s disconnected", id)
		}
	}
}

// TestGenerate_Dedup: no two composites share a fingerprint.
func TestGenerate_Dedup(t *testing.T) {
	g := talentTree(t)
	res, err := sampler.Generate(g, 4, classify.Overrides{}, nil)
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, c := range res.Builds {
		require.False(t, seen[c.Fingerprint], "duplicate %q", c.Fingerprint)
		seen[c.Fingerprint] = true
	}
}

// TestGenerate_ParallelMatchesSequential: worker-per-row repair must be
// byte-identical to the sequential run.
func TestGenerate_ParallelMatchesSequential(t *testing.T) {
	g := talentTree(t)
	seq, err := sampler.Generate(g, 4, classify.Overrides{}, nil)
	require.NoError(t, err)
	par, err := sampler.Generate(g, 4, classify.Overrides{}, nil, sampler.WithParallelism(4))
	require.NoError(t, err)
	require.Equal(t, seq, par)
}

// TestGenerate_Branches crosses with a branch and inherits dedup.
func TestGenerate_Branches(t *testing.T) {
	g := talentTree(t)
	branches := []variants.Branch{{Name: "frost", Choices: []core.NodeID{"C"}}}
	plain, err := sampler.Generate(g, 4, classify.Overrides{}, nil)
	require.NoError(t, err)
	crossed, err := sampler.Generate(g, 4, classify.Overrides{}, branches)
	require.NoError(t, err)
	require.Greater(t, len(crossed.Builds), len(plain.Builds)/2,
		"branch crossing should not collapse the space")
	for _, c := range crossed.Builds {
		require.Equal(t, "frost", c.Branch)
	}
}

// fakeEncoder renders selections as a comma list; stands in for the
// external evaluator's opaque encoding.
type fakeEncoder struct{}

func (fakeEncoder) Encode(order []core.NodeID, sel encode.Selections) (string, error) {
	parts := make([]string, len(order))
	for i, id := range order {
		parts[i] = fmt.Sprintf("%s=%d", id, sel.Ranks[i])
	}
	return strings.Join(parts, ","), nil
}

// TestGenerate_Encoder attaches one encoded string per composite.
func TestGenerate_Encoder(t *testing.T) {
	g := talentTree(t)
	res, err := sampler.Generate(g, 4, classify.Overrides{}, nil, sampler.WithEncoder(fakeEncoder{}))
	require.NoError(t, err)
	require.Len(t, res.Encoded, len(res.Builds))
	for _, enc := range res.Encoded {
		require.Contains(t, enc, "R=1")
	}
}

// TestGenerate_OptionViolation rejects bad options eagerly.
func TestGenerate_OptionViolation(t *testing.T) {
	g := talentTree(t)
	_, err := sampler.Generate(g, 4, classify.Overrides{}, nil, sampler.WithParallelism(0))
	require.ErrorIs(t, err, sampler.ErrOptionViolation)
}

// TestGenerate_NilGraph fails fast.
func TestGenerate_NilGraph(t *testing.T) {
	_, err := sampler.Generate(nil, 4, classify.Overrides{}, nil)
	require.ErrorIs(t, err, core.ErrGraphNil)
}

// TestGenerate_ZeroFactors: a fully locked graph still yields the
// trivial single-row design and one build.
func TestGenerate_ZeroFactors(t *testing.T) {
	g, err := core.NewGraph([]core.Node{{ID: "R", Free: true}})
	require.NoError(t, err)
	res, err := sampler.Generate(g, 0, classify.Overrides{}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, res.Report.K)
	require.Equal(t, 1, res.Report.NRows)
	require.Len(t, res.Builds, 1)
	require.True(t, res.Builds[0].Build.Feasible)
}
