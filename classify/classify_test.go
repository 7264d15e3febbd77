package classify_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/buildspace/classify"
	"github.com/katalvlaran/buildspace/core"
)

func mustGraph(t *testing.T, nodes []core.Node) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(nodes)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func factorIDs(cls *classify.Classification) []core.NodeID {
	ids := make([]core.NodeID, len(cls.Factors))
	for i, n := range cls.Factors {
		ids[i] = n.ID
	}
	return ids
}

// TestClassify_Errors verifies invalid inputs are rejected up front.
func TestClassify_Errors(t *testing.T) {
	if _, err := classify.Classify(nil, 5, classify.Overrides{}); !errors.Is(err, classify.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustGraph(t, []core.Node{{ID: "R"}})
	if _, err := classify.Classify(g, -1, classify.Overrides{}); !errors.Is(err, classify.ErrBadBudget) {
		t.Errorf("negative budget: want ErrBadBudget, got %v", err)
	}
	ov := classify.Overrides{Require: []core.NodeID{"missing"}}
	if _, err := classify.Classify(g, 5, ov); !errors.Is(err, classify.ErrUnknownNode) {
		t.Errorf("unknown require: want ErrUnknownNode, got %v", err)
	}
}

// TestClassify_RootsAndFree checks rule 1: free and true-root locking.
func TestClassify_RootsAndFree(t *testing.T) {
	g := mustGraph(t, []core.Node{
		{ID: "R", Free: true},
		{ID: "S"},                                   // paid single-rank root: locked
		{ID: "M", MaxRanks: 3, Kind: core.MultiRank}, // apex root: factor
		{ID: "A", Prereqs: []core.NodeID{"R"}},
	})
	cls, err := classify.Classify(g, 5, classify.Overrides{})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !cls.Locked["R"] || !cls.Locked["S"] {
		t.Errorf("R and S should be locked; locked=%v", cls.Locked)
	}
	if cls.Locked["M"] {
		t.Error("apex root M must remain a factor, not a lock")
	}
	got := factorIDs(cls)
	want := map[core.NodeID]bool{"M": true, "A": true}
	if len(got) != 2 || !want[got[0]] || !want[got[1]] {
		t.Errorf("factors = %v; want {M, A}", got)
	}
}

// TestClassify_RequireExpandsTransitively checks rule 3.
func TestClassify_RequireExpandsTransitively(t *testing.T) {
	g := mustGraph(t, []core.Node{
		{ID: "R", Free: true},
		{ID: "A", Prereqs: []core.NodeID{"R"}},
		{ID: "B", MaxRanks: 2, Kind: core.MultiRank, Prereqs: []core.NodeID{"A"}},
		{ID: "C", Prereqs: []core.NodeID{"B"}},
	})
	ov := classify.Overrides{Require: []core.NodeID{"C"}}
	cls, err := classify.Classify(g, 10, ov)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	for _, id := range []core.NodeID{"R", "A", "B", "C"} {
		if !cls.Locked[id] {
			t.Errorf("%s should be locked; locked=%v", id, cls.Locked)
		}
	}
	if cls.LockedRanks["B"] != 2 {
		t.Errorf("LockedRanks[B] = %d; want full rank 2", cls.LockedRanks["B"])
	}
	if len(cls.Factors) != 0 {
		t.Errorf("factors = %v; want none", factorIDs(cls))
	}
}

// TestClassify_Exclusions covers exclude/include set algebra and the
// all-entries rule for Choice nodes.
func TestClassify_Exclusions(t *testing.T) {
	g := mustGraph(t, []core.Node{
		{ID: "R", Free: true},
		{ID: "A", Prereqs: []core.NodeID{"R"}},
		{ID: "B", Prereqs: []core.NodeID{"R"}},
		{ID: "CH", Kind: core.Choice, Entries: []string{"left", "right"}, Prereqs: []core.NodeID{"R"}},
	})

	ov := classify.Overrides{Exclude: []string{"A", "left", "right"}}
	cls, err := classify.Classify(g, 5, ov)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !cls.Excluded["A"] || !cls.Excluded["CH"] {
		t.Errorf("A and CH should be excluded; excluded=%v", cls.Excluded)
	}
	if ids := factorIDs(cls); len(ids) != 1 || ids[0] != "B" {
		t.Errorf("factors = %v; want [B]", ids)
	}

	// One surviving entry keeps the Choice node a factor.
	ov = classify.Overrides{Exclude: []string{"left"}}
	cls, _ = classify.Classify(g, 5, ov)
	if cls.Excluded["CH"] {
		t.Error("CH with one live entry must not be excluded")
	}

	// Include lifts a default exclusion.
	cls, _ = classify.Classify(g, 5,
		classify.Overrides{Include: []string{"A"}},
		classify.WithDefaultExcluded("A", "B"))
	if cls.Excluded["A"] || !cls.Excluded["B"] {
		t.Errorf("include should lift only A; excluded=%v", cls.Excluded)
	}
}

// TestClassify_Pure verifies repeated classification of the same input
// yields the same partition.
func TestClassify_Pure(t *testing.T) {
	g := mustGraph(t, []core.Node{
		{ID: "R", Free: true},
		{ID: "A", Prereqs: []core.NodeID{"R"}},
		{ID: "B", Prereqs: []core.NodeID{"A"}},
	})
	ov := classify.Overrides{Require: []core.NodeID{"B"}, Exclude: []string{"A"}}
	first, err := classify.Classify(g, 5, ov)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	second, _ := classify.Classify(g, 5, ov)
	if len(first.Locked) != len(second.Locked) || len(first.Factors) != len(second.Factors) {
		t.Errorf("classification not stable: %v vs %v", first, second)
	}
	// Require wins over Exclude: A is on B's only prerequisite path.
	if !first.Locked["A"] || first.Excluded["A"] {
		t.Errorf("A should be locked via require expansion; locked=%v excluded=%v",
			first.Locked, first.Excluded)
	}
}
