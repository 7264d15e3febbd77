package repair_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/buildspace/classify"
	"github.com/katalvlaran/buildspace/core"
	"github.com/katalvlaran/buildspace/factorial"
	"github.com/katalvlaran/buildspace/repair"
)

// benchTree builds a binary prerequisite tree of the given depth with a
// free root and unit-cost simple nodes.
func benchTree(depth int) []core.Node {
	nodes := []core.Node{{ID: "n1", Free: true}}
	count := (1 << depth) - 1
	for i := 2; i <= count; i++ {
		nodes = append(nodes, core.Node{
			ID:      core.NodeID(fmt.Sprintf("n%d", i)),
			Prereqs: []core.NodeID{core.NodeID(fmt.Sprintf("n%d", i/2))},
		})
	}
	return nodes
}

// BenchmarkRepair_BinaryTree measures single-row repair on a complete
// binary tree of depth 6 (63 nodes) with a half-full budget.
func BenchmarkRepair_BinaryTree(b *testing.B) {
	g, err := core.NewGraph(benchTree(6))
	if err != nil {
		b.Fatal(err)
	}
	budget := g.Len() / 2
	cls, err := classify.Classify(g, budget, classify.Overrides{})
	if err != nil {
		b.Fatal(err)
	}
	eng, err := repair.NewEngine(g, cls, budget)
	if err != nil {
		b.Fatal(err)
	}
	factors := factorial.Identify(cls.Factors)
	d, err := factorial.NewDesign(len(factors))
	if err != nil {
		b.Fatal(err)
	}
	row := d.Matrix[len(d.Matrix)/2]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Repair(row, factors); err != nil {
			b.Fatal(err)
		}
	}
}
