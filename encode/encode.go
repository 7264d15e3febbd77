// Package encode defines the contract for serializing builds into the
// external evaluator's opaque encoding.
//
// The byte/bit layout of the encoded string belongs to a third-party
// consumer and is never produced or reinterpreted here: this package
// only assembles the ordered selection data an Encoder needs. Supplying
// an Encoder is optional; the sampler runs fine without one.
package encode

import (
	"github.com/katalvlaran/buildspace/core"
	"github.com/katalvlaran/buildspace/repair"
)

// Selections is the ordered view of one build that an Encoder consumes.
// Both slices align index-for-index with the node ordering passed to
// Encode.
type Selections struct {
	// Ranks holds the selected rank per node, 0 when unselected.
	Ranks []int

	// Entries holds the selected entry index per Choice node, -1 when
	// the node is unselected or not a Choice.
	Entries []int
}

// Encoder serializes one build into the evaluator's opaque encoding.
// Implementations are external collaborators; the returned string is
// treated as a black box.
type Encoder interface {
	Encode(order []core.NodeID, sel Selections) (string, error)
}

// Assemble builds the ordered Selections view for one build, with any
// branch-variant choice assignments overlaid on the build's own.
func Assemble(g *core.Graph, b *repair.Build, branchEntries map[core.NodeID]int) Selections {
	order := g.Order()
	sel := Selections{
		Ranks:   make([]int, len(order)),
		Entries: make([]int, len(order)),
	}
	for i, id := range order {
		sel.Ranks[i] = b.Rank(id)
		sel.Entries[i] = -1
		if e, ok := b.Choices[id]; ok {
			sel.Entries[i] = e
		}
		if e, ok := branchEntries[id]; ok {
			sel.Entries[i] = e
		}
	}
	return sel
}
