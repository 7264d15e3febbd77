package classify

import (
	"fmt"

	"github.com/katalvlaran/buildspace/core"
)

// Classify partitions g's nodes into locked, factor, and excluded sets
// under the given budget and overrides. It is a pure function: the
// graph is only read, and identical inputs always yield an identical
// Classification.
func Classify(g *core.Graph, budget int, ov Overrides, opts ...Option) (*Classification, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cls := &Classification{
		Locked:      make(map[core.NodeID]bool),
		LockedRanks: make(map[core.NodeID]int),
		Excluded:    make(map[core.NodeID]bool),
	}

	// 1. Lock every Free node and every true root. An apex root with
	//    MaxRanks > 1 represents an optional investment, so it remains
	//    a factor candidate rather than a mandatory anchor.
	for _, n := range g.Nodes() {
		if n.Free {
			lock(cls, n, n.MaxRanks)
			continue
		}
		if n.Root && n.MaxRanks == 1 {
			lock(cls, n, 1)
		}
	}

	// 2. Reachability from all roots bounds every later set.
	reachable := g.Reachable()

	// 3. Require overrides lock by ID, expanding prerequisites
	//    transitively along the canonical priority order.
	for _, id := range ov.Require {
		n, ok := g.Node(id)
		if !ok {
			return nil, fmt.Errorf("%w: require %q", ErrUnknownNode, id)
		}
		if err := lockTransitively(g, cls, n); err != nil {
			return nil, err
		}
	}

	// 4. Effective exclusion set = (Exclude ∪ defaults) − Include.
	excluded := make(map[string]bool, len(ov.Exclude)+len(o.defaultExcluded))
	for _, name := range o.defaultExcluded {
		excluded[name] = true
	}
	for _, name := range ov.Exclude {
		excluded[name] = true
	}
	for _, name := range ov.Include {
		delete(excluded, name)
	}

	// 5. Partition the remaining reachable nodes.
	for _, n := range g.Nodes() {
		if !reachable[n.ID] || cls.Locked[n.ID] {
			continue
		}
		if isExcluded(n, excluded) {
			cls.Excluded[n.ID] = true
			continue
		}
		cls.Factors = append(cls.Factors, n)
	}
	return cls, nil
}

// lock pins n at rank r in the locked set.
func lock(cls *Classification, n *core.Node, r int) {
	cls.Locked[n.ID] = true
	cls.LockedRanks[n.ID] = r
}

// lockTransitively locks n at full rank, then walks prerequisite edges
// toward an already-locked node or root, locking every node on the
// chosen path. Prerequisites are OR-semantics, so one path suffices;
// the canonical priority order picks it deterministically.
func lockTransitively(g *core.Graph, cls *Classification, n *core.Node) error {
	if cls.Locked[n.ID] {
		return nil
	}
	lock(cls, n, n.MaxRanks)
	if n.Root {
		return nil
	}
	path, ok := g.PathToAnchor(n.ID, func(id core.NodeID) bool {
		p, _ := g.Node(id)
		return cls.Locked[id] || p.Root
	})
	if !ok {
		return fmt.Errorf("%w: no prerequisite path for %q", core.ErrDanglingPrereq, n.ID)
	}
	for _, id := range path {
		if cls.Locked[id] {
			continue
		}
		p, _ := g.Node(id)
		lock(cls, p, p.MaxRanks)
	}
	return nil
}

// isExcluded reports whether the exclusion set names n: its ID, or for
// Choice nodes, every one of its entries.
func isExcluded(n *core.Node, excluded map[string]bool) bool {
	if excluded[string(n.ID)] {
		return true
	}
	if n.Kind != core.Choice {
		return false
	}
	for _, e := range n.Entries {
		if !excluded[e] {
			return false
		}
	}
	return true
}
