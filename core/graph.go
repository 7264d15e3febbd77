package core

import (
	"fmt"
	"sort"
)

// Graph is a validated, immutable view over a node list.
//
// Construction derives the successor adjacency (inverse prerequisites)
// and every node's topological depth. All listing accessors return IDs
// in source order so traversal output is reproducible.
type Graph struct {
	nodes map[NodeID]*Node
	order []NodeID            // source order of the input list
	succ  map[NodeID][]NodeID // derived inverse of Prereqs, source order
	roots []NodeID            // source order
	depth map[NodeID]int      // longest prerequisite-path distance from roots
}

// NewGraph validates and normalizes the node list and builds the
// derived adjacency. The input slice is copied; later mutation of the
// caller's nodes does not affect the Graph.
//
// Normalization: Cost 0 becomes 1 unless Free; MaxRanks 0 becomes 1;
// a node with no prerequisites becomes Root; a Free node's cost is 0.
func NewGraph(nodes []Node) (*Graph, error) {
	g := &Graph{
		nodes: make(map[NodeID]*Node, len(nodes)),
		order: make([]NodeID, 0, len(nodes)),
		succ:  make(map[NodeID][]NodeID, len(nodes)),
		depth: make(map[NodeID]int, len(nodes)),
	}

	// 1. Normalize and register every node, rejecting local defects.
	for i := range nodes {
		n := nodes[i] // copy
		if n.ID == "" {
			return nil, fmt.Errorf("%w: node at index %d", ErrEmptyNodeID, i)
		}
		if _, dup := g.nodes[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		if n.Cost < 0 {
			return nil, fmt.Errorf("%w: %q has cost %d", ErrNegativeCost, n.ID, n.Cost)
		}
		if n.MaxRanks < 0 {
			return nil, fmt.Errorf("%w: %q has maxRanks %d", ErrBadRanks, n.ID, n.MaxRanks)
		}
		if n.MaxRanks == 0 {
			n.MaxRanks = 1
		}
		switch n.Kind {
		case Choice:
			if len(n.Entries) < 2 {
				return nil, fmt.Errorf("%w: %q has %d", ErrChoiceArity, n.ID, len(n.Entries))
			}
		case Simple, MultiRank:
			if len(n.Entries) != 0 {
				return nil, fmt.Errorf("%w: %q is %s but declares entries", ErrChoiceArity, n.ID, n.Kind)
			}
		}
		if n.Free {
			n.Cost = 0
		} else if n.Cost == 0 {
			n.Cost = 1
		}
		if len(n.Prereqs) == 0 {
			n.Root = true
		}
		g.nodes[n.ID] = &n
		g.order = append(g.order, n.ID)
	}

	// 2. Resolve prerequisites and derive the successor adjacency.
	for _, id := range g.order {
		n := g.nodes[id]
		if n.Root {
			g.roots = append(g.roots, id)
		}
		for _, p := range n.Prereqs {
			if _, ok := g.nodes[p]; !ok {
				return nil, fmt.Errorf("%w: %q referenced by %q", ErrDanglingPrereq, p, id)
			}
			g.succ[p] = append(g.succ[p], id)
		}
	}
	if len(g.roots) == 0 {
		return nil, ErrNoRoots
	}

	// 3. Compute topological depths; a cycle surfaces here.
	if err := g.computeDepths(); err != nil {
		return nil, err
	}
	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node with the given ID, or false if absent.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Order returns all node IDs in source order. The caller must not
// mutate the returned slice.
func (g *Graph) Order() []NodeID { return g.order }

// Nodes returns all nodes in source order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id]
	}
	return out
}

// Roots returns the root node IDs in source order.
func (g *Graph) Roots() []NodeID { return g.roots }

// Successors returns the IDs whose prerequisites include id, in source
// order. The caller must not mutate the returned slice.
func (g *Graph) Successors(id NodeID) []NodeID { return g.succ[id] }

// Depth returns the topological depth of id: the longest
// prerequisite-path distance from any root. Roots have depth 0.
// Unknown IDs report depth 0.
func (g *Graph) Depth(id NodeID) int { return g.depth[id] }

// ByPriority reports whether a precedes b in the sampler's canonical
// addition order: shallower topological depth first, then lexicographic
// node ID. Removal order is the exact reverse. Both the over-budget and
// under-budget repair passes use this single comparator so determinism
// stays auditable in one place.
func (g *Graph) ByPriority(a, b NodeID) bool {
	if da, db := g.depth[a], g.depth[b]; da != db {
		return da < db
	}
	return a < b
}

// SortByPriority sorts ids in place into canonical addition order.
func (g *Graph) SortByPriority(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return g.ByPriority(ids[i], ids[j]) })
}

// depth computation: iterative DFS with three-color marking over the
// prerequisite relation, longest-path memoization. White=0 Gray=1 Black=2.
func (g *Graph) computeDepths() error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	state := make(map[NodeID]int, len(g.nodes))

	var visit func(id NodeID) (int, error)
	visit = func(id NodeID) (int, error) {
		switch state[id] {
		case gray:
			return 0, fmt.Errorf("%w: at %q", ErrCycleDetected, id)
		case black:
			return g.depth[id], nil
		}
		state[id] = gray
		d := 0
		for _, p := range g.nodes[id].Prereqs {
			pd, err := visit(p)
			if err != nil {
				return 0, err
			}
			if pd+1 > d {
				d = pd + 1
			}
		}
		state[id] = black
		g.depth[id] = d
		return d, nil
	}

	for _, id := range g.order {
		if _, err := visit(id); err != nil {
			return err
		}
	}
	return nil
}
