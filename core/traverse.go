package core

// Reachable computes the set of nodes reachable from the graph's roots
// via forward BFS over successor edges. Every root is reachable by
// definition. Visit order follows source order at each frontier, so the
// result (and anything derived from it) is reproducible.
//
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) Reachable() map[NodeID]bool {
	seen := make(map[NodeID]bool, len(g.nodes))
	queue := make([]NodeID, 0, len(g.nodes))
	for _, r := range g.roots {
		seen[r] = true
		queue = append(queue, r)
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, s := range g.succ[id] {
			if !seen[s] {
				seen[s] = true
				queue = append(queue, s)
			}
		}
	}
	return seen
}

// PathToAnchor searches backward from id over prerequisite edges for
// the nearest node satisfying anchor, and returns the ancestor chain
// from that anchor down to id's direct prerequisite, anchor first
// (id itself is not included; the anchor is). At each step candidate
// prerequisites are tried in canonical priority order, so the chosen
// path is deterministic. Returns ok=false when no anchor is reachable,
// which signals a graph defect to the caller.
//
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) PathToAnchor(id NodeID, anchor func(NodeID) bool) ([]NodeID, bool) {
	seen := map[NodeID]bool{id: true}
	parents := make(map[NodeID]NodeID)
	queue := []NodeID{id}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		prereqs := append([]NodeID(nil), g.nodes[cur].Prereqs...)
		g.SortByPriority(prereqs)
		for _, p := range prereqs {
			if seen[p] {
				continue
			}
			seen[p] = true
			parents[p] = cur
			if anchor(p) {
				// Walk the parent links back toward id; they already run
				// anchor-side first, ending at id's direct prerequisite.
				path := []NodeID{p}
				for at := parents[p]; at != id; at = parents[at] {
					path = append(path, at)
				}
				return path, true
			}
			queue = append(queue, p)
		}
	}
	return nil, false
}
