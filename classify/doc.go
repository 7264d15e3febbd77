// Package classify partitions the nodes of a build graph into three
// disjoint sets, given caller overrides: locked (always selected),
// factors (free decision points), and excluded (forced skips).
//
// What
//
//   - Classify locks every Free node and every true root. A root with
//     MaxRanks > 1 is an optional investment apex, not a mandatory
//     anchor, so it stays a factor.
//   - Computes the reachable set from all roots (forward BFS over
//     successor edges); unreachable nodes belong to no set.
//   - Require overrides lock nodes by ID, expanding prerequisites
//     transitively along the canonical priority order until an already
//     locked node or a root is reached.
//   - The effective exclusion set is (Exclude ∪ default exclusions) −
//     Include. A reachable unlocked node is excluded when its ID is in
//     the set (for Choice nodes: when every entry name is).
//   - Everything reachable, unlocked, and unexcluded is a factor node,
//     reported in source order.
//
// Why
//
//   - The repair engine needs a fixed, immutable partition: which nodes
//     it must keep (locked), which it may toggle (factors), and which it
//     should only touch as a last resort (excluded). Computing the
//     partition exactly once keeps the exclusion set from being
//     re-derived mid-repair.
//
// Determinism
//
//	Classification is a pure function of (graph, budget, overrides,
//	options). Factor order is graph source order; transitive Require
//	expansion follows core.Graph.ByPriority.
//
// Complexity (V = |Nodes|, E = Σ|Prereqs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil       if the graph pointer is nil.
//   - ErrBadBudget      if the budget is negative.
//   - ErrUnknownNode    if an override names a node absent from the graph.
package classify
