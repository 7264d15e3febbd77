// Package core defines the node DAG underlying the build-space sampler:
// the Node and Kind types, the immutable Graph container, structural
// validation, and the deterministic traversal primitives every later
// stage builds on.
//
// What
//
//   - Node: one vertex of the prerequisite DAG, carrying cost per rank,
//     maximum ranks, a closed Kind (Simple, MultiRank, Choice),
//     OR-semantics prerequisites, an optional gate threshold, and the
//     Root/Free flags.
//   - Graph: a validated, immutable view over a node list. Construction
//     derives the successor adjacency (the inverse of the prerequisite
//     relation) and the topological depth of every node, and rejects
//     structurally broken input up front.
//   - Reachable: forward BFS from every root over successor edges.
//   - Depth: longest prerequisite-path distance from the roots, the
//     positional half of the sampler's priority order.
//
// Why
//
//   - Every downstream stage (classification, repair, variant
//     enumeration) assumes a well-formed DAG; validating once here means
//     no stage needs defensive re-checks.
//   - Determinism: all accessors return nodes in source order, and both
//     traversals visit in that order, so identical input always yields
//     identical output across the whole pipeline.
//
// Validation rules (checked by NewGraph, fail-fast)
//
//   - node IDs are non-empty and unique
//   - Cost ≥ 0 (0 is normalized to 1 unless the node is Free)
//   - MaxRanks ≥ 1 (0 is normalized to 1)
//   - Choice nodes carry at least two entries; other kinds carry none
//   - every prerequisite ID resolves to a node in the list
//   - at least one root exists and the graph is acyclic
//
// Complexity (V = |Nodes|, E = Σ|Prereqs|)
//
//   - NewGraph:   O(V + E) validation, adjacency and depth derivation
//   - Reachable:  O(V + E)
//   - accessors:  O(1) lookup, O(V) listing
//
// Errors
//
//   - ErrEmptyNodeID, ErrDuplicateNode, ErrNegativeCost, ErrBadRanks,
//     ErrChoiceArity, ErrDanglingPrereq, ErrNoRoots, ErrCycleDetected
//     for validation failures (wrapped with the offending node's ID);
//   - ErrNodeNotFound for lookups of unknown IDs.
package core
