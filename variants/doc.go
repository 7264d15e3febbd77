// Package variants crosses repaired builds with mutually-exclusive
// branch assignments and deduplicates the composites by canonical
// fingerprint.
//
// What
//
//   - A Branch names a subgraph whose Choice nodes are enumerated
//     exogenously rather than inside the main factorial design (a
//     sub-specialization, in game terms).
//   - Enumerate lists every combination of a branch's Choice-node
//     entries, honoring per-branch locks ({choice node → entry index})
//     and unlocks; a branch whose choices are all locked yields one
//     trivial assignment.
//   - Cross pairs every build with every assignment of every branch,
//     computes each composite's fingerprint (the sorted id:rank pairs
//     joined with the branch name and its choice assignment) and drops
//     composites whose fingerprint was already emitted.
//
// Why
//
//	Branch choices multiply the build space without being independent
//	binary factors; enumerating them outside the design keeps the
//	factorial small while still covering every variant. Deduplication
//	matters because repair can collapse different rows onto the same
//	selection.
//
// Feasibility
//
//	This stage performs no repair: a composite inherits its build's
//	Feasible flag and errors untouched.
//
// Determinism
//
//	Assignments enumerate in odometer order over the branch's Choice
//	nodes as listed; Cross iterates builds in input order, then
//	branches in input order, so first-seen wins deterministically.
//
// Errors
//
//   - ErrUnknownChoice when a branch (or one of its locks) names a node
//     absent from the graph or not a Choice node.
//   - ErrBadEntry when a lock's entry index is out of range.
package variants
