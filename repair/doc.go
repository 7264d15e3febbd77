// Package repair maps fractional-factorial design rows onto the build
// graph and restores feasibility: connectivity, exact budget, and gate
// thresholds.
//
// What
//
//	Engine.Repair runs five passes over one row, each a fixed-point
//	iteration bounded by graph size:
//
//	 1. Apply factor settings — include/exclude nodes, set ranks and
//	    choice entries per the row's bits. Rank-2 implies rank-1
//	    immediately. Locked nodes are seeded first at their pinned rank.
//	 2. Connectivity repair — while a selected non-root node has no
//	    selected prerequisite, search backward over prerequisite edges
//	    for the nearest selected-or-root anchor and select every node on
//	    that path at full rank. An unreachable anchor is recorded as an
//	    UnreachableRepairTarget error.
//	 3. Over-budget reconciliation — remove the lowest-priority
//	    removable point (deepest, then lexically greatest), decrementing
//	    rank before full removal, skipping removals that would orphan a
//	    dependant whose only selected prerequisite is the victim or drop
//	    another selected node below its gate threshold.
//	 4. Under-budget reconciliation — add the highest-priority available
//	    point (shallowest, then lexically least; non-excluded before
//	    excluded) among prerequisite- and gate-satisfied candidates,
//	    including rank bumps, until exact budget.
//	 5. Gate repair — swap one point from a removable post-gate node to
//	    an addable pre-gate node (net budget unchanged), a bounded
//	    number of times; an unclosed violation is recorded.
//
// Why
//
//	Design rows are statistically balanced but structurally naive: a
//	row may select a leaf without its ancestors, or spend the wrong
//	total. Repair restores the graph's invariants while disturbing the
//	row's settings as little as the priority order allows.
//
// Determinism
//
//	Repair is a pure function of (row, factors, graph, classification,
//	budget). Both budget passes share one total-order comparator,
//	core.Graph.ByPriority (topological depth, then node ID), with
//	removal walking it descending and addition ascending. Re-running on
//	identical input yields a byte-identical Build.
//
// Termination
//
//	Connectivity and gate repair are bounded by node count; budget
//	reconciliation by budget × node count. No pass can loop forever.
//
// Errors
//
//	Per-row failures never abort a run: they are recorded on the
//	Build's Errs with Feasible=false, preserving the 1:1 row↔build
//	audit trail. Sentinels: ErrInfeasible, ErrUnreachable,
//	ErrGateViolation. Constructor/input failures (ErrGraphNil,
//	ErrClassificationNil, ErrBadBudget, ErrRowMismatch) are returned
//	eagerly instead.
package repair
