// Package repair declares the Build value type and sentinel errors for
// row-to-build repair.
package repair

import (
	"errors"

	"github.com/katalvlaran/buildspace/core"
)

// Sentinel errors for repair.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("repair: graph is nil")

	// ErrClassificationNil is returned if a nil classification is passed.
	ErrClassificationNil = errors.New("repair: classification is nil")

	// ErrBadBudget is returned when the point budget is negative.
	ErrBadBudget = errors.New("repair: negative budget")

	// ErrRowMismatch is returned when a row's length differs from the
	// factor count.
	ErrRowMismatch = errors.New("repair: row length does not match factor count")

	// ErrInfeasible marks a build whose budget could not be reconciled
	// to the exact target.
	ErrInfeasible = errors.New("repair: build infeasible")

	// ErrUnreachable marks a build whose connectivity repair found no
	// prerequisite path to a selected-or-root anchor (a graph defect).
	ErrUnreachable = errors.New("repair: unreachable repair target")

	// ErrGateViolation marks a build with an unclosable gate-threshold
	// violation.
	ErrGateViolation = errors.New("repair: gate threshold violation")
)

// Build is the mapped-and-repaired result of one design row. It is a
// value object: produced once, never mutated afterward; ownership
// passes wholesale to the cross-product stage and then to the caller.
type Build struct {
	// Selected lists the selected node IDs sorted lexically.
	Selected []core.NodeID

	// Ranks maps every selected node to its rank (≥1).
	Ranks map[core.NodeID]int

	// Choices maps every selected Choice node to its entry index.
	Choices map[core.NodeID]int

	// PointsSpent is the total of rank × cost over selected nodes.
	PointsSpent int

	// Feasible is true iff PointsSpent equals the budget and no repair
	// error was recorded.
	Feasible bool

	// Errs records the repair failures for this row, if any.
	Errs []error
}

// Has reports whether id is selected.
func (b *Build) Has(id core.NodeID) bool { return b.Ranks[id] > 0 }

// Rank returns the selected rank of id, or 0 when unselected.
func (b *Build) Rank(id core.NodeID) int { return b.Ranks[id] }
