// Package core declares the Node, Kind, and Graph types together with
// the sentinel errors surfaced by structural validation.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates a node with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates two nodes sharing the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNegativeCost indicates a node with a negative per-rank cost.
	ErrNegativeCost = errors.New("core: negative node cost")

	// ErrBadRanks indicates a node declaring a negative rank count.
	ErrBadRanks = errors.New("core: negative max ranks")

	// ErrChoiceArity indicates a Choice node with fewer than two entries,
	// or a non-Choice node declaring entries.
	ErrChoiceArity = errors.New("core: choice node needs at least two entries")

	// ErrDanglingPrereq indicates a prerequisite ID that resolves to no node.
	ErrDanglingPrereq = errors.New("core: dangling prerequisite")

	// ErrNoRoots indicates a graph in which no node qualifies as a root.
	ErrNoRoots = errors.New("core: graph has no root nodes")

	// ErrCycleDetected indicates the prerequisite relation is not acyclic.
	ErrCycleDetected = errors.New("core: prerequisite cycle detected")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("core: graph is nil")
)

// NodeID uniquely identifies a node within its Graph.
type NodeID string

// Kind is the closed set of node behaviors. Downstream stages switch
// exhaustively on it; adding a Kind is a compile-visible change.
type Kind int

const (
	// Simple nodes are take-or-skip: a single rank at a single cost.
	Simple Kind = iota
	// MultiRank nodes accept 1..MaxRanks ranks, each costing Cost points.
	MultiRank
	// Choice nodes select exactly one of Entries when taken.
	Choice
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case MultiRank:
		return "multi_rank"
	case Choice:
		return "choice"
	default:
		return "unknown"
	}
}

// Node represents one vertex of the prerequisite DAG.
//
// Prereqs carry OR semantics: a selected non-root node is connected as
// soon as at least one of its prerequisites is selected.
type Node struct {
	// ID is the unique identifier for this node.
	ID NodeID

	// Cost is the point cost per rank. Zero is normalized to one during
	// validation unless the node is Free.
	Cost int

	// MaxRanks is the number of ranks this node accepts (≥1).
	MaxRanks int

	// Kind selects the node's behavior: Simple, MultiRank, or Choice.
	Kind Kind

	// Prereqs lists prerequisite node IDs (OR semantics).
	Prereqs []NodeID

	// GateThreshold, when > 0, is the minimum number of points that must
	// be committed on strictly-lower-tier nodes before this node may be
	// selected. A node's tier is its own GateThreshold value.
	GateThreshold int

	// Root marks a node that requires no prerequisites. Nodes with an
	// empty Prereqs list are normalized to Root during validation.
	Root bool

	// Free marks a zero-cost node that is always selected.
	Free bool

	// Entries names the mutually-exclusive options of a Choice node,
	// in declaration order. Empty for other kinds.
	Entries []string
}
