// Package classify declares override directives, options, and sentinel
// errors for build-graph classification.
package classify

import (
	"errors"

	"github.com/katalvlaran/buildspace/core"
)

// Sentinel errors for classification.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("classify: graph is nil")

	// ErrBadBudget is returned when the point budget is negative.
	ErrBadBudget = errors.New("classify: negative budget")

	// ErrUnknownNode is returned when an override names an absent node.
	ErrUnknownNode = errors.New("classify: override names unknown node")
)

// Overrides carries the caller's directives.
//
// Require forces nodes into the locked set (expanding prerequisites
// transitively). Exclude adds names to the exclusion set; Include
// removes names from it. Exclusion names match node IDs and, for Choice
// nodes, entry names.
type Overrides struct {
	Require []core.NodeID
	Exclude []string
	Include []string
}

// Classification is the immutable output of Classify.
type Classification struct {
	// Locked maps every always-selected node ID to true.
	Locked map[core.NodeID]bool

	// LockedRanks records the rank each locked node is pinned at.
	LockedRanks map[core.NodeID]int

	// Factors lists free decision-point nodes in graph source order.
	Factors []*core.Node

	// Excluded maps every forced-skip node ID to true. Excluded nodes
	// are still addable by repair as a last resort.
	Excluded map[core.NodeID]bool
}

// Option configures classification via functional arguments.
type Option func(*options)

type options struct {
	defaultExcluded []string
}

func defaultOptions() options {
	return options{}
}

// WithDefaultExcluded seeds the exclusion set with names that apply
// unless an Include override lifts them.
func WithDefaultExcluded(names ...string) Option {
	return func(o *options) {
		o.defaultExcluded = append(o.defaultExcluded, names...)
	}
}
