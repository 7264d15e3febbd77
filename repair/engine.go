package repair

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/buildspace/classify"
	"github.com/katalvlaran/buildspace/core"
	"github.com/katalvlaran/buildspace/factorial"
)

// Engine repairs design rows against one (graph, classification,
// budget) triple. It is read-only after construction, so a single
// Engine may repair rows from multiple goroutines concurrently; each
// Repair call works on its own selection state.
type Engine struct {
	g       *core.Graph
	cls     *classify.Classification
	budget  int
	ordered []core.NodeID // all node IDs in canonical addition order
}

// NewEngine validates inputs and precomputes the canonical priority
// order shared by the removal and addition passes.
func NewEngine(g *core.Graph, cls *classify.Classification, budget int) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if cls == nil {
		return nil, ErrClassificationNil
	}
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}
	ordered := append([]core.NodeID(nil), g.Order()...)
	g.SortByPriority(ordered)
	return &Engine{g: g, cls: cls, budget: budget, ordered: ordered}, nil
}

// Repair maps one design row onto the graph and restores feasibility.
// Every row yields exactly one Build; per-row failures are recorded on
// the Build rather than returned.
func (e *Engine) Repair(row []uint8, factors []factorial.Factor) (*Build, error) {
	if len(row) != len(factors) {
		return nil, fmt.Errorf("%w: row %d, factors %d", ErrRowMismatch, len(row), len(factors))
	}

	s := newState(e)
	s.applyFactors(row, factors)
	s.repairConnectivity()
	s.shedOverBudget()
	s.fillUnderBudget()
	s.repairGates()
	s.validate()
	return s.build(), nil
}

// state is the per-row mutable selection; one instance per Repair call.
type state struct {
	e       *Engine
	ranks   map[core.NodeID]int
	choices map[core.NodeID]int
	points  int
	gaveUp  map[core.NodeID]bool // orphans with no repair path
	errs    []error
}

func newState(e *Engine) *state {
	return &state{
		e:       e,
		ranks:   make(map[core.NodeID]int, e.g.Len()),
		choices: make(map[core.NodeID]int),
		gaveUp:  make(map[core.NodeID]bool),
	}
}

func (s *state) selected(id core.NodeID) bool { return s.ranks[id] > 0 }

// setRank moves id to rank r, keeping the running point total and the
// default entry of newly selected Choice nodes consistent.
func (s *state) setRank(id core.NodeID, r int) {
	n, _ := s.e.g.Node(id)
	if r > n.MaxRanks {
		r = n.MaxRanks
	}
	if r < 0 {
		r = 0
	}
	prev := s.ranks[id]
	if r == prev {
		return
	}
	s.points += (r - prev) * n.Cost
	if r == 0 {
		delete(s.ranks, id)
		delete(s.choices, id)
		return
	}
	s.ranks[id] = r
	if n.Kind == core.Choice {
		if _, ok := s.choices[id]; !ok {
			s.choices[id] = 0
		}
	}
}

// preGatePoints sums points on selected nodes whose gate tier (their
// own GateThreshold) is strictly below tier.
func (s *state) preGatePoints(tier int) int {
	sum := 0
	for id, r := range s.ranks {
		n, _ := s.e.g.Node(id)
		if n.GateThreshold < tier {
			sum += r * n.Cost
		}
	}
	return sum
}

// gateSatisfied reports whether n's gate threshold is currently met.
func (s *state) gateSatisfied(n *core.Node) bool {
	return n.GateThreshold == 0 || s.preGatePoints(n.GateThreshold) >= n.GateThreshold
}

// hasSelectedPrereq reports the connectivity invariant for id.
func (s *state) hasSelectedPrereq(n *core.Node) bool {
	if n.Root {
		return true
	}
	for _, p := range n.Prereqs {
		if s.selected(p) {
			return true
		}
	}
	return false
}

// selectedOrdered returns the selected IDs in canonical addition order.
func (s *state) selectedOrdered() []core.NodeID {
	out := make([]core.NodeID, 0, len(s.ranks))
	for _, id := range s.e.ordered {
		if s.selected(id) {
			out = append(out, id)
		}
	}
	return out
}

// recordErr appends err once; duplicate sentinels are kept if their
// wrapped context differs, which preserves the audit trail per target.
func (s *state) recordErr(err error) { s.errs = append(s.errs, err) }

// build freezes the state into an immutable Build value.
func (s *state) build() *Build {
	b := &Build{
		Selected:    make([]core.NodeID, 0, len(s.ranks)),
		Ranks:       make(map[core.NodeID]int, len(s.ranks)),
		Choices:     make(map[core.NodeID]int, len(s.choices)),
		PointsSpent: s.points,
		Errs:        s.errs,
	}
	for id, r := range s.ranks {
		b.Selected = append(b.Selected, id)
		b.Ranks[id] = r
	}
	sort.Slice(b.Selected, func(i, j int) bool { return b.Selected[i] < b.Selected[j] })
	for id, c := range s.choices {
		b.Choices[id] = c
	}
	b.Feasible = len(b.Errs) == 0 && b.PointsSpent == s.e.budget
	return b
}
