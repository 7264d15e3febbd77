package repair

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/buildspace/core"
	"github.com/katalvlaran/buildspace/factorial"
)

// applyFactors seeds the locked set at its pinned ranks, then applies
// each factor's bit. Rank-2 ⇒ rank-1 is enforced immediately: factor
// order guarantees the rank-1 factor of a node precedes its rank-2.
func (s *state) applyFactors(row []uint8, factors []factorial.Factor) {
	for _, id := range s.e.ordered {
		if s.e.cls.Locked[id] {
			s.setRank(id, s.e.cls.LockedRanks[id])
		}
	}
	for i, f := range factors {
		bit := row[i]
		switch f.Kind {
		case factorial.Take:
			if bit == 1 {
				s.setRank(f.Node, 1)
			}
		case factorial.Rank1:
			if bit == 1 && s.ranks[f.Node] < 1 {
				s.setRank(f.Node, 1)
			}
		case factorial.Rank2:
			if bit == 1 {
				s.setRank(f.Node, 2)
			}
		case factorial.Entry:
			// The entry factor both takes the Choice node and picks
			// between its first two entries.
			s.setRank(f.Node, 1)
			if bit == 0 {
				s.choices[f.Node] = f.EntryA
			} else {
				s.choices[f.Node] = f.EntryB
			}
		}
	}
}

// repairConnectivity restores the prerequisite invariant: every
// selected non-root node gains a selected ancestor path to an
// already-selected or root anchor, added at full rank. Orphans with no
// path at all are recorded once and left in place.
func (s *state) repairConnectivity() {
	for iter := 0; iter <= s.e.g.Len(); iter++ {
		clean := true
		for _, id := range s.selectedOrdered() {
			n, _ := s.e.g.Node(id)
			if s.hasSelectedPrereq(n) || s.gaveUp[id] {
				continue
			}
			path, ok := s.e.g.PathToAnchor(id, func(p core.NodeID) bool {
				pn, _ := s.e.g.Node(p)
				return s.selected(p) || pn.Root
			})
			if !ok {
				s.gaveUp[id] = true
				s.recordErr(fmt.Errorf("%w: no prerequisite path for %q", ErrUnreachable, id))
				continue
			}
			for _, a := range path {
				if !s.selected(a) {
					an, _ := s.e.g.Node(a)
					s.setRank(a, an.MaxRanks)
				}
			}
			clean = false
		}
		if clean {
			return
		}
	}
}

// shedOverBudget removes the lowest-priority removable point until the
// budget is exact or no legal removal remains.
func (s *state) shedOverBudget() {
	for s.points > s.e.budget {
		removed := false
		for i := len(s.e.ordered) - 1; i >= 0; i-- {
			id := s.e.ordered[i]
			if !s.selected(id) || s.e.cls.Locked[id] || !s.removalLegal(id) {
				continue
			}
			s.setRank(id, s.ranks[id]-1)
			removed = true
			break
		}
		if !removed {
			s.recordErr(fmt.Errorf("%w: over budget by %d with no legal removal",
				ErrInfeasible, s.points-s.e.budget))
			return
		}
	}
}

// removalLegal reports whether one point may leave id without (a)
// orphaning a selected dependant whose only selected prerequisite is
// id, or (b) dropping another selected node's pre-gate points below its
// threshold.
func (s *state) removalLegal(id core.NodeID) bool {
	n, _ := s.e.g.Node(id)

	if s.ranks[id] == 1 { // full removal
		for _, d := range s.e.g.Successors(id) {
			if !s.selected(d) {
				continue
			}
			dn, _ := s.e.g.Node(d)
			sole := true
			for _, p := range dn.Prereqs {
				if p != id && s.selected(p) {
					sole = false
					break
				}
			}
			if sole {
				return false
			}
		}
	}

	for _, m := range s.selectedOrdered() {
		if m == id {
			continue
		}
		mn, _ := s.e.g.Node(m)
		if mn.GateThreshold == 0 || mn.GateThreshold <= n.GateThreshold {
			continue
		}
		if s.preGatePoints(mn.GateThreshold)-n.Cost < mn.GateThreshold {
			return false
		}
	}
	return true
}

// fillUnderBudget adds the highest-priority available point (rank
// bumps included) among prerequisite- and gate-satisfied candidates,
// preferring non-excluded nodes, until the budget is exact or nothing
// legal remains.
func (s *state) fillUnderBudget() {
	for s.points < s.e.budget {
		added := false
		for sweep := 0; sweep < 2 && !added; sweep++ {
			wantExcluded := sweep == 1
			for _, id := range s.e.ordered {
				if s.e.cls.Excluded[id] != wantExcluded {
					continue
				}
				n, _ := s.e.g.Node(id)
				if s.ranks[id] >= n.MaxRanks {
					continue
				}
				if n.Cost == 0 || n.Cost > s.e.budget-s.points {
					continue
				}
				if !s.selected(id) && (!s.hasSelectedPrereq(n) || !s.gateSatisfied(n)) {
					continue
				}
				s.setRank(id, s.ranks[id]+1)
				added = true
				break
			}
		}
		if !added {
			s.recordErr(fmt.Errorf("%w: under budget by %d with no legal addition",
				ErrInfeasible, s.e.budget-s.points))
			return
		}
	}
}

// repairGates closes gate violations by swapping one removable
// post-gate point for one addable pre-gate point, budget unchanged.
// Attempts are bounded; an unclosed violation is recorded once.
func (s *state) repairGates() {
	for attempt := 0; attempt < s.e.g.Len()+s.e.budget; attempt++ {
		m := s.firstGateViolation()
		if m == nil {
			return
		}
		if !s.swapAcrossGate(m) {
			s.recordGateViolation(m)
			return
		}
	}
	if m := s.firstGateViolation(); m != nil {
		s.recordGateViolation(m)
	}
}

func (s *state) recordGateViolation(m *core.Node) {
	s.recordErr(fmt.Errorf("%w: %q needs %d pre-gate points, has %d",
		ErrGateViolation, m.ID, m.GateThreshold, s.preGatePoints(m.GateThreshold)))
}

// firstGateViolation returns the highest-priority selected node whose
// gate is violated, or nil.
func (s *state) firstGateViolation() *core.Node {
	for _, id := range s.selectedOrdered() {
		n, _ := s.e.g.Node(id)
		if !s.gateSatisfied(n) {
			return n
		}
	}
	return nil
}

// swapAcrossGate moves one point from a removable node at or above m's
// gate tier to an addable node strictly below it. Victims are scanned
// in removal order, targets in addition order with non-excluded nodes
// preferred; costs must match so the budget stays exact.
func (s *state) swapAcrossGate(m *core.Node) bool {
	tier := m.GateThreshold
	for i := len(s.e.ordered) - 1; i >= 0; i-- {
		v := s.e.ordered[i]
		if !s.selected(v) || s.e.cls.Locked[v] {
			continue
		}
		vn, _ := s.e.g.Node(v)
		if vn.GateThreshold < tier || !s.removalLegal(v) {
			continue
		}
		for sweep := 0; sweep < 2; sweep++ {
			wantExcluded := sweep == 1
			for _, a := range s.e.ordered {
				if a == v || s.e.cls.Excluded[a] != wantExcluded {
					continue
				}
				an, _ := s.e.g.Node(a)
				if an.GateThreshold >= tier || an.Cost != vn.Cost {
					continue
				}
				if s.ranks[a] >= an.MaxRanks {
					continue
				}
				if !s.selected(a) && (!s.hasSelectedPrereq(an) || !s.gateSatisfied(an)) {
					continue
				}
				s.setRank(v, s.ranks[v]-1)
				s.setRank(a, s.ranks[a]+1)
				return true
			}
		}
	}
	return false
}

// validate appends any invariant still violated after all passes,
// avoiding duplicate sentinels so each failure class reads once.
func (s *state) validate() {
	if s.points != s.e.budget && !s.hasErr(ErrInfeasible) {
		s.recordErr(fmt.Errorf("%w: spent %d of budget %d", ErrInfeasible, s.points, s.e.budget))
	}
	for _, id := range s.selectedOrdered() {
		n, _ := s.e.g.Node(id)
		if !s.hasSelectedPrereq(n) && !s.hasErr(ErrUnreachable) {
			s.recordErr(fmt.Errorf("%w: %q has no selected prerequisite", ErrUnreachable, id))
		}
		if !s.gateSatisfied(n) && !s.hasErr(ErrGateViolation) {
			s.recordGateViolation(n)
		}
	}
}

func (s *state) hasErr(target error) bool {
	for _, err := range s.errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
