// Package variants declares branch types and the cross-product stage.
package variants

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/buildspace/core"
	"github.com/katalvlaran/buildspace/repair"
)

// Sentinel errors for branch enumeration.
var (
	// ErrUnknownChoice is returned when a branch names a node that is
	// absent from the graph or not a Choice node.
	ErrUnknownChoice = errors.New("variants: branch names unknown choice node")

	// ErrBadEntry is returned when a lock's entry index is out of range.
	ErrBadEntry = errors.New("variants: entry index out of range")
)

// Branch is a designated mutually-exclusive subgraph: a name plus its
// Choice nodes in declaration order.
type Branch struct {
	Name    string
	Choices []core.NodeID

	// Locks pins a choice node to one entry; Unlocks lifts a pin.
	Locks   map[core.NodeID]int
	Unlocks []core.NodeID
}

// Assignment is one full entry selection for a branch's Choice nodes.
type Assignment struct {
	Branch  string
	Entries map[core.NodeID]int
}

// Composite is one build crossed with one branch assignment.
type Composite struct {
	Build       *repair.Build
	Branch      string
	Entries     map[core.NodeID]int
	Fingerprint string
}

// Enumerate lists every entry combination of b's Choice nodes in
// odometer order (last listed choice varies fastest). Locked choices
// contribute their single pinned entry unless unlocked again.
func Enumerate(g *core.Graph, b Branch) ([]Assignment, error) {
	if g == nil {
		return nil, core.ErrGraphNil
	}
	unlocked := make(map[core.NodeID]bool, len(b.Unlocks))
	for _, id := range b.Unlocks {
		unlocked[id] = true
	}

	// Resolve each choice node's candidate entry indices up front.
	candidates := make([][]int, len(b.Choices))
	for i, id := range b.Choices {
		n, ok := g.Node(id)
		if !ok || n.Kind != core.Choice {
			return nil, fmt.Errorf("%w: %q in branch %q", ErrUnknownChoice, id, b.Name)
		}
		if pin, locked := b.Locks[id]; locked && !unlocked[id] {
			if pin < 0 || pin >= len(n.Entries) {
				return nil, fmt.Errorf("%w: %q entry %d of %d", ErrBadEntry, id, pin, len(n.Entries))
			}
			candidates[i] = []int{pin}
			continue
		}
		all := make([]int, len(n.Entries))
		for e := range all {
			all[e] = e
		}
		candidates[i] = all
	}

	// Odometer walk over the candidate lists.
	total := 1
	for _, c := range candidates {
		total *= len(c)
	}
	out := make([]Assignment, 0, total)
	idx := make([]int, len(candidates))
	for {
		entries := make(map[core.NodeID]int, len(candidates))
		for i, id := range b.Choices {
			entries[id] = candidates[i][idx[i]]
		}
		out = append(out, Assignment{Branch: b.Name, Entries: entries})

		pos := len(idx) - 1
		for ; pos >= 0; pos-- {
			idx[pos]++
			if idx[pos] < len(candidates[pos]) {
				break
			}
			idx[pos] = 0
		}
		if pos < 0 {
			return out, nil
		}
	}
}

// Cross pairs every build with every assignment and drops composites
// whose fingerprint was already emitted. With no assignments the builds
// pass through unadorned (one composite each, branchless fingerprint).
// No repair happens here; feasibility is inherited.
func Cross(builds []*repair.Build, assignments []Assignment) []Composite {
	if len(assignments) == 0 {
		assignments = []Assignment{{}}
	}
	seen := make(map[string]bool, len(builds)*len(assignments))
	out := make([]Composite, 0, len(builds)*len(assignments))
	for _, b := range builds {
		for _, a := range assignments {
			fp := fingerprint(b, a)
			if seen[fp] {
				continue
			}
			seen[fp] = true
			out = append(out, Composite{
				Build:       b,
				Branch:      a.Branch,
				Entries:     a.Entries,
				Fingerprint: fp,
			})
		}
	}
	return out
}

// fingerprint renders the canonical identity of one composite: sorted
// id:rank pairs, then the branch name and its sorted choice assignment.
func fingerprint(b *repair.Build, a Assignment) string {
	var sb strings.Builder
	for i, id := range b.Selected { // Selected is already sorted
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(string(id))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(b.Ranks[id]))
		if e, ok := b.Choices[id]; ok {
			sb.WriteByte('=')
			sb.WriteString(strconv.Itoa(e))
		}
	}
	sb.WriteByte('|')
	sb.WriteString(a.Branch)
	if len(a.Entries) > 0 {
		ids := make([]core.NodeID, 0, len(a.Entries))
		for id := range a.Entries {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			sb.WriteByte('|')
			sb.WriteString(string(id))
			sb.WriteByte('=')
			sb.WriteString(strconv.Itoa(a.Entries[id]))
		}
	}
	return sb.String()
}
