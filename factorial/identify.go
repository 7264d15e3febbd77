package factorial

import "github.com/katalvlaran/buildspace/core"

// Identify deterministically expands factor nodes into binary factors,
// preserving source order so designs are reproducible.
//
// Expansion per kind:
//   - Simple, or MultiRank with a single rank: one Take factor.
//   - MultiRank with MaxRanks ≥ 2: an ordered Rank1, Rank2 pair. Ranks
//     beyond the second are reachable only through budget filling.
//   - Choice: one Entry factor over the first two entries.
func Identify(nodes []*core.Node) []Factor {
	factors := make([]Factor, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case core.Simple:
			factors = append(factors, Factor{Node: n.ID, Kind: Take})
		case core.MultiRank:
			if n.MaxRanks < 2 {
				factors = append(factors, Factor{Node: n.ID, Kind: Take})
				continue
			}
			factors = append(factors,
				Factor{Node: n.ID, Kind: Rank1, Rank: 1},
				Factor{Node: n.ID, Kind: Rank2, Rank: 2},
			)
		case core.Choice:
			factors = append(factors, Factor{Node: n.ID, Kind: Entry, EntryA: 0, EntryB: 1})
		}
	}
	return factors
}
