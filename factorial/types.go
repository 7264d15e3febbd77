// Package factorial declares the Factor and Design types plus sentinel
// errors for design construction.
package factorial

import (
	"errors"

	"github.com/katalvlaran/buildspace/core"
)

// Sentinel errors for design generation.
var (
	// ErrBadFactorCount is returned for a negative factor count.
	ErrBadFactorCount = errors.New("factorial: negative factor count")

	// ErrTooManyFactors is returned when no supported base size can
	// accommodate the factor count.
	ErrTooManyFactors = errors.New("factorial: factor count exceeds supported design size")
)

// maxBaseSize bounds the full factorial at 2^20 rows.
const maxBaseSize = 20

// FactorKind is the closed set of decision semantics a factor carries.
type FactorKind int

const (
	// Take toggles selection of a Simple node.
	Take FactorKind = iota
	// Rank1 toggles the first rank of a MultiRank node.
	Rank1
	// Rank2 toggles the second rank; setting it implies Rank1.
	Rank2
	// Entry selects between a Choice node's EntryA and EntryB.
	Entry
)

// String returns the lowercase name of the factor kind.
func (k FactorKind) String() string {
	switch k {
	case Take:
		return "take"
	case Rank1:
		return "rank1"
	case Rank2:
		return "rank2"
	case Entry:
		return "entry"
	default:
		return "unknown"
	}
}

// Factor is one independent binary decision derived from a node.
// The Node linkage lets later stages map factor index → origin.
type Factor struct {
	// Node is the originating node's ID.
	Node core.NodeID

	// Kind selects the decision semantics.
	Kind FactorKind

	// Rank is the rank this factor toggles (rank factors only).
	Rank int

	// EntryA and EntryB are the entry indices an Entry factor selects
	// between: bit 0 → EntryA, bit 1 → EntryB. For Choice nodes with
	// more than two entries the factor is restricted to the first two;
	// the rest are reachable only through branch variants.
	EntryA, EntryB int
}

// Design is a two-level fractional factorial design matrix.
type Design struct {
	// Matrix holds NRows rows × K columns of 0/1 settings.
	Matrix [][]uint8

	// Generators records, per generator column (column index b+i), the
	// pair of base columns whose XOR defines it.
	Generators [][2]int

	// BaseSize is b, the number of independently varied base columns.
	BaseSize int

	// NRows is 2^BaseSize.
	NRows int
}
