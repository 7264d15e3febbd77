// Package factorial turns factor nodes into independent binary decision
// dimensions and builds resolution-IV two-level fractional factorial
// designs over them.
//
// What
//
//   - Identify expands each factor node into 1–2 ordered factors:
//     Simple → one take/skip factor; MultiRank (MaxRanks ≥ 2) → a
//     rank-1 and a rank-2 factor with rank-2 ⇒ rank-1; Choice → one
//     factor selecting between the node's first two entries.
//   - NewDesign(k) chooses the smallest b with b + C(b,2) ≥ k, builds
//     the full 2^b factorial over b base columns, and assigns each of
//     the remaining k−b columns the XOR of a distinct, not-yet-used
//     pair of base columns. No main effect is confounded with another
//     main effect or any two-factor interaction (resolution IV).
//   - Measure reports balance, maximum pairwise Pearson correlation,
//     and pairwise level coverage over any 0/1 matrix. Quality is
//     informational, never enforced.
//
// Why
//
//   - A full 2^K factorial explodes; a resolution-IV fraction keeps
//     every factor's main effect cleanly estimable while the row count
//     stays at the smallest adequate power of two.
//
// Determinism
//
//	Identify preserves node source order; generator pairs are assigned
//	in a fixed enumeration order ((0,1), (0,2), (1,2), (0,3), …), so a
//	given K always produces the same matrix.
//
// Shape
//
//	k = 4 → b = 3, 8 rows, 1 generator column; k = 0 → one empty row.
//
// Errors
//
//   - ErrBadFactorCount for a negative k.
//   - ErrTooManyFactors when k exceeds the largest supported design
//     (b capped at 20, i.e. 2^20 rows).
package factorial
