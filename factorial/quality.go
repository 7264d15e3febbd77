package factorial

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// correlationThreshold separates "orthogonal" designs from correlated
// ones in the quality report.
const correlationThreshold = 0.3

// Quality summarizes the statistical health of a 0/1 design matrix.
// It is reported for documentation, never enforced.
type Quality struct {
	// Balance is the per-column deviation of the proportion of ones
	// from 0.5, averaged over columns. Near 0 pre-repair.
	Balance float64

	// MaxCorrelation is the maximum absolute pairwise Pearson
	// correlation across columns.
	MaxCorrelation float64

	// Orthogonal is true when MaxCorrelation is below 0.3.
	Orthogonal bool

	// PairCoverage is the fraction of column pairs for which all four
	// level combinations {00, 01, 10, 11} appear across rows. 1.0
	// pre-repair by construction of resolution-IV designs; repair can
	// degrade it by correlating settings.
	PairCoverage float64
}

// Measure computes Quality over any 0/1 matrix, typically either a raw
// design or the factor settings surviving repair. An empty matrix or a
// single column yields the identity quality (balanced, orthogonal,
// fully covered).
func Measure(matrix [][]uint8) Quality {
	q := Quality{Orthogonal: true, PairCoverage: 1.0}
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return q
	}
	rows, cols := len(matrix), len(matrix[0])

	// Column-major float views feed both balance and correlation.
	columns := make([][]float64, cols)
	for c := 0; c < cols; c++ {
		col := make([]float64, rows)
		ones := 0
		for r := 0; r < rows; r++ {
			col[r] = float64(matrix[r][c])
			ones += int(matrix[r][c])
		}
		columns[c] = col
		q.Balance += math.Abs(float64(ones)/float64(rows) - 0.5)
	}
	q.Balance /= float64(cols)
	if cols < 2 {
		return q
	}

	covered := 0
	for a := 0; a < cols; a++ {
		for b := a + 1; b < cols; b++ {
			r := stat.Correlation(columns[a], columns[b], nil)
			// A constant column has no defined correlation; treat the
			// pair as uninformative rather than poisoning the maximum.
			if !math.IsNaN(r) && math.Abs(r) > q.MaxCorrelation {
				q.MaxCorrelation = math.Abs(r)
			}
			if coversAllLevels(matrix, a, b) {
				covered++
			}
		}
	}
	q.Orthogonal = q.MaxCorrelation < correlationThreshold
	q.PairCoverage = float64(covered) / float64(cols*(cols-1)/2)
	return q
}

// coversAllLevels reports whether columns a and b exhibit all four 0/1
// combinations across the rows.
func coversAllLevels(matrix [][]uint8, a, b int) bool {
	var seen [4]bool
	for _, row := range matrix {
		seen[row[a]<<1|row[b]] = true
	}
	return seen[0] && seen[1] && seen[2] && seen[3]
}
