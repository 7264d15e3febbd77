// Package sampler is the facade over the whole pipeline: classify →
// identify factors → generate the design → repair every row → cross
// with branch variants → report.
//
// What
//
//   - Generate runs the five stages in order against one immutable
//     (graph, budget, overrides, branches) input and returns the
//     deduplicated composites plus a design report: factor count, row
//     count, base size, generator pairs, and the pre-repair quality
//     metrics of the raw matrix.
//   - Every design row maps to exactly one build, feasible or not;
//     callers filter on Feasible before consuming.
//   - WithParallelism(n) repairs rows concurrently (worker-per-row via
//     errgroup, results slotted by row index, so output order and
//     content are identical to the sequential run). Rows share no
//     mutable state; the graph is read-only throughout.
//   - WithEncoder attaches an external evaluator encoding to each
//     composite; the encoded string is opaque to this package.
//
// Why
//
//	The stages are deliberately independent; this package owns the only
//	wiring between them so each stays testable in isolation.
//
// Usage
//
//	res, err := sampler.Generate(g, 20, classify.Overrides{},
//	    []variants.Branch{{Name: "frost", Choices: []core.NodeID{"C"}}},
//	    sampler.WithParallelism(4),
//	)
//	if err != nil { /* structural input error */ }
//	for _, c := range res.Builds {
//	    if c.Build.Feasible { /* consume */ }
//	}
//
// Errors
//
//	Structural failures (bad graph, bad overrides, bad branches,
//	ErrOptionViolation) abort before any generation. Per-row repair
//	failures never abort; they ride on the affected Build.
package sampler
