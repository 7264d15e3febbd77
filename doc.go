// Package buildspace samples a combinatorial build space: given a DAG of
// selectable, cost-bearing nodes with prerequisite and point-threshold
// constraints, it produces a representative, deduplicated set of valid
// builds that each spend an exact point budget.
//
// 🚀 What is buildspace?
//
//	A deterministic, batch-oriented sampling library that brings together:
//		• Core primitives: the node DAG, structural validation, reachability
//		• Classification: locked / factor / excluded partitioning with overrides
//		• Factorial designs: resolution-IV two-level designs over K factors
//		• Repair: connectivity, budget and gate reconciliation per design row
//		• Variants: branch cross-products with canonical fingerprint dedup
//
// ✨ Why choose buildspace?
//
//   - Reproducible – every stage is a pure function with documented tie-breaks
//   - Auditable – one build per design row, feasible or not, never dropped
//   - Balanced – main effects never aliased with other mains or 2-way interactions
//   - Extensible – plug in your own evaluator encoding via encode.Encoder
//
// Under the hood, everything is organized in pipeline order:
//
//	core/      — Node, Kind, Graph: the immutable prerequisite DAG
//	classify/  — locked / factor / excluded partitioning (§ overrides)
//	factorial/ — factor identification, design generation, quality metrics
//	repair/    — row-to-build mapping with connectivity/budget/gate repair
//	variants/  — branch enumeration, cross product, deduplication
//	sampler/   — the Generate facade wiring all five stages together
//	encode/    — the opaque external-evaluator encoding contract
//	buildfile/ — YAML codec for graph descriptions (driver input)
//
// Quick ASCII example:
//
//	    R (free root)
//	    ├── A ── C
//	    └── B ───┘
//
//	a diamond where C is satisfied by either A or B (OR prerequisites).
//
// Dive into the per-package doc.go files for algorithms, complexity
// guarantees, and the exact determinism rules each stage honors.
//
//	go get github.com/katalvlaran/buildspace
package buildspace
