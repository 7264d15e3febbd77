package sampler

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/buildspace/classify"
	"github.com/katalvlaran/buildspace/core"
	"github.com/katalvlaran/buildspace/encode"
	"github.com/katalvlaran/buildspace/factorial"
	"github.com/katalvlaran/buildspace/repair"
	"github.com/katalvlaran/buildspace/variants"
)

// Generate runs the full pipeline over one immutable input set and
// returns the deduplicated composites plus the design report.
//
// Structural input errors abort before any generation; per-row repair
// failures ride on the affected Build with Feasible=false, so the
// row↔build audit trail stays 1:1.
func Generate(g *core.Graph, budget int, ov classify.Overrides, branches []variants.Branch, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, core.ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 1. Partition the graph.
	cls, err := classify.Classify(g, budget, ov,
		classify.WithDefaultExcluded(o.DefaultExcluded...))
	if err != nil {
		return nil, err
	}

	// 2. Identify factors and build the design.
	factors := factorial.Identify(cls.Factors)
	design, err := factorial.NewDesign(len(factors))
	if err != nil {
		return nil, err
	}

	// 3. Repair every row into exactly one build.
	eng, err := repair.NewEngine(g, cls, budget)
	if err != nil {
		return nil, err
	}
	builds, err := repairRows(o, eng, design, factors)
	if err != nil {
		return nil, err
	}

	// 4. Enumerate branch assignments and cross.
	var assignments []variants.Assignment
	for _, br := range branches {
		as, err := variants.Enumerate(g, br)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, as...)
	}
	comps := variants.Cross(builds, assignments)

	res := &Result{
		Builds: comps,
		Report: Report{
			K:          len(factors),
			NRows:      design.NRows,
			BaseSize:   design.BaseSize,
			Generators: design.Generators,
			Quality:    factorial.Measure(design.Matrix),
		},
	}

	// 5. Optional external-evaluator encoding, one string per composite.
	if o.Encoder != nil {
		res.Encoded = make([]string, len(comps))
		for i, c := range comps {
			sel := encode.Assemble(g, c.Build, c.Entries)
			enc, err := o.Encoder.Encode(g.Order(), sel)
			if err != nil {
				return nil, fmt.Errorf("sampler: encode composite %d: %w", i, err)
			}
			res.Encoded[i] = enc
		}
	}
	return res, nil
}

// repairRows maps every design row to a build, sequentially or with a
// worker-per-row pool. Results are slotted by row index, so parallel
// output is identical to sequential output.
func repairRows(o Options, eng *repair.Engine, design *factorial.Design, factors []factorial.Factor) ([]*repair.Build, error) {
	builds := make([]*repair.Build, design.NRows)

	if o.Parallelism <= 1 {
		for i, row := range design.Matrix {
			b, err := eng.Repair(row, factors)
			if err != nil {
				return nil, err
			}
			builds[i] = b
		}
		return builds, nil
	}

	grp, ctx := errgroup.WithContext(o.Ctx)
	grp.SetLimit(o.Parallelism)
	for i, row := range design.Matrix {
		i, row := i, row
		grp.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			b, err := eng.Repair(row, factors)
			if err != nil {
				return err
			}
			builds[i] = b
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return builds, nil
}
