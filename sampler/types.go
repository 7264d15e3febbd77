// Package sampler declares options, the report, and sentinel errors for
// the generation facade.
package sampler

import (
	"context"
	"errors"

	"github.com/katalvlaran/buildspace/encode"
	"github.com/katalvlaran/buildspace/factorial"
	"github.com/katalvlaran/buildspace/variants"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("sampler: invalid option supplied")

// Report documents the generated design for downstream consumers.
type Report struct {
	// K is the number of identified factors.
	K int

	// NRows and BaseSize describe the design: 2^BaseSize rows.
	NRows    int
	BaseSize int

	// Generators lists the base-column pair behind each generator column.
	Generators [][2]int

	// Quality holds the pre-repair metrics of the raw design matrix.
	Quality factorial.Quality
}

// Result is the output of one generation run.
type Result struct {
	// Builds are the deduplicated composites, one or more per design
	// row before deduplication; infeasible builds are included.
	Builds []variants.Composite

	// Encoded holds the external-evaluator encoding per composite,
	// aligned with Builds. Empty unless WithEncoder was supplied.
	Encoded []string

	// Report documents the design that produced the builds.
	Report Report
}

// Option configures generation via functional arguments. Invalid
// options are recorded and surfaced as ErrOptionViolation by Generate.
type Option func(*Options)

// Options holds tunable generation parameters.
type Options struct {
	// Ctx allows cancellation of parallel row repair.
	Ctx context.Context

	// Parallelism is the number of concurrent row-repair workers.
	// 1 (the default) repairs sequentially.
	Parallelism int

	// Encoder, when set, serializes every composite for the external
	// evaluator.
	Encoder encode.Encoder

	// DefaultExcluded seeds the classifier's exclusion set.
	DefaultExcluded []string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns sequential generation with no encoder.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Parallelism: 1}
}

// WithContext sets a custom context for cancelling parallel repair.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithParallelism sets the number of row-repair workers.
//
//	n > 1: repair up to n rows concurrently
//	n == 1: sequential (default)
//	n < 1: invalid option → ErrOptionViolation
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.Parallelism = n
	}
}

// WithEncoder attaches an external evaluator encoding to every
// composite. A nil encoder has no effect.
func WithEncoder(enc encode.Encoder) Option {
	return func(o *Options) {
		if enc != nil {
			o.Encoder = enc
		}
	}
}

// WithDefaultExcluded seeds the classifier's default exclusion set.
func WithDefaultExcluded(names ...string) Option {
	return func(o *Options) {
		o.DefaultExcluded = append(o.DefaultExcluded, names...)
	}
}
