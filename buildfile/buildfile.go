// Package buildfile reads graph descriptions (nodes, budget, override
// directives, branch subgraphs) from YAML, the input format of the
// thin driver wrapping the sampler library.
//
// The schema mirrors the external data-loading contract: node id, cost,
// maxRanks, kind, prerequisite list, optional gate threshold, root/free
// flags, and an ordered entry list for choice nodes; plus budget,
// require/exclude/include overrides, and named branches with optional
// per-choice locks and unlocks.
//
// Decoding is strict: unknown YAML fields and unknown kind names are
// rejected, and the assembled node list goes through core.NewGraph so
// structural defects fail before any generation.
package buildfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/buildspace/classify"
	"github.com/katalvlaran/buildspace/core"
	"github.com/katalvlaran/buildspace/variants"
)

// Sentinel errors for decoding.
var (
	// ErrDecode wraps malformed YAML input.
	ErrDecode = errors.New("buildfile: cannot decode input")

	// ErrBadKind is returned for an unrecognized node kind name.
	ErrBadKind = errors.New("buildfile: unknown node kind")
)

// File is the decoded YAML document.
type File struct {
	Budget    int          `yaml:"budget"`
	Nodes     []NodeSpec   `yaml:"nodes"`
	Overrides Overrides    `yaml:"overrides"`
	Branches  []BranchSpec `yaml:"branches"`
}

// NodeSpec is one node entry of the document.
type NodeSpec struct {
	ID       string   `yaml:"id"`
	Cost     int      `yaml:"cost"`
	MaxRanks int      `yaml:"maxRanks"`
	Kind     string   `yaml:"kind"`
	Prereqs  []string `yaml:"prereqs"`
	Gate     int      `yaml:"gate"`
	Root     bool     `yaml:"root"`
	Free     bool     `yaml:"free"`
	Entries  []string `yaml:"entries"`
}

// Overrides mirrors classify.Overrides in document form.
type Overrides struct {
	Require []string `yaml:"require"`
	Exclude []string `yaml:"exclude"`
	Include []string `yaml:"include"`
}

// BranchSpec is one named branch subgraph with optional choice locks.
type BranchSpec struct {
	Name    string         `yaml:"name"`
	Choices []string       `yaml:"choices"`
	Locks   map[string]int `yaml:"locks"`
	Unlocks []string       `yaml:"unlocks"`
}

// Decode reads one YAML document. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &f, nil
}

// Graph assembles and validates the node list.
func (f *File) Graph() (*core.Graph, error) {
	nodes := make([]core.Node, len(f.Nodes))
	for i, ns := range f.Nodes {
		kind, err := parseKind(ns.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w (node %q)", err, ns.ID)
		}
		prereqs := make([]core.NodeID, len(ns.Prereqs))
		for j, p := range ns.Prereqs {
			prereqs[j] = core.NodeID(p)
		}
		nodes[i] = core.Node{
			ID:            core.NodeID(ns.ID),
			Cost:          ns.Cost,
			MaxRanks:      ns.MaxRanks,
			Kind:          kind,
			Prereqs:       prereqs,
			GateThreshold: ns.Gate,
			Root:          ns.Root,
			Free:          ns.Free,
			Entries:       ns.Entries,
		}
	}
	return core.NewGraph(nodes)
}

// ClassifyOverrides converts the document overrides.
func (f *File) ClassifyOverrides() classify.Overrides {
	req := make([]core.NodeID, len(f.Overrides.Require))
	for i, r := range f.Overrides.Require {
		req[i] = core.NodeID(r)
	}
	return classify.Overrides{
		Require: req,
		Exclude: f.Overrides.Exclude,
		Include: f.Overrides.Include,
	}
}

// VariantBranches converts the document branches.
func (f *File) VariantBranches() []variants.Branch {
	out := make([]variants.Branch, len(f.Branches))
	for i, bs := range f.Branches {
		choices := make([]core.NodeID, len(bs.Choices))
		for j, c := range bs.Choices {
			choices[j] = core.NodeID(c)
		}
		var locks map[core.NodeID]int
		if len(bs.Locks) > 0 {
			locks = make(map[core.NodeID]int, len(bs.Locks))
			for id, e := range bs.Locks {
				locks[core.NodeID(id)] = e
			}
		}
		unlocks := make([]core.NodeID, len(bs.Unlocks))
		for j, u := range bs.Unlocks {
			unlocks[j] = core.NodeID(u)
		}
		out[i] = variants.Branch{
			Name:    bs.Name,
			Choices: choices,
			Locks:   locks,
			Unlocks: unlocks,
		}
	}
	return out
}

// parseKind maps document kind names onto core.Kind. An empty name
// means Simple.
func parseKind(name string) (core.Kind, error) {
	switch name {
	case "", "simple":
		return core.Simple, nil
	case "multi_rank":
		return core.MultiRank, nil
	case "choice":
		return core.Choice, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadKind, name)
	}
}
