package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/buildspace/buildfile"
	"github.com/katalvlaran/buildspace/core"
	"github.com/katalvlaran/buildspace/sampler"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate builds from a graph description",
	Long: `Load a YAML graph description, run the classify → design → repair →
cross-product pipeline, and print the design report plus one line per
emitted build.

Examples:
  buildspace generate -f tree.yaml
  buildspace generate -f tree.yaml --budget 20 --parallel 4
  buildspace generate -f tree.yaml --require alpha,beta --exclude gamma
  buildspace generate -f tree.yaml --feasible-only`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("file", "f", "", "graph description YAML (required)")
	generateCmd.Flags().Int("budget", -1, "override the file's point budget")
	generateCmd.Flags().StringSlice("require", nil, "extra nodes to force into the locked set")
	generateCmd.Flags().StringSlice("exclude", nil, "extra names to exclude")
	generateCmd.Flags().StringSlice("include", nil, "names to lift from the exclusion set")
	generateCmd.Flags().Int("parallel", 1, "row-repair workers")
	generateCmd.Flags().Bool("feasible-only", false, "print only feasible builds")
	_ = generateCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	budget, _ := cmd.Flags().GetInt("budget")
	require, _ := cmd.Flags().GetStringSlice("require")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	include, _ := cmd.Flags().GetStringSlice("include")
	parallel, _ := cmd.Flags().GetInt("parallel")
	feasibleOnly, _ := cmd.Flags().GetBool("feasible-only")

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := buildfile.Decode(f)
	if err != nil {
		return err
	}
	g, err := doc.Graph()
	if err != nil {
		return err
	}
	if budget < 0 {
		budget = doc.Budget
	}

	ov := doc.ClassifyOverrides()
	for _, r := range require {
		ov.Require = append(ov.Require, core.NodeID(r))
	}
	ov.Exclude = append(ov.Exclude, exclude...)
	ov.Include = append(ov.Include, include...)

	res, err := sampler.Generate(g, budget, ov, doc.VariantBranches(),
		sampler.WithParallelism(parallel))
	if err != nil {
		return err
	}
	printReport(res, budget)
	printBuilds(res, feasibleOnly)
	return nil
}

func printReport(res *sampler.Result, budget int) {
	bold := color.New(color.Bold)
	bold.Printf("design: ")
	fmt.Printf("K=%d rows=%d base=%d generators=%d budget=%d\n",
		res.Report.K, res.Report.NRows, res.Report.BaseSize,
		len(res.Report.Generators), budget)
	q := res.Report.Quality
	bold.Printf("quality: ")
	fmt.Printf("balance=%.3f maxCorr=%.3f orthogonal=%v pairCoverage=%.3f\n",
		q.Balance, q.MaxCorrelation, q.Orthogonal, q.PairCoverage)
}

func printBuilds(res *sampler.Result, feasibleOnly bool) {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)
	feasible := 0
	for _, c := range res.Builds {
		b := c.Build
		if b.Feasible {
			feasible++
		} else if feasibleOnly {
			continue
		}
		mark, paint := "✓", ok
		if !b.Feasible {
			mark, paint = "✗", bad
		}
		paint.Printf("%s ", mark)
		fmt.Printf("%2dpt %s", b.PointsSpent, summarize(c.Build.Selected, b.Ranks))
		if c.Branch != "" {
			fmt.Printf(" [%s]", c.Branch)
		}
		if !b.Feasible {
			fmt.Printf("  (%v)", b.Errs[0])
		}
		fmt.Println()
	}
	fmt.Printf("%d builds, %d feasible\n", len(res.Builds), feasible)
}

func summarize(selected []core.NodeID, ranks map[core.NodeID]int) string {
	parts := make([]string, 0, len(selected))
	for _, id := range selected {
		if r := ranks[id]; r > 1 {
			parts = append(parts, fmt.Sprintf("%s×%d", id, r))
		} else {
			parts = append(parts, string(id))
		}
	}
	return strings.Join(parts, " ")
}
