// Command buildspace is the thin driver around the sampler library:
// it loads a YAML graph description, runs one generation pass, and
// prints the design report with a per-build summary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "buildspace",
	Short: "Sample a combinatorial build space",
	Long: `buildspace samples valid point-exact builds from a prerequisite DAG
using a resolution-IV fractional factorial design with deterministic
repair. The graph, budget, overrides, and branches come from a YAML
description file; everything else is a pure in-memory computation.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
