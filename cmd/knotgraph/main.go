// Package main provides the knotgraph CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use colored human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "knotgraph",
	Short: "Offline layout and diagnostics for Knot graphs",
	Long: `knotgraph runs Knot's layout engine and graph diagnostics outside
the desktop app.

It reads a graph JSON file ({"nodes": [...], "edges": [...]}) and either
computes node positions or reports structural statistics. Output is JSON
by default for piping into other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use colored human-readable output instead of JSON")
	rootCmd.Version = Version
}
