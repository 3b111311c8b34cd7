// Command routeplan computes shortest routes over the built-in road maps and
// serves them over HTTP.
//
//	routeplan route --map ten --start 0 --goal 9
//	routeplan serve --config routeplan.yaml
//	routeplan maps
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "routeplan",
		Short: "Shortest routes over planar road maps",
		Long: `routeplan finds the cheapest route between two intersections
using A* search with a straight-line distance heuristic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		routeCmd(),
		serveCmd(),
		mapsCmd(),
		versionCmd(),
	)

	return rootCmd
}

// newLogger builds a text logger at the given level name.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "routeplan %s (%s)\n", version, commit)
		},
	}
}
