package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/roadmap"
)

// routeOutput is the json/yaml shape of a found route.
type routeOutput struct {
	Map      string  `json:"map"`
	Path     []int   `json:"path"`
	Cost     float64 `json:"cost"`
	Expanded int     `json:"expanded"`
	Enqueued int     `json:"enqueued"`
}

func routeCmd() *cobra.Command {
	var (
		mapName  string
		start    int
		goal     int
		output   string
		tie      string
		maxExp   int
		maxCost  float64
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute one route",
		Example: `  routeplan route --map ten --start 0 --goal 9
  routeplan route --map grid --start 0 --goal 24 --tie first --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			cfg.Map = mapName
			cfg.TiePolicy = tie
			cfg.MaxExpansions = maxExp
			cfg.MaxCost = maxCost
			cfg.LogLevel = logLevel
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}

			m, err := roadmap.Sample(cfg.Map)
			if err != nil {
				return err
			}
			logger.Debug("searching", "map", cfg.Map, "start", start, "goal", goal, "tie", cfg.TiePolicy)

			res, err := astar.Search[int](m, start, goal, cfg.SearchOptions()...)
			if err != nil {
				return err
			}
			logger.Debug("found", "expanded", res.Expanded, "enqueued", res.Enqueued)

			out := routeOutput{
				Map:      cfg.Map,
				Path:     res.Path,
				Cost:     res.Cost,
				Expanded: res.Expanded,
				Enqueued: res.Enqueued,
			}

			return writeRoute(cmd, output, out)
		},
	}

	cmd.Flags().StringVarP(&mapName, "map", "m", "ten", "built-in map name (see 'routeplan maps')")
	cmd.Flags().IntVarP(&start, "start", "s", 0, "start intersection ID")
	cmd.Flags().IntVarP(&goal, "goal", "g", 0, "goal intersection ID")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().StringVar(&tie, "tie", "last", "equal-cost tie policy: last or first")
	cmd.Flags().IntVar(&maxExp, "max-expansions", 0, "stop after this many expansions (0 = no limit)")
	cmd.Flags().Float64Var(&maxCost, "max-cost", 0, "prune routes costlier than this (0 = no limit)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func writeRoute(cmd *cobra.Command, format string, out routeOutput) error {
	w := cmd.OutOrStdout()

	switch format {
	case "text":
		hops := make([]string, len(out.Path))
		for i, id := range out.Path {
			hops[i] = strconv.Itoa(id)
		}
		fmt.Fprintln(w, strings.Join(hops, " -> "))
		fmt.Fprintf(w, "cost %.3f, %d expanded\n", out.Cost, out.Expanded)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, format)
	}

	return nil
}
