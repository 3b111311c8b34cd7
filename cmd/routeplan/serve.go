package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeplan/metrics"
	"github.com/katalvlaran/routeplan/roadmap"
	"github.com/katalvlaran/routeplan/server"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		mapName    string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve routes over HTTP",
		Long: `Serve a built-in map over HTTP.

Endpoints: GET /route?start=&goal=, GET /map, GET /healthz, GET /metrics.
Flags override values read from --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveServeConfig(cmd, configPath, addr, mapName, logLevel)
			if err != nil {
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

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			collector := metrics.NewCollector(
				metrics.WithRegistry(reg),
				metrics.WithConstLabels(prometheus.Labels{"map": cfg.Map}),
			)

			srv := server.New(m,
				server.WithMapName(cfg.Map),
				server.WithLogger(logger),
				server.WithMetrics(collector, reg),
				server.WithSearchOptions(cfg.SearchOptions()...),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx, cfg.Addr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&mapName, "map", "m", "ten", "built-in map name")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")

	return cmd
}

// resolveServeConfig layers explicitly set flags over the config file (or
// the defaults when no file is given).
func resolveServeConfig(cmd *cobra.Command, path, addr, mapName, logLevel string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = addr
	}
	if flags.Changed("map") {
		cfg.Map = mapName
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	return cfg, cfg.Validate()
}
