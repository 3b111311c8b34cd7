// Package routeplan computes shortest routes over planar road maps.
//
// Intersections are points in the plane, roads join pairs of them, and a
// road costs exactly its straight-line length. Routes are found with A*
// guided by the straight-line distance to the goal, which makes every
// returned route optimal.
//
// Everything is organized under four subpackages and one command:
//
//	astar/          - the router: cost model, frontier search, path reconstruction
//	roadmap/        - thread-safe in-memory road map, grid generator, sample maps
//	metrics/        - Prometheus counters and histograms fed by search hooks
//	server/         - HTTP surface (chi) with tracing spans per route request
//	cmd/routeplan/  - CLI: route, serve, maps, version
//
// Quick ASCII example:
//
//	A───B───C
//
// with A=(0,0), B=(1,0), C=(2,0) routes A → C as [A B C], cost 2.
//
//	go install github.com/katalvlaran/routeplan/cmd/routeplan@latest
package routeplan
