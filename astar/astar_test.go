package astar_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/routeplan/astar"
	"github.com/katalvlaran/routeplan/roadmap"
)

// SearchSuite exercises Search and FindPath under various scenarios.
type SearchSuite struct {
	suite.Suite
}

// TestLine verifies the canonical three-intersection line.
func (s *SearchSuite) TestLine() {
	res, err := astar.Search[string](lineMap(), "A", "C")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
	require.Equal(s.T(), 2.0, res.Cost)
	require.Equal(s.T(), 2, res.Expanded, "A and B are expanded, C is extracted")
}

// TestStartIsGoal returns the single-node path without relaxing any road.
func (s *SearchSuite) TestStartIsGoal() {
	expanded := 0
	res, err := astar.Search[string](lineMap(), "B", "B",
		astar.WithOnExpand(func(string, float64) { expanded++ }),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"B"}, res.Path)
	require.Zero(s.T(), res.Cost)
	require.Zero(s.T(), res.Expanded)
	require.Zero(s.T(), expanded)
	require.Equal(s.T(), 1, res.Enqueued)
}

// TestUnreachable reports ErrNoPathFound for an isolated goal.
func (s *SearchSuite) TestUnreachable() {
	path, err := astar.FindPath[string](lineMap(), "A", "D")
	require.ErrorIs(s.T(), err, astar.ErrNoPathFound)
	require.Nil(s.T(), path)
}

// TestInvalidNodes checks start, goal and neighbor validation.
func (s *SearchSuite) TestInvalidNodes() {
	m := lineMap()

	_, err := astar.FindPath[string](m, "Z", "A")
	require.ErrorIs(s.T(), err, astar.ErrInvalidNode)
	var ne *astar.NodeError[string]
	require.True(s.T(), errors.As(err, &ne))
	require.Equal(s.T(), "start", ne.Role)
	require.Equal(s.T(), "Z", ne.Node)

	_, err = astar.FindPath[string](m, "A", "Z")
	require.True(s.T(), errors.As(err, &ne))
	require.Equal(s.T(), "goal", ne.Role)

	broken := plainMap{
		coords: map[string]astar.Point{"A": {}, "B": {X: 1}},
		roads:  map[string][]string{"A": {"ghost"}},
	}
	_, err = astar.FindPath[string](broken, "A", "B")
	require.True(s.T(), errors.As(err, &ne))
	require.Equal(s.T(), "neighbor", ne.Role)
	require.Equal(s.T(), "ghost", ne.Node)
	require.Contains(s.T(), err.Error(), "neighbor ghost")
}

// TestNilMap rejects a nil RoadMap.
func (s *SearchSuite) TestNilMap() {
	_, err := astar.FindPath[int](nil, 0, 1)
	require.ErrorIs(s.T(), err, astar.ErrNilMap)
}

// TestPrefersShorterDetour checks that fewer hops do not beat a shorter distance.
func (s *SearchSuite) TestPrefersShorterDetour() {
	// S(0,0) → G(10,0) directly is missing; the only options are
	// S→U(5,5)→G with cost ≈14.14 and S→L(3,-1)→M(7,-1)→G with cost ≈10.32.
	m := roadmap.New[string]()
	for id, p := range map[string][2]float64{
		"S": {0, 0}, "U": {5, 5}, "L": {3, -1}, "M": {7, -1}, "G": {10, 0},
	} {
		require.NoError(s.T(), m.AddIntersection(id, p[0], p[1]))
	}
	require.NoError(s.T(), m.AddRoad("S", "U"))
	require.NoError(s.T(), m.AddRoad("U", "G"))
	require.NoError(s.T(), m.AddRoad("S", "L"))
	require.NoError(s.T(), m.AddRoad("L", "M"))
	require.NoError(s.T(), m.AddRoad("M", "G"))

	res, err := astar.Search[string](m, "S", "G")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"S", "L", "M", "G"}, res.Path)
	require.InDelta(s.T(), 2*math.Sqrt(10)+4, res.Cost, 1e-12)
}

// TestOneWayRoads respects road direction.
func (s *SearchSuite) TestOneWayRoads() {
	m := roadmap.New[string](roadmap.WithOneWay())
	require.NoError(s.T(), m.AddIntersection("A", 0, 0))
	require.NoError(s.T(), m.AddIntersection("B", 1, 0))
	require.NoError(s.T(), m.AddRoad("A", "B"))

	_, err := astar.FindPath[string](m, "A", "B")
	require.NoError(s.T(), err)
	_, err = astar.FindPath[string](m, "B", "A")
	require.ErrorIs(s.T(), err, astar.ErrNoPathFound)
}

// TestTiePolicies shows which of two equal routes each policy returns.
func (s *SearchSuite) TestTiePolicies() {
	m := diamondMap()

	// B is expanded first and reaches D; C then reaches D at the same cost.
	last, err := astar.Search[string](m, "A", "D")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "C", "D"}, last.Path)

	first, err := astar.Search[string](m, "A", "D", astar.WithTiePolicy[string](astar.TieFirstFound))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "D"}, first.Path)

	require.Equal(s.T(), last.Cost, first.Cost)
	require.Greater(s.T(), last.Enqueued, first.Enqueued, "the tie re-enqueues D")
}

// TestZeroLengthRoad terminates even though coincident intersections tie
// with each other in both directions.
func (s *SearchSuite) TestZeroLengthRoad() {
	m := roadmap.New[string]()
	require.NoError(s.T(), m.AddIntersection("A", 0, 0))
	require.NoError(s.T(), m.AddIntersection("B", 0, 0))
	require.NoError(s.T(), m.AddIntersection("C", 1, 0))
	require.NoError(s.T(), m.AddRoad("A", "B"))
	require.NoError(s.T(), m.AddRoad("B", "C"))
	require.NoError(s.T(), m.AddRoad("A", "C"))

	res, err := astar.Search[string](m, "A", "C")
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "C"}, res.Path)
	require.Equal(s.T(), 1.0, res.Cost)

	res, err = astar.Search[string](m, "A", "C", astar.WithTiePolicy[string](astar.TieFirstFound))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "C"}, res.Path)
}

// TestGridIsDeterministic runs the same tie-heavy search twice.
func (s *SearchSuite) TestGridIsDeterministic() {
	m, err := roadmap.Grid(6, 6, 1)
	require.NoError(s.T(), err)

	for _, policy := range []astar.TiePolicy{astar.TieLastFound, astar.TieFirstFound} {
		a, err := astar.Search[int](m, 0, 35, astar.WithTiePolicy[int](policy))
		require.NoError(s.T(), err)
		b, err := astar.Search[int](m, 0, 35, astar.WithTiePolicy[int](policy))
		require.NoError(s.T(), err)

		require.Equal(s.T(), a, b, policy.String())
		require.Equal(s.T(), 10.0, a.Cost)
		require.Len(s.T(), a.Path, 11)
	}
}

// TestMaxExpansions stops early with ErrExpansionLimit.
func (s *SearchSuite) TestMaxExpansions() {
	m, err := roadmap.Grid(5, 5, 1)
	require.NoError(s.T(), err)

	_, err = astar.FindPath[int](m, 0, 24, astar.WithMaxExpansions[int](3))
	require.ErrorIs(s.T(), err, astar.ErrExpansionLimit)

	path, err := astar.FindPath[int](m, 0, 24, astar.WithMaxExpansions[int](0))
	require.NoError(s.T(), err)
	require.Len(s.T(), path, 9)
}

// TestMaxCost prunes routes beyond the horizon.
func (s *SearchSuite) TestMaxCost() {
	_, err := astar.FindPath[string](lineMap(), "A", "C", astar.WithMaxCost[string](1.5))
	require.ErrorIs(s.T(), err, astar.ErrNoPathFound)

	path, err := astar.FindPath[string](lineMap(), "A", "C", astar.WithMaxCost[string](2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B", "C"}, path)
}

// TestOptionViolations surfaces invalid options before searching.
func (s *SearchSuite) TestOptionViolations() {
	m := lineMap()
	cases := map[string]astar.Option[string]{
		"negative expansions": astar.WithMaxExpansions[string](-1),
		"negative cost":       astar.WithMaxCost[string](-0.5),
		"NaN cost":            astar.WithMaxCost[string](math.NaN()),
		"bad tie policy":      astar.WithTiePolicy[string](astar.TiePolicy(7)),
	}
	for name, opt := range cases {
		_, err := astar.FindPath[string](m, "A", "C", opt)
		require.ErrorIs(s.T(), err, astar.ErrOptionViolation, name)
	}
}

// TestHooks counts callbacks against the Result counters.
func (s *SearchSuite) TestHooks() {
	m, err := roadmap.Sample("ten")
	require.NoError(s.T(), err)

	var expanded, enqueued int
	var lastF float64
	res, err := astar.Search[int](m, 0, 9,
		astar.WithOnExpand(func(int, float64) { expanded++ }),
		astar.WithOnEnqueue(func(_ int, f float64) { enqueued++; lastF = f }),
	)
	require.NoError(s.T(), err)
	require.Equal(s.T(), res.Expanded, expanded)
	require.Equal(s.T(), res.Enqueued, enqueued)
	require.Positive(s.T(), lastF)
}

// TestSampleTen pins the route on the built-in ten-intersection map.
func (s *SearchSuite) TestSampleTen() {
	m, err := roadmap.Sample("ten")
	require.NoError(s.T(), err)

	res, err := astar.Search[int](m, 0, 9)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2, 5, 9}, res.Path)
	require.InDelta(s.T(), 5.06449510224598, res.Cost, 1e-9)
}

// TestRandomMapsAreOptimal compares against exhaustive Dijkstra.
func (s *SearchSuite) TestRandomMapsAreOptimal() {
	for seed := int64(1); seed <= 20; seed++ {
		m := randomMap(seed, 40)
		for _, pair := range [][2]int{{0, 39}, {5, 17}, {12, 3}, {21, 30}} {
			name := fmt.Sprintf("seed=%d %d→%d", seed, pair[0], pair[1])
			want := bruteForce(m, pair[0], pair[1])

			res, err := astar.Search[int](m, pair[0], pair[1])
			if math.IsInf(want, 1) {
				require.ErrorIs(s.T(), err, astar.ErrNoPathFound, name)
				continue
			}
			require.NoError(s.T(), err, name)
			require.InDelta(s.T(), want, res.Cost, 1e-9, name)

			// every step is a road and the path cost agrees with Result.Cost
			cost, err := astar.PathCost[int](m, res.Path)
			require.NoError(s.T(), err, name)
			require.InDelta(s.T(), res.Cost, cost, 1e-9, name)
			require.Equal(s.T(), pair[0], res.Path[0], name)
			require.Equal(s.T(), pair[1], res.Path[len(res.Path)-1], name)
		}
	}
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}
