package astar_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexastar/astar"
	"github.com/katalvlaran/hexastar/hexgrid"
)

// barrierRows is a 5×5 map whose wall column cuts rows 0..3; row 4 is the only way across.
var barrierRows = []string{
	"..#..",
	".##.",
	"..#..",
	".##.",
	".....",
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	g := gridFromRows(t, ".....", "....")
	other := gridFromRows(t, ".....", "....")
	n := nodeAt(t, g, 0, 0)
	foreign := nodeAt(t, other, 1, 0)

	cases := []struct {
		name        string
		g           *hexgrid.Graph[cell]
		start, goal *hexgrid.Node[cell]
		err         error
	}{
		{"NilGraph", nil, n, n, astar.ErrNilGraph},
		{"NilStart", g, nil, n, astar.ErrNilNode},
		{"NilGoal", g, n, nil, astar.ErrNilNode},
		{"ForeignStart", g, foreign, n, astar.ErrForeignNode},
		{"ForeignGoal", g, n, foreign, astar.ErrForeignNode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := astar.Search(tc.g, tc.start, tc.goal)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Search error = %v; want %v", err, tc.err)
			}
			assert.Empty(t, astar.Path(tc.g, tc.start, tc.goal))
		})
	}
}

func TestSearchXY_Lookup(t *testing.T) {
	g := gridFromRows(t, ".....", "....", ".....")

	_, err := astar.SearchXY[cell](nil, 0, 0, 1, -1)
	assert.ErrorIs(t, err, astar.ErrNilGraph)
	_, err = astar.SearchXY(g, 9, 9, 0, 0)
	assert.ErrorIs(t, err, astar.ErrStartNotFound)
	_, err = astar.SearchXY(g, 0, 0, 0, 5)
	assert.ErrorIs(t, err, astar.ErrGoalNotFound)
	_, err = astar.SearchXY(g, math.MaxInt, -math.MaxInt, 0, 0)
	assert.ErrorIs(t, err, astar.ErrStartNotFound, "overflowing coordinates are off the map")
	_, err = astar.SearchXY(g, 0, 0, math.MinInt, math.MinInt)
	assert.ErrorIs(t, err, astar.ErrGoalNotFound)

	res, err := astar.SearchXY(g, 0, 0, 4, -4)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 4.0, res.Cost)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { astar.WithHeuristic(nil) })
	assert.Panics(t, func() { astar.WithLogger(nil) })
	opts := astar.DefaultOptions()
	assert.NotNil(t, opts.Heuristic)
	assert.NotNil(t, opts.Logger)
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios
// ------------------------------------------------------------------------

func TestSearch_OpenGridAlongAxis(t *testing.T) {
	g := gridFromRows(t, ".....", "....", ".....", "....", ".....")
	start, goal := nodeAt(t, g, 0, 0), nodeAt(t, g, 4, 0)
	require.Equal(t, hexgrid.NewPos(4, -4), goal.Pos)

	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Len(t, res.Path, 4)
	assert.Equal(t, 4.0, res.Cost)
	assert.Equal(t, goal.Data, res.Path[len(res.Path)-1])
	requireValidPath(t, g, start, goal, res.Path, res.Cost)
}

func TestSearch_WallColumnForcesDetour(t *testing.T) {
	g := gridFromRows(t, barrierRows...)
	start, goal := nodeAt(t, g, 0, 0), nodeAt(t, g, 4, 0)

	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found)
	requireValidPath(t, g, start, goal, res.Path, res.Cost)

	assert.Greater(t, float64(len(res.Path)), g.Distance(start.Pos, goal.Pos))
	assert.Equal(t, 10.0, res.Cost, "down to row 4, across, and back up")
	assert.Equal(t, relaxAll(g, start.ID)[goal.ID], res.Cost)

	crossed := false
	for _, c := range res.Path {
		if c.Row == 4 {
			crossed = true
		}
	}
	assert.True(t, crossed, "the only gap in the wall is on row 4")
}

func TestSearch_EnclosedStart(t *testing.T) {
	g := gridFromRows(t,
		".....",
		".##.",
		".#.#.",
		".##.",
		".....",
	)
	start, goal := nodeAt(t, g, 2, 2), nodeAt(t, g, 0, 0)

	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.NotNil(t, res.Path, "failure is an empty slice, not nil")
	assert.Equal(t, 1, res.Expanded, "only start can be expanded")
	assert.Zero(t, res.Cost)
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	g := gridFromRows(t, "...", "..")
	n := nodeAt(t, g, 1, 0)

	res, err := astar.Search(g, n, n)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Zero(t, res.Cost)
	assert.Empty(t, astar.Path(g, n, n))
}

func TestSearch_WallGoalIsUnreachable(t *testing.T) {
	g := gridFromRows(t, "..#..", "....")
	res, err := astar.Search(g, nodeAt(t, g, 0, 0), nodeAt(t, g, 2, 0))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
}

func TestSearch_PrefersCheapTerrain(t *testing.T) {
	// Row 0 is expensive; dropping to row 1 and back is cheaper.
	g := gridFromRows(t,
		".999.",
		"....",
	)
	start, goal := nodeAt(t, g, 0, 0), nodeAt(t, g, 4, 0)

	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	require.True(t, res.Found)
	requireValidPath(t, g, start, goal, res.Path, res.Cost)
	assert.Equal(t, 5.0, res.Cost)
	for _, c := range res.Path {
		assert.NotEqual(t, 9.0, c.Cost, "path entered an expensive cell at (%d,%d)", c.Col, c.Row)
	}
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

func TestSearch_OptimalOnOpenGrid(t *testing.T) {
	size := hexgrid.MapSize{Width: 6, Height: 6}
	rows := make([]string, size.Height)
	for r := range rows {
		rows[r] = "......"[:hexgrid.RowLen(size, r)]
	}
	g := gridFromRows(t, rows...)

	nodes := g.Nodes()
	for i := range nodes {
		for j := range nodes {
			start, goal := &nodes[i], &nodes[j]
			res, err := astar.Search(g, start, goal)
			require.NoError(t, err)
			require.True(t, res.Found)
			want := g.Distance(start.Pos, goal.Pos)
			require.Equal(t, want, float64(len(res.Path)), "%v -> %v", start, goal)
			require.Equal(t, want, res.Cost)
		}
	}
}

func TestSearch_MatchesOracleOnRandomTerrain(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 25; trial++ {
		size := hexgrid.MapSize{Width: 4 + r.Intn(8), Height: 3 + r.Intn(8)}
		g := randomGrid(t, r, size, 25)

		start := g.Node(hexgrid.NodeID(r.Intn(g.Len())))
		want := relaxAll(g, start.ID)
		for k := 0; k < 10; k++ {
			goal := g.Node(hexgrid.NodeID(r.Intn(g.Len())))

			res, err := astar.Search(g, start, goal)
			require.NoError(t, err)
			dijkstra, err := astar.Search(g, start, goal, astar.WithHeuristic(astar.ZeroHeuristic))
			require.NoError(t, err)

			if math.IsInf(want[goal.ID], 1) {
				require.False(t, res.Found, "trial %d: %v -> %v should be unreachable", trial, start, goal)
				require.False(t, dijkstra.Found)
				continue
			}
			require.True(t, res.Found, "trial %d: %v -> %v should be reachable", trial, start, goal)
			require.InDelta(t, want[goal.ID], res.Cost, 1e-9)
			require.InDelta(t, want[goal.ID], dijkstra.Cost, 1e-9)
			require.LessOrEqual(t, res.Expanded, dijkstra.Expanded, "a consistent heuristic never expands more than Dijkstra")
			if start != goal {
				requireValidPath(t, g, start, goal, res.Path, res.Cost)
			}
		}
	}
}

func TestSearch_NeverEntersWalls(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	g := randomGrid(t, r, hexgrid.MapSize{Width: 12, Height: 12}, 35)
	for k := 0; k < 50; k++ {
		start := g.Node(hexgrid.NodeID(r.Intn(g.Len())))
		goal := g.Node(hexgrid.NodeID(r.Intn(g.Len())))
		if goal.IsWall() {
			continue
		}
		for _, c := range astar.Path(g, start, goal) {
			require.False(t, c.Wall)
		}
	}
}

func TestSearch_ReuseIsIndependent(t *testing.T) {
	g := gridFromRows(t, barrierRows...)
	a1, a2 := nodeAt(t, g, 0, 0), nodeAt(t, g, 4, 0)
	b1, b2 := nodeAt(t, g, 0, 4), nodeAt(t, g, 4, 4)

	first, err := astar.Search(g, a1, a2)
	require.NoError(t, err)
	second, err := astar.Search(g, b1, b2)
	require.NoError(t, err)
	again, err := astar.Search(g, a1, a2)
	require.NoError(t, err)

	assert.Equal(t, 10.0, first.Cost)
	assert.Equal(t, 4.0, second.Cost)
	assert.Equal(t, first, again, "a previous search must leave no trace")
}

func TestSearch_InadmissibleHeuristicStillTerminates(t *testing.T) {
	g := gridFromRows(t, barrierRows...)
	start, goal := nodeAt(t, g, 0, 0), nodeAt(t, g, 4, 4)
	greedy := func(m hexgrid.Metric, from, to hexgrid.Pos) float64 { return 50 * m.Distance(from, to) }

	res, err := astar.Search(g, start, goal, astar.WithHeuristic(greedy))
	require.NoError(t, err)
	require.True(t, res.Found)
	requireValidPath(t, g, start, goal, res.Path, res.Cost)
	assert.GreaterOrEqual(t, res.Cost, relaxAll(g, start.ID)[goal.ID])
}

func TestSearch_HeuristicComputedOncePerNode(t *testing.T) {
	g := gridFromRows(t, barrierRows...)
	start, goal := nodeAt(t, g, 0, 0), nodeAt(t, g, 4, 0)

	// A heuristic that is zero everywhere must still be cached, not recomputed.
	calls := make(map[hexgrid.Pos]int)
	counting := func(_ hexgrid.Metric, from, _ hexgrid.Pos) float64 {
		calls[from]++
		return 0
	}
	res, err := astar.Search(g, start, goal, astar.WithHeuristic(counting))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.NotEmpty(t, calls)
	for p, n := range calls {
		assert.Equal(t, 1, n, "heuristic evaluated %d times for %v", n, p)
	}
}

// ------------------------------------------------------------------------
// 4. Logging
// ------------------------------------------------------------------------

func TestSearch_LogsCompletion(t *testing.T) {
	var buf bytes.Buffer
	logger := astar.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := gridFromRows(t, barrierRows...)

	_, err := astar.Search(g, nodeAt(t, g, 0, 0), nodeAt(t, g, 4, 0), astar.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"search completed"`)
	assert.Contains(t, buf.String(), `"path_len":10`)

	buf.Reset()
	_, err = astar.Search(g, nodeAt(t, g, 0, 0), nodeAt(t, g, 2, 0), astar.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"search found no path"`)
}

func BenchmarkSearch_Random64(b *testing.B) {
	r := rand.New(rand.NewSource(5))
	g := randomGrid(b, r, hexgrid.MapSize{Width: 64, Height: 64}, 20)
	start, goal := g.Node(0), g.Node(hexgrid.NodeID(g.Len()-1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, goal)
	}
}
