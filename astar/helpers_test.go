package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexastar/hexgrid"
)

// cell is the caller tile used by the search tests, addressed by offset (col, row).
type cell struct {
	Col, Row int
	Wall     bool
	Cost     float64
}

var cellAccessors = hexgrid.Accessors[cell]{
	X: func(c cell) int { return hexgrid.FromOffset(c.Col, c.Row).X },
	Y: func(c cell) int { return hexgrid.FromOffset(c.Col, c.Row).Y },
	Type: func(c cell) hexgrid.NodeType {
		if c.Wall {
			return hexgrid.Wall
		}
		return hexgrid.Open
	},
	Cost: func(c cell) float64 { return c.Cost },
}

// gridFromRows builds a graph from offset rows: '.' open (cost 1), '#' wall,
// '1'..'9' open with that cost. Width is the length of the first row.
func gridFromRows(t testing.TB, rows ...string) *hexgrid.Graph[cell] {
	t.Helper()
	size := hexgrid.MapSize{Width: len(rows[0]), Height: len(rows)}
	var cells []cell
	for r, line := range rows {
		require.Equal(t, hexgrid.RowLen(size, r), len(line), "row %d has the wrong length", r)
		for c, ch := range line {
			cl := cell{Col: c, Row: r, Cost: 1}
			switch {
			case ch == '#':
				cl.Wall = true
			case ch >= '1' && ch <= '9':
				cl.Cost = float64(ch - '0')
			}
			cells = append(cells, cl)
		}
	}
	g, err := hexgrid.NewGraph(cells, cellAccessors, size)
	require.NoError(t, err)
	return g
}

// randomGrid builds a size-filled grid with random costs in [1,9] and roughly
// wallPct percent walls.
func randomGrid(t testing.TB, r *rand.Rand, size hexgrid.MapSize, wallPct int) *hexgrid.Graph[cell] {
	t.Helper()
	var cells []cell
	for row := 0; row < size.Height; row++ {
		for col := 0; col < hexgrid.RowLen(size, row); col++ {
			cells = append(cells, cell{
				Col:  col,
				Row:  row,
				Wall: r.Intn(100) < wallPct,
				Cost: float64(1 + r.Intn(9)),
			})
		}
	}
	g, err := hexgrid.NewGraph(cells, cellAccessors, size)
	require.NoError(t, err)
	return g
}

func nodeAt(t testing.TB, g *hexgrid.Graph[cell], col, row int) *hexgrid.Node[cell] {
	t.Helper()
	n, ok := g.GetNodeAt(hexgrid.FromOffset(col, row))
	require.True(t, ok, "no node at offset (%d,%d)", col, row)
	return n
}

// relaxAll computes exact cheapest entry-cost distances from start by repeated
// relaxation. It shares no code with the search and serves as its oracle.
func relaxAll(g *hexgrid.Graph[cell], start hexgrid.NodeID) []float64 {
	dist := make([]float64, g.Len())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0
	for changed := true; changed; {
		changed = false
		for u := range dist {
			if math.IsInf(dist[u], 1) {
				continue
			}
			if u != int(start) && g.Node(hexgrid.NodeID(u)).IsWall() {
				continue
			}
			for _, v := range g.NeighborIDs(hexgrid.NodeID(u)) {
				nv := g.Node(v)
				if nv.IsWall() {
					continue
				}
				if d := dist[u] + nv.Cost; d < dist[v] {
					dist[v] = d
					changed = true
				}
			}
		}
	}
	return dist
}

// requireValidPath checks that path walks cell by cell from start to goal,
// never touches a wall, and that its entry costs add up to cost.
func requireValidPath(t testing.TB, g *hexgrid.Graph[cell], start, goal *hexgrid.Node[cell], path []cell, cost float64) {
	t.Helper()
	require.NotEmpty(t, path)
	prev := start.Pos
	sum := 0.0
	for i, c := range path {
		p := hexgrid.FromOffset(c.Col, c.Row)
		require.False(t, c.Wall, "step %d enters a wall at (%d,%d)", i, c.Col, c.Row)
		require.Equal(t, 1.0, g.Distance(prev, p), "step %d from %v to %v is not adjacent", i, prev, p)
		sum += c.Cost
		prev = p
	}
	require.Equal(t, goal.Pos, prev, "path must end at goal")
	require.InDelta(t, cost, sum, 1e-9, "Result.Cost must equal summed entry costs")
}
