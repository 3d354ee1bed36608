package hexgrid

import (
	"fmt"
	"math"
	"strings"
)

// Graph is the node collection for one map. It is immutable once built.
// Nodes[i] was built from tiles[i]; slots maps Index(x,y) to a NodeID or NoNode.
type Graph[T any] struct {
	nodes []Node[T]
	tiles []T
	size  MapSize
	slots []NodeID
}

// NewGraph builds a Graph with one Node per tile, in input order.
// Every tile must lie on the map, have a unique coordinate and a finite,
// non-negative cost; violations are reported eagerly with the offending tile.
// Zero tiles yields an empty, valid graph.
// Complexity: O(N + Width×Height) time and memory.
func NewGraph[T any](tiles []T, acc Accessors[T], size MapSize) (*Graph[T], error) {
	if acc.X == nil || acc.Y == nil || acc.Type == nil || acc.Cost == nil {
		return nil, ErrNilAccessor
	}
	if size.Width <= 0 || size.Height <= 0 || size.Width > math.MaxInt/size.Height {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadMapSize, size.Width, size.Height)
	}

	g := &Graph[T]{
		nodes: make([]Node[T], len(tiles)),
		tiles: make([]T, len(tiles)),
		size:  size,
		slots: make([]NodeID, size.Width*size.Height),
	}
	copy(g.tiles, tiles)
	for i := range g.slots {
		g.slots[i] = NoNode
	}

	// 1) Materialize nodes and claim their slots.
	for i, tile := range g.tiles {
		x, y := acc.X(tile), acc.Y(tile)
		if !g.IsOnMap(x, y) {
			return nil, fmt.Errorf("%w: tile %d at (%d,%d)", ErrOffMap, i, x, y)
		}
		cost := acc.Cost(tile)
		if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
			return nil, fmt.Errorf("%w: tile %d at (%d,%d) cost=%v", ErrBadCost, i, x, y, cost)
		}
		typ := acc.Type(tile)
		if typ != Wall && typ != Open {
			return nil, fmt.Errorf("%w: tile %d at (%d,%d) type=%v", ErrBadNodeType, i, x, y, typ)
		}
		slot := g.Index(x, y)
		if prev := g.slots[slot]; prev != NoNode {
			return nil, fmt.Errorf("%w: tiles %d and %d at (%d,%d)", ErrDuplicateCoord, prev, i, x, y)
		}
		g.slots[slot] = NodeID(i)
		g.nodes[i] = Node[T]{
			ID:   NodeID(i),
			Pos:  NewPos(x, y),
			Type: typ,
			Cost: cost,
			Data: tile,
		}
	}

	// 2) Precompute adjacency now that every slot is known.
	for i := range g.nodes {
		n := &g.nodes[i]
		n.neighbors = make([]NodeID, 0, len(Directions))
		for _, d := range Directions {
			p := n.Pos.Add(d)
			if id := g.lookup(p.X, p.Y); id != NoNode {
				n.neighbors = append(n.neighbors, id)
			}
		}
	}

	return g, nil
}

// IsOnMap reports whether (x, y) lies inside the map bounds.
// Coordinates whose differences or sums overflow int are off the map.
// Complexity: O(1).
func (g *Graph[T]) IsOnMap(x, y int) bool {
	if x < y { // left edge
		return false
	}
	d := x - y
	if d < 0 || d/2+d%2 >= g.size.Width { // wrapped, or right edge: ceil(d/2)
		return false
	}
	s := x + y
	if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) {
		return false
	}
	z := -s
	return z >= 0 && z < g.size.Height // top and bottom rows; -MinInt stays negative
}

// Index maps an on-map (x, y) to its dense slot: Width*z + x.
// The result is meaningless for off-map coordinates.
// Complexity: O(1).
func (g *Graph[T]) Index(x, y int) int {
	return g.size.Width*(-x-y) + x
}

// GetNode returns the node at (x, y). The second result is false when the
// coordinate is off the map or no tile was supplied for it.
func (g *Graph[T]) GetNode(x, y int) (*Node[T], bool) {
	id := g.lookup(x, y)
	if id == NoNode {
		return nil, false
	}
	return &g.nodes[id], true
}

// GetNodeAt is GetNode for a Pos.
func (g *Graph[T]) GetNodeAt(p Pos) (*Node[T], bool) {
	return g.GetNode(p.X, p.Y)
}

func (g *Graph[T]) lookup(x, y int) NodeID {
	if !g.IsOnMap(x, y) {
		return NoNode
	}
	return g.slots[g.Index(x, y)]
}

// Node returns the node with the given handle, or nil if id is out of range.
func (g *Graph[T]) Node(id NodeID) *Node[T] {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil
	}
	return &g.nodes[id]
}

// Contains reports whether n points into this graph's node collection.
func (g *Graph[T]) Contains(n *Node[T]) bool {
	if n == nil {
		return false
	}
	own := g.Node(n.ID)
	return own == n
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int { return len(g.nodes) }

// Nodes returns the node collection, indexed by NodeID.
// Callers must not modify it.
func (g *Graph[T]) Nodes() []Node[T] { return g.nodes }

// Tiles returns the caller tiles in construction order.
func (g *Graph[T]) Tiles() []T { return g.tiles }

// MapSize returns the map bounds.
func (g *Graph[T]) MapSize() MapSize { return g.size }

// Neighbors returns the on-map nodes adjacent to n, walls included,
// in Directions order. It returns nil when n does not belong to g.
func (g *Graph[T]) Neighbors(n *Node[T]) []*Node[T] {
	if !g.Contains(n) {
		return nil
	}
	out := make([]*Node[T], len(n.neighbors))
	for i, id := range n.neighbors {
		out[i] = &g.nodes[id]
	}
	return out
}

// NeighborIDs is the allocation-free form of Neighbors.
// The returned slice is shared and must not be modified.
// It returns nil for an id out of range.
func (g *Graph[T]) NeighborIDs(id NodeID) []NodeID {
	n := g.Node(id)
	if n == nil {
		return nil
	}
	return n.neighbors
}

// Distance returns the cube distance between a and b.
func (g *Graph[T]) Distance(a, b Pos) float64 {
	return CubeDistance(a, b)
}

// String lists every node as "[x y]".
func (g *Graph[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for i := range g.nodes {
		sb.WriteString(g.nodes[i].String())
		sb.WriteByte(' ')
	}
	return sb.String()
}

// CubeDistance is the hex step count between a and b: (|dx|+|dy|+|dz|)/2.
// It is admissible and consistent whenever every step costs at least 1.
func CubeDistance(a, b Pos) float64 {
	return float64(abs(a.X-b.X)+abs(a.Y-b.Y)+abs(a.Z-b.Z)) / 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
