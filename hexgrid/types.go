package hexgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrNilAccessor indicates that one of the Accessors functions is nil.
	ErrNilAccessor = errors.New("hexgrid: accessor function is nil")
	// ErrBadMapSize indicates a non-positive map width or height, or an area
	// that does not fit in an int.
	ErrBadMapSize = errors.New("hexgrid: map width and height must be positive")
	// ErrOffMap indicates a tile whose coordinate lies outside the map bounds.
	ErrOffMap = errors.New("hexgrid: tile coordinate is off the map")
	// ErrDuplicateCoord indicates two tiles mapped to the same coordinate.
	ErrDuplicateCoord = errors.New("hexgrid: duplicate tile coordinate")
	// ErrBadCost indicates a negative, NaN or infinite traversal cost.
	ErrBadCost = errors.New("hexgrid: tile cost must be finite and non-negative")
	// ErrBadNodeType indicates a Type accessor result other than Wall or Open.
	ErrBadNodeType = errors.New("hexgrid: tile type must be Wall or Open")
)

// NodeType classifies a cell as traversable or not.
type NodeType int

const (
	// Wall cells are never entered by a search.
	Wall NodeType = iota
	// Open cells can be entered at their Cost.
	Open
)

// String returns "wall" or "open".
func (t NodeType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// MapSize bounds the map area. Height counts rows (the z axis);
// Width counts cells on an even row.
type MapSize struct {
	Width, Height int
}

// Pos is a cube position. X+Y+Z == 0 holds for every Pos built by NewPos or FromOffset.
type Pos struct {
	X, Y, Z int
}

// NewPos returns the cube position for (x, y), deriving z = -x - y.
func NewPos(x, y int) Pos {
	return Pos{X: x, Y: y, Z: -x - y}
}

// FromOffset converts an offset (col, row) of this layout to a cube position.
// row is the z coordinate; col = x + floor(z/2).
func FromOffset(col, row int) Pos {
	x := col - floorHalf(row)
	return NewPos(x, -x-row)
}

// Offset converts p back to (col, row).
func (p Pos) Offset() (col, row int) {
	return p.X + floorHalf(p.Z), p.Z
}

// Add returns p+d component-wise.
func (p Pos) Add(d Pos) Pos {
	return Pos{X: p.X + d.X, Y: p.Y + d.Y, Z: p.Z + d.Z}
}

// String formats p as "[x y]", matching Node.String.
func (p Pos) String() string {
	return fmt.Sprintf("[%d %d]", p.X, p.Y)
}

// Directions are the six cube neighbor offsets, in the order Neighbors reports them.
var Directions = [6]Pos{
	{X: +1, Y: -1, Z: 0},
	{X: +1, Y: 0, Z: -1},
	{X: 0, Y: +1, Z: -1},
	{X: -1, Y: +1, Z: 0},
	{X: -1, Y: 0, Z: +1},
	{X: 0, Y: -1, Z: +1},
}

// NodeID is a dense node handle: the tile's index in the construction input.
type NodeID int

// NoNode marks the absence of a node handle.
const NoNode NodeID = -1

// Node is one grid cell of a Graph. Its fields are fixed at construction.
type Node[T any] struct {
	ID   NodeID
	Pos  Pos
	Type NodeType
	// Cost is paid when a path enters this cell.
	Cost float64
	// Data is the caller tile this node was built from.
	Data T

	neighbors []NodeID
}

// IsWall reports whether the node is a Wall.
func (n *Node[T]) IsWall() bool {
	return n.Type == Wall
}

// String formats the node as "[x y]".
func (n *Node[T]) String() string {
	return n.Pos.String()
}

// Accessors extract grid attributes from a caller tile.
type Accessors[T any] struct {
	X    func(T) int
	Y    func(T) int
	Type func(T) NodeType
	Cost func(T) float64
}

// Metric measures distances between positions.
type Metric interface {
	Distance(a, b Pos) float64
}

func floorHalf(v int) int {
	if v >= 0 {
		return v / 2
	}
	return -((-v + 1) / 2)
}
