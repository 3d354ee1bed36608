// Package hexgrid maps caller-owned tiles onto a hexagonal grid graph
// addressed by cube coordinates.
//
// What:
//
//   - Graph wraps a slice of caller tiles. Each tile becomes exactly one Node,
//     in input order, carrying the tile back as Node.Data.
//   - Positions use cube coordinates (x, y, z) with x + y + z == 0; the third
//     coordinate is always derived as z = -x - y.
//   - The map area is a pointy-top, roughly rectangular block of hexes
//     with its origin in a corner, bounded by MapSize{Width, Height}.
//   - Adjacency (six cube directions) is precomputed once at construction.
//     Walls are kept as neighbors; filtering them is the search's business.
//
// Bounds:
//
//	0 <= -x-y < Height   (z is the row)
//	x >= y               (left edge)
//	ceil((x-y)/2) < Width (right edge)
//
// Even rows hold Width cells, odd rows Width-1. FromOffset and Pos.Offset
// translate between cube positions and (col, row) offsets of the same layout.
//
// Index arithmetic:
//
//	Index(x, y) = Width*(-x-y) + x
//
// is a bijection from on-map coordinates onto [0, Width*Height).
//
// Complexity:
//
//   - NewGraph:          O(N) time, O(N + Width×Height) memory (N = tiles).
//   - IsOnMap, Index:    O(1).
//   - GetNode, Neighbors: O(1).
//
// Errors:
//
//   - ErrNilAccessor:    one of the Accessors functions is nil.
//   - ErrBadMapSize:     Width or Height is not positive, or Width×Height overflows int.
//   - ErrOffMap:         a tile's coordinate lies outside the map.
//   - ErrDuplicateCoord: two tiles share one coordinate.
//   - ErrBadCost:        a tile's cost is negative, NaN or +Inf.
//   - ErrBadNodeType:    a tile's type is neither Wall nor Open.
//
// A Graph is immutable once built and safe for concurrent readers.
package hexgrid
