// Package hexastar is a pathfinding toolkit for hexagonal tile maps: a cube
// coordinate grid model, an indexed priority queue and an A* search that runs
// safely over one shared map from many goroutines.
//
// What is inside?
//
//	hexgrid/     cube positions, map bounds, the immutable Graph built from caller tiles
//	pqueue/      indexed binary min-heap with in-place rescoring
//	astar/       Search, SearchXY, Path and the step-by-step Stepper
//	scenario/    YAML map fixtures: rows of glyphs plus search cases
//	cmd/hexpath  CLI that runs a scenario file and prints the paths
//
// Quick start:
//
//	g, err := hexgrid.NewGraph(tiles, accessors, hexgrid.MapSize{Width: 16, Height: 12})
//	if err != nil { ... }
//	res, err := astar.SearchXY(g, sx, sy, gx, gy)
//	if res.Found {
//		for _, tile := range res.Path { ... }
//	}
//
// Model:
//
//   - Pointy-top hexes, odd rows shifted right by half a cell and one cell
//     shorter. A cell (x, y) is on the map when 0 <= z < Height, x >= y and
//     (x-y+1)/2 < Width, with z = -x-y.
//   - Moving onto a cell costs that cell's Cost. Walls are never entered.
//   - The default heuristic is cube distance, exact for costs >= 1.
//
// See the examples/ directory for runnable demos.
package hexastar
