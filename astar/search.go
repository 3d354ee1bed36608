package astar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hexastar/hexgrid"
	"github.com/katalvlaran/hexastar/pqueue"
)

// Search runs A* from start to goal over g and returns the caller tiles of
// the cheapest path found.
//
// Returns:
//
//   - Result.Path: tiles from the first step after start up to and including
//     goal, in travel order. Empty when no path exists or start == goal.
//   - Result.Found: false when the open set emptied without reaching goal.
//     This is not an error.
//   - err: ErrNilGraph, ErrNilNode or ErrForeignNode on misuse, nil otherwise.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must be non-nil (ErrNilNode).
//  3. start and goal must be nodes of g (ErrForeignNode).
//
// All search bookkeeping lives in a per-call runner, so concurrent searches
// over one Graph are safe.
//
// Complexity:
//
//   - Time:  O(N log N) for N nodes; every node is pushed and closed at most once.
//   - Space: O(N).
func Search[T any](g *hexgrid.Graph[T], start, goal *hexgrid.Node[T], opts ...Option) (Result[T], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, start, goal); err != nil {
		return Result[T]{}, err
	}

	r := newRunner(g, start.ID, goal.ID, cfg)
	for !r.step() {
	}
	res := r.result()
	cfg.Logger.LogSearch(context.Background(), start.Pos, goal.Pos, res.Found, res.Cost, res.Expanded, len(res.Path))

	return res, nil
}

// SearchXY is Search with start and goal given as cube (x, y) coordinates.
// A coordinate with no node yields ErrStartNotFound or ErrGoalNotFound.
func SearchXY[T any](g *hexgrid.Graph[T], sx, sy, gx, gy int, opts ...Option) (Result[T], error) {
	if g == nil {
		return Result[T]{}, ErrNilGraph
	}
	start, ok := g.GetNode(sx, sy)
	if !ok {
		return Result[T]{}, fmt.Errorf("%w: (%d,%d)", ErrStartNotFound, sx, sy)
	}
	goal, ok := g.GetNode(gx, gy)
	if !ok {
		return Result[T]{}, fmt.Errorf("%w: (%d,%d)", ErrGoalNotFound, gx, gy)
	}
	return Search(g, start, goal, opts...)
}

// Path returns only the tiles of Search's result. Misuse and "no path"
// both yield an empty slice.
func Path[T any](g *hexgrid.Graph[T], start, goal *hexgrid.Node[T], opts ...Option) []T {
	res, err := Search(g, start, goal, opts...)
	if err != nil || !res.Found {
		return []T{}
	}
	return res.Path
}

func validate[T any](g *hexgrid.Graph[T], start, goal *hexgrid.Node[T]) error {
	if g == nil {
		return ErrNilGraph
	}
	if start == nil || goal == nil {
		return ErrNilNode
	}
	if !g.Contains(start) {
		return fmt.Errorf("%w: start %s", ErrForeignNode, start)
	}
	if !g.Contains(goal) {
		return fmt.Errorf("%w: goal %s", ErrForeignNode, goal)
	}
	return nil
}

// runner holds the mutable state of a single search, indexed by NodeID.
// Graph nodes themselves are never written.
type runner[T any] struct {
	g         *hexgrid.Graph[T]
	heuristic Heuristic
	start     hexgrid.NodeID
	goal      hexgrid.NodeID
	goalPos   hexgrid.Pos

	gScore  []float64        // best known cost from start
	hScore  []float64        // cached heuristic to goal
	fScore  []float64        // gScore + hScore, the open-set key
	hSet    []bool           // hScore has been computed
	visited []bool           // reached by some path
	closed  []bool           // fully expanded
	parent  []hexgrid.NodeID // predecessor on the best known path

	open *pqueue.Heap[hexgrid.NodeID]

	current  hexgrid.NodeID // node popped by the latest step
	expanded int
	done     bool
	found    bool
}

// newRunner resets every per-node field and seeds the open set with start.
func newRunner[T any](g *hexgrid.Graph[T], start, goal hexgrid.NodeID, cfg Options) *runner[T] {
	n := g.Len()
	r := &runner[T]{
		g:         g,
		heuristic: cfg.Heuristic,
		start:     start,
		goal:      goal,
		goalPos:   g.Node(goal).Pos,
		gScore:    make([]float64, n),
		hScore:    make([]float64, n),
		fScore:    make([]float64, n),
		hSet:      make([]bool, n),
		visited:   make([]bool, n),
		closed:    make([]bool, n),
		parent:    make([]hexgrid.NodeID, n),
		current:   hexgrid.NoNode,
	}
	for i := range r.parent {
		r.parent[i] = hexgrid.NoNode
	}
	r.open = pqueue.New(func(id hexgrid.NodeID) float64 { return r.fScore[id] }, n/4+1)
	r.open.Push(start)

	return r
}

// step pops and expands one node. It reports true once the search is over.
func (r *runner[T]) step() bool {
	if r.done {
		return true
	}

	// 1) Lowest f first.
	cur, ok := r.open.Pop()
	if !ok {
		r.current = hexgrid.NoNode
		r.done = true
		return true
	}
	r.current = cur
	r.expanded++

	// 2) Goal test by identity.
	if cur == r.goal {
		r.done, r.found = true, true
		return true
	}

	// 3) Close and relax every neighbor.
	r.closed[cur] = true
	for _, nb := range r.g.NeighborIDs(cur) {
		r.relax(cur, nb)
	}

	return false
}

// relax offers the path start→…→cur→nb. Cost is charged for entering nb.
func (r *runner[T]) relax(cur, nb hexgrid.NodeID) {
	node := r.g.Node(nb)
	if r.closed[nb] || node.IsWall() {
		return
	}

	tentative := r.gScore[cur] + node.Cost
	beenVisited := r.visited[nb]
	if beenVisited && tentative >= r.gScore[nb] {
		return
	}

	r.visited[nb] = true
	r.parent[nb] = cur
	if !r.hSet[nb] {
		r.hScore[nb] = r.heuristic(r.g, node.Pos, r.goalPos)
		r.hSet[nb] = true
	}
	r.gScore[nb] = tentative
	r.fScore[nb] = tentative + r.hScore[nb]

	if !beenVisited {
		r.open.Push(nb)
	} else {
		// Already queued with a stale, higher f.
		r.open.Rescore(nb)
	}
}

// result builds the Result. Call only after step reported true.
func (r *runner[T]) result() Result[T] {
	res := Result[T]{
		Path:     []T{},
		Expanded: r.expanded,
		Found:    r.found,
	}
	if !r.found {
		return res
	}
	res.Cost = r.gScore[r.goal]

	// Walk parents back to start (exclusive), then reverse.
	for id := r.goal; r.parent[id] != hexgrid.NoNode; id = r.parent[id] {
		res.Path = append(res.Path, r.g.Node(id).Data)
	}
	for i, j := 0, len(res.Path)-1; i < j; i, j = i+1, j-1 {
		res.Path[i], res.Path[j] = res.Path[j], res.Path[i]
	}

	return res
}
