package astar

import (
	"context"

	"github.com/katalvlaran/hexastar/hexgrid"
)

// Snapshot describes the search state after one Step.
type Snapshot struct {
	// Current is the node expanded by this step, or hexgrid.NoNode when the
	// step found the open set empty.
	Current hexgrid.NodeID
	// Step counts expanded nodes so far.
	Step int
	// Open is the open-set size after the step.
	Open  int
	Done  bool
	Found bool
}

// Stepper drives a search one expansion at a time, for visualizers and debugging.
// It runs exactly the algorithm Search runs. A Stepper is not safe for concurrent use.
type Stepper[T any] struct {
	r      *runner[T]
	logger *Logger
	from   hexgrid.Pos
	to     hexgrid.Pos
	logged bool
}

// NewStepper prepares a search without expanding anything.
// It validates its arguments like Search.
func NewStepper[T any](g *hexgrid.Graph[T], start, goal *hexgrid.Node[T], opts ...Option) (*Stepper[T], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, start, goal); err != nil {
		return nil, err
	}
	return &Stepper[T]{
		r:      newRunner(g, start.ID, goal.ID, cfg),
		logger: cfg.Logger,
		from:   start.Pos,
		to:     goal.Pos,
	}, nil
}

// Step expands one node. Once Done, further calls change nothing.
func (s *Stepper[T]) Step() Snapshot {
	if !s.r.done {
		s.r.step()
	}
	if s.r.done && !s.logged {
		res := s.r.result()
		s.logger.LogSearch(context.Background(), s.from, s.to, res.Found, res.Cost, res.Expanded, len(res.Path))
		s.logged = true
	}
	return Snapshot{
		Current: s.r.current,
		Step:    s.r.expanded,
		Open:    s.r.open.Len(),
		Done:    s.r.done,
		Found:   s.r.found,
	}
}

// Run steps until done and returns the result.
func (s *Stepper[T]) Run() Result[T] {
	for !s.Step().Done {
	}
	return s.r.result()
}

// Result returns the outcome; ok is false while the search is still running.
func (s *Stepper[T]) Result() (res Result[T], ok bool) {
	if !s.r.done {
		return res, false
	}
	return s.r.result(), true
}

// Closed reports whether id has been expanded.
func (s *Stepper[T]) Closed(id hexgrid.NodeID) bool {
	return s.inRange(id) && s.r.closed[id]
}

// Parent returns the predecessor of id on its best known path, or hexgrid.NoNode.
func (s *Stepper[T]) Parent(id hexgrid.NodeID) hexgrid.NodeID {
	if !s.inRange(id) {
		return hexgrid.NoNode
	}
	return s.r.parent[id]
}

// Cost returns the best known cost from start to id. ok is false if id has
// not been reached yet; start itself reports 0, true.
func (s *Stepper[T]) Cost(id hexgrid.NodeID) (cost float64, ok bool) {
	if !s.inRange(id) {
		return 0, false
	}
	if id == s.r.start {
		return 0, true
	}
	return s.r.gScore[id], s.r.visited[id]
}

func (s *Stepper[T]) inRange(id hexgrid.NodeID) bool {
	return id >= 0 && int(id) < len(s.r.closed)
}
