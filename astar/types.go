package astar

import (
	"errors"

	"github.com/katalvlaran/hexastar/hexgrid"
)

// Sentinel errors. They report API misuse only: "no path" is a normal
// outcome signalled by Result.Found == false.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilNode indicates a nil start or goal node.
	ErrNilNode = errors.New("astar: start or goal node is nil")

	// ErrForeignNode indicates a start or goal node that belongs to a different graph.
	ErrForeignNode = errors.New("astar: node does not belong to graph")

	// ErrStartNotFound indicates that no node exists at the requested start coordinate.
	ErrStartNotFound = errors.New("astar: no node at start coordinate")

	// ErrGoalNotFound indicates that no node exists at the requested goal coordinate.
	ErrGoalNotFound = errors.New("astar: no node at goal coordinate")
)

// Heuristic estimates the remaining cost from one position to another.
// For the search to return shortest paths it must never overestimate
// (admissible) and must satisfy h(a) <= cost(a,b) + h(b) for neighbors
// (consistent). Other heuristics still terminate but may return a longer path.
type Heuristic func(m hexgrid.Metric, from, to hexgrid.Pos) float64

// CubeHeuristic is the default: the grid's own cube distance.
func CubeHeuristic(m hexgrid.Metric, from, to hexgrid.Pos) float64 {
	return m.Distance(from, to)
}

// ZeroHeuristic turns A* into Dijkstra's algorithm.
func ZeroHeuristic(hexgrid.Metric, hexgrid.Pos, hexgrid.Pos) float64 {
	return 0
}

// Result is the outcome of one search.
type Result[T any] struct {
	// Path holds the caller tiles from the first step after start up to and
	// including goal. It is empty when no path exists or start == goal.
	Path []T
	// Cost is the sum of entry costs along Path.
	Cost float64
	// Expanded counts nodes popped from the open set, goal included.
	Expanded int
	// Found reports whether goal was reached.
	Found bool
}

// Options configures a search.
//
// Heuristic – remaining-cost estimate. Default CubeHeuristic.
// Logger    – receives one debug record per finished search. Default NoopLogger.
type Options struct {
	Heuristic Heuristic
	Logger    *Logger
}

// Option is a functional option for Search and NewStepper.
type Option func(*Options)

// WithHeuristic overrides the heuristic. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	if h == nil {
		panic("astar: WithHeuristic(nil)")
	}
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic("astar: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the cube-distance heuristic and a silent logger.
func DefaultOptions() Options {
	return Options{
		Heuristic: CubeHeuristic,
		Logger:    NoopLogger(),
	}
}
