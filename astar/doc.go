// Package astar finds cheapest paths over a hexgrid.Graph with the A* algorithm.
//
// Overview:
//
//   - A* expands nodes in order of f = g + h, where g is the cost paid so far
//     and h a heuristic estimate of the cost still to come.
//   - The open set is a pqueue.Heap keyed by f. A node whose g improves while
//     queued is re-positioned in place (Rescore), never pushed twice.
//   - Closed nodes are never reopened. This is exact as long as costs are
//     non-negative and the heuristic is consistent.
//   - Cost is charged for entering a cell: a step onto node n costs n.Cost.
//     Walls are never entered.
//
// Heuristics:
//
//   - CubeHeuristic (default): cube distance. Admissible and consistent when
//     every open cell costs at least 1.
//   - ZeroHeuristic: turns the search into Dijkstra's algorithm.
//   - Any other Heuristic via WithHeuristic. h is computed at most once per
//     node per search. An overestimating heuristic still terminates, but the
//     returned path may not be the cheapest.
//
// Outcomes:
//
//   - Found:    Result.Path lists caller tiles from the first step after
//     start through goal; Result.Cost is their summed entry cost.
//   - No path:  Result.Found == false, empty Path, nil error.
//   - start == goal: Found, empty Path, Cost 0.
//
// Errors (sentinel, misuse only):
//
//   - ErrNilGraph, ErrNilNode, ErrForeignNode from Search and NewStepper.
//   - ErrStartNotFound, ErrGoalNotFound from SearchXY.
//
// Concurrency:
//
//   - Every search allocates its own g/h/f/visited/closed/parent arrays, so
//     any number of searches may run over one Graph at the same time.
//   - The search itself is synchronous and has no cancellation points.
//
// Stepper runs the same algorithm one expansion at a time.
//
// Complexity:
//
//   - Time:  O(N log N), N = nodes in the graph.
//   - Space: O(N) per search.
package astar
