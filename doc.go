// Package slider solves the generalized n×n sliding-tile puzzle (the
// 8-puzzle and its larger cousins) with A* search under the
// Manhattan-distance heuristic.
//
// It exposes three main entry points:
//
//   - Solve: the pure function from (size, grid) to an optimal move list.
//   - Search: the same search with a context and per-search statistics.
//   - Stepper: iterate the search one expansion at a time to drive debugging tools.
//
// A move is the value of the tile that slides into the blank. The search is
// single-threaded and deterministic: equal-priority frontier entries are
// expanded in discovery order.
package slider
