// Package astar finds shortest paths on a square grid with the A* algorithm.
//
// It exposes two main entry points:
//
//   - Run: search to completion, calling a render callback at every checkpoint.
//   - Stepper: advance the same search one checkpoint at a time to drive frame-based UIs.
//
// Movement is restricted to the four orthogonal directions at unit cost and the
// heuristic is Manhattan distance, so every path returned is a shortest one.
// Ties in the frontier are broken by insertion order, which makes the path for
// a given grid reproducible across runs.
package astar
