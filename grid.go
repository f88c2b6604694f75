package astar

import "fmt"

// Grid is a square board of cells addressed by (row, col).
//
// The mark methods perform raw state transitions. Keeping a single Start and a
// single End, and never covering either with a Barrier, is up to the caller.
type Grid struct {
	dimension int
	cells     [][]Cell
}

// NewGrid allocates a dimension×dimension grid of Empty cells.
func NewGrid(dimension int) *Grid {
	if dimension < 1 {
		panic(fmt.Sprintf("astar: invalid grid dimension %d", dimension))
	}
	cells := make([][]Cell, dimension)
	for row := range cells {
		cells[row] = make([]Cell, dimension)
		for col := range cells[row] {
			cells[row][col] = Cell{Position: Position{Row: row, Col: col}}
		}
	}
	return &Grid{dimension: dimension, cells: cells}
}

// Dimension returns N for an N×N grid.
func (g *Grid) Dimension() int { return g.dimension }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.dimension && col >= 0 && col < g.dimension
}

// At returns a copy of the cell at (row, col).
func (g *Grid) At(row, col int) Cell { return g.cells[row][col] }

// State returns the tag of the cell at p.
func (g *Grid) State(p Position) CellState { return g.cells[p.Row][p.Col].State }

// States copies every tag, row-major, for renderers.
func (g *Grid) States() [][]CellState {
	out := make([][]CellState, g.dimension)
	for row := range g.cells {
		out[row] = make([]CellState, g.dimension)
		for col, cell := range g.cells[row] {
			out[row][col] = cell.State
		}
	}
	return out
}

func (g *Grid) MarkStart(row, col int)   { g.cells[row][col].State = Start }
func (g *Grid) MarkEnd(row, col int)     { g.cells[row][col].State = End }
func (g *Grid) MarkBarrier(row, col int) { g.cells[row][col].State = Barrier }
func (g *Grid) Reset(row, col int)       { g.cells[row][col].State = Empty }

func (g *Grid) set(p Position, state CellState) { g.cells[p.Row][p.Col].State = state }

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col].State = Empty
		}
	}
}

// ClearSearch drops the Open, Closed and Path tags left by a previous run while
// keeping Start, End and Barrier placements.
func (g *Grid) ClearSearch() {
	for row := range g.cells {
		for col := range g.cells[row] {
			switch g.cells[row][col].State {
			case Open, Closed, Path:
				g.cells[row][col].State = Empty
			}
		}
	}
}

// Find returns the first cell in row-major order carrying state.
func (g *Grid) Find(state CellState) (Position, bool) {
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].State == state {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// Count returns how many cells carry state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].State == state {
				n++
			}
		}
	}
	return n
}

// neighborOffsets is the fixed expansion order: down, up, right, left.
var neighborOffsets = [4]Position{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Neighbors returns the in-bounds, non-barrier cells adjacent to p.
// Adjacency is recomputed from the current cell states on every call.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		row, col := p.Row+d.Row, p.Col+d.Col
		if !g.InBounds(row, col) || g.cells[row][col].State == Barrier {
			continue
		}
		out = append(out, Position{Row: row, Col: col})
	}
	return out
}
