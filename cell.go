package astar

import "fmt"

// CellState tags what a cell currently represents.
// Empty is the zero value so a freshly allocated grid needs no initialisation pass.
type CellState uint8

const (
	Empty CellState = iota
	Start
	End
	Barrier
	Open
	Closed
	Path
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Start:
		return "start"
	case End:
		return "end"
	case Barrier:
		return "barrier"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a single grid square.
type Cell struct {
	Position
	State CellState
}

// Heuristic returns the Manhattan distance between two positions.
func Heuristic(a, b Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
