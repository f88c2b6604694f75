// Package board is the input layer in front of the search engine. It applies
// the placement rules of the interactive tool: one start, one end, and
// barriers only on cells that are neither.
package board

import (
	"context"
	"errors"
	"fmt"

	astar "github.com/pdrpinto/gridastar"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidDimension = errors.New("board: dimension must be at least 1")
	ErrOutOfBounds      = errors.New("board: cell out of bounds")
	ErrOccupied         = errors.New("board: cell holds the start or end")
	ErrInvalidState     = errors.New("board: state cannot be placed")
	ErrNotReady         = errors.New("board: start and end must both be placed")
)

// Board owns a grid and remembers where its start and end are.
type Board struct {
	grid       *astar.Grid
	start, end *astar.Position
}

func New(dimension int) (*Board, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, dimension)
	}
	return &Board{grid: astar.NewGrid(dimension)}, nil
}

// Grid exposes the underlying grid for rendering.
func (b *Board) Grid() *astar.Grid { return b.grid }

func (b *Board) Dimension() int { return b.grid.Dimension() }

func (b *Board) Start() (astar.Position, bool) { return deref(b.start) }
func (b *Board) End() (astar.Position, bool)   { return deref(b.end) }

// Ready reports whether both endpoints are placed.
func (b *Board) Ready() bool { return b.start != nil && b.end != nil }

func deref(p *astar.Position) (astar.Position, bool) {
	if p == nil {
		return astar.Position{}, false
	}
	return *p, true
}

func (b *Board) check(row, col int) (astar.Position, error) {
	if !b.grid.InBounds(row, col) {
		return astar.Position{}, fmt.Errorf("%w: (%d,%d) on a %dx%d board",
			ErrOutOfBounds, row, col, b.grid.Dimension(), b.grid.Dimension())
	}
	return astar.Position{Row: row, Col: col}, nil
}

func (b *Board) isEndpoint(p astar.Position) bool {
	return (b.start != nil && *b.start == p) || (b.end != nil && *b.end == p)
}

// Place applies a primary click: the first click places the start, the next
// the end, and later clicks raise barriers. Clicks on an endpoint, or that
// would put the start on the end, do nothing. It returns the state the cell
// was given, or Empty when nothing changed.
func (b *Board) Place(row, col int) (astar.CellState, error) {
	p, err := b.check(row, col)
	if err != nil {
		return astar.Empty, err
	}
	switch {
	case b.start == nil && (b.end == nil || *b.end != p):
		b.start = &p
		b.grid.MarkStart(row, col)
		return astar.Start, nil
	case b.end == nil && *b.start != p:
		b.end = &p
		b.grid.MarkEnd(row, col)
		return astar.End, nil
	case !b.isEndpoint(p):
		b.grid.MarkBarrier(row, col)
		return astar.Barrier, nil
	}
	return astar.Empty, nil
}

// Erase applies a secondary click: the cell is reset and, if it was an
// endpoint, forgotten.
func (b *Board) Erase(row, col int) error {
	p, err := b.check(row, col)
	if err != nil {
		return err
	}
	b.grid.Reset(row, col)
	switch {
	case b.start != nil && *b.start == p:
		b.start = nil
	case b.end != nil && *b.end == p:
		b.end = nil
	}
	return nil
}

// Set places state at (row, col) explicitly. Placing an endpoint moves it if
// it already exists elsewhere.
func (b *Board) Set(row, col int, state astar.CellState) error {
	p, err := b.check(row, col)
	if err != nil {
		return err
	}
	switch state {
	case astar.Empty:
		return b.Erase(row, col)
	case astar.Barrier:
		if b.isEndpoint(p) {
			return fmt.Errorf("%w: %v", ErrOccupied, p)
		}
		b.grid.MarkBarrier(row, col)
	case astar.Start:
		if b.end != nil && *b.end == p {
			return fmt.Errorf("%w: %v is the end", ErrOccupied, p)
		}
		if b.start != nil {
			b.grid.Reset(b.start.Row, b.start.Col)
		}
		b.start = &p
		b.grid.MarkStart(row, col)
	case astar.End:
		if b.start != nil && *b.start == p {
			return fmt.Errorf("%w: %v is the start", ErrOccupied, p)
		}
		if b.end != nil {
			b.grid.Reset(b.end.Row, b.end.Col)
		}
		b.end = &p
		b.grid.MarkEnd(row, col)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
	return nil
}

// Clear empties the board.
func (b *Board) Clear() {
	b.grid.Clear()
	b.start, b.end = nil, nil
}

// prepare drops the tags left by an earlier search.
func (b *Board) prepare() (astar.Position, astar.Position, error) {
	if !b.Ready() {
		return astar.Position{}, astar.Position{}, ErrNotReady
	}
	b.grid.ClearSearch()
	return *b.start, *b.end, nil
}

// Search runs a complete search, cancelled when ctx is done.
func (b *Board) Search(ctx context.Context, onStep astar.StepFunc, options ...astar.Option) (astar.Result, error) {
	start, end, err := b.prepare()
	if err != nil {
		return astar.Result{}, err
	}
	result := astar.RunContext(ctx, b.grid, start, end, onStep, options...)
	log.WithFields(log.Fields{
		"start":    start,
		"end":      end,
		"outcome":  result.Outcome,
		"expanded": result.Expanded,
	}).Debug("board search finished")
	return result, nil
}

// Stepper prepares a stepped search over the board. The board must not be
// edited until the stepper is done or closed.
func (b *Board) Stepper(ctx context.Context, options ...astar.Option) (*astar.Stepper, error) {
	start, end, err := b.prepare()
	if err != nil {
		return nil, err
	}
	return astar.NewStepper(ctx, b.grid, start, end, options...), nil
}
