package astar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	grid := NewGrid(4)
	require.Equal(t, 4, grid.Dimension())
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cell := grid.At(row, col)
			assert.Equal(t, Position{Row: row, Col: col}, cell.Position)
			assert.Equal(t, Empty, cell.State)
		}
	}
	assert.Panics(t, func() { NewGrid(0) })
}

func TestGrid_NeighborsOrder(t *testing.T) {
	grid := NewGrid(3)

	got := grid.Neighbors(Position{1, 1})
	want := []Position{{2, 1}, {0, 1}, {1, 2}, {1, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("neighbors mismatch (-want +got):\n%s", diff)
	}

	corner := grid.Neighbors(Position{0, 0})
	if diff := cmp.Diff([]Position{{1, 0}, {0, 1}}, corner); diff != "" {
		t.Errorf("corner neighbors mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid_NeighborsSkipBarriers(t *testing.T) {
	grid := NewGrid(3)
	grid.MarkBarrier(2, 1)
	grid.MarkBarrier(1, 0)

	got := grid.Neighbors(Position{1, 1})
	if diff := cmp.Diff([]Position{{0, 1}, {1, 2}}, got); diff != "" {
		t.Errorf("neighbors mismatch (-want +got):\n%s", diff)
	}

	// Adjacency follows the current tags, not a cached list.
	grid.Reset(2, 1)
	assert.Len(t, grid.Neighbors(Position{1, 1}), 3)
}

func TestGrid_MarkAndClear(t *testing.T) {
	grid := NewGrid(3)
	grid.MarkStart(0, 0)
	grid.MarkEnd(2, 2)
	grid.MarkBarrier(1, 1)
	grid.set(Position{0, 1}, Open)
	grid.set(Position{0, 2}, Closed)
	grid.set(Position{1, 2}, Path)

	start, ok := grid.Find(Start)
	require.True(t, ok)
	assert.Equal(t, Position{0, 0}, start)
	assert.Equal(t, 1, grid.Count(End))

	grid.ClearSearch()
	assert.Equal(t, Start, grid.State(Position{0, 0}))
	assert.Equal(t, End, grid.State(Position{2, 2}))
	assert.Equal(t, Barrier, grid.State(Position{1, 1}))
	assert.Zero(t, grid.Count(Open)+grid.Count(Closed)+grid.Count(Path))

	grid.Clear()
	assert.Equal(t, 9, grid.Count(Empty))
	_, ok = grid.Find(Start)
	assert.False(t, ok)
}

func TestGrid_StatesIsACopy(t *testing.T) {
	grid := NewGrid(2)
	grid.MarkBarrier(0, 1)
	states := grid.States()
	assert.Equal(t, [][]CellState{{Empty, Barrier}, {Empty, Empty}}, states)

	states[0][0] = End
	assert.Equal(t, Empty, grid.State(Position{0, 0}))
}

func TestGrid_InBounds(t *testing.T) {
	grid := NewGrid(2)
	assert.True(t, grid.InBounds(1, 1))
	assert.False(t, grid.InBounds(2, 0))
	assert.False(t, grid.InBounds(0, -1))
}

func TestHeuristic(t *testing.T) {
	assert.Equal(t, 8, Heuristic(Position{0, 0}, Position{4, 4}))
	assert.Equal(t, 3, Heuristic(Position{2, 5}, Position{1, 3}))
	assert.Zero(t, Heuristic(Position{1, 1}, Position{1, 1}))
}

func TestCellState_String(t *testing.T) {
	assert.Equal(t, "barrier", Barrier.String())
	assert.Equal(t, "path", Path.String())
	assert.Equal(t, "CellState(42)", CellState(42).String())
}
