package viz

import (
	"image/color"
	"testing"
	"time"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/board"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, dimension, stepsPerFrame int) *Controller {
	t.Helper()
	b, err := board.New(dimension)
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	return NewController(b, stepsPerFrame, time.Second, logger)
}

func runToEnd(t *testing.T, c *Controller) int {
	t.Helper()
	ticks := 0
	for c.Running() {
		c.Tick(0)
		ticks++
		require.Less(t, ticks, 1000, "search never finished")
	}
	return ticks
}

func TestController_SearchToSuccess(t *testing.T) {
	c := newController(t, 5, 4)
	c.Primary(0, 0)
	c.Primary(4, 4)
	assert.Equal(t, "space to search", c.Status())

	require.NoError(t, c.Start())
	assert.True(t, c.Running())
	assert.Contains(t, c.Status(), "searching")

	// 24 expansions and 7 path cells, then the finishing step.
	assert.Equal(t, 8, runToEnd(t, c))

	result, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, astar.Succeeded, result.Outcome)
	assert.Equal(t, 8, result.Moves())
	assert.Equal(t, 7, c.Board().Grid().Count(astar.Path))
	assert.Equal(t, "path: 8 moves, 25 cells expanded (c to clear)", c.Status())
}

func TestController_IgnoresEditsWhileRunning(t *testing.T) {
	c := newController(t, 5, 1)
	c.Primary(0, 0)
	c.Primary(4, 4)
	require.NoError(t, c.Start())
	c.Tick(0)

	c.Primary(2, 2)
	c.Secondary(0, 0)
	c.Clear()
	assert.NotEqual(t, astar.Barrier, c.Board().Grid().State(astar.Position{Row: 2, Col: 2}))
	assert.True(t, c.Board().Ready())

	runToEnd(t, c)
	c.Clear()
	assert.False(t, c.Board().Ready())
	_, ok := c.Last()
	assert.False(t, ok)
}

func TestController_Cancel(t *testing.T) {
	c := newController(t, 5, 1)
	c.Primary(0, 0)
	c.Primary(4, 4)
	require.NoError(t, c.Start())
	c.Tick(0)
	c.Tick(0)

	c.Cancel()
	assert.False(t, c.Running())
	result, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, astar.Cancelled, result.Outcome)
	assert.Equal(t, float32(0), c.Pulse())
	assert.Contains(t, c.Status(), "cancelled")
}

func TestController_StartRequiresEndpoints(t *testing.T) {
	c := newController(t, 3, 1)
	c.Primary(0, 0)
	assert.ErrorIs(t, c.Start(), board.ErrNotReady)
	assert.False(t, c.Running())
}

func TestController_NoPath(t *testing.T) {
	c := newController(t, 3, 1)
	c.Primary(0, 0)
	c.Primary(0, 2)
	for row := 0; row < 3; row++ {
		c.Primary(row, 1)
	}
	require.NoError(t, c.Start())
	runToEnd(t, c)

	result, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, astar.Failed, result.Outcome)
	assert.Equal(t, "failed after 3 cells expanded (c to clear)", c.Status())
}

func TestController_PathPulse(t *testing.T) {
	c := newController(t, 4, 100)
	c.Primary(0, 0)
	c.Primary(0, 3)
	require.NoError(t, c.Start())
	runToEnd(t, c)

	c.Tick(0.5)
	assert.InDelta(t, 0.5, c.Pulse(), 0.05)
	c.Tick(0.6)
	assert.InDelta(t, 1, c.Pulse(), 0.001)
	c.Tick(0.5)
	assert.InDelta(t, 0.5, c.Pulse(), 0.05)
	c.Tick(0.6)
	assert.InDelta(t, 0, c.Pulse(), 0.001)
}

func TestCellAt(t *testing.T) {
	row, col, ok := CellAt(45, 12, 20, 5)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)

	_, _, ok = CellAt(100, 0, 20, 5)
	assert.False(t, ok)
	_, _, ok = CellAt(-1, 0, 20, 5)
	assert.False(t, ok)
	_, _, ok = CellAt(0, 0, 0, 5)
	assert.False(t, ok)
}

func TestBlend(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	assert.Equal(t, black, Blend(black, white, -1))
	assert.Equal(t, white, Blend(black, white, 2))
	assert.Equal(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}, Blend(black, white, 0.5))
}
