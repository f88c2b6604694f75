// Package viz holds the interactive visualiser's state machine, independent
// of the window toolkit that feeds it input and draws its board.
package viz

import (
	"context"
	"fmt"
	"time"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/board"
	"github.com/pdrpinto/gridastar/internal/monitoring"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Controller turns clicks and key presses into board edits and searches.
// While a search runs, edits are ignored and the board advances a fixed
// number of checkpoints per tick.
type Controller struct {
	board         *board.Board
	stepsPerFrame int
	pulsePeriod   float32
	logger        log.FieldLogger

	stepper *astar.Stepper
	started time.Time
	last    *astar.Result

	pulse        *gween.Tween
	pulseForward bool
	pulseValue   float32
}

func NewController(b *board.Board, stepsPerFrame int, pulsePeriod time.Duration, logger log.FieldLogger) *Controller {
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	return &Controller{
		board:         b,
		stepsPerFrame: stepsPerFrame,
		pulsePeriod:   float32(pulsePeriod.Seconds()),
		logger:        logger,
	}
}

func (c *Controller) Board() *board.Board { return c.board }

func (c *Controller) Running() bool { return c.stepper != nil }

// Last returns the result of the most recent finished search.
func (c *Controller) Last() (astar.Result, bool) {
	if c.last == nil {
		return astar.Result{}, false
	}
	return *c.last, true
}

// Primary handles a primary click on (row, col).
func (c *Controller) Primary(row, col int) {
	if c.Running() {
		return
	}
	if _, err := c.board.Place(row, col); err != nil {
		c.logger.WithError(err).Debug("click ignored")
	}
}

// Secondary handles a secondary click on (row, col).
func (c *Controller) Secondary(row, col int) {
	if c.Running() {
		return
	}
	if err := c.board.Erase(row, col); err != nil {
		c.logger.WithError(err).Debug("click ignored")
	}
}

// Clear empties the board unless a search is running.
func (c *Controller) Clear() {
	if c.Running() {
		return
	}
	c.board.Clear()
	c.last = nil
	c.pulse = nil
}

// Start begins a stepped search. It does nothing while one is running.
func (c *Controller) Start() error {
	if c.Running() {
		return nil
	}
	stepper, err := c.board.Stepper(context.Background(), astar.WithLogger(c.logger))
	if err != nil {
		return err
	}
	c.stepper = stepper
	c.started = time.Now()
	c.last = nil
	c.pulse = nil
	return nil
}

// Cancel stops a running search; it finishes as Cancelled.
func (c *Controller) Cancel() {
	if !c.Running() {
		return
	}
	c.stepper.Close()
	c.finish(c.stepper.Result())
}

// Tick advances a running search and the path animation by dt seconds.
func (c *Controller) Tick(dt float32) {
	if c.Running() {
		for i := 0; i < c.stepsPerFrame; i++ {
			snapshot, err := c.stepper.Step()
			if err != nil || snapshot.Done {
				c.finish(snapshot.Result)
				break
			}
		}
	}
	c.tickPulse(dt)
}

func (c *Controller) finish(result astar.Result) {
	c.stepper.Close()
	c.stepper = nil
	c.last = &result
	monitoring.ObserveSearch(result, time.Since(c.started))
	c.logger.WithFields(log.Fields{
		"outcome":  result.Outcome,
		"expanded": result.Expanded,
		"moves":    result.Moves(),
	}).Info("search finished")
	if result.Outcome == astar.Succeeded && c.pulsePeriod > 0 {
		c.pulseForward = true
		c.pulse = gween.New(0, 1, c.pulsePeriod, ease.InOutSine)
	}
}

func (c *Controller) tickPulse(dt float32) {
	if c.pulse == nil {
		c.pulseValue = 0
		return
	}
	value, done := c.pulse.Update(dt)
	c.pulseValue = value
	if done {
		c.pulseForward = !c.pulseForward
		if c.pulseForward {
			c.pulse = gween.New(0, 1, c.pulsePeriod, ease.InOutSine)
		} else {
			c.pulse = gween.New(1, 0, c.pulsePeriod, ease.InOutSine)
		}
	}
}

// Pulse returns the path highlight strength in [0, 1].
func (c *Controller) Pulse() float32 { return c.pulseValue }

// Status is a one-line summary for the window footer.
func (c *Controller) Status() string {
	switch {
	case c.Running():
		return "searching... (esc to cancel)"
	case c.last != nil && c.last.Outcome == astar.Succeeded:
		return fmt.Sprintf("path: %d moves, %d cells expanded (c to clear)", c.last.Moves(), c.last.Expanded)
	case c.last != nil:
		return fmt.Sprintf("%s after %d cells expanded (c to clear)", c.last.Outcome, c.last.Expanded)
	case c.board.Ready():
		return "space to search"
	default:
		return "left click: start, end, barriers  right click: erase"
	}
}

// CellAt maps a window pixel to a board cell.
func CellAt(x, y, cellPixels, dimension int) (row, col int, ok bool) {
	if cellPixels < 1 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/cellPixels, x/cellPixels
	if row >= dimension || col >= dimension {
		return 0, 0, false
	}
	return row, col, true
}
