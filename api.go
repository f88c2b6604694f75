package astar

import (
	"context"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// Outcome is the state of a search. Running is only observed through a Stepper.
type Outcome int

const (
	Running Outcome = iota
	Succeeded
	Failed
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// StepFunc is the render checkpoint. It must not mutate the grid.
type StepFunc func()

func (f StepFunc) call() {
	if f != nil {
		f()
	}
}

// CancelFunc is polled once per expansion; returning true stops the search.
type CancelFunc func() bool

func (f CancelFunc) requested() bool { return f != nil && f() }

// Result contains the outcome of a search
type Result struct {
	Outcome Outcome
	// Route runs from start to end inclusive. Empty unless Succeeded.
	Route []Position
	// Interior holds the cells tagged Path, end side first.
	Interior []Position
	Cost     int
	Expanded int
}

// Moves returns the number of unit steps along Route.
func (r Result) Moves() int {
	if len(r.Route) == 0 {
		return 0
	}
	return len(r.Route) - 1
}

// Options defines parameters for the search.
type Options struct {
	Logger  log.FieldLogger
	OnRelax func(Relaxation)
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger routes the engine's debug logging to logger.
func WithLogger(logger log.FieldLogger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithRelaxHook registers fn to observe every successful relaxation.
func WithRelaxHook(fn func(Relaxation)) Option {
	return func(options *Options) { options.OnRelax = fn }
}

// RunContext is Run with cancellation taken from ctx.
func RunContext(
	contextObject context.Context,
	grid *Grid,
	startNode Position,
	goalNode Position,
	onStep StepFunc,
	options ...Option,
) Result {
	return Run(grid, startNode, goalNode, onStep, func() bool { return contextObject.Err() != nil }, options...)
}

// Run executes A* over grid from startNode to goalNode using unit move costs
// and the Manhattan heuristic.
//
// Cell tags are updated as the search proceeds: discovered cells become Open,
// expanded cells other than the start become Closed, and on success the cells
// between start and goal become Path. onStep is called after every expansion
// and once per Path cell. cancelled is polled before every expansion.
func Run(
	grid *Grid,
	startNode Position,
	goalNode Position,
	onStep StepFunc,
	cancelled CancelFunc,
	options ...Option,
) Result {

	// --- Apply options ---
	searchOptions := Options{
		Logger: log.StandardLogger(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	logger := searchOptions.Logger.WithFields(log.Fields{"start": startNode, "end": goalNode})

	// --- Initialize state ---
	gScore := map[Position]int{startNode: 0}
	fScore := map[Position]int{startNode: Heuristic(startNode, goalNode)}
	cameFrom := make(map[Position]Position)
	openSet := NewFrontier()
	openSet.Push(startNode, fScore[startNode])

	// --- Main loop ---
	expandedNodes := 0
	for !openSet.IsEmpty() {
		if cancelled.requested() {
			logger.WithField("expanded", expandedNodes).Debug("search cancelled")
			return Result{Outcome: Cancelled, Expanded: expandedNodes}
		}

		currentNode, _ := openSet.PopMin()
		expandedNodes++

		// Goal check
		if currentNode == goalNode {
			interior := Reconstruct(grid, cameFrom, goalNode, onStep)
			grid.set(goalNode, End)
			result := Result{
				Outcome:  Succeeded,
				Route:    route(startNode, goalNode, interior),
				Interior: interior,
				Cost:     gScore[goalNode],
				Expanded: expandedNodes,
			}
			logger.WithFields(log.Fields{"cost": result.Cost, "expanded": expandedNodes}).Debug("path found")
			return result
		}

		for _, neighbor := range grid.Neighbors(currentNode) {
			tentativeG := gScore[currentNode] + 1
			previousG, reached := gScore[neighbor]
			if !reached {
				previousG = math.MaxInt
			}
			if tentativeG >= previousG {
				continue
			}
			cameFrom[neighbor] = currentNode
			gScore[neighbor] = tentativeG
			fScore[neighbor] = tentativeG + Heuristic(neighbor, goalNode)

			pushed := false
			if !openSet.Contains(neighbor) {
				pushed = openSet.Push(neighbor, fScore[neighbor])
				if neighbor != goalNode {
					grid.set(neighbor, Open)
				}
			}
			if searchOptions.OnRelax != nil {
				searchOptions.OnRelax(Relaxation{
					From:      currentNode,
					To:        neighbor,
					PreviousG: previousG,
					G:         tentativeG,
					F:         fScore[neighbor],
					Pushed:    pushed,
				})
			}
		}

		onStep.call()

		if currentNode != startNode {
			grid.set(currentNode, Closed)
		}
	}

	logger.WithField("expanded", expandedNodes).Debug("no path")
	return Result{Outcome: Failed, Expanded: expandedNodes}
}
