package astar

import (
	"context"
)

// StepSnapshot exposes the state of a stepped search after one checkpoint.
// The grid itself is read directly by the caller between steps.
type StepSnapshot struct {
	StepIndex int
	Done      bool
	Result    Result
}

// Stepper runs a search on its own goroutine but hands control back at every
// checkpoint, so the grid is only mutated while the caller is inside Step,
// Close or Result. A Stepper is not safe for concurrent use.
type Stepper struct {
	ctx    context.Context
	cancel context.CancelFunc

	resume chan struct{}
	pause  chan struct{}
	done   chan Result

	stepCount int
	finished  bool
	result    Result
}

// NewStepper prepares a search over grid. Nothing runs until the first Step.
// The search goroutine only exits once the search is done, so a Stepper that
// is not stepped to completion must be closed.
func NewStepper(
	parent context.Context,
	grid *Grid,
	startNode Position,
	goalNode Position,
	options ...Option,
) *Stepper {
	ctx, cancel := context.WithCancel(parent)
	s := &Stepper{
		ctx:    ctx,
		cancel: cancel,
		resume: make(chan struct{}),
		pause:  make(chan struct{}),
		done:   make(chan Result, 1),
	}

	go func() {
		<-s.resume
		s.done <- Run(grid, startNode, goalNode, s.checkpoint, s.cancelled, options...)
	}()

	return s
}

// checkpoint parks the search until the caller hands control back. It never
// returns on cancellation alone; Run notices that at its next poll.
func (s *Stepper) checkpoint() {
	s.pause <- struct{}{}
	<-s.resume
}

func (s *Stepper) cancelled() bool { return s.ctx.Err() != nil }

// drain hands control to the search until it returns.
func (s *Stepper) drain() {
	for !s.finished {
		s.resume <- struct{}{}
		select {
		case <-s.pause:
		case res := <-s.done:
			s.finish(res)
		}
	}
}

// Close cancels the search and waits for it to return; the grid is not
// touched once Close returns. Cancellation is polled before each expansion,
// so a search closed while its path is being rebuilt still finishes as
// Succeeded. Closing a finished Stepper does nothing.
func (s *Stepper) Close() {
	s.cancel()
	s.drain()
}

// Step advances the search to its next checkpoint and returns a snapshot.
// Once the search is done every further call returns the final snapshot.
// If the parent context is done, the search is wound down as by Close and
// the context's error is returned with the final snapshot.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.finished {
		return s.final(), nil
	}
	if err := s.ctx.Err(); err != nil {
		s.drain()
		return s.final(), err
	}

	s.resume <- struct{}{}
	select {
	case <-s.pause:
		s.stepCount++
		return StepSnapshot{StepIndex: s.stepCount, Result: Result{Outcome: Running}}, nil
	case res := <-s.done:
		return s.finish(res), nil
	}
}

// Result runs whatever remains of the search without further snapshots and
// returns its result.
func (s *Stepper) Result() Result {
	s.drain()
	return s.result
}

// Done reports whether the search has reached a terminal outcome.
func (s *Stepper) Done() bool { return s.finished }

func (s *Stepper) finish(res Result) StepSnapshot {
	s.finished = true
	s.result = res
	s.cancel()
	return s.final()
}

func (s *Stepper) final() StepSnapshot {
	return StepSnapshot{StepIndex: s.stepCount, Done: true, Result: s.result}
}
