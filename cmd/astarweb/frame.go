package main

import (
	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/board"
)

type point = [2]int

// frame is one JSON message describing a board, optionally mid-search.
type frame struct {
	Session   string  `json:"session"`
	Step      int     `json:"step"`
	Dimension int     `json:"dimension"`
	Start     *point  `json:"start,omitempty"`
	End       *point  `json:"end,omitempty"`
	Walls     []point `json:"walls"`
	Open      []point `json:"open,omitempty"`
	Closed    []point `json:"closed,omitempty"`
	Path      []point `json:"path,omitempty"`
	Running   bool    `json:"running"`
	Done      bool    `json:"done"`
	Outcome   string  `json:"outcome,omitempty"`
	Moves     int     `json:"moves,omitempty"`
	Expanded  int     `json:"expanded,omitempty"`
}

func toPoint(p astar.Position) *point { return &point{p.Row, p.Col} }

// newFrame reads the board's grid. The caller must hold the session lock.
func newFrame(id string, b *board.Board) frame {
	f := frame{
		Session:   id,
		Dimension: b.Dimension(),
		Walls:     []point{},
	}
	if p, ok := b.Start(); ok {
		f.Start = toPoint(p)
	}
	if p, ok := b.End(); ok {
		f.End = toPoint(p)
	}
	for row, states := range b.Grid().States() {
		for col, state := range states {
			p := point{row, col}
			switch state {
			case astar.Barrier:
				f.Walls = append(f.Walls, p)
			case astar.Open:
				f.Open = append(f.Open, p)
			case astar.Closed:
				f.Closed = append(f.Closed, p)
			case astar.Path:
				f.Path = append(f.Path, p)
			}
		}
	}
	return f
}

func (f *frame) apply(snapshot astar.StepSnapshot) {
	f.Step = snapshot.StepIndex
	f.Done = snapshot.Done
	f.Running = !snapshot.Done
	f.Outcome = snapshot.Result.Outcome.String()
	if snapshot.Done {
		f.Moves = snapshot.Result.Moves()
		f.Expanded = snapshot.Result.Expanded
	}
}
