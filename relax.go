package astar

// Relaxation records one successful cost improvement made by the engine.
type Relaxation struct {
	From      Position
	To        Position
	PreviousG int // math.MaxInt when To had not been reached before
	G         int
	F         int
	Pushed    bool // To entered the frontier as a result
}
