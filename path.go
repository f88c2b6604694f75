package astar

// Reconstruct walks the predecessor chain back from end, tagging every
// intermediate cell as Path and calling onStep once per tagged cell. The walk
// stops at the first cell without a predecessor, which is the start, so
// neither endpoint is tagged. Cells are returned in the order they were
// tagged, end side first.
func Reconstruct(grid *Grid, cameFrom map[Position]Position, end Position, onStep StepFunc) []Position {
	current, ok := cameFrom[end]
	if !ok {
		return nil
	}
	var interior []Position
	for {
		previous, ok := cameFrom[current]
		if !ok {
			return interior
		}
		grid.set(current, Path)
		interior = append(interior, current)
		onStep.call()
		current = previous
	}
}

// route lays out the full start-to-end route around an end-first interior.
func route(start, end Position, interior []Position) []Position {
	if start == end {
		return []Position{start}
	}
	path := make([]Position, 0, len(interior)+2)
	path = append(path, start)
	for i := len(interior) - 1; i >= 0; i-- {
		path = append(path, interior[i])
	}
	return append(path, end)
}
