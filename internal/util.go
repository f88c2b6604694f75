package internal

// ShortestMoves counts the fewest orthogonal unit moves from start to end over
// a square grid where blocked[row][col] marks impassable cells. It is a plain
// breadth-first search, used to cross-check the A* engine.
func ShortestMoves(blocked [][]bool, start, end [2]int) (int, bool) {
	dimension := len(blocked)
	inBounds := func(p [2]int) bool {
		return p[0] >= 0 && p[0] < dimension && p[1] >= 0 && p[1] < dimension
	}
	if !inBounds(start) || !inBounds(end) {
		return 0, false
	}

	distance := map[[2]int]int{start: 0}
	queue := [][2]int{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			return distance[current], true
		}
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := [2]int{current[0] + d[0], current[1] + d[1]}
			if !inBounds(next) || blocked[next[0]][next[1]] {
				continue
			}
			if _, seen := distance[next]; seen {
				continue
			}
			distance[next] = distance[current] + 1
			queue = append(queue, next)
		}
	}
	return 0, false
}
