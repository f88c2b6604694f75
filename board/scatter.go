package board

import (
	"math/rand"

	astar "github.com/pdrpinto/gridastar"
)

// Randomize clears the board, picks distinct random endpoints and raises
// clustered barriers by random walks. Each walk starts on a random cell and
// takes steps moves, raising a barrier at every visited cell with probability
// density. Endpoints are never covered.
func (b *Board) Randomize(rng *rand.Rand, clusters, steps int, density float64) {
	b.Clear()
	n := b.grid.Dimension()

	start := astar.Position{Row: rng.Intn(n), Col: rng.Intn(n)}
	b.start = &start
	b.grid.MarkStart(start.Row, start.Col)
	if n*n > 1 {
		end := start
		for end == start {
			end = astar.Position{Row: rng.Intn(n), Col: rng.Intn(n)}
		}
		b.end = &end
		b.grid.MarkEnd(end.Row, end.Col)
	}

	b.Scatter(rng, clusters, steps, density)
}

// Scatter raises clustered random barriers without touching the endpoints.
func (b *Board) Scatter(rng *rand.Rand, clusters, steps int, density float64) {
	n := b.grid.Dimension()
	directions := [4]astar.Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	for c := 0; c < clusters; c++ {
		p := astar.Position{Row: rng.Intn(n), Col: rng.Intn(n)}
		for s := 0; s < steps; s++ {
			if rng.Float64() < density && !b.isEndpoint(p) {
				b.grid.MarkBarrier(p.Row, p.Col)
			}
			d := directions[rng.Intn(len(directions))]
			if next := (astar.Position{Row: p.Row + d.Row, Col: p.Col + d.Col}); b.grid.InBounds(next.Row, next.Col) {
				p = next
			}
		}
	}
}
