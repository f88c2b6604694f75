// Package layout reads and writes grids as plain-text maps.
//
// One line per row, one glyph per column:
//
//	. empty   # barrier   S start   E end
//	o open    x closed    * path
//
// Blank lines and lines starting with ';' are skipped. Search tags are read
// back as empty cells so a written map can be loaded again.
package layout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/board"
)

var (
	ErrEmpty             = errors.New("layout: no rows")
	ErrNotSquare         = errors.New("layout: map is not square")
	ErrUnknownGlyph      = errors.New("layout: unknown glyph")
	ErrDuplicateEndpoint = errors.New("layout: more than one start or end")
)

var glyphs = map[astar.CellState]rune{
	astar.Empty:   '.',
	astar.Barrier: '#',
	astar.Start:   'S',
	astar.End:     'E',
	astar.Open:    'o',
	astar.Closed:  'x',
	astar.Path:    '*',
}

// Glyph returns the map character for state.
func Glyph(state astar.CellState) rune {
	if g, ok := glyphs[state]; ok {
		return g
	}
	return '?'
}

func parseGlyph(r rune) (astar.CellState, bool) {
	for state, g := range glyphs {
		if g == r {
			switch state {
			case astar.Open, astar.Closed, astar.Path:
				return astar.Empty, true
			}
			return state, true
		}
	}
	return astar.Empty, false
}

type line struct {
	number int
	text   []rune
}

// Read parses a map into a board.
func Read(r io.Reader) (*board.Board, error) {
	scanner := bufio.NewScanner(r)
	var rows []line
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		rows = append(rows, line{number: number, text: []rune(text)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("layout: reading map: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	b, err := board.New(len(rows))
	if err != nil {
		return nil, err
	}
	for row, l := range rows {
		if len(l.text) != len(rows) {
			return nil, fmt.Errorf("line %d: %w: %d columns, want %d", l.number, ErrNotSquare, len(l.text), len(rows))
		}
		for col, r := range l.text {
			state, ok := parseGlyph(r)
			if !ok {
				return nil, fmt.Errorf("line %d column %d: %w %q", l.number, col+1, ErrUnknownGlyph, r)
			}
			if err := place(b, row, col, state); err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", l.number, col+1, err)
			}
		}
	}
	return b, nil
}

func place(b *board.Board, row, col int, state astar.CellState) error {
	switch state {
	case astar.Empty:
		return nil
	case astar.Start:
		if _, ok := b.Start(); ok {
			return ErrDuplicateEndpoint
		}
	case astar.End:
		if _, ok := b.End(); ok {
			return ErrDuplicateEndpoint
		}
	}
	return b.Set(row, col, state)
}

// Write renders every cell of grid, search tags included.
func Write(w io.Writer, grid *astar.Grid) error {
	bw := bufio.NewWriter(w)
	for _, row := range grid.States() {
		for _, state := range row {
			bw.WriteRune(Glyph(state))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String renders grid as a map.
func String(grid *astar.Grid) string {
	var sb strings.Builder
	_ = Write(&sb, grid)
	return sb.String()
}
