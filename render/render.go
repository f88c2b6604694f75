// Package render maps cell states to colours and draws grids to images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	astar "github.com/pdrpinto/gridastar"
)

// Palette assigns a colour to every cell state.
type Palette map[astar.CellState]color.RGBA

// GridLine is the colour of the lines between cells.
var GridLine = color.RGBA{R: 192, G: 192, B: 192, A: 255}

// DefaultPalette returns the classic visualiser colours.
func DefaultPalette() Palette {
	return Palette{
		astar.Empty:   {R: 255, G: 255, B: 255, A: 255},
		astar.Start:   {R: 0, G: 0, B: 255, A: 255},
		astar.End:     {R: 64, G: 224, B: 208, A: 255},
		astar.Barrier: {R: 192, G: 192, B: 192, A: 255},
		astar.Open:    {R: 0, G: 255, B: 0, A: 255},
		astar.Closed:  {R: 255, G: 255, B: 0, A: 255},
		astar.Path:    {R: 255, G: 0, B: 255, A: 255},
	}
}

// Color returns the colour for state, falling back to black.
func (p Palette) Color(state astar.CellState) color.RGBA {
	if c, ok := p[state]; ok {
		return c
	}
	return color.RGBA{A: 255}
}

// Image draws grid with cellSize pixels per cell.
func Image(grid *astar.Grid, cellSize int, palette Palette) (image.Image, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("render: cell size must be positive, got %d", cellSize)
	}
	n := grid.Dimension()
	width := n * cellSize
	dc := gg.NewContext(width, width)

	for row, states := range grid.States() {
		for col, state := range states {
			dc.SetColor(palette.Color(state))
			dc.DrawRectangle(float64(col*cellSize), float64(row*cellSize), float64(cellSize), float64(cellSize))
			dc.Fill()
		}
	}

	dc.SetColor(GridLine)
	dc.SetLineWidth(1)
	for i := 0; i <= n; i++ {
		offset := float64(i * cellSize)
		dc.DrawLine(0, offset, float64(width), offset)
		dc.DrawLine(offset, 0, offset, float64(width))
	}
	dc.Stroke()

	return dc.Image(), nil
}

// PNG encodes Image(grid, cellSize, palette) to w.
func PNG(w io.Writer, grid *astar.Grid, cellSize int, palette Palette) error {
	img, err := Image(grid, cellSize, palette)
	if err != nil {
		return err
	}
	if err := gg.NewContextForImage(img).EncodePNG(w); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}
	return nil
}
