// Command astarviz opens a window for drawing a board and watching A* search it.
//
// Left click places the start, then the end, then barriers. Right click erases.
// Space runs the search, escape cancels it and c clears the board.
package main

import (
	"flag"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/board"
	"github.com/pdrpinto/gridastar/config"
	"github.com/pdrpinto/gridastar/internal/monitoring"
	"github.com/pdrpinto/gridastar/internal/viz"
	"github.com/pdrpinto/gridastar/render"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

const statusHeight = 20

var pulseTarget = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type game struct {
	controller *viz.Controller
	palette    render.Palette
	cellPixels int
	width      int
	quitting   bool
}

func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.quitting = true
	}
	if g.quitting {
		g.controller.Cancel()
		return ebiten.Termination
	}

	if g.controller.Running() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.controller.Cancel()
		}
	} else {
		g.handleInput()
	}

	g.controller.Tick(float32(1 / float64(ebiten.TPS())))
	return nil
}

func (g *game) handleInput() {
	dimension := g.controller.Board().Dimension()
	x, y := ebiten.CursorPosition()
	if row, col, ok := viz.CellAt(x, y, g.cellPixels, dimension); ok {
		switch {
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			g.controller.Primary(row, col)
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
			g.controller.Secondary(row, col)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.controller.Board().Ready() {
		if err := g.controller.Start(); err != nil {
			log.WithError(err).Warn("could not start search")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.controller.Clear()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	grid := g.controller.Board().Grid()
	dimension := grid.Dimension()
	size := float32(g.cellPixels)
	pathColor := viz.Blend(g.palette.Color(astar.Path), pulseTarget, g.controller.Pulse()*0.6)

	for row := 0; row < dimension; row++ {
		for col := 0; col < dimension; col++ {
			state := grid.At(row, col).State
			fill := g.palette.Color(state)
			if state == astar.Path {
				fill = pathColor
			}
			vector.DrawFilledRect(screen, float32(col)*size, float32(row)*size, size, size, fill, false)
		}
	}

	extent := size * float32(dimension)
	for i := 0; i <= dimension; i++ {
		offset := float32(i) * size
		vector.StrokeLine(screen, 0, offset, extent, offset, 1, render.GridLine, false)
		vector.StrokeLine(screen, offset, 0, offset, extent, 1, render.GridLine, false)
	}

	text.Draw(screen, g.controller.Status(), basicfont.Face7x13, 4, int(extent)+14, color.Black)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.width + statusHeight
}

func main() {
	configPath := flag.String("config", "", "path to a JSON configuration file")
	dimension := flag.Int("dimension", 0, "override the configured board dimension")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if *dimension > 0 {
		cfg.Dimension = *dimension
		if err := cfg.Validate(); err != nil {
			log.Fatalln(err)
		}
	}
	monitoring.ConfigureLogging(cfg.Level(), os.Stderr)

	b, err := board.New(cfg.Dimension)
	if err != nil {
		log.Fatalln(err)
	}

	cellPixels := cfg.CellPixels()
	g := &game{
		controller: viz.NewController(b, cfg.StepsPerFrame, cfg.GetPulsePeriod(), log.StandardLogger()),
		palette:    render.DefaultPalette(),
		cellPixels: cellPixels,
		width:      cellPixels * cfg.Dimension,
	}

	ebiten.SetWindowSize(g.width, g.width+statusHeight)
	ebiten.SetWindowTitle("A* Path Finding Algorithm")
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalln(err)
	}
}
