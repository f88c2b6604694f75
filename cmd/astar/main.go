// Command astar searches a text map headlessly and prints the result.
//
//	astar -map maze.txt [-png out.png] [-verify] [-config astar.json]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/board"
	"github.com/pdrpinto/gridastar/config"
	"github.com/pdrpinto/gridastar/internal"
	"github.com/pdrpinto/gridastar/internal/monitoring"
	"github.com/pdrpinto/gridastar/layout"
	"github.com/pdrpinto/gridastar/render"
	log "github.com/sirupsen/logrus"
)

const (
	exitOK        = 0
	exitError     = 1
	exitNoPath    = 2
	exitCancelled = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("astar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a JSON configuration file")
	mapPath := fs.String("map", "", "text map to search (- for stdin)")
	pngPath := fs.String("png", "", "write the searched grid as a PNG image")
	verify := fs.Bool("verify", false, "cross-check the move count with a breadth-first search")
	logLevel := fs.String("log-level", "", "override the configured log level")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "astar: %v\n", err)
		return exitError
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "astar: %v\n", err)
			return exitError
		}
	}
	monitoring.ConfigureLogging(cfg.Level(), stderr)

	if *mapPath == "" {
		fmt.Fprintln(stderr, "astar: -map is required")
		fs.Usage()
		return exitError
	}
	b, err := readMap(*mapPath)
	if err != nil {
		log.WithError(err).Error("cannot load map")
		return exitError
	}

	steps := 0
	started := time.Now()
	result, err := b.Search(ctx, func() { steps++ }, astar.WithLogger(log.StandardLogger()))
	if err != nil {
		log.WithError(err).Error("cannot search")
		return exitError
	}
	monitoring.ObserveSearch(result, time.Since(started))
	log.WithFields(log.Fields{
		"outcome":     result.Outcome,
		"expanded":    result.Expanded,
		"checkpoints": steps,
		"elapsed":     time.Since(started),
	}).Info("search finished")

	if err := layout.Write(stdout, b.Grid()); err != nil {
		log.WithError(err).Error("cannot print grid")
		return exitError
	}
	switch result.Outcome {
	case astar.Succeeded:
		fmt.Fprintf(stdout, "path: %d moves, %d cells expanded\n", result.Moves(), result.Expanded)
	default:
		fmt.Fprintf(stdout, "%s after %d cells expanded\n", result.Outcome, result.Expanded)
	}

	if *pngPath != "" {
		if err := writePNG(*pngPath, b.Grid(), cfg.CellSize); err != nil {
			log.WithError(err).Error("cannot write image")
			return exitError
		}
	}

	if *verify && result.Outcome != astar.Cancelled {
		if err := crossCheck(b, result); err != nil {
			log.WithError(err).Error("verification failed")
			return exitError
		}
		log.Info("breadth-first search agrees")
	}

	switch result.Outcome {
	case astar.Failed:
		return exitNoPath
	case astar.Cancelled:
		return exitCancelled
	}
	return exitOK
}

func readMap(path string) (*board.Board, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	b, err := layout.Read(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !b.Ready() {
		return nil, fmt.Errorf("%s: %w", path, board.ErrNotReady)
	}
	return b, nil
}

func writePNG(path string, grid *astar.Grid, cellSize int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.PNG(f, grid, cellSize, render.DefaultPalette()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var errMismatch = errors.New("move count mismatch")

func crossCheck(b *board.Board, result astar.Result) error {
	n := b.Dimension()
	blocked := make([][]bool, n)
	for row, states := range b.Grid().States() {
		blocked[row] = make([]bool, n)
		for col, state := range states {
			blocked[row][col] = state == astar.Barrier
		}
	}
	start, _ := b.Start()
	end, _ := b.End()
	moves, reachable := internal.ShortestMoves(blocked, [2]int{start.Row, start.Col}, [2]int{end.Row, end.Col})

	switch {
	case reachable != (result.Outcome == astar.Succeeded):
		return fmt.Errorf("%w: breadth-first reachable=%t, search %s", errMismatch, reachable, result.Outcome)
	case reachable && moves != result.Moves():
		return fmt.Errorf("%w: breadth-first %d, search %d", errMismatch, moves, result.Moves())
	}
	return nil
}
