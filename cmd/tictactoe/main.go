package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jaminalder/tictactoe-minimax/internal/config"
	"github.com/jaminalder/tictactoe-minimax/internal/domain"
	"github.com/jaminalder/tictactoe-minimax/internal/logging"
	"github.com/jaminalder/tictactoe-minimax/internal/render"
	"github.com/jaminalder/tictactoe-minimax/internal/search"
)

const sampleBoard = "XOX/XO./..."

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "tictactoe:", err)
		}
		os.Exit(2)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	boardArg := fs.String("board", sampleBoard, "board in row-major compact form, '.' for empty, '/' between rows")
	analyze := fs.Bool("analyze", false, "print the score of every candidate move")
	selfplay := fs.Bool("selfplay", false, "play the AI (O) against a perfect X from an empty board")
	first := fs.String("first", "x", "who opens a self-play game: x or o")
	parallel := fs.Bool("parallel", false, "search first moves concurrently")
	plain := fs.Bool("plain", false, "disable colors")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	log := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	ctx := log.WithContext(context.Background())

	opts := []termenv.OutputOption{}
	if *plain {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(stdout, opts...)

	if *selfplay {
		var opener domain.Cell
		switch strings.ToUpper(strings.TrimSpace(*first)) {
		case "X":
			opener = domain.X
		case "O":
			opener = domain.O
		default:
			return fmt.Errorf("-first must be x or o, got %q", *first)
		}
		return playSelf(out, opener)
	}

	b, err := domain.ParseBoardString(*boardArg)
	if err != nil {
		return err
	}

	var a search.Analysis
	if *parallel || cfg.ParallelSearch {
		if a, err = search.AnalyzeParallel(ctx, b); err != nil {
			return err
		}
	} else {
		a = search.Analyze(&b)
	}
	log.Debug().Str("board", b.String()).Int("nodes", a.Stats.Nodes).Int("cutoffs", a.Stats.Cutoffs).Msg("searched")

	fmt.Fprint(out, render.Board(out, b, a.Move))
	if o := domain.Evaluate(b); o.Terminal() {
		fmt.Fprintf(out, "Position: %s\n", o)
	}
	if *analyze {
		parts := make([]string, 0, len(a.Scores))
		for _, ms := range a.Scores {
			parts = append(parts, fmt.Sprintf("%d:%+d", ms.Cell, ms.Score))
		}
		fmt.Fprintf(out, "Scores: %s\n", strings.Join(parts, " "))
		fmt.Fprintf(out, "Nodes: %d Cutoffs: %d\n", a.Stats.Nodes, a.Stats.Cutoffs)
	}
	if !a.HasMove() {
		fmt.Fprintln(out, "AI Move: none")
		return nil
	}
	fmt.Fprintf(out, "AI Move: %d\n", a.Move)
	return nil
}

func playSelf(out *termenv.Output, opener domain.Cell) error {
	g := domain.NewGame(opener)
	for !g.Over() {
		var move int
		if g.Turn == domain.AI {
			move, _ = search.BestMove(&g.Board)
		} else {
			move, _ = search.HumanBestMove(&g.Board)
		}
		mark := g.Turn
		if err := g.Play(move); err != nil {
			return err
		}
		fmt.Fprintf(out, "Move %d: %s plays %d\n", g.Moves, mark, move)
		fmt.Fprint(out, render.Board(out, g.Board, move))
	}
	fmt.Fprintf(out, "Result: %s\n", g.Outcome)
	return nil
}
