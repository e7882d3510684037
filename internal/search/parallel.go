package search

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jaminalder/tictactoe-minimax/internal/domain"
)

// AnalyzeParallel is Analyze with one goroutine per first move. Each branch
// searches its own copy of b; results are merged in cell order so ties
// resolve exactly as in the sequential search.
func AnalyzeParallel(ctx context.Context, b domain.Board) (Analysis, error) {
	empty := b.EmptyCells()
	scores := make([]MoveScore, len(empty))
	stats := make([]Stats, len(empty))

	g, ctx := errgroup.WithContext(ctx)
	for slot, cell := range empty {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			local := b
			scores[slot] = MoveScore{Cell: cell, Score: rootScore(&local, cell, &stats[slot])}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Analysis{Move: NoMove}, err
	}

	a := Analysis{Move: pick(scores)}
	if len(scores) > 0 {
		a.Scores = scores
	}
	for _, st := range stats {
		a.Stats.add(st)
	}
	zerolog.Ctx(ctx).Debug().
		Int("branches", len(empty)).
		Int("nodes", a.Stats.Nodes).
		Int("cutoffs", a.Stats.Cutoffs).
		Int("move", a.Move).
		Msg("parallel-root-search")
	return a, nil
}

// BestMoveParallel returns the same move as BestMove, searching the first
// moves concurrently.
func BestMoveParallel(ctx context.Context, b domain.Board) (int, bool, error) {
	a, err := AnalyzeParallel(ctx, b)
	if err != nil {
		return NoMove, false, err
	}
	return a.Move, a.HasMove(), nil
}
