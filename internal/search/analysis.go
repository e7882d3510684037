package search

import "github.com/jaminalder/tictactoe-minimax/internal/domain"

// MoveScore is the exact minimax score of one AI move.
type MoveScore struct {
	Cell  int `json:"cell"`
	Score int `json:"score"`
}

// Analysis is the full root evaluation of a board.
type Analysis struct {
	Scores []MoveScore `json:"scores"`
	Move   int         `json:"move"`
	Stats  Stats       `json:"stats"`
}

// HasMove reports whether a move was selected.
func (a Analysis) HasMove() bool { return a.Move != NoMove }

// Score returns the score of the selected move.
func (a Analysis) Score() (int, bool) {
	for _, ms := range a.Scores {
		if ms.Cell == a.Move {
			return ms.Score, true
		}
	}
	return 0, false
}

// pick applies the first-strictly-better rule over scores in cell order.
func pick(scores []MoveScore) int {
	best := NegInf
	move := NoMove
	for _, ms := range scores {
		if ms.Score > best {
			best = ms.Score
			move = ms.Cell
		}
	}
	return move
}

// Analyze scores every empty cell for the AI and selects the move BestMove
// would.
func Analyze(b *domain.Board) Analysis {
	var a Analysis
	for i := range b {
		if b[i] != domain.Empty {
			continue
		}
		a.Scores = append(a.Scores, MoveScore{Cell: i, Score: rootScore(b, i, &a.Stats)})
	}
	a.Move = pick(a.Scores)
	return a
}
