// Package search picks moves for domain.AI by exhaustive minimax with
// alpha-beta pruning.
//
// Boards passed by pointer are mutated in place while searching and are
// restored before every function returns.
package search

import (
	"math"

	"github.com/jaminalder/tictactoe-minimax/internal/domain"
)

// Scores are from the AI's point of view.
const (
	Win  = 1
	Draw = 0
	Loss = -1
)

// Bounds of a full search window.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// NoMove is reported when the board has no empty cell.
const NoMove = -1

// Stats counts the work done by a search.
type Stats struct {
	Nodes   int `json:"nodes"`
	Cutoffs int `json:"cutoffs"`
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.Cutoffs += o.Cutoffs
}

// terminalScore maps a finished game to its score.
func terminalScore(o domain.Outcome) (int, bool) {
	switch o {
	case domain.OWon:
		return Win, true
	case domain.XWon:
		return Loss, true
	case domain.Draw:
		return Draw, true
	}
	return 0, false
}

// Minimax scores b with aiTurn deciding who moves next. alpha and beta are
// the scores the AI and the human can already guarantee higher in the tree.
func Minimax(b *domain.Board, aiTurn bool, alpha, beta int) int {
	return minimax(b, aiTurn, alpha, beta, nil)
}

func minimax(b *domain.Board, aiTurn bool, alpha, beta int, st *Stats) int {
	if st != nil {
		st.Nodes++
	}
	if score, ok := terminalScore(domain.Evaluate(*b)); ok {
		return score
	}

	if aiTurn {
		best := NegInf
		for i := range b {
			if b[i] != domain.Empty {
				continue
			}
			b[i] = domain.AI
			score := minimax(b, false, alpha, beta, st)
			b[i] = domain.Empty
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				if st != nil {
					st.Cutoffs++
				}
				break
			}
		}
		return best
	}

	best := PosInf
	for i := range b {
		if b[i] != domain.Empty {
			continue
		}
		b[i] = domain.Human
		score := minimax(b, true, alpha, beta, st)
		b[i] = domain.Empty
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			if st != nil {
				st.Cutoffs++
			}
			break
		}
	}
	return best
}

// rootScore plays the AI at idx, scores the reply with a full window and
// undoes the move.
func rootScore(b *domain.Board, idx int, st *Stats) int {
	b[idx] = domain.AI
	score := minimax(b, false, NegInf, PosInf, st)
	b[idx] = domain.Empty
	return score
}

// BestMove returns the cell the AI should play. Among equally scored moves
// the lowest index wins. ok is false when the board is full.
func BestMove(b *domain.Board) (move int, ok bool) {
	best := NegInf
	move = NoMove
	for i := range b {
		if b[i] != domain.Empty {
			continue
		}
		if score := rootScore(b, i, nil); score > best {
			best = score
			move = i
		}
	}
	return move, move != NoMove
}

// HumanBestMove returns the human's strongest reply on b: the lowest
// indexed cell minimizing the AI's score.
func HumanBestMove(b *domain.Board) (move int, ok bool) {
	best := PosInf
	move = NoMove
	for i := range b {
		if b[i] != domain.Empty {
			continue
		}
		b[i] = domain.Human
		score := minimax(b, true, NegInf, PosInf, nil)
		b[i] = domain.Empty
		if score < best {
			best = score
			move = i
		}
	}
	return move, move != NoMove
}
