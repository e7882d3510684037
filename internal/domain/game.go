package domain

import "errors"

// Game holds the current state of a match.
type Game struct {
	Board   Board
	Turn    Cell
	Outcome Outcome
	Moves   int
}

// Errors returned by Game.Play.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrGameOver    = errors.New("game over")
)

// NewGame returns an empty game with first to move.
func NewGame(first Cell) Game {
	if first != O {
		first = X
	}
	return Game{Turn: first}
}

// Over reports whether the game has finished.
func (g *Game) Over() bool { return g.Outcome.Terminal() }

// PlayAt plays the current turn at row r, column c (0..2).
func (g *Game) PlayAt(r, c int) error {
	if r < 0 || r > 2 || c < 0 || c > 2 {
		return ErrOutOfBounds
	}
	return g.Play(r*3 + c)
}

// Play places the current turn's mark at idx and flips the turn unless
// the move ended the game.
func (g *Game) Play(idx int) error {
	if g.Over() {
		return ErrGameOver
	}
	if idx < 0 || idx >= len(g.Board) {
		return ErrOutOfBounds
	}
	if g.Board[idx] != Empty {
		return ErrOccupied
	}

	g.Board[idx] = g.Turn
	g.Moves++

	g.Outcome = Evaluate(g.Board)
	if g.Over() {
		return nil
	}
	g.Turn = g.Turn.Opponent()
	return nil
}
