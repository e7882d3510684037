package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// Fixed seats: the human plays X, the engine plays O.
const (
	Human = X
	AI    = O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (c Cell) valid() bool { return c <= O }

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

// lines lists every winning triple: rows, then columns, then diagonals.
var lines = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// Lines returns a copy of the winning triples in evaluation order.
func Lines() [8][3]int { return lines }

// Errors returned when reading boards.
var (
	ErrBoardSize   = errors.New("board must have 9 cells")
	ErrInvalidMark = errors.New("invalid mark")
)

// EmptyCells returns the indices of empty cells in ascending order.
func (b Board) EmptyCells() []int {
	out := make([]int, 0, len(b))
	for i, c := range b {
		if c == Empty {
			out = append(out, i)
		}
	}
	return out
}

// Full reports whether no cell is empty.
func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// Count returns how many cells hold c.
func (b Board) Count(c Cell) int {
	n := 0
	for _, v := range b {
		if v == c {
			n++
		}
	}
	return n
}

// Validate checks that every cell holds one of the three marks.
func (b Board) Validate() error {
	for i, c := range b {
		if !c.valid() {
			return fmt.Errorf("cell %d: %w %d", i, ErrInvalidMark, c)
		}
	}
	return nil
}

// String renders the board as three rows separated by '/', '.' for empty.
func (b Board) String() string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('/')
		}
		if c == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

// ParseCell reads one mark. Only "X", "O" and "" are accepted; case and
// surrounding whitespace are significant.
func ParseCell(s string) (Cell, error) {
	switch s {
	case "":
		return Empty, nil
	case "X":
		return X, nil
	case "O":
		return O, nil
	}
	return Empty, fmt.Errorf("%w %q", ErrInvalidMark, s)
}

// ParseBoard reads a 9-element row-major board.
func ParseBoard(cells []string) (Board, error) {
	var b Board
	if len(cells) != len(b) {
		return b, fmt.Errorf("%w, got %d", ErrBoardSize, len(cells))
	}
	for i, s := range cells {
		c, err := ParseCell(s)
		if err != nil {
			return Board{}, fmt.Errorf("cell %d: %w", i, err)
		}
		b[i] = c
	}
	return b, nil
}

// ParseBoardString reads the compact form produced by Board.String.
// '.', '_' and '-' mark empty cells; '/' and whitespace are ignored.
func ParseBoardString(s string) (Board, error) {
	var b Board
	n := 0
	for _, r := range s {
		var c Cell
		switch r {
		case '/', ' ', '\t', '\n':
			continue
		case '.', '_', '-':
			c = Empty
		case 'x', 'X':
			c = X
		case 'o', 'O':
			c = O
		default:
			return Board{}, fmt.Errorf("%w %q", ErrInvalidMark, r)
		}
		if n == len(b) {
			return Board{}, fmt.Errorf("%w, got more", ErrBoardSize)
		}
		b[n] = c
		n++
	}
	if n != len(b) {
		return Board{}, fmt.Errorf("%w, got %d", ErrBoardSize, n)
	}
	return b, nil
}
