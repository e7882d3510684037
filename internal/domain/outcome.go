package domain

import "fmt"

// Outcome classifies a board.
type Outcome uint8

const (
	Ongoing Outcome = iota
	XWon
	OWon
	Draw
)

func (o Outcome) String() string {
	switch o {
	case XWon:
		return "x_won"
	case OWon:
		return "o_won"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Terminal reports whether the game is over.
func (o Outcome) Terminal() bool { return o != Ongoing }

// Winner returns the winning mark, or Empty for a draw or ongoing game.
func (o Outcome) Winner() Cell {
	switch o {
	case XWon:
		return X
	case OWon:
		return O
	default:
		return Empty
	}
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func (o *Outcome) UnmarshalText(b []byte) error {
	switch string(b) {
	case "ongoing":
		*o = Ongoing
	case "x_won":
		*o = XWon
	case "o_won":
		*o = OWon
	case "draw":
		*o = Draw
	default:
		return fmt.Errorf("unknown outcome %q", b)
	}
	return nil
}

func wonBy(c Cell) (Outcome, bool) {
	switch c {
	case X:
		return XWon, true
	case O:
		return OWon, true
	default:
		return Ongoing, false
	}
}

// Evaluate classifies b. The first line fully marked by X or O, in Lines
// order, decides the winner; a full board without one is a draw.
func Evaluate(b Board) Outcome {
	for _, ln := range lines {
		c := b[ln[0]]
		if b[ln[1]] != c || b[ln[2]] != c {
			continue
		}
		if o, ok := wonBy(c); ok {
			return o
		}
	}
	if b.Full() {
		return Draw
	}
	return Ongoing
}
