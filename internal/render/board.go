// Package render draws boards for terminals.
package render

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jaminalder/tictactoe-minimax/internal/domain"
)

const (
	colorX    = "#E88388"
	colorO    = "#66C2CD"
	colorHint = "#DBAB79"
)

// Board renders b as a 3x3 grid. Empty cells show their index; the cell at
// highlight (if any) is emphasized.
func Board(out *termenv.Output, b domain.Board, highlight int) string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			sb.WriteString("---+---+---\n")
		}
		for c := 0; c < 3; c++ {
			if c > 0 {
				sb.WriteString("|")
			}
			i := r*3 + c
			sb.WriteString(" " + cell(out, b[i], i, i == highlight) + " ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cell(out *termenv.Output, c domain.Cell, i int, hl bool) string {
	var s termenv.Style
	switch c {
	case domain.X:
		s = out.String("X").Foreground(out.Color(colorX)).Bold()
	case domain.O:
		s = out.String("O").Foreground(out.Color(colorO)).Bold()
	default:
		s = out.String(strconv.Itoa(i)).Faint()
	}
	if hl {
		s = s.Foreground(out.Color(colorHint)).Underline()
	}
	return s.String()
}
