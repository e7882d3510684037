package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/jaminalder/tictactoe-minimax/internal/domain"
)

func TestBoardPlain(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	b, _ := domain.ParseBoardString("XOX/XO./...")
	got := Board(out, b, -1)
	want := " X | O | X \n" +
		"---+---+---\n" +
		" X | O | 5 \n" +
		"---+---+---\n" +
		" 6 | 7 | 8 \n"
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestBoardColored(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor))
	b, _ := domain.ParseBoardString("XOX/XO./...")
	got := Board(out, b, 7)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI sequences, got %q", got)
	}
	plain := Board(termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii)), b, 7)
	if strings.Contains(plain, "\x1b[") {
		t.Fatalf("ascii profile must not color, got %q", plain)
	}
}
