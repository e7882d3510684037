package main

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TTT_LOG_LEVEL", "error")
	var stdout, stderr bytes.Buffer
	err := run(append([]string{"-plain"}, args...), &stdout, &stderr)
	return stdout.String(), err
}

func TestDemoBoard(t *testing.T) {
	out, err := runCLI(t)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasSuffix(out, "AI Move: 7\n") {
		t.Fatalf("expected sample move 7, got %q", out)
	}
	if !strings.Contains(out, " X | O | 5 ") {
		t.Fatalf("expected rendered board, got %q", out)
	}
}

func TestAnalyzeFlag(t *testing.T) {
	out, err := runCLI(t, "-analyze", "-parallel")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Scores: 5:-1 6:+0 7:+1 8:-1") {
		t.Fatalf("unexpected scores in %q", out)
	}
}

func TestFullBoardHasNoMove(t *testing.T) {
	out, err := runCLI(t, "-board", "XOX/XOO/OXX")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Position: draw") || !strings.HasSuffix(out, "AI Move: none\n") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSelfPlayDraws(t *testing.T) {
	for _, first := range []string{"x", "o", "X", " O "} {
		out, err := runCLI(t, "-selfplay", "-first", first)
		if err != nil {
			t.Fatalf("first=%s: %v", first, err)
		}
		if !strings.HasSuffix(out, "Result: draw\n") {
			t.Fatalf("first=%s: expected draw, got %q", first, out)
		}
		if strings.Count(out, " plays ") != 9 {
			t.Fatalf("first=%s: expected 9 moves, got %q", first, out)
		}
	}
}

func TestBadInput(t *testing.T) {
	if _, err := runCLI(t, "-board", "XOX"); err == nil {
		t.Fatalf("expected error for short board")
	}
	for _, first := range []string{"z", "", " "} {
		if _, err := runCLI(t, "-selfplay", "-first", first); err == nil {
			t.Fatalf("expected error for opener %q", first)
		}
	}
	if _, err := runCLI(t, "-help"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}
