package main

import (
	"testing"

	"github.com/imcnaugh/simple-chess/codec"
	"github.com/imcnaugh/simple-chess/game"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line    string
		wantCmd string
		wantArg string
	}{
		{"quit", "quit", ""},
		{"save my game", "save", "my game"},
		{"save  spaced  ", "save", "spaced"},
		{"e2e4", "e2e4", ""},
	}

	for _, tt := range tests {
		cmd, arg := splitCommand(tt.line)
		if cmd != tt.wantCmd || arg != tt.wantArg {
			t.Errorf("splitCommand(%q) = %q, %q, want %q, %q", tt.line, cmd, arg, tt.wantCmd, tt.wantArg)
		}
	}
}

func TestDescribeState(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   string
	}{
		{"in progress", codec.InitialRecord, "White to move, 20 legal moves"},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", "checkmate, Black wins"},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", "stalemate"},
		{"draw", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "draw by insufficient material"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := game.NewFromRecord(tt.record)
			if err != nil {
				t.Fatalf("NewFromRecord error: %v", err)
			}
			if got := describeState(g.State()); got != tt.want {
				t.Errorf("describeState() = %q, want %q", got, tt.want)
			}
		})
	}
}
