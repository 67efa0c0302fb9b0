package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/imcnaugh/simple-chess/codec"
	"github.com/imcnaugh/simple-chess/engine"
	"github.com/imcnaugh/simple-chess/game"
	"github.com/imcnaugh/simple-chess/store"
)

// runGame runs the interactive play loop. A non-nil saved game is
// updated in place when the player saves.
func runGame(record string, saved *store.SavedGame) {
	g, err := game.NewFromRecord(record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading position record: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	printPosition(g)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg := splitCommand(line)
		switch cmd {
		case "quit", "exit":
			return
		case "fen":
			fmt.Println(g.Record())
		case "moves":
			printLegalMoves(g)
		case "undo":
			if _, err := g.Undo(); err != nil {
				fmt.Println(err)
				continue
			}
			printPosition(g)
		case "redo":
			if _, err := g.Redo(); err != nil {
				fmt.Println(err)
				continue
			}
			printPosition(g)
		case "save":
			saveGame(g, saved, arg)
		default:
			playMove(g, line)
		}
	}
}

// playMove matches the input against the legal move set and applies it.
func playMove(g *game.Game, text string) {
	for _, move := range g.State().LegalMoves {
		if move.String() != text {
			continue
		}
		if _, err := g.MakeMove(move); err != nil {
			fmt.Println(err)
			return
		}
		printPosition(g)
		return
	}

	fmt.Printf("illegal move: %s (try \"moves\")\n", text)
}

func printPosition(g *game.Game) {
	state := g.State()
	fmt.Println()
	fmt.Print(g.Board().String())
	fmt.Println()

	switch state.Status {
	case game.Checkmate:
		fmt.Printf("Checkmate. %s wins.\n", state.Winner)
	case game.Stalemate:
		fmt.Println("Stalemate.")
	case game.Draw:
		fmt.Printf("Draw by %s.\n", state.Reason)
	case game.Check:
		fmt.Printf("%s to move (in check)\n", state.ToMove)
	default:
		fmt.Printf("%s to move\n", state.ToMove)
	}
}

func printLegalMoves(g *game.Game) {
	moves := g.State().LegalMoves
	if len(moves) == 0 {
		fmt.Println("No legal moves.")
		return
	}
	parts := make([]string, len(moves))
	for i, move := range moves {
		parts[i] = move.String()
	}
	fmt.Println(strings.Join(parts, " "))
}

// saveGame persists the current position. The store is opened per save
// so the database is not held open across the whole session.
func saveGame(g *game.Game, saved *store.SavedGame, name string) {
	s := openStore()
	defer s.Close()

	entry := saved
	if entry == nil {
		entry = &store.SavedGame{}
	}
	if name != "" {
		entry.Name = name
	}
	if entry.Name == "" {
		entry.Name = "untitled"
	}
	entry.Record = g.Record()

	id, err := s.Save(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving game: %v\n", err)
		return
	}
	fmt.Printf("Saved as %s\n", id)
}

func splitCommand(line string) (cmd, arg string) {
	cmd, arg, _ = strings.Cut(line, " ")
	return cmd, strings.TrimSpace(arg)
}

// runPerft counts move paths from the initial position using all CPUs.
func runPerft(depth int) {
	board := codec.NewInitialBoard()
	count, err := engine.ParallelPerft(context.Background(), board, depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting positions: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("perft(%d) = %d\n", depth, count)
}
