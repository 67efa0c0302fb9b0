package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/imcnaugh/simple-chess/analysis"
	"github.com/imcnaugh/simple-chess/game"
)

// classifyRecords reads position records from a file, one per line, and
// prints the game state of each. Blank lines and lines starting with '#'
// are skipped.
func classifyRecords(filename string, workers int) {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
		os.Exit(1)
	}
	defer file.Close() //nolint:errcheck,gosec // G104: cleanup on exit

	var records []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		records = append(records, line)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
		os.Exit(1)
	}

	results := analysis.ClassifyRecords(records, workers)
	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("%s: error: %v\n", result.Record, result.Err)
			continue
		}
		fmt.Printf("%s: %s\n", result.Record, describeState(result.State))
	}
}

func describeState(state game.State) string {
	switch state.Status {
	case game.Checkmate:
		return fmt.Sprintf("checkmate, %s wins", state.Winner)
	case game.Stalemate:
		return "stalemate"
	case game.Draw:
		return fmt.Sprintf("draw by %s", state.Reason)
	case game.Check:
		return fmt.Sprintf("%s to move, in check, %d legal moves", state.ToMove, len(state.LegalMoves))
	default:
		return fmt.Sprintf("%s to move, %d legal moves", state.ToMove, len(state.LegalMoves))
	}
}
