// simple-chess is a console chess game with full rules enforcement,
// undo/redo, position import/export, and saved games.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/imcnaugh/simple-chess/codec"
	"github.com/imcnaugh/simple-chess/store"
)

const programVersion = "0.1.0"

var (
	help         = flag.Bool("h", false, "show usage information")
	version      = flag.Bool("v", false, "print version and exit")
	startRecord  = flag.String("start", "", "position record to start from (default: initial position)")
	classifyFile = flag.String("classify", "", "classify position records from a file, one per line")
	workers      = flag.Int("workers", 4, "worker count for -classify")
	perftDepth   = flag.Int("perft", 0, "count move paths to the given depth from the start position and exit")
	saveDir      = flag.String("save-dir", "", "saved-game database directory (default: platform data dir)")
	listGames    = flag.Bool("list", false, "list saved games and exit")
	loadID       = flag.String("load", "", "resume a saved game by ID")
	deleteID     = flag.String("delete", "", "delete a saved game by ID and exit")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("simple-chess version %s\n", programVersion)
		os.Exit(0)
	}

	if *classifyFile != "" {
		classifyRecords(*classifyFile, *workers)
		return
	}

	if *perftDepth > 0 {
		runPerft(*perftDepth)
		return
	}

	if *listGames || *deleteID != "" {
		s := openStore()
		defer s.Close()
		if *deleteID != "" {
			deleteSavedGame(s, *deleteID)
			return
		}
		listSavedGames(s)
		return
	}

	record := codec.InitialRecord
	if *startRecord != "" {
		record = *startRecord
	}

	var saved *store.SavedGame
	if *loadID != "" {
		s := openStore()
		saved = loadSavedGame(s, *loadID)
		s.Close() //nolint:errcheck,gosec // G104: reopened on save
		record = saved.Record
	}

	runGame(record, saved)
}

// openStore opens the saved-game database, resolving the platform
// default directory unless -save-dir is given.
func openStore() *store.Store {
	dir := *saveDir
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving data directory: %v\n", err)
			os.Exit(1)
		}
	}

	s, err := store.Open(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saved-game store: %v\n", err)
		os.Exit(1)
	}
	return s
}

func listSavedGames(s *store.Store) {
	games, err := s.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing saved games: %v\n", err)
		os.Exit(1)
	}

	if len(games) == 0 {
		fmt.Println("No saved games.")
		return
	}
	for _, g := range games {
		fmt.Printf("%s  %-20s  %s  %s\n", g.ID, g.Name, g.Updated.Format("2006-01-02 15:04"), g.Record)
	}
}

func loadSavedGame(s *store.Store, id string) *store.SavedGame {
	g, err := s.Load(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game %s: %v\n", id, err)
		os.Exit(1)
	}
	return g
}

func deleteSavedGame(s *store.Store, id string) {
	if err := s.Delete(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting game %s: %v\n", id, err)
		os.Exit(1)
	}
	fmt.Printf("Deleted %s\n", id)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: simple-chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A console chess game with full rules enforcement.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nDuring play, enter moves in coordinate form (e2e4, e7e8q) or a command:\n")
	fmt.Fprintf(os.Stderr, "  moves        list the legal moves\n")
	fmt.Fprintf(os.Stderr, "  undo / redo  step through the game history\n")
	fmt.Fprintf(os.Stderr, "  fen          print the position record\n")
	fmt.Fprintf(os.Stderr, "  save <name>  save the game\n")
	fmt.Fprintf(os.Stderr, "  quit         exit\n")
}
