// Package store persists saved games in an embedded BadgerDB database.
// Each saved game is a position record plus metadata, keyed by a UUID.
package store

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const gamePrefix = "game:"

// ErrNotFound is returned when no saved game exists for the given ID.
var ErrNotFound = errors.New("saved game not found")

// SavedGame is one persisted game.
type SavedGame struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Record  string    `json:"record"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Store wraps BadgerDB for saved-game persistence.
type Store struct {
	db *badger.DB
}

// Open opens a store in the given directory, creating it if needed.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save persists a game and returns its ID. A game with an empty ID is
// assigned a fresh UUID; a non-empty ID overwrites the existing entry.
func (s *Store) Save(g *SavedGame) (string, error) {
	now := time.Now()
	if g.ID == "" {
		g.ID = uuid.NewString()
		g.Created = now
	}
	g.Updated = now

	data, err := json.Marshal(g)
	if err != nil {
		return "", err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(g.ID), data)
	})
	if err != nil {
		return "", err
	}
	return g.ID, nil
}

// Load retrieves a saved game by ID.
func (s *Store) Load(id string) (*SavedGame, error) {
	var g SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &g)
		})
	})
	if err != nil {
		return nil, err
	}

	return &g, nil
}

// List returns all saved games, most recently updated first.
func (s *Store) List() ([]SavedGame, error) {
	var games []SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var g SavedGame
				if err := json.Unmarshal(val, &g); err != nil {
					return err
				}
				games = append(games, g)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].Updated.After(games[j].Updated)
	})
	return games, nil
}

// Delete removes a saved game by ID.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return txn.Delete(gameKey(id))
	})
}

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}
