package storage

import (
	"errors"
	"fmt"
)

const (
	// FavoritesDir is the shard holding the favorites documents.
	FavoritesDir = "favorites"
	// PreferencesDir is the shard holding the user preference documents.
	PreferencesDir = "preferences"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for a general implementation
type Key struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (k Key) Path() string {
	return fmt.Sprintf("%s_%s", k.Name, k.Label)
}

// Persistence stores and loads documents by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
