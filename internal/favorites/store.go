package favorites

import (
	"fmt"
	"sync"

	"github.com/drakos74/coin-chat/internal/model"
	"github.com/drakos74/coin-chat/internal/storage"
	"github.com/rs/zerolog/log"
)

var storeKey = storage.Key{
	Name:  "favorites",
	Label: "entries",
}

// Store keeps the per user favorites, persisted on every mutation.
type Store struct {
	mutex   sync.Mutex
	state   storage.Persistence
	entries map[string][]Entry
}

// NewStore creates a favorites store on top of the given storage shard.
// A missing or unreadable state starts the store empty.
func NewStore(shard storage.Shard) (*Store, error) {
	state, err := shard(storage.FavoritesDir)
	if err != nil {
		return nil, fmt.Errorf("could not init favorites storage: %w", err)
	}
	store := &Store{
		state:   state,
		entries: make(map[string][]Entry),
	}
	if err := state.Load(storeKey, &store.entries); err != nil {
		log.Warn().Err(err).Msg("could not load favorites")
		store.entries = make(map[string][]Entry)
	}
	return store, nil
}

// Add appends the entry to the user favorites,
// unless an entry with the same content is already stored.
func (s *Store) Add(user string, entry Entry) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, e := range s.entries[user] {
		if e.Equals(entry) {
			return false, nil
		}
	}
	s.entries[user] = append(s.entries[user], entry)
	return true, s.save()
}

// Recent returns up to limit of the most recently added favorites,
// preserving insertion order.
func (s *Store) Recent(user string, limit int) []Entry {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	entries := s.entries[user]
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	result := make([]Entry, len(entries))
	copy(result, entries)
	return result
}

// Count returns the number of favorites stored for the user.
func (s *Store) Count(user string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.entries[user])
}

// Remove deletes the favorite at the given position, counting from 1.
func (s *Store) Remove(user string, index int) (Entry, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	entries := s.entries[user]
	if index < 1 || index > len(entries) {
		return Entry{}, fmt.Errorf("no favorite at position %d: %w", index, model.IndexErr)
	}
	entry := entries[index-1]
	s.entries[user] = append(entries[:index-1], entries[index:]...)
	return entry, s.save()
}

func (s *Store) save() error {
	if err := s.state.Store(storeKey, s.entries); err != nil {
		return fmt.Errorf("could not persist favorites: %w", err)
	}
	return nil
}
