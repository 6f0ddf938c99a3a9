package favorites

import "sync"

// Index tracks the favorite candidates behind recently sent messages.
// It is volatile, a restart only loses the reaction shortcuts,
// not the stored favorites.
type Index struct {
	mutex   sync.Mutex
	entries map[int]Entry
}

// NewIndex creates an empty message index.
func NewIndex() *Index {
	return &Index{
		entries: make(map[int]Entry),
	}
}

// Track remembers the entry to store when the message gets favorited.
func (i *Index) Track(messageID int, entry Entry) {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	i.entries[messageID] = entry
}

// Get looks up the tracked entry for the given message.
func (i *Index) Get(messageID int) (Entry, bool) {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	entry, ok := i.entries[messageID]
	return entry, ok
}
