package favorites

import (
	"errors"
	"testing"

	"github.com/drakos74/coin-chat/internal/model"
	"github.com/drakos74/coin-chat/internal/storage"
	json "github.com/drakos74/coin-chat/internal/storage/file/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddAndRecent(t *testing.T) {
	store, err := NewStore(storage.VoidShard())
	require.NoError(t, err)

	first := NewStaticEntry("hello")
	second := NewPriceEntry(model.BTC, model.USD, false)

	added, err := store.Add("user-1", first)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.Add("user-1", second)
	require.NoError(t, err)
	assert.True(t, added)

	entries := store.Recent("user-1", 5)
	require.Len(t, entries, 2)
	// insertion order is preserved
	assert.True(t, entries[0].Equals(first))
	assert.True(t, entries[1].Equals(second))

	assert.Empty(t, store.Recent("user-2", 5))
}

func TestStore_AddDuplicate(t *testing.T) {
	store, err := NewStore(storage.VoidShard())
	require.NoError(t, err)

	added, err := store.Add("user-1", NewStaticEntry("hello"))
	require.NoError(t, err)
	assert.True(t, added)

	// a fresh id does not make the same content a new favorite
	added, err = store.Add("user-1", NewStaticEntry("hello"))
	require.NoError(t, err)
	assert.False(t, added)

	assert.Equal(t, 1, store.Count("user-1"))
}

func TestStore_RecentLimit(t *testing.T) {
	store, err := NewStore(storage.VoidShard())
	require.NoError(t, err)

	_, err = store.Add("user-1", NewStaticEntry("one"))
	require.NoError(t, err)
	_, err = store.Add("user-1", NewStaticEntry("two"))
	require.NoError(t, err)
	_, err = store.Add("user-1", NewStaticEntry("three"))
	require.NoError(t, err)

	entries := store.Recent("user-1", 2)
	require.Len(t, entries, 2)
	assert.Equal(t, "two", entries[0].Content)
	assert.Equal(t, "three", entries[1].Content)
}

func TestStore_Remove(t *testing.T) {
	store, err := NewStore(storage.VoidShard())
	require.NoError(t, err)

	_, err = store.Add("user-1", NewStaticEntry("one"))
	require.NoError(t, err)
	_, err = store.Add("user-1", NewStaticEntry("two"))
	require.NoError(t, err)
	_, err = store.Add("user-1", NewStaticEntry("three"))
	require.NoError(t, err)

	// positions count from 1
	removed, err := store.Remove("user-1", 2)
	require.NoError(t, err)
	assert.Equal(t, "two", removed.Content)

	entries := store.Recent("user-1", 5)
	require.Len(t, entries, 2)
	assert.Equal(t, "one", entries[0].Content)
	assert.Equal(t, "three", entries[1].Content)

	_, err = store.Remove("user-1", 0)
	assert.True(t, errors.Is(err, model.IndexErr))
	_, err = store.Remove("user-1", 3)
	assert.True(t, errors.Is(err, model.IndexErr))
}

func TestStore_Reload(t *testing.T) {
	shard := json.BlobShard(t.TempDir())

	store, err := NewStore(shard)
	require.NoError(t, err)
	_, err = store.Add("user-1", NewPriceEntry(model.USD, model.PLN, true))
	require.NoError(t, err)

	// a new store on the same shard sees the persisted favorites
	reloaded, err := NewStore(shard)
	require.NoError(t, err)
	entries := reloaded.Recent("user-1", 5)
	require.Len(t, entries, 1)
	assert.Equal(t, Price, entries[0].Type)
	assert.Equal(t, model.USD, entries[0].Symbol)
	assert.Equal(t, model.PLN, entries[0].Target)
	assert.True(t, entries[0].FiatConversion)
}
