package json

import (
	"path/filepath"

	"github.com/drakos74/coin-chat/internal/storage"
)

// BlobShard creates a file backed shard that stores every key as a json file
// under the shard directory.
func BlobShard(dir string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return &BlobStorage{dir: filepath.Join(dir, shard)}, nil
	}
}

// BlobStorage is a naive file storage keeping one json file per key.
type BlobStorage struct {
	dir string
}

func (b *BlobStorage) Store(k storage.Key, value interface{}) error {
	return Save(b.dir, fileName(k), value)
}

func (b *BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(b.dir, fileName(k), value)
}

func fileName(k storage.Key) string {
	return k.Path() + ".json"
}
