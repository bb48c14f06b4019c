package db

import (
	"database/sql"
	"embed"
	"sync"

	"github.com/slime-this/bangerd/models"
)

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	m       *sync.Mutex
	exports []models.ExportRecord
	prefs   map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		m:     new(sync.Mutex),
		prefs: map[string]string{},
	}
}

func (ms *MemoryStore) ApplyMigrations(_ embed.FS) error {
	return nil
}

func (ms *MemoryStore) InsertExport(record models.ExportRecord) error {
	ms.m.Lock()
	defer ms.m.Unlock()
	ms.exports = append(ms.exports, record)
	return nil
}

func (ms *MemoryStore) GetRecentExports(limit int) ([]models.ExportRecord, error) {
	ms.m.Lock()
	defer ms.m.Unlock()
	records := []models.ExportRecord{}
	for i := len(ms.exports) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, ms.exports[i])
	}
	return records, nil
}

func (ms *MemoryStore) GetPreference(id string) (string, error) {
	ms.m.Lock()
	defer ms.m.Unlock()
	value, ok := ms.prefs[id]
	if !ok {
		return "", sql.ErrNoRows
	}
	return value, nil
}

func (ms *MemoryStore) UpsertPreference(id, value string) error {
	ms.m.Lock()
	defer ms.m.Unlock()
	ms.prefs[id] = value
	return nil
}
