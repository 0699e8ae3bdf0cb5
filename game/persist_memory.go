package game

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// MemoryTableStateTracker keeps encoded snapshots in a bounded LRU cache.
type MemoryTableStateTracker struct {
	tables *lru.Cache
}

func NewMemoryTableStateTracker(size int) (*MemoryTableStateTracker, error) {
	tables, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize table snapshot cache")
	}
	return &MemoryTableStateTracker{
		tables: tables,
	}, nil
}

func (m *MemoryTableStateTracker) Load(tableCode string) (*TableSnapshot, error) {
	v, ok := m.tables.Get(tableCode)
	if !ok {
		return nil, errors.Wrapf(ErrSnapshotNotFound, "Table state for key: %s", tableCode)
	}
	return DecodeSnapshot(v.([]byte))
}

func (m *MemoryTableStateTracker) Save(tableCode string, state *TableSnapshot) error {
	data, err := EncodeSnapshot(state)
	if err != nil {
		return err
	}
	m.tables.Add(tableCode, data)
	return nil
}

func (m *MemoryTableStateTracker) Remove(tableCode string) error {
	m.tables.Remove(tableCode)
	return nil
}
