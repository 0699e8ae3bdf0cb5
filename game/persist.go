package game

// PersistTableState stores table snapshots by table code. Load returns an
// error wrapping ErrSnapshotNotFound when nothing is stored under the code.
type PersistTableState interface {
	Load(tableCode string) (*TableSnapshot, error)
	Save(tableCode string, state *TableSnapshot) error
	Remove(tableCode string) error
}
