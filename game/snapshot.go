package game

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"voyager.com/craps/craps"
	"voyager.com/craps/util"
)

var snapshotJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// TableSnapshot is the complete persisted state of a table between rolls.
type TableSnapshot struct {
	Code         string       `json:"code"`
	Phase        string       `json:"phase"`
	Point        int          `json:"point,omitempty"`
	ShooterIndex int          `json:"shooterIndex"`
	RollCount    uint64       `json:"rollCount"`
	Players      []PlayerView `json:"players"`
}

func (t *Table) Snapshot() *TableSnapshot {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.snapshot()
}

func (t *Table) snapshot() *TableSnapshot {
	point, _ := t.phase.Point()
	s := &TableSnapshot{
		Code:         t.code,
		Phase:        t.phase.Kind().String(),
		Point:        point,
		ShooterIndex: t.shooterIndex,
		RollCount:    t.rollCount,
		Players:      make([]PlayerView, 0, len(t.players)),
	}
	for _, p := range t.players {
		s.Players = append(s.Players, p.view())
	}
	return s
}

// RestoreTable rebuilds a table from a snapshot. The snapshot is validated
// against the same invariants the engine maintains.
func RestoreTable(s *TableSnapshot, dice craps.Dice, sink EventSink, persist PersistTableState) (*Table, error) {
	if s == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}
	if s.Code == "" {
		return nil, fmt.Errorf("snapshot has no table code")
	}
	if len(s.Players) == 0 || len(s.Players) > MaxPlayers {
		return nil, fmt.Errorf("snapshot has %d players", len(s.Players))
	}
	if s.ShooterIndex < 0 || s.ShooterIndex >= len(s.Players) {
		return nil, fmt.Errorf("shooter index %d is out of range", s.ShooterIndex)
	}
	phase, err := phaseFromSnapshot(s.Phase, s.Point)
	if err != nil {
		return nil, errors.Wrap(err, "Invalid snapshot phase")
	}

	t := newTable(s.Code, dice, sink, persist)
	t.phase = phase
	t.shooterIndex = s.ShooterIndex
	t.rollCount = s.RollCount
	seen := make(map[string]bool)
	for _, v := range s.Players {
		if seen[v.Name] {
			return nil, fmt.Errorf("player [%s] appears more than once", v.Name)
		}
		seen[v.Name] = true
		p, err := accountFromView(v)
		if err != nil {
			return nil, errors.Wrap(err, "Invalid snapshot player")
		}
		t.players = append(t.players, p)
	}
	util.Metrics.SetSeatedPlayers(len(t.players))
	return t, nil
}

func EncodeSnapshot(s *TableSnapshot) ([]byte, error) {
	return snapshotJSON.Marshal(s)
}

func DecodeSnapshot(data []byte) (*TableSnapshot, error) {
	s := &TableSnapshot{}
	err := snapshotJSON.Unmarshal(data, s)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to decode table snapshot")
	}
	return s, nil
}
