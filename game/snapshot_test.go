package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"voyager.com/craps/craps"
)

func TestSnapshotRoundTrip(t *testing.T) {
	table, _, _ := newTestTable(t, []string{"alice", "bob"}, 5, 9)
	require.NoError(t, table.PlaceFire("alice", 5))
	require.NoError(t, table.PlacePass("alice", 10))
	require.NoError(t, table.PlacePlaceBet("bob", 6, 12, true))
	require.NoError(t, table.PlaceLayBet("bob", 10, 20))
	table.Roll()
	require.NoError(t, table.PlaceCome("bob", 10))
	table.Roll()

	snapshot := table.Snapshot()
	require.Equal(t, "point", snapshot.Phase)
	require.Equal(t, 5, snapshot.Point)
	require.Equal(t, uint64(2), snapshot.RollCount)

	data, err := EncodeSnapshot(snapshot)
	require.NoError(t, err)
	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	if diff := cmp.Diff(snapshot, decoded); diff != "" {
		t.Fatalf("snapshot changed after encoding (-want +got):\n%s", diff)
	}

	restored, err := RestoreTable(decoded, craps.NewScriptedDice([2]int{2, 3}), nil, nil)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(snapshot, restored.Snapshot()))
	require.Equal(t, []int{5}, restored.FirePoints("alice"))

	// the restored table keeps playing: the point is made
	restored.Roll()
	require.True(t, restored.Phase().IsComeOut())
	require.Equal(t, int64(1005), balance(t, restored, "alice"))
}

func TestRestoreTableRejectsInvalidSnapshots(t *testing.T) {
	valid := func() *TableSnapshot {
		return &TableSnapshot{
			Code:    "t1",
			Phase:   "come-out",
			Players: []PlayerView{{Name: "alice", Balance: 100}, {Name: "bob", Balance: 100}},
		}
	}
	_, err := RestoreTable(valid(), nil, nil, nil)
	require.NoError(t, err)

	withComePoints := valid()
	withComePoints.Players[0].ComePoints = []int{5, -9}
	withComePoints.Players[0].PlaceActive = []int{6}
	_, err = RestoreTable(withComePoints, nil, nil, nil)
	require.NoError(t, err)

	broken := []func(s *TableSnapshot){
		func(s *TableSnapshot) { s.Code = "" },
		func(s *TableSnapshot) { s.Players = nil },
		func(s *TableSnapshot) { s.ShooterIndex = 2 },
		func(s *TableSnapshot) { s.Phase = "point" },
		func(s *TableSnapshot) { s.Point = 6 },
		func(s *TableSnapshot) { s.Players[1].Name = "alice" },
		func(s *TableSnapshot) { s.Players[0].Balance = -1 },
		func(s *TableSnapshot) { s.Players[0].Fire = 6 },
		func(s *TableSnapshot) { s.Players[0].Place = map[int]int64{7: 10} },
		func(s *TableSnapshot) { s.Players[0].UniquePointsMade = []int{11} },
		func(s *TableSnapshot) { s.Players[0].PlaceActive = []int{7} },
		func(s *TableSnapshot) { s.Players[0].ComePoints = []int{6, 7} },
		func(s *TableSnapshot) { s.Players[0].ComePoints = []int{-11} },
		func(s *TableSnapshot) { s.Players[0].Pass = 2e18 },
		func(s *TableSnapshot) { s.Players[0].Lay = map[int]int64{6: -5} },
	}
	for i, breakIt := range broken {
		s := valid()
		breakIt(s)
		_, err := RestoreTable(s, nil, nil, nil)
		require.Error(t, err, "case %d", i)
	}
	_, err = RestoreTable(nil, nil, nil, nil)
	require.Error(t, err)
}

func TestMemoryTableStateTracker(t *testing.T) {
	tracker, err := NewMemoryTableStateTracker(2)
	require.NoError(t, err)

	_, err = tracker.Load("missing")
	require.True(t, errors.Is(err, ErrSnapshotNotFound))

	dice := craps.NewScriptedDice([2]int{3, 3})
	table, err := NewTable(&TableConfig{Code: "saved", Players: []string{"alice"}}, dice, nil, tracker)
	require.NoError(t, err)

	// every accepted placement is checkpointed
	require.NoError(t, table.PlacePass("alice", 10))
	saved, err := tracker.Load("saved")
	require.NoError(t, err)
	require.Equal(t, int64(10), saved.Players[0].Pass)

	// rejected placements are not
	require.Error(t, table.PlacePass("alice", 10))

	table.Roll()
	saved, err = tracker.Load("saved")
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(table.Snapshot(), saved))

	require.NoError(t, tracker.Remove("saved"))
	_, err = tracker.Load("saved")
	require.True(t, errors.Is(err, ErrSnapshotNotFound))

	// least recently used snapshots are evicted
	for _, code := range []string{"a", "b", "c"} {
		require.NoError(t, tracker.Save(code, &TableSnapshot{Code: code, Phase: "come-out"}))
	}
	_, err = tracker.Load("a")
	require.Error(t, err)
	_, err = tracker.Load("c")
	require.NoError(t, err)
}

type failingTracker struct {
	saves int
}

func (f *failingTracker) Load(string) (*TableSnapshot, error) {
	return nil, ErrSnapshotNotFound
}

func (f *failingTracker) Save(string, *TableSnapshot) error {
	f.saves++
	return errors.New("store unavailable")
}

func (f *failingTracker) Remove(string) error {
	return nil
}

func TestCheckpointFailureDoesNotFailPlay(t *testing.T) {
	tracker := &failingTracker{}
	dice := craps.NewScriptedDice([2]int{5, 6})
	table, err := NewTable(&TableConfig{Code: "flaky", Players: []string{"alice"}}, dice, nil, tracker)
	require.NoError(t, err)
	require.NoError(t, table.PlacePass("alice", 10))
	table.Roll()
	require.Equal(t, 2, tracker.saves)
	require.Equal(t, int64(1010), balance(t, table, "alice"))
}
