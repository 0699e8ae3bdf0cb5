package game

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"voyager.com/craps/craps"
	"voyager.com/craps/logging"
)

// newTestTable seats players with 1000 each and queues one throw per total.
func newTestTable(t *testing.T, players []string, totals ...int) (*Table, *craps.ScriptedDice, *EventRecorder) {
	dice := craps.NewScriptedDice()
	pushTotals(t, dice, totals...)
	recorder := &EventRecorder{}
	table, err := NewTable(&TableConfig{Code: "test-table", Players: players}, dice, recorder, nil)
	require.NoError(t, err)
	return table, dice, recorder
}

func pushTotals(t *testing.T, dice *craps.ScriptedDice, totals ...int) {
	for _, total := range totals {
		d1, d2, err := craps.DiceForTotal(total)
		require.NoError(t, err)
		dice.Push(d1, d2)
	}
}

func balance(t *testing.T, table *Table, name string) int64 {
	b, ok := table.BalanceOf(name)
	require.True(t, ok, "player %s is not seated", name)
	return b
}

func TestNewTable(t *testing.T) {
	table, _, _ := newTestTable(t, []string{"alice", "bob"})
	require.Equal(t, "test-table", table.Code())
	require.True(t, table.Phase().IsComeOut())
	_, ok := table.Point()
	require.False(t, ok)
	require.Equal(t, "alice", table.Shooter())
	require.Equal(t, int64(1000), balance(t, table, "alice"))
	require.Equal(t, int64(1000), balance(t, table, "bob"))

	views := table.Players()
	require.Len(t, views, 2)
	require.Equal(t, "alice", views[0].Name)
	require.Equal(t, "bob", views[1].Name)

	_, ok = table.BalanceOf("carol")
	require.False(t, ok)
	_, ok = table.Player("carol")
	require.False(t, ok)
}

func TestNewTableRejectsBadConfig(t *testing.T) {
	_, err := NewTable(nil, nil, nil, nil)
	require.Error(t, err)

	_, err = NewTable(&TableConfig{Code: "t"}, nil, nil, nil)
	require.Error(t, err)

	_, err = NewTable(&TableConfig{Code: "t", Players: []string{"alice", "alice"}}, nil, nil, nil)
	require.Error(t, err)

	_, err = NewTable(&TableConfig{Code: "t", Players: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}}, nil, nil, nil)
	require.Error(t, err)
}

func TestPhase(t *testing.T) {
	p := comeOutPhase()
	require.Equal(t, PhaseComeOut, p.Kind())
	require.Equal(t, "come-out", p.String())

	p = pointPhase(6)
	require.Equal(t, PhasePoint, p.Kind())
	point, ok := p.Point()
	require.True(t, ok)
	require.Equal(t, 6, point)
	require.Equal(t, "point 6", p.String())

	require.Panics(t, func() { pointPhase(7) })

	_, err := phaseFromSnapshot("point", 7)
	require.Error(t, err)
	_, err = phaseFromSnapshot("come-out", 4)
	require.Error(t, err)
	_, err = phaseFromSnapshot("bonus", 0)
	require.Error(t, err)
	p, err = phaseFromSnapshot("point", 10)
	require.NoError(t, err)
	require.Equal(t, pointPhase(10), p)
}

func TestEventSinks(t *testing.T) {
	first := &EventRecorder{}
	var second []string
	sink := MultiEventSink{first, EventSinkFunc(func(m string) { second = append(second, m) })}
	sink.Record("one")
	sink.Record("two")
	require.Equal(t, []string{"one", "two"}, first.Messages())
	require.Equal(t, []string{"one", "two"}, second)

	first.Reset()
	require.Empty(t, first.Messages())
}

func TestLogEventSink(t *testing.T) {
	t.Setenv("COLORIZE_LOG", "false")
	var buf bytes.Buffer
	sink := NewLogEventSink(logging.GetTableLogger("game::events", "logged", &buf))
	table, err := NewTable(&TableConfig{Code: "logged", Players: []string{"alice"}}, craps.NewScriptedDice([2]int{2, 2}), sink, nil)
	require.NoError(t, err)
	table.Roll()
	require.Contains(t, buf.String(), "Point established: 4")
	require.Contains(t, buf.String(), "tableCode=logged")
}
