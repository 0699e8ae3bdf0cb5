package nats

import (
	"testing"

	"github.com/stretchr/testify/require"
	"voyager.com/craps/craps"
	"voyager.com/craps/game"
)

func TestSubjects(t *testing.T) {
	require.Equal(t, "craps.t1.events", GetTableEventSubject("t1"))
	require.Equal(t, "craps.t1.bet", GetBetSubject("t1"))
	require.Equal(t, "craps.t1.roll", GetRollSubject("t1"))
}

func TestTableEventEncoding(t *testing.T) {
	n := NewNatsTable(nil, "t1")
	first := n.nextEvent("Dice rolled: 3 + 4 = 7")
	second := n.nextEvent("7-out. Next shooter: bob")
	require.Equal(t, uint64(1), first.Seq)
	require.Equal(t, uint64(2), second.Seq)
	require.NotEqual(t, first.ID, second.ID)

	data, err := json.Marshal(first)
	require.NoError(t, err)
	var decoded TableEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "t1", decoded.Table)
	require.Equal(t, "Dice rolled: 3 + 4 = 7", decoded.Message)
	require.True(t, first.Time.Equal(decoded.Time))
}

func TestBetReply(t *testing.T) {
	table, err := game.NewTable(&game.TableConfig{Code: "t1", Players: []string{"alice"}}, craps.NewScriptedDice(), nil, nil)
	require.NoError(t, err)

	var req game.BetRequest
	require.NoError(t, json.Unmarshal([]byte(`{"player":"alice","type":"pass","amount":25}`), &req))
	require.Equal(t, craps.BetPass, req.Type)

	reply := betReply(table, req, table.PlaceBet(req))
	require.True(t, reply.OK)
	require.Equal(t, int64(975), reply.Balance)

	reply = betReply(table, req, table.PlaceBet(req))
	require.False(t, reply.OK)
	require.Equal(t, game.ReasonAlreadyPlaced, reply.Reason)
	require.Equal(t, int64(975), reply.Balance)

	req.Player = "nobody"
	reply = betReply(table, req, table.PlaceBet(req))
	require.False(t, reply.OK)
	require.Empty(t, reply.Reason)
	require.Contains(t, reply.Error, "nobody")
}

func TestHandleBetChecksInput(t *testing.T) {
	table, err := game.NewTable(&game.TableConfig{Code: "t1", Players: []string{"alice"}}, craps.NewScriptedDice(), nil, nil)
	require.NoError(t, err)
	before := table.Snapshot()

	for _, body := range []string{
		`{"player":"alice","type":"pass","amount":0}`,
		`{"player":"alice","type":"pass","amount":-25}`,
		`{"player":"alice","type":"lay","number":6,"amount":2000000000000000000}`,
		`{"player":"alice","type":"pass"`,
	} {
		reply := handleBet(table, []byte(body))
		require.False(t, reply.OK, body)
		require.Contains(t, reply.Error, "invalid bet request", body)
		require.Empty(t, reply.Reason, body)
	}
	require.Equal(t, before, table.Snapshot())

	reply := handleBet(table, []byte(`{"player":"alice","type":"pass","amount":25}`))
	require.True(t, reply.OK)
	require.Equal(t, int64(975), reply.Balance)
}
