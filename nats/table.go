package nats

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"voyager.com/craps/game"
	"voyager.com/craps/logging"
)

var natsLogger = log.With().Str("logger_name", "nats::table").Logger()

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NatsTable is an adapter between a craps table and the NATS server. It
// publishes the table's resolution events and serves bet and roll requests.
type NatsTable struct {
	tableCode    string
	eventSubject string
	betSubject   string
	rollSubject  string

	lock sync.Mutex
	seq  uint64

	nc      *natsgo.Conn
	table   *game.Table
	betSub  *natsgo.Subscription
	rollSub *natsgo.Subscription
}

func Connect(url string) (*natsgo.Conn, error) {
	nc, err := natsgo.Connect(url, natsgo.Name("craps-server"))
	if err != nil {
		return nil, errors.Wrapf(err, "Error connecting to NATS server [%s]", url)
	}
	return nc, nil
}

// NewNatsTable returns the adapter for tableCode. It can be used as the
// table's event sink before the table exists; call Serve once it does.
func NewNatsTable(nc *natsgo.Conn, tableCode string) *NatsTable {
	return &NatsTable{
		tableCode:    tableCode,
		eventSubject: GetTableEventSubject(tableCode),
		betSubject:   GetBetSubject(tableCode),
		rollSubject:  GetRollSubject(tableCode),
		nc:           nc,
	}
}

// Record publishes one resolution event. It runs under the table lock, and
// nats.go buffers publishes, so it does not block on the network.
func (n *NatsTable) Record(message string) {
	data, err := json.Marshal(n.nextEvent(message))
	if err != nil {
		natsLogger.Error().Str(logging.TableCodeKey, n.tableCode).Msgf("Failed to encode table event: %v", err)
		return
	}
	err = n.nc.Publish(n.eventSubject, data)
	if err != nil {
		natsLogger.Error().Str(logging.TableCodeKey, n.tableCode).Msgf("Failed to publish table event: %v", err)
	}
}

func (n *NatsTable) nextEvent(message string) *TableEvent {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.seq++
	return &TableEvent{
		ID:      uuid.New().String(),
		Seq:     n.seq,
		Time:    time.Now().UTC(),
		Table:   n.tableCode,
		Message: message,
	}
}

// Serve subscribes to the bet and roll subjects of the table.
func (n *NatsTable) Serve(table *game.Table) error {
	if table.Code() != n.tableCode {
		return fmt.Errorf("table %s does not match adapter for %s", table.Code(), n.tableCode)
	}
	n.table = table

	var err error
	n.betSub, err = n.nc.Subscribe(n.betSubject, n.bet)
	if err != nil {
		return errors.Wrapf(err, "Failed to subscribe to %s", n.betSubject)
	}
	n.rollSub, err = n.nc.Subscribe(n.rollSubject, n.roll)
	if err != nil {
		n.betSub.Unsubscribe()
		return errors.Wrapf(err, "Failed to subscribe to %s", n.rollSubject)
	}
	natsLogger.Info().Str(logging.TableCodeKey, n.tableCode).
		Msgf("Listening on %s and %s", n.betSubject, n.rollSubject)
	return nil
}

func (n *NatsTable) Cleanup() {
	if n.betSub != nil {
		n.betSub.Unsubscribe()
	}
	if n.rollSub != nil {
		n.rollSub.Unsubscribe()
	}
}

func (n *NatsTable) bet(msg *natsgo.Msg) {
	natsLogger.Debug().Str(logging.TableCodeKey, n.tableCode).
		Msg(fmt.Sprintf("Player->Table: %s", string(msg.Data)))
	n.respond(msg, handleBet(n.table, msg.Data))
}

func handleBet(table *game.Table, data []byte) *BetReply {
	var req game.BetRequest
	err := json.Unmarshal(data, &req)
	if err != nil {
		return &BetReply{Error: fmt.Sprintf("invalid bet request: %v", err)}
	}
	err = req.CheckInput()
	if err != nil {
		return &BetReply{Error: fmt.Sprintf("invalid bet request: %v", err)}
	}
	return betReply(table, req, table.PlaceBet(req))
}

func (n *NatsTable) roll(msg *natsgo.Msg) {
	result := n.table.Roll()
	n.respond(msg, &result)
}

func (n *NatsTable) respond(msg *natsgo.Msg, reply interface{}) {
	if msg.Reply == "" {
		return
	}
	data, err := json.Marshal(reply)
	if err != nil {
		natsLogger.Error().Str(logging.TableCodeKey, n.tableCode).Msgf("Failed to encode reply: %v", err)
		return
	}
	err = msg.Respond(data)
	if err != nil {
		natsLogger.Error().Str(logging.TableCodeKey, n.tableCode).Msgf("Failed to send reply: %v", err)
	}
}

func betReply(table *game.Table, req game.BetRequest, err error) *BetReply {
	reply := &BetReply{OK: err == nil}
	if err != nil {
		reply.Error = err.Error()
		var ruleErr *game.RuleViolationError
		if errors.As(err, &ruleErr) {
			reply.Reason = ruleErr.Reason
		}
	}
	if balance, ok := table.BalanceOf(req.Player); ok {
		reply.Balance = balance
	}
	return reply
}
