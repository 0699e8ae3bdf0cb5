package game

import (
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog/log"
	"voyager.com/craps/craps"
	"voyager.com/craps/logging"
	"voyager.com/craps/util"
)

var tableLogger = log.With().Str("logger_name", "game::table").Logger()

// Table is the resolution engine for one craps table. It owns the table state
// and every player account. Each placement and each roll runs to completion
// under the table lock, so callers never observe a partially resolved roll.
type Table struct {
	lock sync.Mutex

	code         string
	players      []*PlayerAccount
	phase        Phase
	shooterIndex int
	rollCount    uint64

	dice    craps.Dice
	sink    EventSink
	persist PersistTableState

	// events emitted by the roll in progress
	rollEvents []string
}

// NewTable seats the configured players with the starting balance. A nil dice
// source rolls random dice, a nil sink drops events and a nil persist skips
// checkpointing.
func NewTable(config *TableConfig, dice craps.Dice, sink EventSink, persist PersistTableState) (*Table, error) {
	if config == nil {
		return nil, fmt.Errorf("table config is nil")
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	t := newTable(config.Code, dice, sink, persist)
	for _, name := range config.Players {
		t.players = append(t.players, newPlayerAccount(name, config.StartingBalance))
	}
	util.Metrics.SetSeatedPlayers(len(t.players))
	tableLogger.Info().
		Str(logging.TableCodeKey, t.code).
		Int("players", len(t.players)).
		Int64("startingBalance", config.StartingBalance).
		Msg("Table created")
	return t, nil
}

func newTable(code string, dice craps.Dice, sink EventSink, persist PersistTableState) *Table {
	if dice == nil {
		dice = craps.NewRandomDice(nil)
	}
	if sink == nil {
		sink = nopEventSink{}
	}
	return &Table{
		code:    code,
		phase:   comeOutPhase(),
		dice:    dice,
		sink:    sink,
		persist: persist,
	}
}

func (t *Table) Code() string {
	return t.code
}

func (t *Table) Phase() Phase {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.phase
}

// Point returns the established point. ok is false during the come-out.
func (t *Table) Point() (int, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.phase.Point()
}

// Shooter returns the name of the player holding the dice.
func (t *Table) Shooter() string {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.shooter().Name
}

func (t *Table) ShooterIndex() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.shooterIndex
}

func (t *Table) RollCount() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.rollCount
}

func (t *Table) BalanceOf(name string) (int64, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()
	p := t.player(name)
	if p == nil {
		return 0, false
	}
	return p.Balance, true
}

func (t *Table) Player(name string) (PlayerView, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()
	p := t.player(name)
	if p == nil {
		return PlayerView{}, false
	}
	return p.view(), true
}

// Players returns every seated player in shooter order.
func (t *Table) Players() []PlayerView {
	t.lock.Lock()
	defer t.lock.Unlock()
	views := make([]PlayerView, 0, len(t.players))
	for _, p := range t.players {
		views = append(views, p.view())
	}
	return views
}

func (t *Table) shooter() *PlayerAccount {
	return t.players[t.shooterIndex]
}

// linear scan; tables seat at most MaxPlayers
func (t *Table) player(name string) *PlayerAccount {
	for _, p := range t.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (t *Table) emit(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	t.rollEvents = append(t.rollEvents, message)
	t.sink.Record(message)
}

func (t *Table) credit(p *PlayerAccount, bet craps.BetType, amount int64) {
	if amount <= 0 {
		return
	}
	if amount > math.MaxInt64-p.Balance {
		panic(fmt.Sprintf("credit of %d overflows balance %d for player %s", amount, p.Balance, p.Name))
	}
	p.Balance += amount
	util.Metrics.PayoutCredited(bet.String(), amount)
}

// checkpoint saves the table after a completed placement or roll. A failed
// save is logged; the in-memory table stays authoritative.
func (t *Table) checkpoint() {
	if t.persist == nil {
		return
	}
	err := t.persist.Save(t.code, t.snapshot())
	if err != nil {
		util.Metrics.SnapshotFailed()
		tableLogger.Error().
			Str(logging.TableCodeKey, t.code).
			Uint64("roll", t.rollCount).
			Msgf("Failed to save table snapshot: %v", err)
	}
}
