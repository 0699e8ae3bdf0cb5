package game

import (
	"fmt"

	"voyager.com/craps/craps"
	"voyager.com/craps/logging"
	"voyager.com/craps/util"
)

const (
	minFireBet int64 = 1
	maxFireBet int64 = 5
)

// BetRequest describes one placement. Number is required for place, buy and
// lay bets and ignored otherwise. For a lay bet Amount is the amount to win.
type BetRequest struct {
	Player string        `json:"player"`
	Type   craps.BetType `json:"type"`
	Number int           `json:"number,omitempty"`
	Amount int64         `json:"amount"`
	TurnOn bool          `json:"turnOn,omitempty"`
}

// PlaceBet validates and applies a placement. A non-nil error means nothing
// changed; IsRuleViolation(err) is true for every refusal.
func (t *Table) PlaceBet(req BetRequest) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.rollEvents = nil
	err := t.placeBet(req)
	if err != nil {
		util.Metrics.BetRejected(req.Type.String())
		tableLogger.Debug().
			Str(logging.TableCodeKey, t.code).
			Str(logging.PlayerNameKey, req.Player).
			Str(logging.BetTypeKey, req.Type.String()).
			Msg(err.Error())
		return err
	}
	util.Metrics.BetPlaced(req.Type.String())
	t.checkpoint()
	return nil
}

func (t *Table) PlacePass(name string, amount int64) error {
	return t.PlaceBet(BetRequest{Player: name, Type: craps.BetPass, Amount: amount})
}

func (t *Table) PlaceDontPass(name string, amount int64) error {
	return t.PlaceBet(BetRequest{Player: name, Type: craps.BetDontPass, Amount: amount})
}

func (t *Table) PlaceCome(name string, amount int64) error {
	return t.PlaceBet(BetRequest{Player: name, Type: craps.BetCome, Amount: amount})
}

func (t *Table) PlaceDontCome(name string, amount int64) error {
	return t.PlaceBet(BetRequest{Player: name, Type: craps.BetDontCome, Amount: amount})
}

func (t *Table) PlaceFire(name string, amount int64) error {
	return t.PlaceBet(BetRequest{Player: name, Type: craps.BetFire, Amount: amount})
}

func (t *Table) PlaceOddsOnPass(name string, amount int64) error {
	return t.PlaceBet(BetRequest{Player: name, Type: craps.BetOddsOnPass, Amount: amount})
}

// PlacePlaceBet adds to a place bet. turnOn makes the bet work on come-out rolls.
func (t *Table) PlacePlaceBet(name string, number int, amount int64, turnOn bool) error {
	return t.PlaceBet(BetRequest{Player: name, Type: craps.BetPlace, Number: number, Amount: amount, TurnOn: turnOn})
}

func (t *Table) PlaceBuyBet(name string, number int, amount int64) error {
	return t.PlaceBet(BetRequest{Player: name, Type: craps.BetBuy, Number: number, Amount: amount})
}

// PlaceLayBet lays against number to win winAmount.
func (t *Table) PlaceLayBet(name string, number int, winAmount int64) error {
	return t.PlaceBet(BetRequest{Player: name, Type: craps.BetLay, Number: number, Amount: winAmount})
}

// CheckInput rejects requests that are malformed before they reach the table:
// an unknown bet type, or an amount that is not positive or exceeds
// craps.MaxWager. The REST and NATS boundaries both call it.
func (req BetRequest) CheckInput() error {
	if req.Type == craps.BetUnknown {
		return fmt.Errorf("unknown bet type")
	}
	if !craps.ValidWager(req.Amount) {
		return fmt.Errorf("amount %d must be between 1 and %d", req.Amount, craps.MaxWager)
	}
	return nil
}

// placeBet checks every precondition before touching the account.
func (t *Table) placeBet(req BetRequest) error {
	p := t.player(req.Player)
	if p == nil {
		return &UnknownPlayerError{Name: req.Player}
	}
	reject := func(reason string) error {
		return &RuleViolationError{Player: req.Player, Bet: req.Type, Reason: reason}
	}
	if !craps.ValidWager(req.Amount) {
		if req.Type == craps.BetFire {
			return reject(ReasonFireLimit)
		}
		return reject(ReasonInvalidAmount)
	}
	if req.Type.NeedsNumber() && !craps.IsPointNumber(req.Number) {
		return reject(ReasonInvalidNumber)
	}

	switch req.Type {
	case craps.BetPass, craps.BetDontPass:
		field := &p.Pass
		if req.Type == craps.BetDontPass {
			field = &p.DontPass
		}
		if !t.phase.IsComeOut() {
			return reject(ReasonWrongPhase)
		}
		if *field > 0 {
			return reject(ReasonAlreadyPlaced)
		}
		if req.Amount > p.Balance {
			return reject(ReasonInsufficient)
		}
		p.debit(req.Amount)
		*field = req.Amount

	case craps.BetCome, craps.BetDontCome:
		field := &p.Come
		if req.Type == craps.BetDontCome {
			field = &p.DontCome
		}
		if t.phase.IsComeOut() {
			return reject(ReasonWrongPhase)
		}
		if *field > 0 {
			return reject(ReasonAlreadyPlaced)
		}
		if req.Amount > p.Balance {
			return reject(ReasonInsufficient)
		}
		p.debit(req.Amount)
		*field = req.Amount

	case craps.BetFire:
		if !t.phase.IsComeOut() {
			return reject(ReasonWrongPhase)
		}
		if p != t.shooter() {
			return reject(ReasonNotShooter)
		}
		if req.Amount < minFireBet || req.Amount > maxFireBet {
			return reject(ReasonFireLimit)
		}
		if p.Fire > 0 {
			return reject(ReasonAlreadyPlaced)
		}
		if req.Amount > p.Balance {
			return reject(ReasonInsufficient)
		}
		p.debit(req.Amount)
		p.Fire = req.Amount
		p.UniquePointsMade.Clear()

	case craps.BetOddsOnPass:
		if t.phase.IsComeOut() {
			return reject(ReasonWrongPhase)
		}
		if p.Pass == 0 {
			return reject(ReasonNoPassBet)
		}
		if p.OddsOnPass > 0 {
			return reject(ReasonAlreadyPlaced)
		}
		if req.Amount > p.Balance {
			return reject(ReasonInsufficient)
		}
		p.debit(req.Amount)
		p.OddsOnPass = req.Amount

	case craps.BetPlace:
		if !craps.ValidWager(p.Place.Get(req.Number) + req.Amount) {
			return reject(ReasonInvalidAmount)
		}
		if req.Amount > p.Balance {
			return reject(ReasonInsufficient)
		}
		p.debit(req.Amount)
		p.Place.Add(req.Number, req.Amount)
		if req.TurnOn {
			p.PlaceActive.Add(req.Number)
		}
		t.emit("%s placed Place Bet on %d: $%d", p.Name, req.Number, req.Amount)
		return nil

	case craps.BetBuy:
		if !craps.ValidWager(p.Buy.Get(req.Number) + req.Amount) {
			return reject(ReasonInvalidAmount)
		}
		vig := craps.BuyVig(req.Amount)
		if req.Amount+vig > p.Balance {
			return reject(ReasonInsufficient)
		}
		p.debit(req.Amount + vig)
		p.Buy.Add(req.Number, req.Amount)
		p.TotalVigPaid += vig
		t.emit("%s placed Buy Bet on %d: $%d + $%d vig", p.Name, req.Number, req.Amount, vig)
		return nil

	case craps.BetLay:
		if !craps.ValidWager(p.Lay.Get(req.Number) + req.Amount) {
			return reject(ReasonInvalidAmount)
		}
		risk, vig := craps.LayRiskAndVig(req.Number, req.Amount)
		if risk+vig > p.Balance {
			return reject(ReasonInsufficient)
		}
		p.debit(risk + vig)
		p.Lay.Add(req.Number, req.Amount)
		p.TotalVigPaid += vig
		t.emit("%s placed Lay Bet on %d: to win $%d (risk $%d) + $%d vig", p.Name, req.Number, req.Amount, risk, vig)
		return nil

	default:
		return reject(ReasonUnknownBetType)
	}

	t.emit("%s placed %s bet: $%d", p.Name, req.Type.Title(), req.Amount)
	return nil
}
