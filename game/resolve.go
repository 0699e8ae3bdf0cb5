package game

import (
	"fmt"

	"voyager.com/craps/craps"
	"voyager.com/craps/logging"
	"voyager.com/craps/util"
)

// RollResult is the outcome of one roll and the table state after it.
type RollResult struct {
	Die1    int      `json:"die1"`
	Die2    int      `json:"die2"`
	Total   int      `json:"total"`
	Phase   string   `json:"phase"`
	Point   int      `json:"point,omitempty"`
	Shooter string   `json:"shooter"`
	Events  []string `json:"events"`
}

// Roll throws the dice and resolves every wager on the table against the
// total. The whole resolution, including the round reset and shooter
// rotation, completes before Roll returns.
func (t *Table) Roll() RollResult {
	t.lock.Lock()
	defer t.lock.Unlock()

	die1, die2 := t.dice.Roll()
	if !craps.ValidFace(die1) || !craps.ValidFace(die2) {
		panic(fmt.Sprintf("dice source returned invalid faces %d and %d", die1, die2))
	}
	total := die1 + die2

	t.rollEvents = nil
	t.emit("Dice rolled: %d + %d = %d", die1, die2, total)
	if t.phase.IsComeOut() {
		t.resolveComeOut(total)
	} else {
		t.resolvePoint(total)
	}
	t.rollCount++
	util.Metrics.RollCompleted(total)

	point, _ := t.phase.Point()
	result := RollResult{
		Die1:    die1,
		Die2:    die2,
		Total:   total,
		Phase:   t.phase.Kind().String(),
		Point:   point,
		Shooter: t.shooter().Name,
		Events:  t.rollEvents,
	}
	tableLogger.Debug().
		Str(logging.TableCodeKey, t.code).
		Int(logging.RollTotalKey, total).
		Str(logging.ShooterKey, result.Shooter).
		Msgf("Roll %d resolved, phase %s", t.rollCount, t.phase)
	t.checkpoint()
	return result
}

func (t *Table) resolveComeOut(total int) {
	shooter := t.shooter()
	for _, p := range t.players {
		if p.Pass > 0 {
			switch {
			case craps.IsNatural(total):
				t.credit(p, craps.BetPass, p.Pass*2)
				t.emit("%s wins Pass bet: +$%d", p.Name, p.Pass)
				p.Pass = 0
			case craps.IsCraps(total):
				t.emit("%s loses Pass bet", p.Name)
				p.Pass = 0
			default:
				if p == shooter {
					p.UniquePointsMade.Add(total)
				}
			}
		}

		if p.DontPass > 0 {
			switch total {
			case 2, 3:
				t.credit(p, craps.BetDontPass, p.DontPass*2)
				t.emit("%s wins Don't Pass bet: +$%d", p.Name, p.DontPass)
				p.DontPass = 0
			case 12:
				t.credit(p, craps.BetDontPass, p.DontPass)
				t.emit("%s Don't Pass pushes on 12", p.Name)
				p.DontPass = 0
			case 7, 11:
				t.emit("%s loses Don't Pass", p.Name)
				p.DontPass = 0
			}
		}

		if p == shooter && p.Fire > 0 && (craps.IsNatural(total) || craps.IsCraps(total)) {
			t.emit("%s Fire bet lost (no point made)", p.Name)
			p.Fire = 0
		}

		t.resolvePlaceBuyLay(p, total, true)
	}

	if craps.IsPointNumber(total) {
		t.phase = pointPhase(total)
		t.emit("Point established: %d", total)
	} else {
		t.resetBets()
	}
}

func (t *Table) resolvePoint(total int) {
	point, _ := t.phase.Point()
	shooter := t.shooter()

	switch total {
	case point:
		for _, p := range t.players {
			if p.Pass > 0 {
				odds := craps.OddsPayout(point, p.OddsOnPass, true)
				t.credit(p, craps.BetPass, p.Pass*2)
				t.credit(p, craps.BetOddsOnPass, odds)
				if p == shooter {
					p.UniquePointsMade.Add(point)
				}
				t.emit("%s wins Pass + Odds: $%d", p.Name, p.Pass+odds)
			}
			if p.DontPass > 0 {
				t.emit("%s loses Don't Pass", p.Name)
			}
			if p.Come > 0 {
				t.emit("%s Come bet is cleared when the point is made", p.Name)
			}
			if p.DontCome > 0 {
				t.emit("%s Don't Come bet is cleared when the point is made", p.Name)
			}
			t.resolvePlaceBuyLay(p, total, false)
		}
		t.resetBets()
		t.emit("Point %d made. Shooter %s continues", point, shooter.Name)

	case 7:
		for _, p := range t.players {
			if p.DontPass > 0 {
				odds := craps.OddsPayout(point, p.OddsOnPass, false)
				t.credit(p, craps.BetDontPass, p.DontPass*2)
				t.credit(p, craps.BetOddsOnPass, odds)
				t.emit("%s wins Don't Pass + Odds: $%d", p.Name, p.DontPass+odds)
			}
			if p.Pass > 0 {
				t.emit("%s loses Pass bet on 7-out", p.Name)
			}
			if p.Come > 0 {
				p.Come = 0
				t.emit("%s loses Come bet on 7", p.Name)
			}
			if p.DontCome > 0 {
				t.credit(p, craps.BetDontCome, p.DontCome*2)
				p.DontCome = 0
				t.emit("%s wins Don't Come on 7", p.Name)
			}
			t.resolvePlaceBuyLay(p, total, false)
			if p == shooter && p.Fire > 0 {
				t.resolveFireBet(p)
			}
		}
		t.shooterIndex = (t.shooterIndex + 1) % len(t.players)
		t.resetBets()
		util.Metrics.SevenOut()
		t.emit("7-out. Next shooter: %s", t.shooter().Name)

	default:
		t.resolveComeBets(total)
		for _, p := range t.players {
			t.resolvePlaceBuyLay(p, total, false)
		}
	}
}

// resolveComeBets applies the come-out rules to pending come and don't come
// bets. Anything that is not decided becomes a come point.
func (t *Table) resolveComeBets(total int) {
	for _, p := range t.players {
		if p.Come > 0 {
			switch {
			case craps.IsNatural(total):
				t.credit(p, craps.BetCome, p.Come*2)
				t.emit("%s wins Come bet on %d", p.Name, total)
			case craps.IsCraps(total):
				t.emit("%s loses Come bet on %d", p.Name, total)
			default:
				p.ComePoints = append(p.ComePoints, total)
				t.emit("%s Come point: %d", p.Name, total)
			}
			p.Come = 0
		}

		if p.DontCome > 0 {
			switch {
			case total == 2 || total == 3:
				t.credit(p, craps.BetDontCome, p.DontCome*2)
				t.emit("%s wins Don't Come on %d", p.Name, total)
			case craps.IsNatural(total):
				t.emit("%s loses Don't Come on %d", p.Name, total)
			case total == 12:
				t.credit(p, craps.BetDontCome, p.DontCome)
				t.emit("%s Don't Come pushes on 12", p.Name)
			default:
				p.ComePoints = append(p.ComePoints, -total)
				t.emit("%s Don't Come point: %d", p.Name, total)
			}
			p.DontCome = 0
		}
	}
}

// resolvePlaceBuyLay settles one player's number bets. Place bets that were
// not turned on do not work on a come-out roll; buy and lay bets always work.
func (t *Table) resolvePlaceBuyLay(p *PlayerAccount, roll int, comeOut bool) {
	for _, n := range craps.PointNumbers {
		amount := p.Place.Get(n)
		if amount == 0 {
			continue
		}
		if comeOut && !p.PlaceActive.Contains(n) {
			continue
		}
		if roll == n {
			win := craps.PlacePayout(n, amount)
			t.credit(p, craps.BetPlace, amount+win)
			p.Place.Set(n, 0)
			t.emit("%s wins Place Bet on %d: +$%d", p.Name, n, win)
		} else if roll == 7 {
			p.Place.Set(n, 0)
			t.emit("%s loses Place Bet on %d", p.Name, n)
		}
	}

	for _, n := range craps.PointNumbers {
		amount := p.Buy.Get(n)
		if amount == 0 {
			continue
		}
		if roll == n {
			win := craps.BuyPayout(n, amount)
			t.credit(p, craps.BetBuy, win)
			p.Buy.Set(n, 0)
			t.emit("%s wins Buy Bet on %d: +$%d", p.Name, n, win)
		} else if roll == 7 {
			p.Buy.Set(n, 0)
			t.emit("%s loses Buy Bet on %d", p.Name, n)
		}
	}

	for _, n := range craps.PointNumbers {
		winAmount := p.Lay.Get(n)
		if winAmount == 0 {
			continue
		}
		if roll == 7 {
			t.credit(p, craps.BetLay, winAmount)
			p.Lay.Set(n, 0)
			t.emit("%s wins Lay Bet on %d: +$%d", p.Name, n, winAmount)
		} else if roll == n {
			p.Lay.Set(n, 0)
			t.emit("%s loses Lay Bet on %d", p.Name, n)
		}
	}
}

// resetBets ends the betting round for every player and returns the table to
// the come-out. Fire bets and points made carry over.
func (t *Table) resetBets() {
	for _, p := range t.players {
		p.clearRound()
	}
	t.phase = comeOutPhase()
}
