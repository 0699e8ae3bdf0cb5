package game

import "voyager.com/craps/craps"

// resolveFireBet settles the outgoing shooter's Fire bet at the seven-out.
// The bet pays by the number of distinct points made and is always cleared.
func (t *Table) resolveFireBet(p *PlayerAccount) {
	points := p.UniquePointsMade.Cardinality()
	payout := craps.FirePayout(p.Fire, points)
	if payout > 0 {
		t.credit(p, craps.BetFire, payout)
		t.emit("%s wins Fire Bet! %d points -> +$%d", p.Name, points, payout)
	} else {
		t.emit("%s Fire Bet lost (%d points)", p.Name, points)
	}
	p.Fire = 0
}

// FirePoints returns the distinct points the player has made in the current
// Fire bet cycle.
func (t *Table) FirePoints(name string) []int {
	t.lock.Lock()
	defer t.lock.Unlock()
	p := t.player(name)
	if p == nil {
		return nil
	}
	return sortedNumbers(p.UniquePointsMade)
}
