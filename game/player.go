package game

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set"
	"voyager.com/craps/craps"
)

// PlayerAccount is a seated player's balance and live wagers. Only the Table
// mutates accounts; callers receive PlayerView copies.
type PlayerAccount struct {
	Name    string
	Balance int64

	Pass       int64
	DontPass   int64
	Come       int64
	DontCome   int64
	OddsOnPass int64
	Fire       int64

	Place craps.NumberBets
	Buy   craps.NumberBets
	Lay   craps.NumberBets

	// numbers whose place bets work on the come-out roll
	PlaceActive mapset.Set
	// distinct points made as shooter in the current Fire bet cycle
	UniquePointsMade mapset.Set
	// come points: positive for come, negative for don't come
	ComePoints []int

	TotalVigPaid int64
}

func newPlayerAccount(name string, balance int64) *PlayerAccount {
	return &PlayerAccount{
		Name:             name,
		Balance:          balance,
		PlaceActive:      mapset.NewThreadUnsafeSet(),
		UniquePointsMade: mapset.NewThreadUnsafeSet(),
	}
}

func (p *PlayerAccount) debit(amount int64) {
	if amount < 0 || amount > p.Balance {
		panic(fmt.Sprintf("debit of %d exceeds balance %d for player %s", amount, p.Balance, p.Name))
	}
	p.Balance -= amount
}

// clearRound zeroes every round-scoped wager. Fire and UniquePointsMade survive.
func (p *PlayerAccount) clearRound() {
	p.Pass = 0
	p.DontPass = 0
	p.Come = 0
	p.DontCome = 0
	p.OddsOnPass = 0
	p.ComePoints = nil
	p.Place.Clear()
	p.Buy.Clear()
	p.Lay.Clear()
	p.PlaceActive.Clear()
}

// PlayerView is a read-only copy of a PlayerAccount. It is also the persisted form.
type PlayerView struct {
	Name             string        `json:"name"`
	Balance          int64         `json:"balance"`
	Pass             int64         `json:"pass,omitempty"`
	DontPass         int64         `json:"dontPass,omitempty"`
	Come             int64         `json:"come,omitempty"`
	DontCome         int64         `json:"dontCome,omitempty"`
	OddsOnPass       int64         `json:"oddsOnPass,omitempty"`
	Fire             int64         `json:"fire,omitempty"`
	Place            map[int]int64 `json:"place,omitempty"`
	Buy              map[int]int64 `json:"buy,omitempty"`
	Lay              map[int]int64 `json:"lay,omitempty"`
	PlaceActive      []int         `json:"placeActive,omitempty"`
	UniquePointsMade []int         `json:"uniquePointsMade,omitempty"`
	ComePoints       []int         `json:"comePoints,omitempty"`
	TotalVigPaid     int64         `json:"totalVigPaid,omitempty"`
}

func (p *PlayerAccount) view() PlayerView {
	v := PlayerView{
		Name:             p.Name,
		Balance:          p.Balance,
		Pass:             p.Pass,
		DontPass:         p.DontPass,
		Come:             p.Come,
		DontCome:         p.DontCome,
		OddsOnPass:       p.OddsOnPass,
		Fire:             p.Fire,
		Place:            p.Place.ToMap(),
		Buy:              p.Buy.ToMap(),
		Lay:              p.Lay.ToMap(),
		PlaceActive:      sortedNumbers(p.PlaceActive),
		UniquePointsMade: sortedNumbers(p.UniquePointsMade),
		TotalVigPaid:     p.TotalVigPaid,
	}
	if len(p.ComePoints) > 0 {
		v.ComePoints = append([]int(nil), p.ComePoints...)
	}
	return v
}

// AtRisk returns the total amount currently wagered on the table. Lay bets are
// tracked by their win amount and are not included.
func (v PlayerView) AtRisk() int64 {
	total := v.Pass + v.DontPass + v.Come + v.DontCome + v.OddsOnPass + v.Fire
	for _, bets := range []map[int]int64{v.Place, v.Buy} {
		for _, amount := range bets {
			total += amount
		}
	}
	return total
}

func accountFromView(v PlayerView) (*PlayerAccount, error) {
	if v.Name == "" {
		return nil, fmt.Errorf("player name is empty")
	}
	if v.Balance < 0 || v.TotalVigPaid < 0 {
		return nil, fmt.Errorf("player %s has a negative amount", v.Name)
	}
	for _, amount := range []int64{v.Pass, v.DontPass, v.Come, v.DontCome, v.OddsOnPass, v.Fire} {
		if amount != 0 && !craps.ValidWager(amount) {
			return nil, fmt.Errorf("player %s has an invalid wager %d", v.Name, amount)
		}
	}
	if v.Fire > maxFireBet {
		return nil, fmt.Errorf("player %s has an invalid fire bet %d", v.Name, v.Fire)
	}
	p := newPlayerAccount(v.Name, v.Balance)
	p.Pass = v.Pass
	p.DontPass = v.DontPass
	p.Come = v.Come
	p.DontCome = v.DontCome
	p.OddsOnPass = v.OddsOnPass
	p.Fire = v.Fire
	p.TotalVigPaid = v.TotalVigPaid
	for _, bets := range []map[int]int64{v.Place, v.Buy, v.Lay} {
		for n, amount := range bets {
			if !craps.IsPointNumber(n) || (amount != 0 && !craps.ValidWager(amount)) {
				return nil, fmt.Errorf("player %s has an invalid wager %d on %d", v.Name, amount, n)
			}
		}
	}
	p.Place = craps.NumberBetsFromMap(v.Place)
	p.Buy = craps.NumberBetsFromMap(v.Buy)
	p.Lay = craps.NumberBetsFromMap(v.Lay)
	for _, n := range v.PlaceActive {
		if !craps.IsPointNumber(n) {
			return nil, fmt.Errorf("player %s has an invalid place number %d turned on", v.Name, n)
		}
		p.PlaceActive.Add(n)
	}
	for _, n := range v.UniquePointsMade {
		if !craps.IsPointNumber(n) {
			return nil, fmt.Errorf("player %s has an invalid point made %d", v.Name, n)
		}
		p.UniquePointsMade.Add(n)
	}
	// negative come points belong to don't come bets
	for _, n := range v.ComePoints {
		if !craps.IsPointNumber(n) && !craps.IsPointNumber(-n) {
			return nil, fmt.Errorf("player %s has an invalid come point %d", v.Name, n)
		}
	}
	if len(v.ComePoints) > 0 {
		p.ComePoints = append([]int(nil), v.ComePoints...)
	}
	return p, nil
}

func sortedNumbers(s mapset.Set) []int {
	if s.Cardinality() == 0 {
		return nil
	}
	numbers := make([]int, 0, s.Cardinality())
	for _, v := range s.ToSlice() {
		numbers = append(numbers, v.(int))
	}
	sort.Ints(numbers)
	return numbers
}
