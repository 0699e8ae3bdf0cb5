package craps

import "fmt"

// ratio scales an amount by num/den. All payouts truncate toward zero on
// non-negative operands, so integer division reproduces the house tables exactly.
type ratio struct {
	num int64
	den int64
}

func (r ratio) apply(amount int64) int64 {
	return amount * r.num / r.den
}

func (r ratio) inverse() ratio {
	return ratio{num: r.den, den: r.num}
}

var (
	trueOdds = map[int]ratio{
		4: {2, 1}, 10: {2, 1},
		5: {3, 2}, 9: {3, 2},
		6: {6, 5}, 8: {6, 5},
	}
	placeOdds = map[int]ratio{
		4: {9, 5}, 10: {9, 5},
		5: {7, 5}, 9: {7, 5},
		6: {7, 6}, 8: {7, 6},
	}
)

// MaxWager bounds any single wager or win amount. Every payout ratio scales by
// at most 9, and the Fire bet by 999 on a wager of at most 5, so no payout
// arithmetic on a bounded wager can overflow int64.
const MaxWager int64 = 1_000_000_000_000

// ValidWager reports whether amount is positive and within MaxWager.
func ValidWager(amount int64) bool {
	return amount > 0 && amount <= MaxWager
}

// Fire bet multipliers by the number of distinct points made.
var fireMultipliers = map[int]int64{
	4: 24,
	5: 249,
	6: 999,
}

func lookup(table map[int]ratio, number int) ratio {
	r, ok := table[number]
	if !ok {
		panic(fmt.Sprintf("%d is not a point number", number))
	}
	return r
}

// OddsPayout returns the win on an odds wager. The pass side is paid at true
// odds; the don't side is paid the inverse.
func OddsPayout(point int, amount int64, isPassSide bool) int64 {
	r := lookup(trueOdds, point)
	if !isPassSide {
		r = r.inverse()
	}
	return r.apply(amount)
}

// PlacePayout returns the win on a place bet at house odds.
func PlacePayout(number int, amount int64) int64 {
	return lookup(placeOdds, number).apply(amount)
}

// BuyPayout returns the win on a buy bet at true odds.
func BuyPayout(number int, amount int64) int64 {
	return lookup(trueOdds, number).apply(amount)
}

// BuyVig is the 5% commission on a buy bet, never less than 1.
func BuyVig(amount int64) int64 {
	return vig(amount)
}

// LayRiskAndVig returns how much must be laid to win winAmount against number,
// and the commission charged on the win.
func LayRiskAndVig(number int, winAmount int64) (risk int64, vigAmount int64) {
	risk = lookup(trueOdds, number).inverse().apply(winAmount)
	return risk, vig(winAmount)
}

// FirePayout returns the win for a Fire bet after pointsMade distinct points.
// Fewer than four points pays nothing.
func FirePayout(amount int64, pointsMade int) int64 {
	multiplier, ok := fireMultipliers[pointsMade]
	if !ok {
		return 0
	}
	return amount * multiplier
}

func vig(amount int64) int64 {
	v := amount * 5 / 100
	if v < 1 {
		return 1
	}
	return v
}
