package craps

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOddsPayout(t *testing.T) {
	testCases := []struct {
		point    int
		amount   int64
		passSide bool
		expected int64
	}{
		{4, 10, true, 20},
		{10, 10, true, 20},
		{5, 10, true, 15},
		{9, 7, true, 10},
		{6, 30, true, 36},
		{8, 12, true, 14},
		{4, 10, false, 5},
		{5, 9, false, 6},
		{6, 30, false, 25},
		{8, 7, false, 5},
		{6, 0, true, 0},
	}

	for i, tc := range testCases {
		res := OddsPayout(tc.point, tc.amount, tc.passSide)
		assert.Equal(t, tc.expected, res, "test case %d point %d amount %d pass %v", i, tc.point, tc.amount, tc.passSide)
	}
}

func TestPlaceAndBuyPayout(t *testing.T) {
	assert.Equal(t, int64(35), PlacePayout(6, 30))
	assert.Equal(t, int64(35), PlacePayout(8, 30))
	assert.Equal(t, int64(7), PlacePayout(5, 5))
	assert.Equal(t, int64(9), PlacePayout(4, 5))
	assert.Equal(t, int64(11), PlacePayout(6, 10))

	assert.Equal(t, int64(40), BuyPayout(4, 20))
	assert.Equal(t, int64(30), BuyPayout(9, 20))
	assert.Equal(t, int64(24), BuyPayout(6, 20))
	assert.Equal(t, int64(8), BuyPayout(8, 7))
}

func TestVig(t *testing.T) {
	assert.Equal(t, int64(1), BuyVig(1))
	assert.Equal(t, int64(1), BuyVig(20))
	assert.Equal(t, int64(1), BuyVig(39))
	assert.Equal(t, int64(2), BuyVig(40))
	assert.Equal(t, int64(5), BuyVig(100))

	risk, vig := LayRiskAndVig(4, 30)
	assert.Equal(t, int64(15), risk)
	assert.Equal(t, int64(1), vig)

	risk, vig = LayRiskAndVig(5, 20)
	assert.Equal(t, int64(13), risk)
	assert.Equal(t, int64(1), vig)

	risk, vig = LayRiskAndVig(8, 60)
	assert.Equal(t, int64(50), risk)
	assert.Equal(t, int64(3), vig)
}

func TestFirePayout(t *testing.T) {
	assert.Equal(t, int64(0), FirePayout(5, 0))
	assert.Equal(t, int64(0), FirePayout(5, 3))
	assert.Equal(t, int64(120), FirePayout(5, 4))
	assert.Equal(t, int64(1245), FirePayout(5, 5))
	assert.Equal(t, int64(999), FirePayout(1, 6))
}

func TestPayoutPanicsOnNonPointNumber(t *testing.T) {
	assert.Panics(t, func() { PlacePayout(7, 10) })
	assert.Panics(t, func() { OddsPayout(11, 10, true) })
}

func TestNumberBets(t *testing.T) {
	var bets NumberBets
	for _, n := range PointNumbers {
		assert.Equal(t, int64(0), bets.Get(n))
	}
	bets.Add(6, 10)
	bets.Add(6, 5)
	bets.Set(4, 20)
	assert.Equal(t, int64(15), bets.Get(6))
	assert.Equal(t, int64(35), bets.Total())
	assert.Equal(t, map[int]int64{4: 20, 6: 15}, bets.ToMap())
	assert.Equal(t, bets, NumberBetsFromMap(bets.ToMap()))
	assert.Equal(t, int64(0), bets.Get(7))
	assert.Panics(t, func() { bets.Set(7, 1) })

	bets.Clear()
	assert.Equal(t, int64(0), bets.Total())
	assert.Nil(t, bets.ToMap())
}

func TestParseBetType(t *testing.T) {
	for betType, name := range betTypeNames {
		parsed, err := ParseBetType(name)
		require.NoError(t, err)
		assert.Equal(t, betType, parsed)
	}
	parsed, err := ParseBetType("Dont_Pass")
	require.NoError(t, err)
	assert.Equal(t, BetDontPass, parsed)

	_, err = ParseBetType("hardways")
	assert.Error(t, err)
}

func TestDice(t *testing.T) {
	dice := NewRandomDice(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		d1, d2 := dice.Roll()
		require.True(t, ValidFace(d1))
		require.True(t, ValidFace(d2))
	}

	scripted := NewScriptedDice([2]int{3, 4})
	scripted.Push(6, 6)
	d1, d2 := scripted.Roll()
	assert.Equal(t, 7, d1+d2)
	d1, d2 = scripted.Roll()
	assert.Equal(t, 12, d1+d2)
	assert.Panics(t, func() { scripted.Roll() })

	for total := 2; total <= 12; total++ {
		d1, d2, err := DiceForTotal(total)
		require.NoError(t, err)
		assert.True(t, ValidFace(d1) && ValidFace(d2))
		assert.Equal(t, total, d1+d2)
	}
	_, _, err := DiceForTotal(13)
	assert.Error(t, err)
}

func TestValidWager(t *testing.T) {
	assert.True(t, ValidWager(1))
	assert.True(t, ValidWager(MaxWager))
	assert.False(t, ValidWager(0))
	assert.False(t, ValidWager(-1))
	assert.False(t, ValidWager(MaxWager+1))
	assert.False(t, ValidWager(2e18))

	// the largest allowed lay stays positive
	risk, vig := LayRiskAndVig(6, MaxWager)
	assert.Equal(t, MaxWager*5/6, risk)
	assert.Equal(t, MaxWager/20, vig)
}
