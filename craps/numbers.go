package craps

import "fmt"

// PointNumbers are the six box numbers a point, place, buy or lay bet can be on.
var PointNumbers = [6]int{4, 5, 6, 8, 9, 10}

func IsPointNumber(n int) bool {
	return numberIndex(n) >= 0
}

// IsNatural reports a 7 or 11.
func IsNatural(total int) bool {
	return total == 7 || total == 11
}

// IsCraps reports a 2, 3 or 12.
func IsCraps(total int) bool {
	return total == 2 || total == 3 || total == 12
}

func numberIndex(n int) int {
	switch n {
	case 4:
		return 0
	case 5:
		return 1
	case 6:
		return 2
	case 8:
		return 3
	case 9:
		return 4
	case 10:
		return 5
	}
	return -1
}

// NumberBets holds one amount per point number. The zero value is a valid,
// fully initialized set of six empty wagers.
type NumberBets [6]int64

func (b *NumberBets) Get(n int) int64 {
	i := numberIndex(n)
	if i < 0 {
		return 0
	}
	return b[i]
}

func (b *NumberBets) Set(n int, amount int64) {
	i := numberIndex(n)
	if i < 0 {
		panic(fmt.Sprintf("%d is not a point number", n))
	}
	b[i] = amount
}

func (b *NumberBets) Add(n int, amount int64) {
	b.Set(n, b.Get(n)+amount)
}

func (b *NumberBets) Clear() {
	*b = NumberBets{}
}

// Total returns the sum of all six wagers.
func (b *NumberBets) Total() int64 {
	var total int64
	for _, amount := range b {
		total += amount
	}
	return total
}

// ToMap returns the non-zero wagers keyed by number, or nil when there are none.
func (b *NumberBets) ToMap() map[int]int64 {
	var m map[int]int64
	for i, amount := range b {
		if amount != 0 {
			if m == nil {
				m = make(map[int]int64)
			}
			m[PointNumbers[i]] = amount
		}
	}
	return m
}

// NumberBetsFromMap ignores keys that are not point numbers.
func NumberBetsFromMap(m map[int]int64) NumberBets {
	var b NumberBets
	for n, amount := range m {
		if IsPointNumber(n) {
			b.Set(n, amount)
		}
	}
	return b
}
