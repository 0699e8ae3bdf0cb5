package craps

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Dice produces one throw of two six-sided dice.
type Dice interface {
	Roll() (die1 int, die2 int)
}

type RandomDice struct {
	randGen *rand.Rand
}

// NewRandomDice returns dice backed by source. A nil source is seeded from
// crypto/rand.
func NewRandomDice(source rand.Source) *RandomDice {
	if source == nil {
		var b [8]byte
		_, err := crypto_rand.Read(b[:])
		if err != nil {
			panic("cannot seed math/rand package with cryptographically secure random number generator")
		}
		source = rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
	}
	return &RandomDice{randGen: rand.New(source)}
}

func (d *RandomDice) Roll() (int, int) {
	return d.randGen.Intn(6) + 1, d.randGen.Intn(6) + 1
}

// ScriptedDice replays queued throws in order. Used by tests and game scripts.
type ScriptedDice struct {
	lock  sync.Mutex
	rolls [][2]int
}

func NewScriptedDice(rolls ...[2]int) *ScriptedDice {
	d := &ScriptedDice{}
	d.rolls = append(d.rolls, rolls...)
	return d
}

// Push queues a throw.
func (d *ScriptedDice) Push(die1 int, die2 int) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.rolls = append(d.rolls, [2]int{die1, die2})
}

func (d *ScriptedDice) Remaining() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return len(d.rolls)
}

// Roll panics when the script is exhausted.
func (d *ScriptedDice) Roll() (int, int) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if len(d.rolls) == 0 {
		panic("scripted dice: no rolls remaining")
	}
	next := d.rolls[0]
	d.rolls = d.rolls[1:]
	return next[0], next[1]
}

// ValidFace reports whether v is a face of a six-sided die.
func ValidFace(v int) bool {
	return v >= 1 && v <= 6
}

// DiceForTotal returns a throw summing to total, for scripts that only care
// about the total.
func DiceForTotal(total int) (int, int, error) {
	if total < 2 || total > 12 {
		return 0, 0, fmt.Errorf("invalid dice total %d", total)
	}
	if total <= 7 {
		return 1, total - 1, nil
	}
	return total - 6, 6, nil
}
