package test

import "voyager.com/craps/game"

// GameScript is a YAML scenario replayed against a table with scripted dice.
type GameScript struct {
	Disabled    bool             `yaml:"disabled"`
	Description string           `yaml:"description"`
	Table       game.TableConfig `yaml:"table"`
	Steps       []ScriptStep     `yaml:"steps"`
}

// ScriptStep places bets, optionally rolls, then verifies the table.
type ScriptStep struct {
	Bets   []ScriptBet   `yaml:"bets"`
	Roll   *ScriptRoll   `yaml:"roll"`
	Verify *ScriptVerify `yaml:"verify"`
}

type ScriptBet struct {
	Player string `yaml:"player"`
	Type   string `yaml:"type"`
	Number int    `yaml:"number"`
	Amount int64  `yaml:"amount"`
	TurnOn bool   `yaml:"turn-on"`
	// expect the table to refuse the bet, optionally for this reason
	Reject bool   `yaml:"reject"`
	Reason string `yaml:"reason"`
}

// ScriptRoll gives either both dice or just the total.
type ScriptRoll struct {
	Dice  []int `yaml:"dice"`
	Total int   `yaml:"total"`
}

type ScriptVerify struct {
	Phase      string             `yaml:"phase"`
	Point      *int               `yaml:"point"`
	Shooter    string             `yaml:"shooter"`
	Balances   map[string]int64   `yaml:"balances"`
	FirePoints map[string][]int   `yaml:"fire-points"`
	Events     []string           `yaml:"events"`
	Players    []ScriptPlayerBets `yaml:"players"`
}

// ScriptPlayerBets checks the live wagers of one player.
type ScriptPlayerBets struct {
	Name       string        `yaml:"name"`
	Pass       *int64        `yaml:"pass"`
	DontPass   *int64        `yaml:"dont-pass"`
	OddsOnPass *int64        `yaml:"odds"`
	Fire       *int64        `yaml:"fire"`
	Place      map[int]int64 `yaml:"place"`
	Buy        map[int]int64 `yaml:"buy"`
	Lay        map[int]int64 `yaml:"lay"`
	ComePoints []int         `yaml:"come-points"`
}
