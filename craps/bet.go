package craps

import (
	"fmt"
	"strings"
)

type BetType int

const (
	BetUnknown BetType = iota
	BetPass
	BetDontPass
	BetCome
	BetDontCome
	BetFire
	BetOddsOnPass
	BetPlace
	BetBuy
	BetLay
)

var betTypeNames = map[BetType]string{
	BetPass:       "pass",
	BetDontPass:   "dont-pass",
	BetCome:       "come",
	BetDontCome:   "dont-come",
	BetFire:       "fire",
	BetOddsOnPass: "odds",
	BetPlace:      "place",
	BetBuy:        "buy",
	BetLay:        "lay",
}

// display names used in event messages
var betTypeTitles = map[BetType]string{
	BetPass:       "Pass",
	BetDontPass:   "Don't Pass",
	BetCome:       "Come",
	BetDontCome:   "Don't Come",
	BetFire:       "Fire",
	BetOddsOnPass: "Odds on Pass",
	BetPlace:      "Place",
	BetBuy:        "Buy",
	BetLay:        "Lay",
}

func (b BetType) String() string {
	if name, ok := betTypeNames[b]; ok {
		return name
	}
	return "unknown"
}

func (b BetType) Title() string {
	if title, ok := betTypeTitles[b]; ok {
		return title
	}
	return "Unknown"
}

// NeedsNumber reports whether the bet is made on a specific point number.
func (b BetType) NeedsNumber() bool {
	return b == BetPlace || b == BetBuy || b == BetLay
}

// ParseBetType accepts the short names ("dont-pass") and a few common spellings
// ("dontpass", "dont_pass", "odds-on-pass").
func ParseBetType(s string) (BetType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, "'", "")
	switch key {
	case "dontpass":
		key = "dont-pass"
	case "dontcome":
		key = "dont-come"
	case "odds-on-pass", "odds-pass":
		key = "odds"
	}
	for betType, name := range betTypeNames {
		if name == key {
			return betType, nil
		}
	}
	return BetUnknown, fmt.Errorf("unknown bet type [%s]", s)
}

func (b BetType) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BetType) UnmarshalText(text []byte) error {
	betType, err := ParseBetType(string(text))
	if err != nil {
		return err
	}
	*b = betType
	return nil
}
