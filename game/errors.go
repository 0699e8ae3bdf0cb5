package game

import (
	"fmt"

	"github.com/pkg/errors"
	"voyager.com/craps/craps"
)

// Reasons a placement is refused.
const (
	ReasonWrongPhase     = "not allowed in the current phase"
	ReasonInvalidAmount  = "amount must be positive and within the table maximum"
	ReasonInsufficient   = "insufficient balance"
	ReasonInvalidNumber  = "number must be one of 4, 5, 6, 8, 9, 10"
	ReasonAlreadyPlaced  = "a bet of this type is already working"
	ReasonNotShooter     = "only the current shooter can make this bet"
	ReasonFireLimit      = "fire bet must be between 1 and 5"
	ReasonNoPassBet      = "odds require a working pass bet"
	ReasonUnknownBetType = "unknown bet type"
)

// RuleViolationError is returned when a placement breaks a table rule. The
// table state is left untouched.
type RuleViolationError struct {
	Player string
	Bet    craps.BetType
	Reason string
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("%s bet by %s rejected: %s", e.Bet.Title(), e.Player, e.Reason)
}

type UnknownPlayerError struct {
	Name string
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("player [%s] is not seated at this table", e.Name)
}

// IsRuleViolation reports whether err rejected a placement without changing state.
func IsRuleViolation(err error) bool {
	var ruleErr *RuleViolationError
	var playerErr *UnknownPlayerError
	return errors.As(err, &ruleErr) || errors.As(err, &playerErr)
}

var ErrSnapshotNotFound = errors.New("table snapshot not found")
