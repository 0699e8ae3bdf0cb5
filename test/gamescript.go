package test

import (
	"fmt"
	"sort"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"voyager.com/craps/craps"
	"voyager.com/craps/game"
)

// TestGameScript runs one parsed game script and records its failures.
type TestGameScript struct {
	gameScript *GameScript
	filename   string
	result     *ScriptTestResult

	table  *game.Table
	dice   *craps.ScriptedDice
	events *game.EventRecorder
}

func (g *TestGameScript) run(t *TestDriver) error {
	err := g.configure()
	if err != nil {
		return err
	}

	for i, step := range g.gameScript.Steps {
		err = g.runStep(i+1, &step)
		if err != nil {
			return err
		}
	}
	return nil
}

// configures the table with the scripted dice
func (g *TestGameScript) configure() error {
	config := g.gameScript.Table
	if config.Code == "" {
		config.Code = "script"
	}
	g.dice = craps.NewScriptedDice()
	g.events = &game.EventRecorder{}
	table, err := game.NewTable(&config, g.dice, g.events, nil)
	if err != nil {
		return fmt.Errorf("[table section] %v", err)
	}
	g.table = table
	return nil
}

func (g *TestGameScript) runStep(stepNum int, step *ScriptStep) error {
	where := fmt.Sprintf("step %d", stepNum)
	for _, bet := range step.Bets {
		g.result.Bets++
		e := g.placeBet(where, bet)
		if e != nil {
			return e
		}
	}

	var events []string
	if step.Roll != nil {
		die1, die2, err := step.Roll.faces()
		if err != nil {
			return fmt.Errorf("[%s] %v", where, err)
		}
		g.dice.Push(die1, die2)
		result := g.table.Roll()
		events = result.Events
		g.result.Rolls++
		g.result.Events += len(events)
		testDriverLogger.Debug().Msgf("[%s] rolled %d + %d: %v", where, die1, die2, events)
	}

	if step.Verify != nil {
		return g.verify(where, step.Verify, events)
	}
	return nil
}

func (g *TestGameScript) placeBet(where string, bet ScriptBet) error {
	betType, err := craps.ParseBetType(bet.Type)
	if err != nil {
		return fmt.Errorf("[%s] %v", where, err)
	}
	err = g.table.PlaceBet(game.BetRequest{
		Player: bet.Player,
		Type:   betType,
		Number: bet.Number,
		Amount: bet.Amount,
		TurnOn: bet.TurnOn,
	})
	if !bet.Reject {
		if err != nil {
			return fmt.Errorf("[%s] Expected bet to be accepted: %v", where, err)
		}
		return nil
	}

	if err == nil {
		return fmt.Errorf("[%s] Expected %s bet by %s to be rejected", where, betType, bet.Player)
	}
	if bet.Reason != "" {
		ruleErr, ok := err.(*game.RuleViolationError)
		if !ok || ruleErr.Reason != bet.Reason {
			return fmt.Errorf("[%s] %s bet by %s rejected with [%v], expected reason [%s]",
				where, betType, bet.Player, err, bet.Reason)
		}
	}
	return nil
}

func (r *ScriptRoll) faces() (int, int, error) {
	if len(r.Dice) != 0 {
		if len(r.Dice) != 2 || !craps.ValidFace(r.Dice[0]) || !craps.ValidFace(r.Dice[1]) {
			return 0, 0, fmt.Errorf("invalid dice %v", r.Dice)
		}
		return r.Dice[0], r.Dice[1], nil
	}
	return craps.DiceForTotal(r.Total)
}

// verify collects every mismatch so a failing step reports all of them.
func (g *TestGameScript) verify(where string, verify *ScriptVerify, events []string) error {
	var failures []error
	fail := func(format string, args ...interface{}) {
		failures = append(failures, fmt.Errorf("[%s] "+format, append([]interface{}{where}, args...)...))
	}

	if verify.Phase != "" {
		if actual := g.table.Phase().Kind().String(); actual != verify.Phase {
			fail("Expected phase %s, actual %s", verify.Phase, actual)
		}
	}
	if verify.Point != nil {
		actual, _ := g.table.Point()
		if actual != *verify.Point {
			fail("Expected point %d, actual %d", *verify.Point, actual)
		}
	}
	if verify.Shooter != "" {
		if actual := g.table.Shooter(); actual != verify.Shooter {
			fail("Expected shooter %s, actual %s", verify.Shooter, actual)
		}
	}

	names := make([]string, 0, len(verify.Balances))
	for name := range verify.Balances {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		actual, ok := g.table.BalanceOf(name)
		if !ok {
			fail("Player %s is not seated", name)
			continue
		}
		if actual != verify.Balances[name] {
			fail("Player %s balance does not match. Expected: %d, actual: %d", name, verify.Balances[name], actual)
		}
	}

	for name, expected := range verify.FirePoints {
		actual := g.table.FirePoints(name)
		if !cmp.Equal(expected, actual, cmpopts.EquateEmpty()) {
			fail("Player %s fire points do not match. Expected: %v, actual: %v", name, expected, actual)
		}
	}

	for _, expected := range verify.Events {
		if !contains(events, expected) {
			fail("Expected event [%s] not found in %v", expected, events)
		}
	}

	for _, expected := range verify.Players {
		actual, ok := g.table.Player(expected.Name)
		if !ok {
			fail("Player %s is not seated", expected.Name)
			continue
		}
		if diff := expected.diff(actual); diff != "" {
			fail("Player %s bets do not match (-expected +actual):\n%s", expected.Name, diff)
		}
	}

	for _, e := range failures {
		g.result.addError(e)
	}
	if len(failures) != 0 {
		return failures[0]
	}
	return nil
}

// diff compares only the fields the script sets.
func (p ScriptPlayerBets) diff(actual game.PlayerView) string {
	expected := actual
	if p.Pass != nil {
		expected.Pass = *p.Pass
	}
	if p.DontPass != nil {
		expected.DontPass = *p.DontPass
	}
	if p.OddsOnPass != nil {
		expected.OddsOnPass = *p.OddsOnPass
	}
	if p.Fire != nil {
		expected.Fire = *p.Fire
	}
	if p.Place != nil {
		expected.Place = p.Place
	}
	if p.Buy != nil {
		expected.Buy = p.Buy
	}
	if p.Lay != nil {
		expected.Lay = p.Lay
	}
	if p.ComePoints != nil {
		expected.ComePoints = p.ComePoints
	}
	return cmp.Diff(expected, actual, cmpopts.EquateEmpty())
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
