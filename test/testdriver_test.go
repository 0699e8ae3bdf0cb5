package test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameScripts(t *testing.T) {
	require.NoError(t, RunGameScriptTests("game-scripts", ""))
}

func TestSingleGameScript(t *testing.T) {
	driver := NewTestDriver()
	require.NoError(t, driver.RunGameScript("game-scripts/fire-bet.yaml"))
	result := driver.ScriptResult["game-scripts/fire-bet.yaml"]
	require.True(t, result.Passed)
	require.Equal(t, 10, result.Rolls)
	require.Equal(t, 7, result.Bets)
	// every throw reports at least the dice
	require.GreaterOrEqual(t, result.Events, result.Rolls)
	require.True(t, driver.ReportResult())
}

func TestFailingGameScript(t *testing.T) {
	driver := NewTestDriver()
	require.Error(t, driver.RunGameScript("testdata/wrong-balance.yaml"))
	result := driver.ScriptResult["testdata/wrong-balance.yaml"]
	require.False(t, result.Passed)
	require.Equal(t, 1, result.Rolls)
	require.Equal(t, 1, result.Bets)
	// both mismatches are reported
	require.Len(t, result.Failures, 2)
	require.False(t, driver.ReportResult())

	require.Error(t, RunGameScriptTests("testdata", "wrong"))
}

func TestDisabledGameScript(t *testing.T) {
	driver := NewTestDriver()
	require.NoError(t, driver.RunGameScript("testdata/disabled.yaml"))
	require.True(t, driver.ScriptResult["testdata/disabled.yaml"].Disabled)
	require.Zero(t, driver.ScriptResult["testdata/disabled.yaml"].Rolls)
	require.True(t, driver.ReportResult())
}

func TestMissingGameScripts(t *testing.T) {
	require.Error(t, RunGameScriptTests("no-such-dir", ""))
}
