package test

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/godo.v2/glob"
	"gopkg.in/yaml.v3"
)

var testDriverLogger = log.With().Str("logger_name", "test::testdriver").Logger()

// ScriptTestResult tracks one script. Rolls, Bets and Events count the throws
// made, the placements attempted and the table messages those throws produced.
type ScriptTestResult struct {
	Filename string
	Passed   bool
	Failures []error
	Disabled bool

	Rolls  int
	Bets   int
	Events int
}

func (s *ScriptTestResult) addError(e error) {
	s.Failures = append(s.Failures, e)
}

// runs game scripts and captures the results
// and output the results at the end
type TestDriver struct {
	ScriptResult map[string]*ScriptTestResult
	ScriptFiles  []string
}

func NewTestDriver() *TestDriver {
	return &TestDriver{ScriptResult: make(map[string]*ScriptTestResult), ScriptFiles: make([]string, 0)}
}

func (t *TestDriver) RunGameScript(filename string) error {
	fmt.Printf("Running game script: %s\n", filename)
	result := &ScriptTestResult{Filename: filename, Failures: make([]error, 0)}
	t.ScriptResult[filename] = result
	t.ScriptFiles = append(t.ScriptFiles, filename)

	// load game script
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		fmt.Printf("Failed to load file: %s\n", filename)
		result.addError(err)
		return err
	}

	var gameScript GameScript
	err = yaml.Unmarshal(data, &gameScript)
	if err != nil {
		fmt.Printf("Loading yaml failed: %s, err: %v\n", filename, err)
		result.addError(err)
		return err
	}
	if gameScript.Disabled {
		result.Disabled = true
		return nil
	}
	if gameScript.Description != "" {
		fmt.Printf("  %s\n", gameScript.Description)
	}

	testGameScript := TestGameScript{
		gameScript: &gameScript,
		filename:   filename,
		result:     result,
	}

	e := testGameScript.run(t)
	if e != nil {
		if len(result.Failures) == 0 {
			result.addError(e)
		}
		return e
	}
	result.Passed = true
	return nil
}

// ReportResult prints each script's outcome with its roll, bet and event
// counts and reports whether every enabled script passed.
func (t *TestDriver) ReportResult() bool {
	passed := true
	var rolls, events int
	for _, scriptFile := range t.ScriptFiles {
		result := t.ScriptResult[scriptFile]
		if result.Disabled {
			fmt.Printf("Script %s is disabled\n", result.Filename)
			continue
		}
		rolls += result.Rolls
		events += result.Events

		if len(result.Failures) == 0 {
			fmt.Printf("Script %s passed: %d rolls, %d bets, %d events\n",
				scriptFile, result.Rolls, result.Bets, result.Events)
			continue
		}
		passed = false
		fmt.Printf("Script %s failed after %d rolls\n", scriptFile, result.Rolls)
		fmt.Printf("===========================\n")
		for _, e := range result.Failures {
			fmt.Printf("%s\n", e.Error())
		}
		fmt.Printf("===========================\n")
	}
	fmt.Printf("%d scripts, %d rolls, %d events\n", len(t.ScriptFiles), rolls, events)
	return passed
}

// RunGameScriptTests runs a single script or every script under a directory.
// testName limits the run to files whose name contains it.
func RunGameScriptTests(fileOrDir string, testName string) error {
	info, err := os.Stat(fileOrDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s does not exist", fileOrDir)
	}
	pattern := fileOrDir
	if info.IsDir() {
		pattern = fmt.Sprintf("%s/**/*.yaml", fileOrDir)
	}
	patterns := []string{pattern}
	files, _, err := glob.Glob(patterns)
	if err != nil {
		return errors.Wrapf(err, "Failed to get game script file(s) from dir: %s", fileOrDir)
	}

	testDriver := NewTestDriver()
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if testName != "" {
			if !strings.Contains(file.Name(), testName) {
				continue
			}
		}
		fmt.Printf("----------------------------------------------\n")
		err = testDriver.RunGameScript(file.Path)
		if err != nil {
			testDriverLogger.Debug().Msgf("Script %s failed: %v", file.Path, err)
		}
		fmt.Printf("----------------------------------------------\n")
	}

	passed := testDriver.ReportResult()
	if !passed {
		return fmt.Errorf("One or more scripts failed")
	}
	fmt.Printf("All scripts passed\n")
	return nil
}
