package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"voyager.com/craps/game"
	"voyager.com/craps/logging"
	"voyager.com/craps/nats"
	"voyager.com/craps/rest"
	"voyager.com/craps/test"
	"voyager.com/craps/util"
)

var runServer *bool
var runGameScriptTests *bool
var gameScriptsFileOrDir *string
var tableConfigFile *string
var testName *string
var mainLogger = logging.GetZeroLogger("main::main", nil)

func init() {
	runServer = flag.Bool("server", true, "runs the craps table server")
	runGameScriptTests = flag.Bool("script-tests", false, "runs script tests")
	gameScriptsFileOrDir = flag.String("game-script", "test/game-scripts", "runs tests with game script files")
	tableConfigFile = flag.String("table-config", "table.yaml", "YAML file with the table code, starting balance and players")
	testName = flag.String("testname", "", "runs a specific test")
}

func main() {
	err := run()
	if err != nil {
		mainLogger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func run() error {
	logLevel := util.Env.GetZeroLogLogLevel()
	fmt.Printf("Setting log level to %s\n", logLevel)
	zerolog.SetGlobalLevel(logLevel)
	flag.Parse()

	if *runGameScriptTests {
		return test.RunGameScriptTests(*gameScriptsFileOrDir, *testName)
	}
	if !*runServer {
		return nil
	}

	config, err := game.ParseTableConfig(*tableConfigFile)
	if err != nil {
		return errors.Wrap(err, "Error while parsing table config")
	}

	persist, err := newTableStateTracker()
	if err != nil {
		return err
	}

	sinks := game.MultiEventSink{
		game.NewLogEventSink(logging.GetTableLogger("game::events", config.Code, nil)),
	}
	var natsTable *nats.NatsTable
	natsURL := util.Env.GetNatsURL()
	if natsURL != "" {
		mainLogger.Info().Msgf("NATS URL: %s", natsURL)
		nc, err := nats.Connect(natsURL)
		if err != nil {
			return err
		}
		defer nc.Close()
		natsTable = nats.NewNatsTable(nc, config.Code)
		sinks = append(sinks, natsTable)
	}

	table, err := openTable(config, sinks, persist)
	if err != nil {
		return err
	}

	if natsTable != nil {
		err = natsTable.Serve(table)
		if err != nil {
			return err
		}
		defer natsTable.Cleanup()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- rest.RunRestServer(table, util.Env.GetRestPort())
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case err = <-errCh:
		return err
	case sig := <-sigCh:
		mainLogger.Info().Msgf("Received %s. Shutting down", sig)
	}
	return nil
}

func newTableStateTracker() (game.PersistTableState, error) {
	switch util.Env.GetPersistMethod() {
	case util.PersistRedis:
		redisURL := util.Env.GetRedisURL()
		mainLogger.Info().Msgf("Persisting table state to redis at %s", redisURL)
		tracker := game.NewRedisTableStateTracker(redisURL, util.Env.GetRedisPW(), util.Env.GetRedisDB())
		err := tracker.Ping(context.Background())
		if err != nil {
			return nil, err
		}
		return tracker, nil
	default:
		mainLogger.Info().Msg("Persisting table state in memory")
		return game.NewMemoryTableStateTracker(util.Env.GetSnapshotCacheSize())
	}
}

// openTable resumes the table from its last snapshot when one exists.
func openTable(config *game.TableConfig, sink game.EventSink, persist game.PersistTableState) (*game.Table, error) {
	snapshot, err := persist.Load(config.Code)
	if err == nil {
		mainLogger.Info().Str(logging.TableCodeKey, config.Code).
			Msgf("Restoring table from snapshot at roll %d", snapshot.RollCount)
		table, err := game.RestoreTable(snapshot, nil, sink, persist)
		if err != nil {
			return nil, errors.Wrap(err, "Error while restoring table")
		}
		return table, nil
	}
	if errors.Cause(err) != game.ErrSnapshotNotFound {
		return nil, errors.Wrap(err, "Error while loading table snapshot")
	}

	table, err := game.NewTable(config, nil, sink, persist)
	if err != nil {
		return nil, errors.Wrap(err, "Error while creating table")
	}
	return table, nil
}
