package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	TableCodeKey  string = "tableCode"
	PlayerNameKey string = "playerName"
	BetTypeKey    string = "betType"
	RollTotalKey  string = "rollTotal"
	ShooterKey    string = "shooter"
)

func getEnableColorLog() string {
	v := os.Getenv("COLORIZE_LOG")
	if v == "" {
		// Use colorized logging by default.
		return "true"
	}
	return v
}

func IsColorLoggingEnabled() bool {
	return getEnableColorLog() == "1" || strings.ToLower(getEnableColorLog()) == "true"
}

func GetZeroLogger(name string, out io.Writer) *zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	noColor := !IsColorLoggingEnabled()
	output := zerolog.ConsoleWriter{Out: out, NoColor: noColor, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Str("logger", name).Logger()
	return &logger
}

// GetTableLogger returns a logger whose entries carry the table code.
func GetTableLogger(name string, tableCode string, out io.Writer) *zerolog.Logger {
	logger := GetZeroLogger(name, out).With().Str(TableCodeKey, tableCode).Logger()
	return &logger
}
