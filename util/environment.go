package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

const (
	PersistMemory = "memory"
	PersistRedis  = "redis"
)

type crapsServerEnvironment struct {
	PersistMethod     string
	RedisHost         string
	RedisPort         string
	RedisPW           string
	RedisDB           string
	NatsURL           string
	RestPort          string
	LogLevel          string
	SnapshotCacheSize string
}

// Env is a helper object for accessing environment variables.
var Env = &crapsServerEnvironment{
	PersistMethod:     "PERSIST_METHOD",
	RedisHost:         "REDIS_HOST",
	RedisPort:         "REDIS_PORT",
	RedisPW:           "REDIS_PW",
	RedisDB:           "REDIS_DB",
	NatsURL:           "NATS_URL",
	RestPort:          "REST_PORT",
	LogLevel:          "LOG_LEVEL",
	SnapshotCacheSize: "SNAPSHOT_CACHE_SIZE",
}

func (e *crapsServerEnvironment) GetPersistMethod() string {
	method := strings.ToLower(os.Getenv(e.PersistMethod))
	switch method {
	case "":
		return PersistMemory
	case PersistMemory, PersistRedis:
		return method
	}
	msg := fmt.Sprintf("Invalid %s [%s]. Must be %s or %s", e.PersistMethod, method, PersistMemory, PersistRedis)
	environmentLogger.Error().Msg(msg)
	panic(msg)
}

func (e *crapsServerEnvironment) GetRedisHost() string {
	host := os.Getenv(e.RedisHost)
	if host == "" {
		msg := fmt.Sprintf("%s is not defined", e.RedisHost)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return host
}

func (e *crapsServerEnvironment) GetRedisPort() int {
	portStr := os.Getenv(e.RedisPort)
	if portStr == "" {
		return 6379
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis port %s", portStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return portNum
}

func (e *crapsServerEnvironment) GetRedisPW() string {
	return os.Getenv(e.RedisPW)
}

func (e *crapsServerEnvironment) GetRedisDB() int {
	dbStr := os.Getenv(e.RedisDB)
	if dbStr == "" {
		return 0
	}
	dbNum, err := strconv.Atoi(dbStr)
	if err != nil {
		msg := fmt.Sprintf("Invalid Redis db %s", dbStr)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return dbNum
}

func (e *crapsServerEnvironment) GetRedisURL() string {
	return fmt.Sprintf("%s:%d", e.GetRedisHost(), e.GetRedisPort())
}

// GetNatsURL returns an empty string when NATS is not configured.
func (e *crapsServerEnvironment) GetNatsURL() string {
	return os.Getenv(e.NatsURL)
}

func (e *crapsServerEnvironment) GetRestPort() int {
	s := os.Getenv(e.RestPort)
	if s == "" {
		return 8080
	}
	port, err := strconv.Atoi(s)
	if err != nil || port <= 0 {
		msg := fmt.Sprintf("Invalid integer [%s] for rest port", s)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return port
}

func (e *crapsServerEnvironment) GetZeroLogLogLevel() zerolog.Level {
	s := os.Getenv(e.LogLevel)
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		environmentLogger.Warn().Msgf("Invalid %s [%s]. Using info", e.LogLevel, s)
		return zerolog.InfoLevel
	}
	return level
}

func (e *crapsServerEnvironment) GetSnapshotCacheSize() int {
	s := os.Getenv(e.SnapshotCacheSize)
	if s == "" {
		return 64
	}
	size, err := strconv.Atoi(s)
	if err != nil || size <= 0 {
		msg := fmt.Sprintf("Invalid integer [%s] for snapshot cache size", s)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return size
}
