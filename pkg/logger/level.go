package logger

import (
	"strings"

	"github.com/rengaw83/test-entity/pkg/env"
)

type Level string

func (l Level) String() string { return string(l) }

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levelAliases = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,

	"d": LevelDebug,
	"i": LevelInfo,
	"w": LevelWarn,
	"e": LevelError,
}

// ParseLevel accepts the level names and their single letter aliases, case-insensitively.
func ParseLevel(raw string) (Level, bool) {
	level, ok := levelAliases[strings.ToLower(strings.TrimSpace(raw))]
	return level, ok
}

var defaultLevel = LevelInfo

func init() {
	if level, ok := lookupLevelFromENV(); ok {
		defaultLevel = level
	}
}

func lookupLevelFromENV() (Level, bool) {
	for _, key := range []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"} {
		raw, ok, err := env.Lookup[string](key)
		if err != nil || !ok {
			continue
		}
		if level, ok := ParseLevel(raw); ok {
			return level, true
		}
	}
	return "", false
}

var levelPriority = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

func isLevelEnabled(threshold, level Level) bool {
	if _, ok := levelPriority[threshold]; !ok {
		threshold = LevelInfo
	}
	return levelPriority[threshold] <= levelPriority[level]
}
