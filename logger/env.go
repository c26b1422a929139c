package logger

import (
	"os"
	"strconv"
)

const (
	envLogLevel = "LOG_LEVEL"
	envDebug    = "DEBUG"
)

func envBool(env string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(env))
	if err != nil {
		return def
	}

	return b
}

func envInt(env string) (int, bool) {
	v, err := strconv.Atoi(os.Getenv(env))
	if err != nil {
		return 0, false
	}

	return v, true
}
