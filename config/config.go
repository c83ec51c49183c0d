package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. These are the defaults for the command line
// flags and can be tuned from the environment.
var (
	Rows         = getEnvInt("SNAKE_ROWS", 16)
	Cols         = getEnvInt("SNAKE_COLS", 16)
	TickInterval = time.Duration(getEnvInt("SNAKE_TICK_MS", 200)) * time.Millisecond
	InputRate    = rate.Limit(getEnvInt("SNAKE_INPUT_RPS", 20))
	InputBurst   = getEnvInt("SNAKE_INPUT_BURST", 4)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil || intVal <= 0 {
		return defaults
	}
	return int(intVal)
}
