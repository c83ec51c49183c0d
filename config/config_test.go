package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnvInt(t *testing.T) {
	const key = "SNAKE_TEST_VALUE"
	defer os.Unsetenv(key)

	require.Equal(t, 7, getEnvInt(key, 7))

	os.Setenv(key, "12")
	require.Equal(t, 12, getEnvInt(key, 7))

	os.Setenv(key, "twelve")
	require.Equal(t, 7, getEnvInt(key, 7))

	os.Setenv(key, "-3")
	require.Equal(t, 7, getEnvInt(key, 7))
}
