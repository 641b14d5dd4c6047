package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"PLANNER_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("PLANNER_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("PLANNER_OUTPUT_DIR", "/tmp/reports")
	t.Setenv("PLANNER_FORMAT", "xlsx")
	t.Setenv("PLANNER_DEBUG", "true")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/reports", s.OutputDir)
	assert.Equal(t, "xlsx", s.Format)
	assert.Equal(t, ":8080", s.Addr)
	assert.True(t, s.Debug)
}
