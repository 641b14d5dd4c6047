package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are process-level options for the planner CLI and server.
type Settings struct {
	OutputDir string `env:"PLANNER_OUTPUT_DIR" envDefault:"."`
	Format    string `env:"PLANNER_FORMAT" envDefault:"console"`
	Addr      string `env:"PLANNER_ADDR" envDefault:":8080"`
	Debug     bool   `env:"PLANNER_DEBUG" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
