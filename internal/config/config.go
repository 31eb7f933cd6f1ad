// Package config collects the knobs of the console game: mine count,
// placement seed, run mode and log destination. Precedence is flags
// over config file over environment over defaults; the file and env
// layers live here, flags belong to the cmd.
package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Mines   int    `json:"mines"`
	Seed    uint64 `json:"seed"`
	Mode    string `json:"mode"`
	LogPath string `json:"log_path"`
}

func Default() Config {
	return Config{
		LogPath: "minesweeper.log",
	}
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"mines":    c.Mines,
		"seed":     c.Seed,
		"mode":     c.Mode,
		"log_path": c.LogPath,
	}
}

func Read(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

// FromEnv overlays MINESWEEPER_* variables onto config. Unset or
// malformed values leave the current value in place.
func FromEnv(config *Config) {
	if v, err := strconv.Atoi(os.Getenv("MINESWEEPER_MINES")); err == nil {
		config.Mines = v
	}
	if v, err := strconv.ParseUint(os.Getenv("MINESWEEPER_SEED"), 10, 64); err == nil {
		config.Seed = v
	}
	if v, ok := os.LookupEnv("MINESWEEPER_MODE"); ok {
		config.Mode = v
	}
	if v, ok := os.LookupEnv("MINESWEEPER_LOG"); ok {
		config.LogPath = v
	}
}
