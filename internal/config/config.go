package config

import (
	"os"
	"time"

	"judgement-server/internal/util"
	"judgement-server/pkg/game"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Judgement server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Game   struct {
		// timings are in seconds
		TurnDuration int `yaml:"turnDuration" envconfig:"turn_duration"`
		TrickDelay   int `yaml:"trickDelay" envconfig:"trick_delay"`
		ScoringDelay int `yaml:"scoringDelay" envconfig:"scoring_delay"`
	}
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; env vars and defaults still apply
func Load() error {
	config = Config{}
	config.Addr = ":5080"
	config.Log.Level = "info"

	configFile := util.Getenv("JUDGEMENT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("judgement", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// GameOptions translates the configured timings into game options.
// Zero values fall back to the game defaults.
func (c Config) GameOptions() game.Options {
	opts := game.DefaultOptions()
	if c.Game.TurnDuration > 0 {
		opts.TurnDuration = time.Duration(c.Game.TurnDuration) * time.Second
	}
	if c.Game.TrickDelay > 0 {
		opts.TrickDelay = time.Duration(c.Game.TrickDelay) * time.Second
	}
	if c.Game.ScoringDelay > 0 {
		opts.ScoringDelay = time.Duration(c.Game.ScoringDelay) * time.Second
	}

	return opts
}
