// Package config provides YAML-based configuration loading for the arcade:
// game rules, storage location, server addresses and logging.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete arcade configuration.
type Config struct {
	Game     GameConfig    `yaml:"game"`
	TickRate int           `yaml:"tick_rate"`
	Storage  StorageConfig `yaml:"storage"`
	Server   ServerConfig  `yaml:"server"`
	Share    ShareConfig   `yaml:"share"`
	Log      LogConfig     `yaml:"log"`
}

// GameConfig defines the 2048 rules.
type GameConfig struct {
	Spawn4Probability float64 `yaml:"spawn4_probability"`
	WinTile           int     `yaml:"win_tile"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH and web listeners.
type ServerConfig struct {
	SSHAddr     string        `yaml:"ssh_addr"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	WebAddr     string        `yaml:"web_addr"`
}

// ShareConfig defines the share action.
type ShareConfig struct {
	URL string `yaml:"url"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks that the rule values are playable.
func (c Config) Validate() error {
	var errs []error

	p := c.Game.Spawn4Probability
	if p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("game.spawn4_probability must be within [0, 1], got %v", p))
	}

	w := c.Game.WinTile
	if w < 4 || w&(w-1) != 0 {
		errs = append(errs, fmt.Errorf("game.win_tile must be a power of two >= 4, got %d", w))
	}

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}

	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
