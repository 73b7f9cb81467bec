package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Spawn4Probability: 0.1,
			WinTile:           2048,
		},
		TickRate: 60,
		Storage: StorageConfig{
			DBPath: "~/.arcade/scores.db",
		},
		Server: ServerConfig{
			SSHAddr:     ":23234",
			IdleTimeout: 30 * time.Minute,
			WebAddr:     ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
