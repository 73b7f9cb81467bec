package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvDBPath      = "ARCADE_DB"
	EnvWebAddr     = "ARCADE_WEB_ADDR"
	EnvSSHAddr     = "ARCADE_SSH_ADDR"
	EnvHostKey     = "ARCADE_HOST_KEY"
	EnvIdleTimeout = "ARCADE_IDLE_TIMEOUT"
	EnvShareURL    = "ARCADE_SHARE_URL"
	EnvLogLevel    = "ARCADE_LOG_LEVEL"
	EnvSpawn4      = "ARCADE_SPAWN4_PROBABILITY"
)

// Load loads the arcade configuration and applies environment overrides.
// Search order: customPath -> ~/.arcade/configs/2048.yaml -> ./configs/2048.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("2048.yaml"), filepath.Join("configs", "2048.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadDotEnv loads variables from the given .env files (default ./.env)
// without overriding variables already set. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with ARCADE_* environment variables.
func ApplyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString(EnvDBPath, &cfg.Storage.DBPath)
	setString(EnvWebAddr, &cfg.Server.WebAddr)
	setString(EnvSSHAddr, &cfg.Server.SSHAddr)
	setString(EnvHostKey, &cfg.Server.HostKeyPath)
	setString(EnvShareURL, &cfg.Share.URL)
	setString(EnvLogLevel, &cfg.Log.Level)

	if v, ok := os.LookupEnv(EnvIdleTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s: %w", EnvIdleTimeout, err)
		}
		cfg.Server.IdleTimeout = d
	}

	if v, ok := os.LookupEnv(EnvSpawn4); ok && v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: invalid %s: %w", EnvSpawn4, err)
		}
		cfg.Game.Spawn4Probability = p
	}

	return nil
}
