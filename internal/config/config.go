// Package config loads mindweave settings from a TOML file with working
// defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all mindweave settings.
type Config struct {
	OpenAI OpenAIConfig `toml:"openai"`
	Chat   ChatConfig   `toml:"chat"`
	Probe  ProbeConfig  `toml:"probe"`
	Serve  ServeConfig  `toml:"serve"`
}

// OpenAIConfig controls the generation service client.
type OpenAIConfig struct {
	BaseURL     string  `toml:"base_url"`
	APIKeyEnv   string  `toml:"api_key_env"` // env var holding the key, never the key itself
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	TimeoutSecs int     `toml:"timeout_secs"`
}

// ChatConfig controls the follow-up conversation.
type ChatConfig struct {
	// MaxTurns bounds how many transcript turns are resubmitted per chat
	// request. 0 means unbounded.
	MaxTurns int `toml:"max_turns"`
}

// ProbeConfig controls URL reachability checks.
type ProbeConfig struct {
	TimeoutSecs   int    `toml:"timeout_secs"`
	CachePath     string `toml:"cache_path"` // empty disables the cache
	CacheTTLHours int    `toml:"cache_ttl_hours"`
}

// ServeConfig controls the HTTP API.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			APIKeyEnv:   "OPENAI_API_KEY",
			Model:       "gpt-4o-mini",
			Temperature: 0.7,
			MaxTokens:   1000,
			TimeoutSecs: 60,
		},
		Chat: ChatConfig{MaxTurns: 40},
		Probe: ProbeConfig{
			TimeoutSecs:   3,
			CachePath:     defaultCachePath(),
			CacheTTLHours: 24,
		},
		Serve: ServeConfig{Addr: "127.0.0.1:8741"},
	}
}

// Load reads the config file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds the config file using priority: env > flag > walk-up > XDG
// fallback. Returns "" (use defaults) when nothing is found; a flag path that
// does not exist is an error, since the user asked for it explicitly.
func Discover(flagPath string) (string, error) {
	if envPath := os.Getenv("MINDWEAVE_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	if flagPath != "" {
		if _, err := os.Stat(flagPath); err == nil {
			return flagPath, nil
		}
		return "", fmt.Errorf("config not found at --config path: %s", flagPath)
	}

	if dir, err := os.Getwd(); err == nil {
		for {
			candidate := filepath.Join(dir, "mindweave.toml")
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "mindweave", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath, nil
		}
	}

	return "", nil
}

// APIKey resolves the generation service key from the configured env var.
func (c *Config) APIKey() string {
	if c.OpenAI.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.OpenAI.APIKeyEnv)
}

// RequestTimeout returns the generation call timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.OpenAI.TimeoutSecs) * time.Second
}

// ProbeTimeout returns the URL probe timeout as a duration.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Probe.TimeoutSecs) * time.Second
}

// ProbeCacheTTL returns the probe cache entry lifetime.
func (c *Config) ProbeCacheTTL() time.Duration {
	return time.Duration(c.Probe.CacheTTLHours) * time.Hour
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "mindweave", "probe.db")
}
