package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds everything the tool needs beyond the play description:
// API credentials, the optional osu_session cookie for beatmapset
// downloads, the performance server address and the cache location.
type Config struct {
	ClientID      int
	ClientSecret  string
	Session       string
	CalculatorURL string
	CachePath     string
}

// fileConfig maps the TOML file. Pointer fields so an absent key can be
// told apart from a zero value.
type fileConfig struct {
	ClientID      *int    `toml:"client-id"`
	ClientSecret  *string `toml:"client-secret"`
	Session       *string `toml:"session"`
	CalculatorURL *string `toml:"calculator-url"`
	CachePath     *string `toml:"cache-path"`
}

const defaultCalculatorURL = "http://127.0.0.1:7271"

// LoadConfig reads the TOML file (a missing file is fine), then applies
// environment overrides: OSU_CLIENT_ID, OSU_CLIENT_SECRET, OSU_SESSION,
// PPGAIN_CALCULATOR_URL, PPGAIN_CACHE.
func LoadConfig(path string) (Config, error) {
	var fc fileConfig
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &fc); err != nil {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	cfg := Config{CalculatorURL: defaultCalculatorURL}
	if fc.ClientID != nil {
		cfg.ClientID = *fc.ClientID
	}
	if fc.ClientSecret != nil {
		cfg.ClientSecret = *fc.ClientSecret
	}
	if fc.Session != nil {
		cfg.Session = *fc.Session
	}
	if fc.CalculatorURL != nil {
		cfg.CalculatorURL = *fc.CalculatorURL
	}
	if fc.CachePath != nil {
		cfg.CachePath = *fc.CachePath
	}

	if v := os.Getenv("OSU_CLIENT_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("OSU_CLIENT_ID must be an integer client id: %w", err)
		}
		cfg.ClientID = id
	}
	if v := os.Getenv("OSU_CLIENT_SECRET"); v != "" {
		cfg.ClientSecret = v
	}
	if v := os.Getenv("OSU_SESSION"); v != "" {
		cfg.Session = v
	}
	if v := os.Getenv("PPGAIN_CALCULATOR_URL"); v != "" {
		cfg.CalculatorURL = v
	}
	if v := os.Getenv("PPGAIN_CACHE"); v != "" {
		cfg.CachePath = v
	}

	if cfg.CachePath == "" {
		if dir, err := os.UserCacheDir(); err == nil {
			cfg.CachePath = filepath.Join(dir, "ppgain", "beatmaps.db")
		}
	}

	if cfg.ClientID == 0 || cfg.ClientSecret == "" {
		return Config{}, fmt.Errorf("missing osu! API credentials: set OSU_CLIENT_ID and OSU_CLIENT_SECRET or client-id/client-secret in %s", path)
	}
	return cfg, nil
}

// DefaultConfigPath points into the user config directory, alongside the
// other XDG-style tools.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ppgain", "config.toml")
}
