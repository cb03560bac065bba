// Package config assembles the CLI's runtime settings. Sources are layered,
// later ones overriding earlier ones:
//
//	defaults -> .env file / environment -> JSON file (-c/-config) -> flags
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the rentctl CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the Smart Auto Rental backend.
//   - SessionFile: where the persisted {token, user} entry lives.
//   - NoticeDuration: how long a notice stays in the status line.
//   - TopRentedLimit / ReportBranchID / ReportFrom / ReportTo: the fixed
//     parameters of the admin report load.
//   - Verbose: enables debug logging to stderr.
type Config struct {
	APIBaseURL     string
	SessionFile    string
	NoticeDuration time.Duration
	TopRentedLimit int
	ReportBranchID string
	ReportFrom     string
	ReportTo       string
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.SessionFile = defaultSessionFile()
	c.NoticeDuration = 2600 * time.Millisecond
	c.TopRentedLimit = 5
	c.ReportBranchID = "1"
	c.ReportFrom = "2026-03-01T00:00:00Z"
	c.ReportTo = "2026-03-31T00:00:00Z"
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".rentctl", "session.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present), and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
