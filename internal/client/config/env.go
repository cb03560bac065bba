package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartautorental/rentctl/internal/flagx"
)

// parseEnv overlays Config with values from the process environment, after
// loading a .env file if one is present (path from -e/-env, default ".env").
// A missing .env file is not an error; explicit variables still apply.
func parseEnv(cfg *Config) {
	envFile := flagx.EnvFileFlags()
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	if v := os.Getenv("RENTCTL_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("RENTCTL_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("RENTCTL_NOTICE_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.NoticeDuration = d
		}
	}
	if v := os.Getenv("RENTCTL_TOP_RENTED_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopRentedLimit = n
		}
	}
	if v := os.Getenv("RENTCTL_REPORT_BRANCH_ID"); v != "" {
		cfg.ReportBranchID = v
	}
	if v := os.Getenv("RENTCTL_REPORT_FROM"); v != "" {
		cfg.ReportFrom = v
	}
	if v := os.Getenv("RENTCTL_REPORT_TO"); v != "" {
		cfg.ReportTo = v
	}
}
