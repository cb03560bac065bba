package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/smartautorental/rentctl/internal/client/cli"
	"github.com/smartautorental/rentctl/internal/client/config"
	"github.com/smartautorental/rentctl/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := logging.NewTextLogger(os.Stderr, level)

	app := cli.NewApp(cfg, log)
	app.Run(context.Background())
}
