package main

import (
	"os"

	"github.com/abok-cymk/ai-democratizer/internal/app"
	"github.com/abok-cymk/ai-democratizer/internal/config"
	"github.com/abok-cymk/ai-democratizer/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet; write directly and refuse to start.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	if err := app.Run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("app failed")
	}
}
