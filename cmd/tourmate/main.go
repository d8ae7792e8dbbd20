package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/tourmate-app/tourmate-cli/internal/cli"
	"github.com/tourmate-app/tourmate-cli/internal/config"
	"github.com/tourmate-app/tourmate-cli/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.NewZapLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(context.Background())
}
