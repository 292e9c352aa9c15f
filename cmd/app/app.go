package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/storekit/admin-backend/internal/app"
	config "github.com/storekit/admin-backend/internal/cfg"
	"github.com/storekit/admin-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewZapLogger()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}
