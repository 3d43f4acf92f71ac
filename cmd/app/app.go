package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/happi-pos/backend/internal/app"
	config "github.com/happi-pos/backend/internal/cfg"
	"github.com/happi-pos/backend/pkg/logger"
)

//	@title			Happi Helados POS API
//	@version		1.0
//	@description	Бэкенд кассы и дашборда магазина мороженого
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	_ = godotenv.Load()

	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
