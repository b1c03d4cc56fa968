// @title GründerAI Assessment API
// @version 1.0
// @description Scientific readiness assessment for Gründungszuschuss applications.

// @contact.name API Support

// @host localhost:8000
// @BasePath /

package main

import (
	"flag"
	"log"

	"gruenderai_backend/internal/app"
	"gruenderai_backend/internal/config"
	"gruenderai_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ConfigPath = *configPath

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
