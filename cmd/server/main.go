package main

import (
	"log"
	"os"

	"switchcfg/config"
	"switchcfg/server"

	"github.com/joho/godotenv"
)

func main() {
	// .env if present, real env otherwise
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("SWITCHCFG_CONFIG_DIR"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var app server.App
	app.Initialize(cfg)
	if err := app.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
