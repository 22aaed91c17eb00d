package main

import (
	"log"
	"os"
	"strconv"

	"github.com/lmercier/dealdesk/internal/api"
	"github.com/lmercier/dealdesk/internal/config"
	"github.com/lmercier/dealdesk/internal/session"
)

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store := session.NewStore()
	srv := api.NewServer(store, cfg)

	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
