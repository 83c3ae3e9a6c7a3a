package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"game-shelf/internal/config"
	"game-shelf/internal/db"
	"game-shelf/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	srv := server.New(conn, cfg)
	addr := ":" + cfg.Port
	log.Printf("game-shelf server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
