package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ruhan312/bangalore-connect/internal/api"
	"github.com/ruhan312/bangalore-connect/internal/config"
	"github.com/ruhan312/bangalore-connect/internal/db"
)

func main() {
	// === config, env file ===
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load env file")
	}

	if !cfg.IsProduction() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// === job store ===
	store := db.NewFileStore(cfg.DataFile)
	if err := store.Load(); err != nil {
		log.Fatal().Err(err).Msg("cannot load the job store")
	}

	// === HTTP server ===
	server, err := api.NewServer(cfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("address", cfg.ServerAddress).
		Str("environment", cfg.Environment).
		Str("dataFile", cfg.DataFile).
		Int("jobs", len(store.All())).
		Msg("starting server")

	if err := server.Start(ctx, cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("cannot start the server")
	}
}
