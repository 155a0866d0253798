package main

import (
	"context"
	"fmt"

	"github.com/nstepura/go-secure-vault/internal/config"
	handler "github.com/nstepura/go-secure-vault/internal/handler/http"
	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/server"
	"github.com/nstepura/go-secure-vault/internal/service"
	"github.com/nstepura/go-secure-vault/internal/store"
	"github.com/nstepura/go-secure-vault/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, cfg, log)
	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
