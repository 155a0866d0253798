package main

import (
	"fmt"

	"github.com/nstepura/go-secure-vault/internal/adapter"
	"github.com/nstepura/go-secure-vault/internal/client"
	"github.com/nstepura/go-secure-vault/internal/clipboard"
	"github.com/nstepura/go-secure-vault/internal/config"
	"github.com/nstepura/go-secure-vault/internal/crypto"
	"github.com/nstepura/go-secure-vault/internal/logger"
	"github.com/nstepura/go-secure-vault/internal/service"
	"github.com/nstepura/go-secure-vault/internal/store"
	"github.com/nstepura/go-secure-vault/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("vault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage.Local, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	keychain := crypto.NewKeychain(cfg.App.KDFIterations)
	services := service.NewClientServices(serverAdapter, storages.VaultCache, keychain, log)

	guard := clipboard.NewGuard(
		clipboard.System(),
		log,
		clipboard.WithWindow(cfg.Clipboard.ExposureWindow),
		clipboard.WithResolution(cfg.Clipboard.TickResolution),
	)

	ui, err := tui.New(services, guard, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, guard, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
