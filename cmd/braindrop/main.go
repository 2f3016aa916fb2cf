package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"braindrop/internal/adapter"
	"braindrop/internal/client"
	"braindrop/internal/config"
	"braindrop/internal/logger"
	"braindrop/internal/service"
	"braindrop/internal/store"
	"braindrop/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Printf("error getting configs: %v\n", err)
		return
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	log := logger.NewLogger("braindrop", level)

	api, err := adapter.NewHTTPRaindropAPI(cfg.API, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create raindrop.io adapter")
	}

	wayback, err := adapter.NewWaybackClient(adapter.DefaultWaybackBaseURL, cfg.API.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create wayback client")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(storages, api, log)

	ui, err := tui.New(services, wayback, cfg.Workers.AutoCheckInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(storages, api, services, ui, log)
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
