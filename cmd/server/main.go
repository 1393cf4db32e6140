// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"

	"github.com/ghostnote/ghostnote/internal/config"
	"github.com/ghostnote/ghostnote/internal/crypto"
	myHTTP "github.com/ghostnote/ghostnote/internal/handler/http"
	"github.com/ghostnote/ghostnote/internal/logger"
	"github.com/ghostnote/ghostnote/internal/server"
	"github.com/ghostnote/ghostnote/internal/service"
	"github.com/ghostnote/ghostnote/internal/store"
	"github.com/ghostnote/ghostnote/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ghostnote-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	engine, err := crypto.NewEngine(cfg.App.MasterKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating crypto engine")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, engine, cfg, log)
	handler := myHTTP.NewHandler(services, log)

	purge := workers.NewPurgeWorker(storages.SecretRepository, log)
	purge.Start(ctx, cfg.Workers.PurgeInterval)
	defer purge.Stop()

	srv, err := server.NewServer(handler, cfg.Server, log)
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
