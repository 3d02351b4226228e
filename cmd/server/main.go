package main

import (
	"context"
	"fmt"

	"github.com/echoharbor/auth-core/internal/config"
	myHTTP "github.com/echoharbor/auth-core/internal/handler/http"
	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/internal/notify"
	"github.com/echoharbor/auth-core/internal/server"
	"github.com/echoharbor/auth-core/internal/service"
	"github.com/echoharbor/auth-core/internal/session"
	"github.com/echoharbor/auth-core/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-core")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	kv, err := session.NewRedisKV(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting session store")
	}

	codec := session.NewCodec(cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.SessionTTL)
	sessions := session.NewManager(kv, codec, cfg.App.SessionCookieName, cfg.App.SessionTTL, log)

	notifier := notify.NewNotifier(cfg.Notify, log)

	services := service.NewServices(cfg.App, storages, sessions, notifier, log)

	handler := myHTTP.NewHandler(services, sessions, cfg.App, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
