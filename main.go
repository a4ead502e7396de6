package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	chatx "github.com/nileshdh/restaurant-agent/agent/chat"
	"github.com/nileshdh/restaurant-agent/agent/orchestrator"
	promptx "github.com/nileshdh/restaurant-agent/agent/prompt"
	storex "github.com/nileshdh/restaurant-agent/agent/store"
	toolx "github.com/nileshdh/restaurant-agent/agent/tool"
	configx "github.com/nileshdh/restaurant-agent/pkg/config"
	_ "github.com/nileshdh/restaurant-agent/pkg/logger/autoload"
	openrouterx "github.com/nileshdh/restaurant-agent/pkg/openrouter"
	"github.com/nileshdh/restaurant-agent/server"
)

type AppConfig struct {
	StoreBackend  string `envconfig:"STORE_BACKEND" split_words:"true" default:"sheets"`
	MaxRoundTrips int    `envconfig:"MAX_ROUND_TRIPS" split_words:"true" default:"10"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCfg := configx.MustNew[AppConfig]("")

	openRouterCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
	chatModel, err := openRouterCfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize chat model")
	}

	sdkClient, err := openrouterx.NewClient(*openRouterCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize openrouter client")
	}
	if err := openrouterx.VerifyCredentials(ctx, sdkClient); err != nil {
		// Non-fatal: the provider may be briefly unreachable at boot.
		log.Warn().Err(err).Msg("openrouter credential check failed")
	}

	recordStore := newRecordStore(ctx, appCfg.StoreBackend)

	registry, err := toolx.NewRegistry(recordStore)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize tool registry")
	}

	orch, err := orchestrator.New(chatModel, registry, promptx.System(), orchestrator.Config{
		MaxRoundTrips: appCfg.MaxRoundTrips,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("initialize orchestrator")
	}

	chatSvc, err := chatx.NewService(orch)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize chat service")
	}

	serverCfg := configx.MustNew[server.Config]("HTTP")
	srv, err := server.New(*serverCfg, chatSvc)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize http server")
	}

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func newRecordStore(ctx context.Context, backend string) storex.Store {
	switch backend {
	case "sheets", "":
		cfg := configx.MustNew[storex.SheetsConfig]("GOOGLE")
		st, err := storex.NewSheetsStore(ctx, *cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to google sheets")
		}
		return st
	case "postgres":
		cfg := configx.MustNew[storex.PostgresConfig]("POSTGRES")
		st, err := storex.NewPostgresStore(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres store")
		}
		if err := st.Init(ctx); err != nil {
			log.Fatal().Err(err).Msg("initialize postgres store")
		}
		return st
	default:
		log.Fatal().Str("backend", backend).Msg("unknown STORE_BACKEND")
		return nil
	}
}
