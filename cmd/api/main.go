package main

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/copygen"
	"server/internal/db"
	"server/internal/domain"
	"server/internal/http/handlers"
	httpapi "server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/middleware"
	"server/internal/providers/llm"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	client, err := llm.New(llm.Options{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.OpenAIModel,
		BaseURL:     cfg.OpenAIBaseURL,
		Org:         cfg.OpenAIOrg,
		Temperature: float32(cfg.Temperature),
		MaxTokens:   cfg.MaxOutputTokens,
		SpeechModel: cfg.TTSModel,
		SpeechVoice: cfg.TTSVoice,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build llm client")
	}
	generator := copygen.NewGenerator(client, logger)

	// History persistence is optional: no DATABASE_URL means the server
	// runs generation-only.
	ctx := context.Background()
	var history domain.HistoryRepository
	if cfg.DatabaseURL != "" {
		dbpool, err := infra.NewDBPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer dbpool.Close()
		if err := db.EnsureSchema(ctx, dbpool); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure schema")
		}
		history = repo.NewHistoryRepository(dbpool)
	} else {
		logger.Warn().Msg("DATABASE_URL not set, history persistence disabled")
	}

	var lookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open geoip database")
	}
	if resolver != nil {
		lookup = resolver.CountryCode
		if closer, ok := resolver.(io.Closer); ok {
			defer closer.Close()
		}
	}

	app := handlers.NewApp(logger, generator, client, history)

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		DefaultLocale:   cfg.DefaultLocale,
		RateLimitPerMin: cfg.RateLimitPerMin,
		CountryLookup:   lookup,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
