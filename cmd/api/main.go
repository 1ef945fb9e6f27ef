// @title        Alzheimer's Onset Risk Predictor API
// @version      1.0
// @description  Submits eight self-reported risk factors to a language model using the caller's own OpenAI API key.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AlzheimerRiskPredictor/internal/auth"
	"AlzheimerRiskPredictor/internal/config"
	"AlzheimerRiskPredictor/internal/llm"
	"AlzheimerRiskPredictor/internal/server"
	"AlzheimerRiskPredictor/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if level > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("gracefulShutdown(): shutting down, press Ctrl+C again to force")
	stop()

	// in-flight assessments may still be waiting on the upstream call
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("gracefulShutdown(): server forced to shutdown")
	}

	done <- true
}

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("main(): failed to load configuration")
	}
	setupLogger(cfg)

	client := llm.NewClient(
		llm.WithEndpoint(cfg.OpenAI.Endpoint),
		llm.WithModel(cfg.OpenAI.Model),
		llm.WithHTTPClient(&http.Client{Timeout: cfg.OpenAI.Timeout}),
	)
	tokens := auth.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	var opts []server.Option
	if cfg.Audit.DBPath != "" {
		store, err := storage.Open(cfg.Audit.DBPath)
		if err != nil {
			log.Fatal().Err(err).Msg("main(): failed to open audit database")
		}
		defer store.Close()
		opts = append(opts, server.WithStore(store))
	} else {
		log.Info().Msg("main(): audit log disabled")
	}

	if cfg.Narration.Enabled {
		tts, err := llm.NewTTSClient(context.Background(), cfg.Narration.CredentialsFile, cfg.Narration.Voice)
		if err != nil {
			log.Fatal().Err(err).Msg("main(): failed to initialize narration")
		}
		defer tts.Close()
		opts = append(opts, server.WithNarrator(tts))
	}
	if cfg.Server.AccessCode == "" {
		log.Warn().Msg("main(): ACCESS_CODE not set, the form is open to anyone who can reach it")
	}

	apiServer, err := server.New(cfg, client, tokens, opts...).HTTPServer()
	if err != nil {
		log.Fatal().Err(err).Msg("main(): failed to build server")
	}

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, done)

	log.Info().
		Str("addr", apiServer.Addr).
		Str("model", client.Model()).
		Bool("admin", cfg.AdminEnabled()).
		Bool("narration", cfg.Narration.Enabled).
		Msg("main(): server starting")
	if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("main(): http server error")
	}

	<-done
	log.Info().Msg("main(): graceful shutdown complete")
}
