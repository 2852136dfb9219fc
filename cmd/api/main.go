package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-auth/internal/app"
	"github.com/xavierca1/ligue-auth/internal/config"
	"github.com/xavierca1/ligue-auth/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuração inválida")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if cfg.DatabaseURL == "" {
		log.Warn().Msg("NEON_DATABASE_URL não definido, logins vão falhar")
	}
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET não definido, logins vão falhar")
	}

	application := app.New(cfg, "HTTP")
	defer application.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           application.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("🔐 ligue-auth rodando")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("falha no servidor HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("desligando servidor")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown forçado")
	}
}
