package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-auth/internal/app"
	"github.com/xavierca1/ligue-auth/internal/config"
	"github.com/xavierca1/ligue-auth/internal/infra/lambda"
	"github.com/xavierca1/ligue-auth/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuração inválida")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	application := app.New(cfg, "LAMBDA")

	// Start não retorna; o RabbitMQ é fechado no SIGTERM do runtime.
	awslambda.StartWithOptions(
		lambda.NewHandler(application.AuthHandler).Handle,
		awslambda.WithEnableSIGTERM(application.Close),
	)
}
