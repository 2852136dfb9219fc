package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-auth/internal/config"
	"github.com/xavierca1/ligue-auth/internal/infra/auth"
	"github.com/xavierca1/ligue-auth/internal/infra/database"
	"github.com/xavierca1/ligue-auth/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-auth/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-auth/internal/infra/queue"
	"github.com/xavierca1/ligue-auth/internal/usecase"
)

type App struct {
	Config        *config.Config
	AuthHandler   *handlers.AuthHandler
	HealthHandler *handlers.HealthHandler
	rabbitMQ      *queue.RabbitMQ
}

// New monta as dependências. origin identifica o ponto de entrada
// (HTTP ou LAMBDA) nos eventos de login.
func New(cfg *config.Config, origin string) *App {
	a := &App{Config: cfg}

	// 1. Repositório (uma conexão por requisição, sem pool)
	connector := database.NewConnector(cfg.DBDriver, cfg.DatabaseURL)
	customerRepo := database.NewCustomerRepository(connector)

	// 2. Assinatura do token
	signer := auth.NewJWTSigner(cfg.JWTSecret)

	// 3. Fila de eventos (opcional)
	var producer usecase.QueueProducerInterface = queue.NoopProducer{}
	var rabbitConn handlers.ConnectionChecker
	if cfg.AMQPURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ indisponível, eventos de login desativados")
		} else {
			a.rabbitMQ = rabbitMQ
			producer = queue.NewProducer(rabbitMQ.Ch)
			rabbitConn = rabbitMQ.Conn
		}
	}

	// 4. UseCase + Handlers
	authenticateUC := usecase.NewAuthenticateCustomerUseCase(customerRepo, signer, producer, origin)
	a.AuthHandler = handlers.NewAuthHandler(authenticateUC)
	a.HealthHandler = handlers.NewHealthHandler(connector, rabbitConn, cfg.JWTSecret != "")

	return a
}

func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.Config.Origins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	}))

	r.Post("/", a.AuthHandler.Handle)
	r.Post("/auth/cpf", a.AuthHandler.Handle)
	r.Get("/health", a.HealthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Close pode ser chamado mais de uma vez (defer no HTTP, SIGTERM no Lambda).
func (a *App) Close() {
	if a.rabbitMQ == nil {
		return
	}
	if err := a.rabbitMQ.Close(); err != nil {
		log.Warn().Err(err).Msg("erro ao fechar RabbitMQ")
	}
	a.rabbitMQ = nil
}
