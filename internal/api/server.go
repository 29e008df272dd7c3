package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/api/handler"
	"github.com/vfg2006/advision-api/internal/api/handler/router"
	"github.com/vfg2006/advision-api/internal/config"
	"github.com/vfg2006/advision-api/internal/usecases/analyzing"
	"github.com/vfg2006/advision-api/internal/usecases/authenticating"
	"github.com/vfg2006/advision-api/internal/usecases/campaigning"
	"github.com/vfg2006/advision-api/internal/usecases/credentialing"
	"github.com/vfg2006/advision-api/internal/usecases/experimenting"
	"github.com/vfg2006/advision-api/internal/usecases/predicting"
	"github.com/vfg2006/advision-api/internal/usecases/reporting"
	"github.com/vfg2006/advision-api/pkg/middleware"
)

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Campaigns     campaigning.CampaignService
	Analyzer      analyzing.Analyzer
	Experimenter  experimenting.Experimenter
	Predictor     predicting.Predictor
	Reporter      reporting.Reporter
	Credentials   credentialing.CredentialService
	CronJobs      handler.CronJobServices
	HealthChecks  map[string]handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("autenticador não configurado")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.HealthChecks)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Campaigns(services.Campaigns)...),
		router.WithRoutes(handler.Analytics(services.Analyzer)...),
		router.WithRoutes(handler.ABTests(services.Experimenter)...),
		router.WithRoutes(handler.Predictive(services.Predictor)...),
		router.WithRoutes(handler.Reports(services.Reporter)...),
		router.WithRoutes(handler.APIKeys(services.Credentials)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}

	if cfg.IsProduction() {
		middlewares = append(middlewares, middleware.AllowedHosts(cfg.AllowedHosts()))
	}

	middlewares = append(middlewares,
		middleware.Cors(cfg.AllowedOrigins()),
		middleware.AuthMiddleware(services.Authenticator),
	)

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
