package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/app"
	"github.com/vfg2006/advision-api/internal/config"
	"github.com/vfg2006/advision-api/pkg/log"
)

// O worker consome a fila de tarefas e atualiza os resumos das campanhas
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Env)

	if cfg.Queue.URL == "" {
		logrus.Fatal("AMQP_URL não configurada, o worker precisa de uma fila")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.Build(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o worker")
	}
	defer application.Close()

	logrus.WithField("queue", application.Queue.Name()).Info("Worker iniciado")

	if err := application.Queue.Consume(ctx, application.Runner.Handle); err != nil {
		logrus.WithError(err).Error("Consumidor encerrado com erro")
		return
	}

	logrus.Info("Worker encerrado")
}
