package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/api"
	"github.com/vfg2006/advision-api/internal/api/handler"
	"github.com/vfg2006/advision-api/internal/app"
	"github.com/vfg2006/advision-api/internal/config"
	"github.com/vfg2006/advision-api/internal/scheduler"
	"github.com/vfg2006/advision-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.Build(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer application.Close()

	summaryRefreshService := scheduler.NewSummaryRefreshService(application.Enqueuer, cfg.SummaryRefresh, application.Clock)
	reportDispatchService := scheduler.NewReportDispatchService(application.Reporter, cfg.ReportDispatch, application.Clock)

	// Inicia os agendadores em background
	if err := summaryRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de resumos")
	} else {
		logrus.Info("Agendador de atualização de resumos iniciado com sucesso")
	}

	if err := reportDispatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios")
	} else {
		logrus.Info("Agendador de relatórios iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: application.Authenticator,
		Campaigns:     application.Campaigns,
		Analyzer:      application.Analyzer,
		Experimenter:  application.Experimenter,
		Predictor:     application.Predictor,
		Reporter:      application.Reporter,
		Credentials:   application.Credentials,
		CronJobs: handler.CronJobServices{
			SummaryRefresh: summaryRefreshService,
			ReportDispatch: reportDispatchService,
		},
		HealthChecks: application.HealthChecks(),
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
