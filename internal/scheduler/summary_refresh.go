package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/config"
	"github.com/vfg2006/advision-api/pkg/timezone"
)

// SummaryEnqueuer publica a tarefa de atualização de todos os resumos
type SummaryEnqueuer interface {
	EnqueueAllCampaignSummaries(ctx context.Context) error
}

// SummaryRefreshService agenda a atualização periódica dos resumos de campanhas.
// O trabalho em si roda no worker, aqui apenas a tarefa é publicada.
type SummaryRefreshService struct {
	scheduler         *gocron.Scheduler
	config            config.SummaryRefresh
	enqueuer          SummaryEnqueuer
	clock             *timezone.Clock
	syncRunning       bool
	syncMutex         sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastError         string
}

func NewSummaryRefreshService(enqueuer SummaryEnqueuer, cfg config.SummaryRefresh, clock *timezone.Clock) *SummaryRefreshService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do agendador de resumos carregada")

	return &SummaryRefreshService{
		scheduler: gocron.NewScheduler(clock.Location()),
		config:    cfg,
		enqueuer:  enqueuer,
		clock:     clock,
	}
}

// Start inicia o agendador
func (s *SummaryRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização agendada de resumos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de resumos de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de resumos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de resumos de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SummaryRefreshService) refresh(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de resumos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastRunStartedAt = s.clock.Now()
	s.syncMutex.Unlock()

	err := s.enqueuer.EnqueueAllCampaignSummaries(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastRunFinishedAt = s.clock.Now()
	s.lastError = ""

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao publicar atualização de resumos")
		return
	}

	logrus.WithField("duration", s.lastRunFinishedAt.Sub(s.lastRunStartedAt).String()).Info("Atualização de resumos publicada")
}

// TriggerManualSync dispara uma atualização fora do agendamento
func (s *SummaryRefreshService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Atualização de resumos já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando atualização manual de resumos")
	go s.refresh(context.WithoutCancel(ctx))
}

// GetStatus retorna o status atual do agendador
func (s *SummaryRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":              s.config.Enabled,
		"cron":                 s.config.CronSchedule,
		"running":              s.syncRunning,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
		"last_error":           s.lastError,
	}
}
