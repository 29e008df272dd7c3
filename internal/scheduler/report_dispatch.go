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

// ReportDispatcher gera os relatórios com execução vencida
type ReportDispatcher interface {
	DispatchDueSchedules(ctx context.Context) (int, error)
}

// ReportDispatchService verifica periodicamente os agendamentos de relatórios
type ReportDispatchService struct {
	scheduler         *gocron.Scheduler
	config            config.ReportDispatch
	dispatcher        ReportDispatcher
	clock             *timezone.Clock
	syncRunning       bool
	syncMutex         sync.Mutex
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastGenerated     int
	lastError         string
}

func NewReportDispatchService(dispatcher ReportDispatcher, cfg config.ReportDispatch, clock *timezone.Clock) *ReportDispatchService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportDispatchService{
		scheduler:  gocron.NewScheduler(clock.Location()),
		config:     cfg,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

// Start inicia o agendador
func (s *ReportDispatchService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Envio agendado de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.dispatch(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar envio de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReportDispatchService) dispatch(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastRunStartedAt = s.clock.Now()
	s.syncMutex.Unlock()

	generated, err := s.dispatcher.DispatchDueSchedules(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastRunFinishedAt = s.clock.Now()
	s.lastGenerated = generated
	s.lastError = ""

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao gerar relatórios agendados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"generated": generated,
		"duration":  s.lastRunFinishedAt.Sub(s.lastRunStartedAt).String(),
	}).Debug("Verificação de relatórios agendados concluída")
}

// TriggerManualSync gera os relatórios vencidos fora do agendamento
func (s *ReportDispatchService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Geração de relatórios já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando geração manual de relatórios agendados")
	go s.dispatch(context.WithoutCancel(ctx))
}

// GetStatus retorna o status atual do agendador
func (s *ReportDispatchService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":              s.config.Enabled,
		"cron":                 s.config.CronSchedule,
		"running":              s.syncRunning,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
		"last_generated":       s.lastGenerated,
		"last_error":           s.lastError,
	}
}
