package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSummaries = "summaries"
	CronJobTypeReports   = "reports"
	CronJobTypeAll       = "all"
)

// CronJob é o contrato dos serviços agendados que podem ser disparados manualmente
type CronJob interface {
	TriggerManualSync(ctx context.Context)
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SummaryRefresh CronJob
	ReportDispatch CronJob
}

func (s CronJobServices) byType(cronType string) (map[string]CronJob, bool) {
	switch cronType {
	case CronJobTypeSummaries:
		return map[string]CronJob{cronType: s.SummaryRefresh}, true
	case CronJobTypeReports:
		return map[string]CronJob{cronType: s.ReportDispatch}, true
	case CronJobTypeAll:
		return map[string]CronJob{
			CronJobTypeSummaries: s.SummaryRefresh,
			CronJobTypeReports:   s.ReportDispatch,
		}, true
	}
	return nil, false
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := param(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: summaries, reports, all", nil)
			return
		}

		for name, job := range jobs {
			if job == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço "+name+" não disponível", nil)
				return
			}
		}

		for name, job := range jobs {
			logrus.WithField("task", name).Info("Execução manual de cron job solicitada")
			job.TriggerManualSync(r.Context())
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, _ := services.byType(CronJobTypeAll)

		status := make(map[string]any, len(jobs))
		for name, job := range jobs {
			if job != nil {
				status[name] = job.GetStatus()
			}
		}

		writeJSON(w, http.StatusOK, status)
	}
}
