package handler

import (
	"net/http"

	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/reporting"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
)

const defaultReportLimit = 20

func ListReportSchedules(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		schedules, err := service.ListSchedules(r.Context(), userClaims)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar agendamentos")
			return
		}

		writeJSON(w, http.StatusOK, schedules)
	}
}

func CreateReportSchedule(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var schedule domain.ReportSchedule
		if !decodeBody(w, r, &schedule) {
			return
		}

		created, err := service.CreateSchedule(r.Context(), userClaims, &schedule)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar agendamento")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func DeleteReportSchedule(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		if err := service.DeleteSchedule(r.Context(), userClaims, param(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover agendamento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// RunReportSchedule gera o relatório imediatamente
func RunReportSchedule(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		report, err := service.RunSchedule(r.Context(), userClaims, param(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar relatório")
			return
		}

		writeJSON(w, http.StatusCreated, report)
	}
}

func ListReports(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		limit, err := queryInt(r, "limit", defaultReportLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		reports, err := service.ListReports(r.Context(), userClaims, limit)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar relatórios")
			return
		}

		writeJSON(w, http.StatusOK, reports)
	}
}

func GetWeeklyReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		report, err := service.WeeklyReport(r.Context(), userClaims)
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar relatório semanal")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
