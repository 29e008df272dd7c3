package handler

import (
	"net/http"

	"github.com/vfg2006/advision-api/internal/usecases/analyzing"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

func GetCampaignSummary(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		summary, err := service.GetSummary(r.Context(), userClaims, param(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar resumo da campanha")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// GetTopCampaigns lista as campanhas com maior nota de desempenho
func GetTopCampaigns(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		limit, err := queryInt(r, "limit", defaultTopLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		limit = min(limit, maxTopLimit)

		ranked, err := service.Top(r.Context(), userClaims, limit)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar ranking de campanhas")
			return
		}

		writeJSON(w, http.StatusOK, ranked)
	}
}
