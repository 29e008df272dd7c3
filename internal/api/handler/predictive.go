package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/usecases/predicting"
)

func TrainModel(service predicting.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		campaignID := param(r, "id")
		result, err := service.Train(r.Context(), userClaims, campaignID)
		if err != nil {
			writeServiceError(w, err, "Erro ao treinar modelo")
			return
		}

		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"model_id":    result.ModelID,
			"accuracy":    result.Accuracy,
		}).Info("Modelo treinado")

		writeJSON(w, http.StatusCreated, result)
	}
}

func GetPredictions(service predicting.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		forecast, err := service.PredictNextWeek(r.Context(), userClaims, param(r, "id"))
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar previsões")
			return
		}

		writeJSON(w, http.StatusOK, forecast)
	}
}

func GetBudgetRecommendation(service predicting.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		recommendations, err := service.RecommendBudget(r.Context(), userClaims)
		if err != nil {
			writeServiceError(w, err, "Erro ao recomendar orçamento")
			return
		}

		writeJSON(w, http.StatusOK, recommendations)
	}
}
