package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/analyzing"
	"github.com/vfg2006/advision-api/internal/usecases/authenticating"
	"github.com/vfg2006/advision-api/internal/usecases/campaigning"
	"github.com/vfg2006/advision-api/internal/usecases/credentialing"
	"github.com/vfg2006/advision-api/internal/usecases/experimenting"
	"github.com/vfg2006/advision-api/internal/usecases/predicting"
	"github.com/vfg2006/advision-api/internal/usecases/reporting"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logrus.WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// claims devolve o usuário autenticado ou responde 401
func claims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	userClaims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return userClaims, true
}

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// queryInt lê um inteiro positivo da query string, usando def quando ausente
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, errors.New(name + " deve ser um inteiro positivo")
	}
	return value, nil
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padrão.
// Erros internos não expõem detalhes ao cliente.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	code, message, details := classify(err)

	if apiErrors.IsServerError(code) {
		logrus.WithError(err).Error(fallback)
		apiErrors.WriteError(w, code, fallback, nil)
		return
	}

	var body any
	if details != "" {
		body = details
	}
	apiErrors.WriteError(w, code, message, body)
}

func classify(err error) (code, message, details string) {
	var (
		authErr       *authenticating.AuthError
		campaignErr   *campaigning.CampaignError
		analyticsErr  *analyzing.AnalyticsError
		experimentErr *experimenting.ExperimentError
		predictionErr *predicting.PredictionError
		reportErr     *reporting.ReportError
		credentialErr *credentialing.CredentialError
	)

	switch {
	case errors.As(err, &authErr):
		return authErr.Code, authErr.Err.Error(), authErr.Details
	case errors.As(err, &campaignErr):
		return campaignErr.Code, campaignErr.Err.Error(), campaignErr.Details
	case errors.As(err, &analyticsErr):
		return analyticsErr.Code, analyticsErr.Err.Error(), analyticsErr.Details
	case errors.As(err, &experimentErr):
		return experimentErr.Code, experimentErr.Err.Error(), experimentErr.Details
	case errors.As(err, &predictionErr):
		return predictionErr.Code, predictionErr.Err.Error(), predictionErr.Details
	case errors.As(err, &reportErr):
		return reportErr.Code, reportErr.Err.Error(), reportErr.Details
	case errors.As(err, &credentialErr):
		return credentialErr.Code, credentialErr.Err.Error(), credentialErr.Details
	}

	return apiErrors.ErrInternalServer, "", ""
}
