package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é qualquer dependência que responde a um ping (banco, cache)
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status string            `json:"status"`
	Time   time.Time         `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthcheckHandler responde 503 quando alguma dependência não responde
func HealthcheckHandler(checks map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := HealthResponse{Status: "ok", Time: time.Now().UTC()}
		status := http.StatusOK

		if len(checks) > 0 {
			resp.Checks = make(map[string]string, len(checks))
		}
		for name, check := range checks {
			if err := check.Ping(ctx); err != nil {
				logrus.WithError(err).WithField("check", name).Warn("error responding to healthcheck")
				resp.Checks[name] = "down"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "up"
		}

		writeJSON(w, status, resp)
	})
}
