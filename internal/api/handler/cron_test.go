package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
)

type fakeCronJob struct {
	name      string
	triggered int
}

func (f *fakeCronJob) TriggerManualSync(ctx context.Context) { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"name": f.name, "running": false}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		wantStatus    int
		wantSummaries int
		wantReports   int
	}{
		{name: "resumos", path: "/v1/cron/run/summaries", wantStatus: http.StatusAccepted, wantSummaries: 1},
		{name: "relatórios", path: "/v1/cron/run/reports", wantStatus: http.StatusAccepted, wantReports: 1},
		{name: "todos", path: "/v1/cron/run/all", wantStatus: http.StatusAccepted, wantSummaries: 1, wantReports: 1},
		{name: "tipo inválido", path: "/v1/cron/run/backup", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries := &fakeCronJob{name: "summaries"}
			reports := &fakeCronJob{name: "reports"}
			services := CronJobServices{SummaryRefresh: summaries, ReportDispatch: reports}

			rec := serve(t, CronJobs(services), adminClaims, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantSummaries, summaries.triggered)
			assert.Equal(t, tt.wantReports, reports.triggered)
		})
	}
}

func TestRunCronJob_MissingService(t *testing.T) {
	summaries := &fakeCronJob{name: "summaries"}
	services := CronJobServices{SummaryRefresh: summaries}

	rec := serve(t, CronJobs(services), adminClaims, httptest.NewRequest(http.MethodPost, "/v1/cron/run/all", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
	assert.Zero(t, summaries.triggered)
}

func TestRunCronJob_AdminOnly(t *testing.T) {
	summaries := &fakeCronJob{name: "summaries"}
	services := CronJobServices{SummaryRefresh: summaries, ReportDispatch: &fakeCronJob{}}

	rec := serve(t, CronJobs(services), editorClaims, httptest.NewRequest(http.MethodPost, "/v1/cron/run/summaries", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, summaries.triggered)
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{
		SummaryRefresh: &fakeCronJob{name: "summaries"},
		ReportDispatch: &fakeCronJob{name: "reports"},
	}

	rec := serve(t, CronJobs(services), adminClaims, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Contains(t, status, CronJobTypeSummaries)
	assert.Contains(t, status, CronJobTypeReports)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	t.Run("tudo no ar", func(t *testing.T) {
		checks := map[string]Pinger{
			"database": pingFunc(func(ctx context.Context) error { return nil }),
			"redis":    pingFunc(func(ctx context.Context) error { return nil }),
		}

		rec := serve(t, Healthcheck(checks), nil, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, map[string]string{"database": "up", "redis": "up"}, resp.Checks)
	})

	t.Run("banco fora do ar", func(t *testing.T) {
		checks := map[string]Pinger{
			"database": pingFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
		}

		rec := serve(t, Healthcheck(checks), nil, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "down", resp.Checks["database"])
	})

	t.Run("sem dependências", func(t *testing.T) {
		rec := serve(t, Healthcheck(nil), nil, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
