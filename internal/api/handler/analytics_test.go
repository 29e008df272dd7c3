package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/domain"
	analyzingMocks "github.com/vfg2006/advision-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/advision-api/internal/usecases/predicting"
	predictingMocks "github.com/vfg2006/advision-api/internal/usecases/predicting/mocks"
	"github.com/vfg2006/advision-api/internal/usecases/reporting"
	reportingMocks "github.com/vfg2006/advision-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetTopCampaigns_Limit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "padrão", query: "", wantLimit: defaultTopLimit},
		{name: "informado", query: "?limit=5", wantLimit: 5},
		{name: "limitado ao máximo", query: "?limit=1000", wantLimit: maxTopLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := analyzingMocks.NewMockAnalyzer(ctrl)

			service.EXPECT().Top(gomock.Any(), viewerClaims, tt.wantLimit).Return([]*domain.RankedSummary{}, nil)

			rec := serve(t, Analytics(service), viewerClaims, httptest.NewRequest(http.MethodGet, "/v1/analytics/top"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("limite inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := analyzingMocks.NewMockAnalyzer(ctrl)

		rec := serve(t, Analytics(service), viewerClaims, httptest.NewRequest(http.MethodGet, "/v1/analytics/top?limit=-1", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})
}

func TestGetCampaignSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := analyzingMocks.NewMockAnalyzer(ctrl)

	service.EXPECT().GetSummary(gomock.Any(), editorClaims, "c1").Return(&domain.CampaignAnalyticsSummary{
		CampaignID:       "c1",
		PerformanceScore: 72.4,
	}, nil)

	rec := serve(t, Analytics(service), editorClaims, httptest.NewRequest(http.MethodGet, "/v1/campaigns/c1/summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"performance_score":72.4`)
}

func TestTrainModel_InsufficientData(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := predictingMocks.NewMockPredictor(ctrl)

	service.EXPECT().Train(gomock.Any(), editorClaims, "c1").
		Return(nil, predicting.NewPredictionErrorWithID(predicting.ErrInsufficientData, apiErrors.ErrMissingRequiredData, "c1", "são necessários ao menos 7 dias"))

	rec := serve(t, Predictive(service), editorClaims, httptest.NewRequest(http.MethodPost, "/v1/campaigns/c1/model", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	apiErr := decodeError(t, rec)
	assert.Equal(t, predicting.ErrInsufficientData.Error(), apiErr.Message)
	assert.Equal(t, "são necessários ao menos 7 dias", apiErr.Details)
}

func TestGetBudgetRecommendation(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := predictingMocks.NewMockPredictor(ctrl)

	service.EXPECT().RecommendBudget(gomock.Any(), viewerClaims).Return([]*domain.BudgetRecommendation{
		{CampaignID: "c1", CurrentBudget: decimal.NewFromInt(1000), RecommendedBudget: decimal.NewFromInt(1200), ChangePercent: 20},
	}, nil)

	rec := serve(t, Predictive(service), viewerClaims, httptest.NewRequest(http.MethodGet, "/v1/predictive/budget", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"change_percent":20`)
}

func TestListReports_Limit(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingMocks.NewMockReporter(ctrl)

	service.EXPECT().ListReports(gomock.Any(), viewerClaims, defaultReportLimit).Return([]*domain.GeneratedReport{}, nil)

	rec := serve(t, Reports(service), viewerClaims, httptest.NewRequest(http.MethodGet, "/v1/reports", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRunReportSchedule_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingMocks.NewMockReporter(ctrl)

	service.EXPECT().RunSchedule(gomock.Any(), editorClaims, "s9").
		Return(nil, reporting.NewReportErrorWithID(reporting.ErrScheduleNotFound, apiErrors.ErrResourceNotFound, "s9", ""))

	rec := serve(t, Reports(service), editorClaims, httptest.NewRequest(http.MethodPost, "/v1/reports/schedules/s9/run", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, reporting.ErrScheduleNotFound.Error(), decodeError(t, rec).Message)
}
