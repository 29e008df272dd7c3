package predicting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/infrastructure/repository/mocks"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/timezone"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

type fixture struct {
	svc            *Service
	campaignRepo   *mocks.MockCampaignRepository
	analyticsRepo  *mocks.MockDailyAnalyticsRepository
	summaryRepo    *mocks.MockAnalyticsSummaryRepository
	predictiveRepo *mocks.MockPredictiveRepository
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		campaignRepo:   mocks.NewMockCampaignRepository(ctrl),
		analyticsRepo:  mocks.NewMockDailyAnalyticsRepository(ctrl),
		summaryRepo:    mocks.NewMockAnalyticsSummaryRepository(ctrl),
		predictiveRepo: mocks.NewMockPredictiveRepository(ctrl),
	}
	clock := timezone.New(time.UTC, timezone.WithNow(func() time.Time { return fixedNow }))
	f.svc = NewService(f.campaignRepo, f.analyticsRepo, f.summaryRepo, f.predictiveRepo, clock).(*Service)
	return f
}

var owner = &domain.Claims{UserID: "u1", UserRole: domain.RoleEditor}

func linearRows(days int) []*domain.DailyAnalytics {
	origin := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	rows := make([]*domain.DailyAnalytics, 0, days)
	// em ordem inversa para garantir a ordenação por data
	for i := days - 1; i >= 0; i-- {
		rows = append(rows, &domain.DailyAnalytics{
			CampaignID:  "c1",
			Date:        origin.AddDate(0, 0, i),
			Impressions: int64(1000 + 50*i),
			Clicks:      int64(40 + 2*i),
			Conversions: int64(4 + i/5),
			Spend:       decimal.NewFromInt(int64(100 + i)),
		})
	}
	return rows
}

func TestService_Train(t *testing.T) {
	f := newFixture(t)
	f.campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u1"}, nil)
	f.analyticsRepo.EXPECT().ListByCampaign(gomock.Any(), "c1", domain.AnalyticsFilters{}).Return(linearRows(14), nil)
	f.predictiveRepo.EXPECT().SaveModel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *domain.PredictiveModel) error {
			m.ID = "m1"
			assert.Equal(t, domain.ModelLinearRegression, m.ModelType)
			assert.Equal(t, "2024-05-20", m.OriginDate.Format(time.DateOnly))
			assert.InDelta(t, 2.0, m.Coefficients[MetricClicks].Slope, 1e-9)
			assert.InDelta(t, 50.0, m.Coefficients[MetricImpressions].Slope, 1e-9)
			assert.Equal(t, fixedNow, m.TrainedAt)
			return nil
		})

	result, err := f.svc.Train(context.Background(), owner, "c1")
	require.NoError(t, err)
	assert.Equal(t, "m1", result.ModelID)
	assert.Equal(t, 14, result.Samples)
	assert.Equal(t, 1.0, result.Accuracy)
}

func TestService_TrainRequiresHistory(t *testing.T) {
	f := newFixture(t)
	f.campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u1"}, nil)
	f.analyticsRepo.EXPECT().ListByCampaign(gomock.Any(), "c1", gomock.Any()).Return(linearRows(3), nil)

	_, err := f.svc.Train(context.Background(), owner, "c1")
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestService_PredictNextWeek(t *testing.T) {
	t.Run("sem modelo", func(t *testing.T) {
		f := newFixture(t)
		f.campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u1"}, nil)
		f.predictiveRepo.EXPECT().GetActiveModel(gomock.Any(), "c1").Return(nil, nil)

		_, err := f.svc.PredictNextWeek(context.Background(), owner, "c1")
		assert.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("grava sete previsões", func(t *testing.T) {
		f := newFixture(t)
		model := &domain.PredictiveModel{
			ID:         "m1",
			CampaignID: "c1",
			Accuracy:   0.8765,
			OriginDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Coefficients: map[string]domain.LinearFit{
				MetricClicks: {Intercept: 10, Slope: 1},
			},
		}
		f.campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u1"}, nil)
		f.predictiveRepo.EXPECT().GetActiveModel(gomock.Any(), "c1").Return(model, nil)
		f.predictiveRepo.EXPECT().SavePredictions(gomock.Any(), gomock.Len(ForecastDays)).Return(nil)

		forecast, err := f.svc.PredictNextWeek(context.Background(), owner, "c1")
		require.NoError(t, err)
		assert.Equal(t, 87.65, forecast.ModelAccuracy)
		require.Len(t, forecast.Predictions, ForecastDays)
		assert.Equal(t, int64(20), forecast.Predictions[0].PredictedClicks)
	})

	t.Run("campanha de outro usuário", func(t *testing.T) {
		f := newFixture(t)
		f.campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u2"}, nil)

		_, err := f.svc.PredictNextWeek(context.Background(), owner, "c1")
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

func TestService_RecommendBudget(t *testing.T) {
	f := newFixture(t)
	campaigns := []*domain.Campaign{
		{ID: "a", UserID: "u1", Budget: decimal.NewFromInt(1000)},
		{ID: "b", UserID: "u1", Budget: decimal.NewFromInt(1000)},
	}

	f.campaignRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(campaigns, nil)
	f.summaryRepo.EXPECT().ListByCampaignIDs(gomock.Any(), []string{"a", "b"}).Return(map[string]*domain.CampaignAnalyticsSummary{
		"a": {PerformanceScore: 60},
		"b": {PerformanceScore: 40},
	}, nil)

	result, err := f.svc.RecommendBudget(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "1200", result[0].RecommendedBudget.String())
	assert.Equal(t, "800", result[1].RecommendedBudget.String())
}
