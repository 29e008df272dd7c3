package predicting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/domain"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name          string
		xs, ys        []float64
		wantSlope     float64
		wantIntercept float64
		wantR2        float64
	}{
		{
			name:          "reta exata",
			xs:            []float64{0, 1, 2, 3},
			ys:            []float64{10, 12, 14, 16},
			wantSlope:     2,
			wantIntercept: 10,
			wantR2:        1,
		},
		{
			name:          "série constante",
			xs:            []float64{0, 1, 2},
			ys:            []float64{5, 5, 5},
			wantIntercept: 5,
			wantR2:        1,
		},
		{
			name:          "com ruído",
			xs:            []float64{0, 1, 2, 3},
			ys:            []float64{1, 3, 2, 4},
			wantSlope:     0.8,
			wantIntercept: 1.3,
			wantR2:        0.64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit := Fit(tt.xs, tt.ys)
			assert.InDelta(t, tt.wantSlope, fit.Slope, 1e-9)
			assert.InDelta(t, tt.wantIntercept, fit.Intercept, 1e-9)
			assert.InDelta(t, tt.wantR2, fit.R2, 1e-9)
		})
	}

	assert.Equal(t, domain.LinearFit{}, Fit(nil, nil))
}

func TestForecast(t *testing.T) {
	origin := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	model := &domain.PredictiveModel{
		ID:         "m1",
		CampaignID: "c1",
		Accuracy:   0.9,
		OriginDate: origin,
		Coefficients: map[string]domain.LinearFit{
			MetricImpressions: {Intercept: 1000, Slope: 10},
			MetricClicks:      {Intercept: 30, Slope: 1},
			MetricConversions: {Intercept: 5, Slope: -1},
			MetricSpend:       {Intercept: 100.555, Slope: 0},
		},
	}

	predictions := Forecast(model, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	require.Len(t, predictions, ForecastDays)

	first := predictions[0]
	assert.Equal(t, "2024-06-11", first.PredictionDate.Format(time.DateOnly))
	assert.Equal(t, int64(1100), first.PredictedImpressions)
	assert.Equal(t, int64(40), first.PredictedClicks)
	assert.Equal(t, int64(0), first.PredictedConversions)
	assert.True(t, decimal.RequireFromString("100.56").Equal(first.PredictedSpend))
	assert.Equal(t, 90.0, first.Confidence)

	last := predictions[ForecastDays-1]
	assert.Equal(t, "2024-06-17", last.PredictionDate.Format(time.DateOnly))
	assert.Equal(t, 73.8, last.Confidence)
}

func TestReallocate(t *testing.T) {
	campaigns := []*domain.Campaign{
		{ID: "a", Title: "A", Budget: decimal.NewFromInt(1000)},
		{ID: "b", Title: "B", Budget: decimal.NewFromInt(1000)},
		{ID: "c", Title: "C", Budget: decimal.NewFromInt(2000)},
	}
	summaries := map[string]*domain.CampaignAnalyticsSummary{
		"a": {PerformanceScore: 75},
		"b": {PerformanceScore: 25},
	}

	result := Reallocate(campaigns, summaries)
	require.Len(t, result, 3)

	assert.Equal(t, "a", result[0].CampaignID)
	assert.Equal(t, "3000", result[0].RecommendedBudget.String())
	assert.Equal(t, 200.0, result[0].ChangePercent)

	assert.Equal(t, "b", result[1].CampaignID)
	assert.Equal(t, "1000", result[1].RecommendedBudget.String())

	assert.Equal(t, "c", result[2].CampaignID)
	assert.True(t, result[2].RecommendedBudget.IsZero())
	assert.Equal(t, -100.0, result[2].ChangePercent)
}

func TestReallocate_WithoutScoresKeepsBudgets(t *testing.T) {
	campaigns := []*domain.Campaign{{ID: "a", Budget: decimal.NewFromInt(500)}}

	result := Reallocate(campaigns, map[string]*domain.CampaignAnalyticsSummary{})
	require.Len(t, result, 1)
	assert.True(t, decimal.NewFromInt(500).Equal(result[0].RecommendedBudget))
	assert.Equal(t, 0.0, result[0].ChangePercent)
}
