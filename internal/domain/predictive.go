package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const ModelLinearRegression = "linear_regression"

// LinearFit é uma reta y = Intercept + Slope*x ajustada por mínimos quadrados
type LinearFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
}

func (f LinearFit) At(x float64) float64 {
	return f.Intercept + f.Slope*x
}

type PredictiveModel struct {
	ID           string               `json:"id"`
	UserID       string               `json:"user_id"`
	CampaignID   string               `json:"campaign_id"`
	ModelType    string               `json:"model_type"`
	Coefficients map[string]LinearFit `json:"coefficients"`
	Accuracy     float64              `json:"accuracy"`
	Samples      int                  `json:"samples"`
	OriginDate   time.Time            `json:"origin_date"`
	IsActive     bool                 `json:"is_active"`
	TrainedAt    time.Time            `json:"trained_at"`
}

type Prediction struct {
	ID                   string          `json:"id"`
	ModelID              string          `json:"model_id"`
	CampaignID           string          `json:"campaign_id"`
	PredictionDate       time.Time       `json:"prediction_date"`
	PredictedImpressions int64           `json:"predicted_impressions"`
	PredictedClicks      int64           `json:"predicted_clicks"`
	PredictedConversions int64           `json:"predicted_conversions"`
	PredictedSpend       decimal.Decimal `json:"predicted_spend"`
	Confidence           float64         `json:"confidence"`
	CreatedAt            time.Time       `json:"created_at"`
}

type TrainingResult struct {
	ModelID  string  `json:"model_id"`
	Accuracy float64 `json:"accuracy"`
	Samples  int     `json:"samples"`
}

type Forecast struct {
	CampaignID    string        `json:"campaign_id"`
	ModelAccuracy float64       `json:"model_accuracy"`
	Predictions   []*Prediction `json:"predictions"`
}

// BudgetRecommendation sugere a redistribuição do orçamento entre campanhas ativas
type BudgetRecommendation struct {
	CampaignID        string          `json:"campaign_id"`
	CampaignTitle     string          `json:"campaign_title"`
	CurrentBudget     decimal.Decimal `json:"current_budget"`
	RecommendedBudget decimal.Decimal `json:"recommended_budget"`
	PerformanceScore  float64         `json:"performance_score"`
	CostPerConversion float64         `json:"cost_per_conversion"`
	ChangePercent     float64         `json:"change_percent"`
}
