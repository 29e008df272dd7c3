package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DailyAnalytics struct {
	ID          string          `json:"id"`
	CampaignID  string          `json:"campaign_id"`
	Date        time.Time       `json:"date"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Spend       decimal.Decimal `json:"spend"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DailyAnalyticsInput é uma linha do import em lote de métricas diárias
type DailyAnalyticsInput struct {
	Date        string          `json:"date"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Spend       decimal.Decimal `json:"spend"`
}

type CampaignAnalyticsSummary struct {
	ID                string          `json:"id"`
	CampaignID        string          `json:"campaign_id"`
	TotalImpressions  int64           `json:"total_impressions"`
	TotalClicks       int64           `json:"total_clicks"`
	TotalConversions  int64           `json:"total_conversions"`
	TotalSpend        decimal.Decimal `json:"total_spend"`
	AvgCTR            float64         `json:"avg_ctr"`
	AvgConversionRate float64         `json:"avg_conversion_rate"`
	AvgCPC            float64         `json:"avg_cpc"`
	CostPerConversion float64         `json:"cost_per_conversion"`
	DaysTracked       int             `json:"days_tracked"`
	PerformanceScore  float64         `json:"performance_score"`
	LastUpdated       time.Time       `json:"last_updated"`
	CreatedAt         time.Time       `json:"created_at"`
}

// RankedSummary é um resumo acompanhado do título da campanha
type RankedSummary struct {
	CampaignAnalyticsSummary
	CampaignTitle string   `json:"campaign_title"`
	Platform      Platform `json:"platform"`
}

// SummaryRefreshResult é o resultado do comando de atualização de resumos
type SummaryRefreshResult struct {
	Total   int              `json:"total"`
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Failed  int              `json:"failed"`
	Top     []*RankedSummary `json:"top"`
}

type AnalyticsFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
