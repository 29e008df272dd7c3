package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/advision-api/pkg/utils"
)

type ABTestStatus string

const (
	ABTestDraft     ABTestStatus = "draft"
	ABTestRunning   ABTestStatus = "running"
	ABTestPaused    ABTestStatus = "paused"
	ABTestCompleted ABTestStatus = "completed"
)

type SuccessMetric string

const (
	MetricCTR            SuccessMetric = "ctr"
	MetricConversionRate SuccessMetric = "conversion_rate"
)

type ABTest struct {
	ID                string             `json:"id"`
	CampaignID        string             `json:"campaign_id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Status            ABTestStatus       `json:"status"`
	SuccessMetric     SuccessMetric      `json:"success_metric"`
	MinSampleSize     int64              `json:"min_sample_size"`
	StartDate         time.Time          `json:"start_date"`
	EndDate           *time.Time         `json:"end_date,omitempty"`
	WinnerVariationID *string            `json:"winner_variation_id,omitempty"`
	Variations        []*ABTestVariation `json:"variations"`
	CreatedAt         time.Time          `json:"created_at"`
}

type ABTestVariation struct {
	ID          string          `json:"id"`
	ABTestID    string          `json:"ab_test_id"`
	Name        string          `json:"name"`
	AdContentID *string         `json:"ad_content_id,omitempty"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Spend       decimal.Decimal `json:"spend"`
}

// CTR em percentual
func (v *ABTestVariation) CTR() float64 {
	return utils.Percent(v.Clicks, v.Impressions)
}

// ConversionRate em percentual
func (v *ABTestVariation) ConversionRate() float64 {
	return utils.Percent(v.Conversions, v.Clicks)
}

// Trials e Successes retornam a base do teste de proporção para a métrica escolhida
func (v *ABTestVariation) Trials(metric SuccessMetric) int64 {
	if metric == MetricConversionRate {
		return v.Clicks
	}
	return v.Impressions
}

func (v *ABTestVariation) Successes(metric SuccessMetric) int64 {
	if metric == MetricConversionRate {
		return v.Conversions
	}
	return v.Clicks
}

type VariationResult struct {
	VariationID    string  `json:"variation_id"`
	Name           string  `json:"name"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	Lift           float64 `json:"lift"`
	ZScore         float64 `json:"z_score"`
	PValue         float64 `json:"p_value"`
}

type ABTestResult struct {
	TestID            string             `json:"test_id"`
	SuccessMetric     SuccessMetric      `json:"success_metric"`
	Variations        []*VariationResult `json:"variations"`
	WinnerID          *string            `json:"winner_variation_id,omitempty"`
	WinnerName        string             `json:"winner_name,omitempty"`
	Significant       bool               `json:"significant"`
	SampleSizeReached bool               `json:"sample_size_reached"`
	Confidence        float64            `json:"confidence"`
}
