package domain

import "time"

type ReportFrequency string

const (
	FrequencyDaily   ReportFrequency = "daily"
	FrequencyWeekly  ReportFrequency = "weekly"
	FrequencyMonthly ReportFrequency = "monthly"
)

// Next retorna a próxima execução a partir de t
func (f ReportFrequency) Next(t time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, 1)
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 7)
	}
}

// Period retorna o intervalo coberto por um relatório que termina em end
func (f ReportFrequency) Period(end time.Time) (time.Time, time.Time) {
	switch f {
	case FrequencyDaily:
		return end.AddDate(0, 0, -1), end
	case FrequencyMonthly:
		return end.AddDate(0, -1, 0), end
	default:
		return end.AddDate(0, 0, -7), end
	}
}

func (f ReportFrequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

type ReportFormat string

const (
	FormatEmail ReportFormat = "email"
	FormatPDF   ReportFormat = "pdf"
	FormatCSV   ReportFormat = "csv"
	FormatJSON  ReportFormat = "json"
)

func (f ReportFormat) Valid() bool {
	switch f {
	case FormatEmail, FormatPDF, FormatCSV, FormatJSON:
		return true
	}
	return false
}

type ReportSchedule struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	Name             string          `json:"name"`
	Frequency        ReportFrequency `json:"frequency"`
	Format           ReportFormat    `json:"format"`
	EmailRecipients  []string        `json:"email_recipients"`
	IncludeCampaigns []string        `json:"include_campaigns"`
	IsActive         bool            `json:"is_active"`
	NextRun          time.Time       `json:"next_run"`
	LastRun          *time.Time      `json:"last_run,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

type GeneratedReport struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	ScheduleID  *string        `json:"schedule_id,omitempty"`
	Format      ReportFormat   `json:"format"`
	StorageKey  string         `json:"storage_key"`
	FileURL     string         `json:"file_url"`
	PeriodStart time.Time      `json:"period_start"`
	PeriodEnd   time.Time      `json:"period_end"`
	Summary     map[string]any `json:"summary"`
	CreatedAt   time.Time      `json:"created_at"`
}

// WeeklyReport é o relatório semanal exibido no painel
type WeeklyReport struct {
	PeriodStart         time.Time         `json:"period_start"`
	PeriodEnd           time.Time         `json:"period_end"`
	ComparisonAvailable bool              `json:"comparison_available"`
	Summary             WeeklySummary     `json:"summary"`
	Insights            WeeklyInsights    `json:"insights"`
	Recommendations     []*Recommendation `json:"recommendations"`
	NextSteps           []string          `json:"next_steps"`
}

type WeeklySummary struct {
	CampaignsCreated int     `json:"campaigns_created"`
	AdsGenerated     int     `json:"ads_generated"`
	ImagesGenerated  int     `json:"images_generated"`
	ActiveCampaigns  int     `json:"active_campaigns"`
	TotalEngagement  int64   `json:"total_engagement"`
	EngagementGrowth float64 `json:"engagement_growth"`
}

type WeeklyInsights struct {
	TotalImpressions      int64    `json:"total_impressions"`
	TotalConversions      int64    `json:"total_conversions"`
	AvgCTR                float64  `json:"avg_ctr"`
	ImpressionGrowth      float64  `json:"impression_growth"`
	ConversionGrowth      float64  `json:"conversion_growth"`
	TopCampaignName       string   `json:"top_campaign_name"`
	TopCampaignScore      float64  `json:"top_campaign_score"`
	TopPerformingPlatform Platform `json:"top_performing_platform"`
}

type Recommendation struct {
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Metric      string `json:"metric"`
	Current     string `json:"current"`
	Target      string `json:"target"`
	Impact      string `json:"impact"`
}

// WeeklyActivity agrega as contagens de criação de um usuário num período
type WeeklyActivity struct {
	CampaignsCreated int
	AdsGenerated     int
	ImagesGenerated  int
	ActiveCampaigns  int
}

// PeriodTotals agrega as métricas diárias de um conjunto de campanhas num período
type PeriodTotals struct {
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       float64
}
