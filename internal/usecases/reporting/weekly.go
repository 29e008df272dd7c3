package reporting

import (
	"context"
	"fmt"

	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
)

// Limites usados nas recomendações do relatório semanal
const (
	lowCTR            = 2.0
	targetCTR         = 3.0
	lowConversionRate = 5.0
	maxNextSteps      = 4
)

// WeeklyReport compara os últimos 7 dias com os 7 anteriores
func (s *Service) WeeklyReport(ctx context.Context, actor *domain.Claims) (*domain.WeeklyReport, error) {
	today := s.clock.Today()
	start := today.AddDate(0, 0, -6)
	prevStart, prevEnd := start.AddDate(0, 0, -7), start.AddDate(0, 0, -1)

	activity, err := s.reportRepo.GetWeeklyActivity(ctx, actor.UserID, start, s.clock.EndOfDay(today))
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	current, err := s.analyticsRepo.TotalsByUser(ctx, actor.UserID, start, today)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	previous, err := s.analyticsRepo.TotalsByUser(ctx, actor.UserID, prevStart, prevEnd)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	platform, err := s.analyticsRepo.TopPlatform(ctx, actor.UserID, start, today)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if platform == "" {
		platform = "N/A"
	}

	userID := actor.UserID
	top, err := s.summaryRepo.ListTop(ctx, &userID, 1)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	engagement := current.Clicks + current.Conversions
	previousEngagement := previous.Clicks + previous.Conversions

	report := &domain.WeeklyReport{
		PeriodStart:         start,
		PeriodEnd:           today,
		ComparisonAvailable: previous.Impressions > 0,
		Summary: domain.WeeklySummary{
			CampaignsCreated: activity.CampaignsCreated,
			AdsGenerated:     activity.AdsGenerated,
			ImagesGenerated:  activity.ImagesGenerated,
			ActiveCampaigns:  activity.ActiveCampaigns,
			TotalEngagement:  engagement,
			EngagementGrowth: growth(float64(engagement), float64(previousEngagement)),
		},
		Insights: domain.WeeklyInsights{
			TotalImpressions:      current.Impressions,
			TotalConversions:      current.Conversions,
			AvgCTR:                percent(current.Clicks, current.Impressions),
			ImpressionGrowth:      growth(float64(current.Impressions), float64(previous.Impressions)),
			ConversionGrowth:      growth(float64(current.Conversions), float64(previous.Conversions)),
			TopCampaignName:       "N/A",
			TopPerformingPlatform: platform,
		},
	}

	if len(top) > 0 {
		report.Insights.TopCampaignName = top[0].CampaignTitle
		report.Insights.TopCampaignScore = top[0].PerformanceScore
	}

	report.Recommendations = Recommend(report, current)
	report.NextSteps = nextSteps(report.Recommendations)

	return report, nil
}

// Recommend aplica as regras de recomendação sobre o relatório da semana
func Recommend(report *domain.WeeklyReport, totals *domain.PeriodTotals) []*domain.Recommendation {
	recommendations := make([]*domain.Recommendation, 0)
	insights := report.Insights

	if report.Summary.ActiveCampaigns == 0 {
		recommendations = append(recommendations, &domain.Recommendation{
			Category:    "campaigns",
			Priority:    "high",
			Title:       "No active campaigns",
			Description: "There are no campaigns running, so no new data is being collected.",
			Action:      "Create or reactivate a campaign",
			Metric:      "active_campaigns",
			Current:     "0",
			Target:      "1+",
			Impact:      "Resume reach and conversions",
		})
	}

	if totals.Impressions > 0 && insights.AvgCTR < lowCTR {
		recommendations = append(recommendations, &domain.Recommendation{
			Category:    "performance",
			Priority:    "high",
			Title:       "Click-through rate below benchmark",
			Description: "Ads are being seen but rarely clicked. Test new headlines and visuals.",
			Action:      "Run an A/B test on the ad headline",
			Metric:      "ctr",
			Current:     fmt.Sprintf("%.2f%%", insights.AvgCTR),
			Target:      fmt.Sprintf("%.2f%%", targetCTR),
			Impact:      "More traffic for the same spend",
		})
	}

	conversionRate := percent(totals.Conversions, totals.Clicks)
	if totals.Clicks > 0 && conversionRate < lowConversionRate {
		recommendations = append(recommendations, &domain.Recommendation{
			Category:    "conversion",
			Priority:    "medium",
			Title:       "Low conversion rate",
			Description: "Visitors are clicking but not converting. Review the landing page and offer.",
			Action:      "Align landing page copy with the ad message",
			Metric:      "conversion_rate",
			Current:     fmt.Sprintf("%.2f%%", conversionRate),
			Target:      fmt.Sprintf("%.2f%%", lowConversionRate),
			Impact:      "Lower cost per conversion",
		})
	}

	if report.ComparisonAvailable && insights.ImpressionGrowth < 0 {
		recommendations = append(recommendations, &domain.Recommendation{
			Category:    "growth",
			Priority:    "medium",
			Title:       "Reach is shrinking",
			Description: "Impressions dropped compared with the previous week.",
			Action:      "Shift budget to the top performing platform",
			Metric:      "impressions",
			Current:     fmt.Sprintf("%.2f%%", insights.ImpressionGrowth),
			Target:      "0%+",
			Impact:      "Recover weekly reach",
		})
	}

	if report.Summary.AdsGenerated == 0 {
		recommendations = append(recommendations, &domain.Recommendation{
			Category:    "content",
			Priority:    "low",
			Title:       "No new ad content this week",
			Description: "Fresh creatives help avoid ad fatigue.",
			Action:      "Generate new ad variations",
			Metric:      "ads_generated",
			Current:     "0",
			Target:      "3+",
			Impact:      "Keep engagement stable",
		})
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, &domain.Recommendation{
			Category:    "growth",
			Priority:    "low",
			Title:       "Scale what is working",
			Description: fmt.Sprintf("%s is leading. Consider increasing its budget.", insights.TopCampaignName),
			Action:      "Increase budget of the top campaign",
			Metric:      "performance_score",
			Current:     fmt.Sprintf("%.2f", insights.TopCampaignScore),
			Target:      "80+",
			Impact:      "More conversions at a proven cost",
		})
	}

	return recommendations
}

func nextSteps(recommendations []*domain.Recommendation) []string {
	steps := make([]string, 0, maxNextSteps)
	for _, r := range recommendations {
		if len(steps) == maxNextSteps-1 {
			break
		}
		steps = append(steps, r.Action)
	}
	return append(steps, "Review this report again next week")
}
