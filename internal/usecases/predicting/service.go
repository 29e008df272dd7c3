package predicting

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/timezone"
	"github.com/vfg2006/advision-api/pkg/utils"
)

const (
	MinTrainingSamples = 7
	ForecastDays       = 7

	// perda de confiança por dia de distância da previsão
	confidenceDecay = 0.03
)

// Métricas ajustadas pelo modelo
const (
	MetricImpressions = "impressions"
	MetricClicks      = "clicks"
	MetricConversions = "conversions"
	MetricSpend       = "spend"
)

type Service struct {
	campaignRepo   repository.CampaignRepository
	analyticsRepo  repository.DailyAnalyticsRepository
	summaryRepo    repository.AnalyticsSummaryRepository
	predictiveRepo repository.PredictiveRepository
	clock          *timezone.Clock
}

func NewService(
	campaignRepo repository.CampaignRepository,
	analyticsRepo repository.DailyAnalyticsRepository,
	summaryRepo repository.AnalyticsSummaryRepository,
	predictiveRepo repository.PredictiveRepository,
	clock *timezone.Clock,
) Predictor {
	return &Service{
		campaignRepo:   campaignRepo,
		analyticsRepo:  analyticsRepo,
		summaryRepo:    summaryRepo,
		predictiveRepo: predictiveRepo,
		clock:          clock,
	}
}

func (s *Service) Train(ctx context.Context, actor *domain.Claims, campaignID string) (*domain.TrainingResult, error) {
	campaign, err := s.campaign(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}

	rows, err := s.analyticsRepo.ListByCampaign(ctx, campaignID, domain.AnalyticsFilters{})
	if err != nil {
		return nil, NewPredictionErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if len(rows) < MinTrainingSamples {
		return nil, NewPredictionErrorWithID(ErrInsufficientData, apiErrors.ErrInvalidRequest, campaignID,
			fmt.Sprintf("%d dias de métricas, mínimo %d", len(rows), MinTrainingSamples))
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	origin := rows[0].Date

	xs := make([]float64, len(rows))
	series := map[string][]float64{
		MetricImpressions: make([]float64, len(rows)),
		MetricClicks:      make([]float64, len(rows)),
		MetricConversions: make([]float64, len(rows)),
		MetricSpend:       make([]float64, len(rows)),
	}
	for i, row := range rows {
		xs[i] = dayIndex(origin, row.Date)
		series[MetricImpressions][i] = float64(row.Impressions)
		series[MetricClicks][i] = float64(row.Clicks)
		series[MetricConversions][i] = float64(row.Conversions)
		series[MetricSpend][i] = row.Spend.InexactFloat64()
	}

	coefficients := make(map[string]domain.LinearFit, len(series))
	for metric, ys := range series {
		coefficients[metric] = Fit(xs, ys)
	}

	model := &domain.PredictiveModel{
		UserID:       campaign.UserID,
		CampaignID:   campaign.ID,
		ModelType:    domain.ModelLinearRegression,
		Coefficients: coefficients,
		Accuracy:     math.Round(coefficients[MetricClicks].R2*10000) / 10000,
		Samples:      len(rows),
		OriginDate:   origin,
		TrainedAt:    s.clock.Now(),
	}

	if err := s.predictiveRepo.SaveModel(ctx, model); err != nil {
		return nil, NewPredictionErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"accuracy":    model.Accuracy,
		"samples":     model.Samples,
	}).Info("Modelo preditivo treinado")

	return &domain.TrainingResult{
		ModelID:  model.ID,
		Accuracy: model.Accuracy,
		Samples:  model.Samples,
	}, nil
}

func (s *Service) PredictNextWeek(ctx context.Context, actor *domain.Claims, campaignID string) (*domain.Forecast, error) {
	if _, err := s.campaign(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	model, err := s.predictiveRepo.GetActiveModel(ctx, campaignID)
	if err != nil {
		return nil, NewPredictionErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if model == nil {
		return nil, NewPredictionErrorWithID(ErrModelNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}

	predictions := Forecast(model, s.clock.Today())
	if err := s.predictiveRepo.SavePredictions(ctx, predictions); err != nil {
		return nil, NewPredictionErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	return &domain.Forecast{
		CampaignID:    campaignID,
		ModelAccuracy: utils.RoundWithTwoDecimalPlace(model.Accuracy * 100),
		Predictions:   predictions,
	}, nil
}

// Forecast projeta os ForecastDays dias seguintes a today com as retas do modelo
func Forecast(model *domain.PredictiveModel, today time.Time) []*domain.Prediction {
	predictions := make([]*domain.Prediction, 0, ForecastDays)
	for day := 1; day <= ForecastDays; day++ {
		date := today.AddDate(0, 0, day)
		x := dayIndex(model.OriginDate, date)

		confidence := model.Accuracy * 100 * (1 - confidenceDecay*float64(day-1))

		predictions = append(predictions, &domain.Prediction{
			ModelID:              model.ID,
			CampaignID:           model.CampaignID,
			PredictionDate:       date,
			PredictedImpressions: predictCount(model, MetricImpressions, x),
			PredictedClicks:      predictCount(model, MetricClicks, x),
			PredictedConversions: predictCount(model, MetricConversions, x),
			PredictedSpend:       decimal.NewFromFloat(math.Max(0, model.Coefficients[MetricSpend].At(x))).Round(2),
			Confidence:           utils.RoundWithTwoDecimalPlace(math.Max(0, confidence)),
		})
	}
	return predictions
}

func predictCount(model *domain.PredictiveModel, metric string, x float64) int64 {
	return int64(math.Max(0, math.Round(model.Coefficients[metric].At(x))))
}

// dayIndex conta os dias de calendário entre origin e date
func dayIndex(origin, date time.Time) float64 {
	o := time.Date(origin.Year(), origin.Month(), origin.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return math.Round(d.Sub(o).Hours() / 24)
}

func (s *Service) RecommendBudget(ctx context.Context, actor *domain.Claims) ([]*domain.BudgetRecommendation, error) {
	filters := repository.CampaignFilters{ActiveOnly: true}
	if actor.UserRole != domain.RoleAdmin {
		filters.UserID = &actor.UserID
	}

	campaigns, err := s.campaignRepo.List(ctx, filters)
	if err != nil {
		return nil, NewPredictionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if len(campaigns) == 0 {
		return []*domain.BudgetRecommendation{}, nil
	}

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}

	summaries, err := s.summaryRepo.ListByCampaignIDs(ctx, ids)
	if err != nil {
		return nil, NewPredictionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return Reallocate(campaigns, summaries), nil
}

func (s *Service) campaign(ctx context.Context, actor *domain.Claims, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, NewPredictionErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if campaign == nil || !campaign.AccessibleBy(actor) {
		return nil, NewPredictionErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}
	return campaign, nil
}

// Reallocate divide o orçamento total proporcionalmente às notas de desempenho.
// Sem nenhuma nota positiva, mantém os orçamentos atuais.
func Reallocate(campaigns []*domain.Campaign, summaries map[string]*domain.CampaignAnalyticsSummary) []*domain.BudgetRecommendation {
	total := decimal.Zero
	var totalScore float64
	for _, c := range campaigns {
		total = total.Add(c.Budget)
		if summary := summaries[c.ID]; summary != nil {
			totalScore += summary.PerformanceScore
		}
	}

	result := make([]*domain.BudgetRecommendation, 0, len(campaigns))
	for _, c := range campaigns {
		item := &domain.BudgetRecommendation{
			CampaignID:        c.ID,
			CampaignTitle:     c.Title,
			CurrentBudget:     c.Budget,
			RecommendedBudget: c.Budget,
		}
		if summary := summaries[c.ID]; summary != nil {
			item.PerformanceScore = summary.PerformanceScore
			item.CostPerConversion = summary.CostPerConversion
		}

		if totalScore > 0 {
			share := decimal.NewFromFloat(item.PerformanceScore / totalScore)
			item.RecommendedBudget = total.Mul(share).Round(2)
		}
		if c.Budget.IsPositive() {
			change := item.RecommendedBudget.Sub(c.Budget).Div(c.Budget).InexactFloat64() * 100
			item.ChangePercent = utils.RoundWithTwoDecimalPlace(change)
		}

		result = append(result, item)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PerformanceScore > result[j].PerformanceScore
	})

	return result
}
