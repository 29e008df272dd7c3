package analyzing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/cache"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/timezone"
)

const (
	defaultTopLimit = 5
	maxTopLimit     = 50
)

type Service struct {
	campaignRepo  repository.CampaignRepository
	analyticsRepo repository.DailyAnalyticsRepository
	summaryRepo   repository.AnalyticsSummaryRepository
	cache         cache.SummaryCache
	clock         *timezone.Clock
}

func NewService(
	campaignRepo repository.CampaignRepository,
	analyticsRepo repository.DailyAnalyticsRepository,
	summaryRepo repository.AnalyticsSummaryRepository,
	summaryCache cache.SummaryCache,
	clock *timezone.Clock,
) Analyzer {
	if summaryCache == nil {
		summaryCache = cache.NoopSummaryCache{}
	}

	return &Service{
		campaignRepo:  campaignRepo,
		analyticsRepo: analyticsRepo,
		summaryRepo:   summaryRepo,
		cache:         summaryCache,
		clock:         clock,
	}
}

// GetSummary lê o resumo do cache e, na falta dele, do banco.
// Campanhas sem resumo ganham um calculado na hora.
func (s *Service) GetSummary(ctx context.Context, actor *domain.Claims, campaignID string) (*domain.CampaignAnalyticsSummary, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, NewAnalyticsErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if campaign == nil || !campaign.AccessibleBy(actor) {
		return nil, NewAnalyticsErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}

	cached, err := s.cache.Get(ctx, campaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Warn("Falha ao ler resumo do cache")
	}
	if cached != nil {
		return cached, nil
	}

	summary, err := s.summaryRepo.GetByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, NewAnalyticsErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	if summary == nil {
		summary, _, err = s.summaryRepo.GetOrCreate(ctx, campaignID)
		if err != nil {
			return nil, NewAnalyticsErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
		}
		if err := s.update(ctx, campaign, summary); err != nil {
			return nil, NewAnalyticsErrorWithID(ErrSummaryUpdate, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
		}
	}

	if err := s.cache.Set(ctx, summary); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Warn("Falha ao gravar resumo no cache")
	}

	return summary, nil
}

func (s *Service) Top(ctx context.Context, actor *domain.Claims, limit int) ([]*domain.RankedSummary, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	var userID *string
	if actor.UserRole != domain.RoleAdmin {
		userID = &actor.UserID
	}

	top, err := s.summaryRepo.ListTop(ctx, userID, uint64(limit))
	if err != nil {
		return nil, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return top, nil
}

func (s *Service) UpdateCampaignSummary(ctx context.Context, campaignID string) (bool, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return false, NewAnalyticsErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if campaign == nil {
		logrus.WithField("campaign_id", campaignID).Error("Campanha não encontrada")
		return false, nil
	}

	summary, _, err := s.summaryRepo.GetOrCreate(ctx, campaignID)
	if err != nil {
		return false, NewAnalyticsErrorWithID(ErrSummaryUpdate, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	if err := s.update(ctx, campaign, summary); err != nil {
		return false, NewAnalyticsErrorWithID(ErrSummaryUpdate, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"score":       summary.PerformanceScore,
	}).Infof("Resumo atualizado para %s", campaign.Title)

	return true, nil
}

func (s *Service) UpdateAllCampaignSummaries(ctx context.Context) (int, error) {
	campaigns, err := s.campaignRepo.List(ctx, repository.CampaignFilters{ActiveOnly: true})
	if err != nil {
		return 0, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	updated := 0
	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			return updated, ctx.Err()
		}

		summary, _, err := s.summaryRepo.GetOrCreate(ctx, campaign.ID)
		if err == nil {
			err = s.update(ctx, campaign, summary)
		}
		if err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).Errorf("Falha ao atualizar resumo de %s", campaign.Title)
			continue
		}
		updated++
	}

	logrus.Infof("%d resumos de campanha atualizados", updated)
	return updated, nil
}

func (s *Service) RefreshSummaries(ctx context.Context, force bool) (*domain.SummaryRefreshResult, error) {
	campaigns, err := s.campaignRepo.List(ctx, repository.CampaignFilters{})
	if err != nil {
		return nil, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	result := &domain.SummaryRefreshResult{Total: len(campaigns)}
	for _, campaign := range campaigns {
		log := logrus.WithField("campaign_id", campaign.ID)

		summary, created, err := s.summaryRepo.GetOrCreate(ctx, campaign.ID)
		if err != nil {
			log.WithError(err).Errorf("Falha em %s", campaign.Title)
			result.Failed++
			continue
		}
		if created {
			result.Created++
		}

		if !created && !force && summary.PerformanceScore != 0 {
			log.Infof("Ignorado %s: nota %.2f", campaign.Title, summary.PerformanceScore)
			result.Skipped++
			continue
		}

		if err := s.update(ctx, campaign, summary); err != nil {
			log.WithError(err).Errorf("Falha em %s", campaign.Title)
			result.Failed++
			continue
		}
		result.Updated++
		log.Infof("Atualizado %s: nota %.2f", campaign.Title, summary.PerformanceScore)
	}

	top, err := s.summaryRepo.ListTop(ctx, nil, defaultTopLimit)
	if err != nil {
		return nil, NewAnalyticsError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	result.Top = top

	return result, nil
}

// update recalcula o resumo, grava e invalida o cache
func (s *Service) update(ctx context.Context, campaign *domain.Campaign, summary *domain.CampaignAnalyticsSummary) error {
	rows, err := s.analyticsRepo.ListByCampaign(ctx, campaign.ID, domain.AnalyticsFilters{})
	if err != nil {
		return err
	}

	summary.UpdateMetrics(campaign, rows, s.clock.Now())

	if err := s.summaryRepo.Save(ctx, summary); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, campaign.ID); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaign.ID).Warn("Falha ao invalidar resumo no cache")
	}

	return nil
}
