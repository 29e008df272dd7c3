package experimenting

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/timezone"
)

const defaultMinSampleSize = 1000

type Service struct {
	abTestRepo   repository.ABTestRepository
	campaignRepo repository.CampaignRepository
	clock        *timezone.Clock
}

func NewService(abTestRepo repository.ABTestRepository, campaignRepo repository.CampaignRepository, clock *timezone.Clock) Experimenter {
	return &Service{
		abTestRepo:   abTestRepo,
		campaignRepo: campaignRepo,
		clock:        clock,
	}
}

func (s *Service) Create(ctx context.Context, actor *domain.Claims, test *domain.ABTest) (*domain.ABTest, error) {
	test.Name = strings.TrimSpace(test.Name)
	if test.Name == "" {
		return nil, NewExperimentError(ErrInvalidTest, apiErrors.ErrMissingRequiredData, "name é obrigatório")
	}
	if test.CampaignID == "" {
		return nil, NewExperimentError(ErrInvalidTest, apiErrors.ErrMissingRequiredData, "campaign_id é obrigatório")
	}
	if err := s.checkCampaign(ctx, actor, test.CampaignID); err != nil {
		return nil, err
	}

	if test.SuccessMetric == "" {
		test.SuccessMetric = domain.MetricCTR
	}
	if test.SuccessMetric != domain.MetricCTR && test.SuccessMetric != domain.MetricConversionRate {
		return nil, NewExperimentError(ErrInvalidTest, apiErrors.ErrInvalidFormat, fmt.Sprintf("métrica inválida: %q", test.SuccessMetric))
	}
	if test.MinSampleSize <= 0 {
		test.MinSampleSize = defaultMinSampleSize
	}
	if test.Status == "" {
		test.Status = domain.ABTestRunning
	}
	if test.StartDate.IsZero() {
		test.StartDate = s.clock.Now()
	}
	test.EndDate = nil
	test.WinnerVariationID = nil

	for _, v := range test.Variations {
		if err := validateVariation(v); err != nil {
			return nil, err
		}
	}

	if err := s.abTestRepo.Create(ctx, test); err != nil {
		return nil, NewExperimentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": test.CampaignID,
		"test_id":     test.ID,
	}).Info("Teste A/B criado")

	return test, nil
}

func (s *Service) Get(ctx context.Context, actor *domain.Claims, testID string) (*domain.ABTest, error) {
	test, err := s.abTestRepo.GetByID(ctx, testID)
	if err != nil {
		return nil, NewExperimentErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, testID, err.Error())
	}
	if test == nil {
		return nil, NewExperimentErrorWithID(ErrTestNotFound, apiErrors.ErrResourceNotFound, testID, "")
	}

	if err := s.checkCampaign(ctx, actor, test.CampaignID); err != nil {
		return nil, NewExperimentErrorWithID(ErrTestNotFound, apiErrors.ErrResourceNotFound, testID, "")
	}

	return test, nil
}

func (s *Service) List(ctx context.Context, actor *domain.Claims) ([]*domain.ABTest, error) {
	var userID *string
	if actor.UserRole != domain.RoleAdmin {
		userID = &actor.UserID
	}

	tests, err := s.abTestRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewExperimentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return tests, nil
}

func (s *Service) AddVariation(ctx context.Context, actor *domain.Claims, testID string, variation *domain.ABTestVariation) (*domain.ABTestVariation, error) {
	test, err := s.Get(ctx, actor, testID)
	if err != nil {
		return nil, err
	}
	if test.Status == domain.ABTestCompleted {
		return nil, NewExperimentErrorWithID(ErrTestCompleted, apiErrors.ErrResourceConflict, testID, "")
	}

	if err := validateVariation(variation); err != nil {
		return nil, err
	}
	for _, existing := range test.Variations {
		if strings.EqualFold(existing.Name, variation.Name) {
			return nil, NewExperimentErrorWithID(ErrInvalidTest, apiErrors.ErrResourceConflict, testID, fmt.Sprintf("variação %q já existe", variation.Name))
		}
	}

	variation.ABTestID = testID
	if err := s.abTestRepo.AddVariation(ctx, variation); err != nil {
		return nil, NewExperimentErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, testID, err.Error())
	}
	return variation, nil
}

func (s *Service) Results(ctx context.Context, actor *domain.Claims, testID string) (*domain.ABTestResult, error) {
	test, err := s.Get(ctx, actor, testID)
	if err != nil {
		return nil, err
	}

	result := Analyze(test)

	if result.Significant && test.Status == domain.ABTestRunning {
		if err := s.abTestRepo.Complete(ctx, test.ID, result.WinnerID, s.clock.Now()); err != nil {
			return nil, NewExperimentErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, testID, err.Error())
		}
		logrus.WithFields(logrus.Fields{
			"test_id":    test.ID,
			"winner":     result.WinnerName,
			"confidence": result.Confidence,
		}).Info("Teste A/B finalizado com vencedor")
	}

	return result, nil
}

func (s *Service) checkCampaign(ctx context.Context, actor *domain.Claims, campaignID string) error {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return NewExperimentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if campaign == nil || !campaign.AccessibleBy(actor) {
		return NewExperimentError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID)
	}
	return nil
}

func validateVariation(v *domain.ABTestVariation) error {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return NewExperimentError(ErrInvalidTest, apiErrors.ErrMissingRequiredData, "nome da variação é obrigatório")
	}
	if v.Impressions < 0 || v.Clicks < 0 || v.Conversions < 0 || v.Spend.IsNegative() {
		return NewExperimentError(ErrInvalidTest, apiErrors.ErrInvalidRequest, "valores negativos na variação")
	}
	if v.Clicks > v.Impressions || v.Conversions > v.Clicks {
		return NewExperimentError(ErrInvalidTest, apiErrors.ErrInvalidRequest, "cliques ou conversões acima do possível")
	}
	return nil
}
