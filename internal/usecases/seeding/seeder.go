// Package seeding popula o banco com o ambiente de demonstração. Cada passo
// busca antes de criar, então executar de novo não duplica dados.
package seeding

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/analyzing"
	"github.com/vfg2006/advision-api/internal/usecases/authenticating"
	"github.com/vfg2006/advision-api/internal/usecases/predicting"
	"github.com/vfg2006/advision-api/pkg/timezone"
)

// Sealer cifra as credenciais de plataforma
type Sealer interface {
	Seal(userID string, request *domain.APIKeyRequest) (*domain.UserAPIKey, error)
}

type Dependencies struct {
	UserRepo      repository.UserRepository
	APIKeyRepo    repository.APIKeyRepository
	CampaignRepo  repository.CampaignRepository
	ContentRepo   repository.ContentRepository
	AnalyticsRepo repository.DailyAnalyticsRepository
	ABTestRepo    repository.ABTestRepository
	ReportRepo    repository.ReportRepository
	Summaries     analyzing.SummaryUpdater
	Predictor     predicting.Predictor
	Sealer        Sealer
	Clock         *timezone.Clock
}

// Result resume o que foi criado na execução
type Result struct {
	Users         int
	APIKeys       int
	Campaigns     int
	Ads           int
	AnalyticsDays int64
	Summaries     int
	Models        int
	Predictions   int
	ABTests       int
	Schedules     int
	Comments      int
}

type Option func(*Seeder)

// WithRand fixa a fonte aleatória
func WithRand(rng *rand.Rand) Option {
	return func(s *Seeder) {
		s.gen = newGenerator(rng)
	}
}

type Seeder struct {
	deps Dependencies
	gen  *generator
}

func New(deps Dependencies, opts ...Option) *Seeder {
	now := uint64(time.Now().UnixNano())
	s := &Seeder{
		deps: deps,
		gen:  newGenerator(rand.New(rand.NewPCG(now, now>>1))),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type seededCampaign struct {
	*domain.Campaign
	level Level
}

func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	demo, err := s.seedUsers(ctx, result)
	if err != nil {
		return nil, err
	}
	actor := &domain.Claims{UserID: demo.ID, UserEmail: demo.Email, UserRole: demo.Role}

	if err := s.seedAPIKeys(ctx, demo, result); err != nil {
		return nil, err
	}

	campaigns, err := s.seedCampaigns(ctx, demo, result)
	if err != nil {
		return nil, err
	}

	if err := s.seedAds(ctx, campaigns, result); err != nil {
		return nil, err
	}

	if err := s.seedAnalytics(ctx, campaigns, result); err != nil {
		return nil, err
	}

	s.seedModels(ctx, actor, campaigns, result)

	if err := s.seedABTest(ctx, campaigns[0].Campaign, result); err != nil {
		return nil, err
	}

	if err := s.seedSchedules(ctx, demo, campaigns, result); err != nil {
		return nil, err
	}

	if err := s.seedComments(ctx, demo, campaigns, result); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaigns": result.Campaigns,
		"ads":       result.Ads,
		"analytics": result.AnalyticsDays,
		"models":    result.Models,
	}).Info("Ambiente de demonstração pronto")

	return result, nil
}

func (s *Seeder) seedUsers(ctx context.Context, result *Result) (*domain.User, error) {
	var demo *domain.User
	for _, u := range demoUsers {
		hash, err := authenticating.HashPassword(u.Password)
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar hash da senha de %s: %w", u.Email, err)
		}

		user, created, err := s.deps.UserRepo.GetOrCreateUser(ctx, &domain.User{
			Email:        u.Email,
			PasswordHash: hash,
			Role:         u.Role,
			IsActive:     true,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar usuário %s: %w", u.Email, err)
		}
		if created {
			result.Users++
			logrus.Infof("Usuário criado: %s", u.Email)
		}
		if demo == nil {
			demo = user
		}
	}
	return demo, nil
}

func (s *Seeder) seedAPIKeys(ctx context.Context, demo *domain.User, result *Result) error {
	now := s.deps.Clock.Now()
	for _, k := range demoAPIKeys {
		request := &domain.APIKeyRequest{
			APIType:        k.Type,
			APIName:        k.Name,
			AccountID:      k.AccountID,
			DeveloperToken: k.DeveloperToken,
			Key:            fmt.Sprintf("demo_%s_key_12345", k.Type),
		}
		if k.Type.RequiresSecret() {
			request.Secret = fmt.Sprintf("demo_%s_secret_67890", k.Type)
		}

		key, err := s.deps.Sealer.Seal(demo.ID, request)
		if err != nil {
			return fmt.Errorf("erro ao cifrar chave %s: %w", k.Name, err)
		}
		key.VerificationStatus = domain.VerificationVerified
		key.LastVerified = &now

		created, err := s.deps.APIKeyRepo.CreateIfNotExists(ctx, key)
		if err != nil {
			return fmt.Errorf("erro ao salvar chave %s: %w", k.Name, err)
		}
		if created {
			result.APIKeys++
		}
	}
	return nil
}

func (s *Seeder) seedCampaigns(ctx context.Context, demo *domain.User, result *Result) ([]seededCampaign, error) {
	campaigns := make([]seededCampaign, 0, len(demoCampaigns))
	for _, c := range demoCampaigns {
		campaign, created, err := s.deps.CampaignRepo.GetOrCreateByTitle(ctx, &domain.Campaign{
			UserID:      demo.ID,
			Title:       c.Title,
			Description: c.Description,
			Platform:    c.Platform,
			Budget:      decimal.NewFromInt(c.Budget),
			StartDate:   s.deps.Clock.DaysAgo(c.DaysAgo),
			EndDate:     s.deps.Clock.DaysFromNow(campaignLengthDays),
			IsActive:    true,
		})
		if err != nil {
			return nil, fmt.Errorf("erro ao criar campanha %s: %w", c.Title, err)
		}
		if created {
			result.Campaigns++
			logrus.Infof("Campanha criada: %s (%s)", c.Title, c.Level)
		}
		campaigns = append(campaigns, seededCampaign{Campaign: campaign, level: c.Level})
	}
	return campaigns, nil
}

func (s *Seeder) seedAds(ctx context.Context, campaigns []seededCampaign, result *Result) error {
	for _, c := range campaigns {
		for _, ad := range s.gen.adContents(c.Campaign, c.level) {
			_, created, err := s.deps.ContentRepo.GetOrCreateAdContent(ctx, ad)
			if err != nil {
				return fmt.Errorf("erro ao criar anúncio de %s: %w", c.Title, err)
			}
			if created {
				result.Ads++
			}
		}
	}
	return nil
}

func (s *Seeder) seedAnalytics(ctx context.Context, campaigns []seededCampaign, result *Result) error {
	today := s.deps.Clock.Today()
	for _, c := range campaigns {
		rows := s.gen.dailyAnalytics(c.Campaign, c.level, today)
		created, err := s.deps.AnalyticsRepo.CreateMissing(ctx, rows)
		if err != nil {
			return fmt.Errorf("erro ao gerar métricas de %s: %w", c.Title, err)
		}
		result.AnalyticsDays += created

		updated, err := s.deps.Summaries.UpdateCampaignSummary(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("erro ao atualizar resumo de %s: %w", c.Title, err)
		}
		if updated {
			result.Summaries++
		}
	}
	return nil
}

// seedModels treina as primeiras campanhas com histórico suficiente.
// Falhas aqui não interrompem a geração.
func (s *Seeder) seedModels(ctx context.Context, actor *domain.Claims, campaigns []seededCampaign, result *Result) {
	today := s.deps.Clock.Today()
	trained := 0
	for _, c := range campaigns {
		if trained == trainableCampaigns {
			break
		}
		if daysBetween(s.deps.Clock.StartOfDay(c.StartDate), today) < trainableAgeDays {
			continue
		}
		trained++

		log := logrus.WithField("campaign_id", c.ID)
		training, err := s.deps.Predictor.Train(ctx, actor, c.ID)
		if err != nil {
			log.WithError(err).Warnf("Não foi possível treinar o modelo de %s", c.Title)
			continue
		}
		result.Models++

		forecast, err := s.deps.Predictor.PredictNextWeek(ctx, actor, c.ID)
		if err != nil {
			log.WithError(err).Warn("Não foi possível gerar previsões")
			continue
		}
		result.Predictions += len(forecast.Predictions)

		log.Infof("Modelo treinado para %s: acurácia %.1f%% com %d amostras", c.Title, training.Accuracy*100, training.Samples)
	}
}

func (s *Seeder) seedABTest(ctx context.Context, campaign *domain.Campaign, result *Result) error {
	test, created, err := s.deps.ABTestRepo.GetOrCreate(ctx, &domain.ABTest{
		CampaignID:    campaign.ID,
		Name:          abTestName,
		Description:   "Testing two headlines for performance",
		Status:        domain.ABTestRunning,
		SuccessMetric: domain.MetricCTR,
		MinSampleSize: 1000,
		StartDate:     s.deps.Clock.DatetimeAgo(7 * 24 * time.Hour),
	})
	if err != nil {
		return fmt.Errorf("erro ao criar teste A/B: %w", err)
	}
	if !created {
		return nil
	}
	result.ABTests++

	variations := []*domain.ABTestVariation{
		{ABTestID: test.ID, Name: "A", Impressions: 8500, Clicks: 340, Conversions: 42, Spend: decimal.NewFromInt(250)},
		{ABTestID: test.ID, Name: "B", Impressions: 8500, Clicks: 468, Conversions: 61, Spend: decimal.NewFromInt(250)},
	}
	for _, v := range variations {
		if err := s.deps.ABTestRepo.AddVariation(ctx, v); err != nil {
			return fmt.Errorf("erro ao criar variação %s: %w", v.Name, err)
		}
	}
	return nil
}

func (s *Seeder) seedSchedules(ctx context.Context, demo *domain.User, campaigns []seededCampaign, result *Result) error {
	include := make([]string, 0, scheduleCampaigns)
	for _, c := range campaigns[:min(scheduleCampaigns, len(campaigns))] {
		include = append(include, c.ID)
	}

	for _, sc := range demoSchedules {
		_, created, err := s.deps.ReportRepo.GetOrCreateSchedule(ctx, &domain.ReportSchedule{
			UserID:           demo.ID,
			Name:             sc.Name,
			Frequency:        sc.Frequency,
			Format:           sc.Format,
			EmailRecipients:  sc.Recipients,
			IncludeCampaigns: include,
			IsActive:         true,
			NextRun:          s.deps.Clock.DatetimeFromNow(24 * time.Hour),
		})
		if err != nil {
			return fmt.Errorf("erro ao criar agendamento %s: %w", sc.Name, err)
		}
		if created {
			result.Schedules++
		}
	}
	return nil
}

func (s *Seeder) seedComments(ctx context.Context, demo *domain.User, campaigns []seededCampaign, result *Result) error {
	for _, c := range demoComments {
		if c.CampaignIndex >= len(campaigns) {
			continue
		}
		_, created, err := s.deps.ContentRepo.GetOrCreateComment(ctx, &domain.Comment{
			CampaignID: campaigns[c.CampaignIndex].ID,
			UserID:     demo.ID,
			Message:    c.Message,
		})
		if err != nil {
			return fmt.Errorf("erro ao criar comentário: %w", err)
		}
		if created {
			result.Comments++
		}
	}
	return nil
}
