package seeding

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/infrastructure/repository/mocks"
	"github.com/vfg2006/advision-api/internal/domain"
	analyzingmocks "github.com/vfg2006/advision-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/advision-api/internal/usecases/credentialing"
	predictingmocks "github.com/vfg2006/advision-api/internal/usecases/predicting/mocks"
	"github.com/vfg2006/advision-api/pkg/secretbox"
	"github.com/vfg2006/advision-api/pkg/timezone"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestSeeder_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	clock := timezone.New(time.UTC, timezone.WithNow(func() time.Time { return now }))

	box, err := secretbox.New("seed-secret")
	require.NoError(t, err)

	userRepo := mocks.NewMockUserRepository(ctrl)
	apiKeyRepo := mocks.NewMockAPIKeyRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	contentRepo := mocks.NewMockContentRepository(ctrl)
	analyticsRepo := mocks.NewMockDailyAnalyticsRepository(ctrl)
	abTestRepo := mocks.NewMockABTestRepository(ctrl)
	reportRepo := mocks.NewMockReportRepository(ctrl)
	summaries := analyzingmocks.NewMockSummaryUpdater(ctrl)
	predictor := predictingmocks.NewMockPredictor(ctrl)

	users := map[string]*domain.User{}
	userRepo.EXPECT().GetOrCreateUser(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, u *domain.User) (*domain.User, bool, error) {
			u.ID = "u-" + strings.Split(u.Email, "@")[0]
			users[u.Email] = u
			return u, true, nil
		})

	var keys []*domain.UserAPIKey
	apiKeyRepo.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Times(4).DoAndReturn(
		func(_ context.Context, k *domain.UserAPIKey) (bool, error) {
			keys = append(keys, k)
			return true, nil
		})

	index := 0
	campaignRepo.EXPECT().GetOrCreateByTitle(gomock.Any(), gomock.Any()).Times(7).DoAndReturn(
		func(_ context.Context, c *domain.Campaign) (*domain.Campaign, bool, error) {
			c.ID = "c" + string(rune('0'+index))
			index++
			return c, true, nil
		})

	ads := 0
	contentRepo.EXPECT().GetOrCreateAdContent(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, ad *domain.AdContent) (*domain.AdContent, bool, error) {
			ads++
			return ad, true, nil
		})

	analyticsRepo.EXPECT().CreateMissing(gomock.Any(), gomock.Any()).Times(7).DoAndReturn(
		func(_ context.Context, rows []*domain.DailyAnalytics) (int64, error) {
			return int64(len(rows)), nil
		})
	summaries.EXPECT().UpdateCampaignSummary(gomock.Any(), gomock.Any()).Times(7).Return(true, nil)

	predictor.EXPECT().Train(gomock.Any(), gomock.Any(), "c0").Return(&domain.TrainingResult{Accuracy: 0.9, Samples: 45}, nil)
	predictor.EXPECT().Train(gomock.Any(), gomock.Any(), "c1").Return(nil, errors.New("poucos dados"))
	predictor.EXPECT().Train(gomock.Any(), gomock.Any(), "c2").Return(&domain.TrainingResult{Accuracy: 0.8, Samples: 31}, nil)
	predictor.EXPECT().PredictNextWeek(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(
		&domain.Forecast{Predictions: make([]*domain.Prediction, 7)}, nil)

	abTestRepo.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, test *domain.ABTest) (*domain.ABTest, bool, error) {
			assert.Equal(t, "c0", test.CampaignID)
			assert.Equal(t, now.AddDate(0, 0, -7), test.StartDate)
			test.ID = "ab1"
			return test, true, nil
		})
	abTestRepo.EXPECT().AddVariation(gomock.Any(), gomock.Any()).Times(2).Return(nil)

	reportRepo.EXPECT().GetOrCreateSchedule(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, s *domain.ReportSchedule) (*domain.ReportSchedule, bool, error) {
			assert.Equal(t, []string{"c0", "c1", "c2"}, s.IncludeCampaigns)
			assert.Equal(t, now.Add(24*time.Hour), s.NextRun)
			return s, true, nil
		})

	var comments []*domain.Comment
	contentRepo.EXPECT().GetOrCreateComment(gomock.Any(), gomock.Any()).Times(5).DoAndReturn(
		func(_ context.Context, c *domain.Comment) (*domain.Comment, bool, error) {
			comments = append(comments, c)
			return c, true, nil
		})

	seeder := New(Dependencies{
		UserRepo:      userRepo,
		APIKeyRepo:    apiKeyRepo,
		CampaignRepo:  campaignRepo,
		ContentRepo:   contentRepo,
		AnalyticsRepo: analyticsRepo,
		ABTestRepo:    abTestRepo,
		ReportRepo:    reportRepo,
		Summaries:     summaries,
		Predictor:     predictor,
		Sealer:        credentialing.NewService(apiKeyRepo, box).(*credentialing.Service),
		Clock:         clock,
	}, WithRand(rand.New(rand.NewPCG(1, 2))))

	result, err := seeder.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Users)
	assert.Equal(t, 4, result.APIKeys)
	assert.Equal(t, 7, result.Campaigns)
	assert.Equal(t, ads, result.Ads)
	assert.Equal(t, int64(45+39+31+26+21+16+11), result.AnalyticsDays)
	assert.Equal(t, 7, result.Summaries)
	assert.Equal(t, 2, result.Models)
	assert.Equal(t, 14, result.Predictions)
	assert.Equal(t, 1, result.ABTests)
	assert.Equal(t, 2, result.Schedules)
	assert.Equal(t, 5, result.Comments)

	demo := users["demo@advision.com"]
	require.NotNil(t, demo)
	assert.Equal(t, domain.RoleAdmin, demo.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(demo.PasswordHash), []byte("demo123")))
	assert.Equal(t, domain.RoleEditor, users["test@advision.com"].Role)

	require.Len(t, keys, 4)
	for _, k := range keys {
		assert.Equal(t, "u-demo", k.UserID)
		assert.Equal(t, domain.VerificationVerified, k.VerificationStatus)
		assert.Equal(t, k.APIType.RequiresSecret(), k.EncryptedSecret != "")
	}

	plain, err := box.Decrypt(keys[0].EncryptedKey)
	require.NoError(t, err)
	assert.Equal(t, "demo_google_ads_key_12345", plain)

	assert.Equal(t, "c3", comments[2].CampaignID)
	assert.Equal(t, "c2", comments[4].CampaignID)
}

func TestSeeder_StopsWhenCampaignFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := timezone.New(time.UTC)
	box, _ := secretbox.New("k")

	userRepo := mocks.NewMockUserRepository(ctrl)
	apiKeyRepo := mocks.NewMockAPIKeyRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)

	userRepo.EXPECT().GetOrCreateUser(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, u *domain.User) (*domain.User, bool, error) {
			return u, false, nil
		})
	apiKeyRepo.EXPECT().CreateIfNotExists(gomock.Any(), gomock.Any()).Times(4).Return(false, nil)
	campaignRepo.EXPECT().GetOrCreateByTitle(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("conexão recusada"))

	_, err := New(Dependencies{
		UserRepo:     userRepo,
		APIKeyRepo:   apiKeyRepo,
		CampaignRepo: campaignRepo,
		Sealer:       credentialing.NewService(apiKeyRepo, box).(*credentialing.Service),
		Clock:        clock,
	}).Run(context.Background())

	assert.ErrorContains(t, err, "Summer Sale 2024")
}
