package experimenting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/infrastructure/repository/mocks"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/timezone"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)

var owner = &domain.Claims{UserID: "u1", UserRole: domain.RoleEditor}

func newService(t *testing.T) (*Service, *mocks.MockABTestRepository, *mocks.MockCampaignRepository) {
	ctrl := gomock.NewController(t)
	abTestRepo := mocks.NewMockABTestRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	clock := timezone.New(time.UTC, timezone.WithNow(func() time.Time { return fixedNow }))
	return NewService(abTestRepo, campaignRepo, clock).(*Service), abTestRepo, campaignRepo
}

func TestService_CreateAppliesDefaults(t *testing.T) {
	svc, abTestRepo, campaignRepo := newService(t)

	campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u1"}, nil)
	abTestRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	test, err := svc.Create(context.Background(), owner, &domain.ABTest{
		CampaignID: "c1",
		Name:       " Headline Test ",
		Variations: []*domain.ABTestVariation{{Name: "A"}, {Name: "B"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Headline Test", test.Name)
	assert.Equal(t, domain.MetricCTR, test.SuccessMetric)
	assert.Equal(t, int64(1000), test.MinSampleSize)
	assert.Equal(t, domain.ABTestRunning, test.Status)
	assert.Equal(t, fixedNow, test.StartDate)
}

func TestService_CreateRejectsForeignCampaign(t *testing.T) {
	svc, _, campaignRepo := newService(t)
	campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "someone-else"}, nil)

	_, err := svc.Create(context.Background(), owner, &domain.ABTest{CampaignID: "c1", Name: "x"})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestService_AddVariation(t *testing.T) {
	t.Run("nome repetido", func(t *testing.T) {
		svc, abTestRepo, campaignRepo := newService(t)
		test := headlineTest()
		test.CampaignID = "c1"
		test.Status = domain.ABTestRunning

		abTestRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(test, nil)
		campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u1"}, nil)

		_, err := svc.AddVariation(context.Background(), owner, "t1", &domain.ABTestVariation{Name: "variation a"})
		assert.ErrorIs(t, err, ErrInvalidTest)
	})

	t.Run("teste finalizado", func(t *testing.T) {
		svc, abTestRepo, campaignRepo := newService(t)
		test := headlineTest()
		test.CampaignID = "c1"
		test.Status = domain.ABTestCompleted

		abTestRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(test, nil)
		campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u1"}, nil)

		_, err := svc.AddVariation(context.Background(), owner, "t1", &domain.ABTestVariation{Name: "C"})
		assert.ErrorIs(t, err, ErrTestCompleted)
	})

	t.Run("grava a variação", func(t *testing.T) {
		svc, abTestRepo, campaignRepo := newService(t)
		test := headlineTest()
		test.CampaignID = "c1"

		abTestRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(test, nil)
		campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u1"}, nil)
		abTestRepo.EXPECT().AddVariation(gomock.Any(), gomock.Any()).Return(nil)

		v, err := svc.AddVariation(context.Background(), owner, "t1", &domain.ABTestVariation{Name: "C", Impressions: 10, Clicks: 1})
		require.NoError(t, err)
		assert.Equal(t, "t1", v.ABTestID)
	})
}

func TestService_ResultsCompletesRunningTest(t *testing.T) {
	svc, abTestRepo, campaignRepo := newService(t)
	test := headlineTest()
	test.CampaignID = "c1"
	test.Status = domain.ABTestRunning

	abTestRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(test, nil)
	campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u1"}, nil)
	abTestRepo.EXPECT().Complete(gomock.Any(), "t1", gomock.Any(), fixedNow).DoAndReturn(
		func(_ context.Context, _ string, winnerID *string, _ time.Time) error {
			require.NotNil(t, winnerID)
			assert.Equal(t, "b", *winnerID)
			return nil
		})

	result, err := svc.Results(context.Background(), owner, "t1")
	require.NoError(t, err)
	assert.True(t, result.Significant)
}

func TestService_GetHidesOtherUsersTests(t *testing.T) {
	svc, abTestRepo, campaignRepo := newService(t)
	test := headlineTest()
	test.CampaignID = "c1"

	abTestRepo.EXPECT().GetByID(gomock.Any(), "t1").Return(test, nil)
	campaignRepo.EXPECT().GetByID(gomock.Any(), "c1").Return(&domain.Campaign{ID: "c1", UserID: "u2"}, nil)

	_, err := svc.Get(context.Background(), owner, "t1")
	assert.ErrorIs(t, err, ErrTestNotFound)
}
