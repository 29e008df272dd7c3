package maintaining

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/infrastructure/repository/mocks"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/seeding"
	"github.com/vfg2006/advision-api/pkg/timezone"
	"go.uber.org/mock/gomock"
)

type fakeSeeder struct {
	runs int
	err  error
}

func (f *fakeSeeder) Run(context.Context) (*seeding.Result, error) {
	f.runs++
	return &seeding.Result{}, f.err
}

type fixture struct {
	svc             Maintainer
	maintenanceRepo *mocks.MockMaintenanceRepository
	summaryRepo     *mocks.MockAnalyticsSummaryRepository
	userRepo        *mocks.MockUserRepository
	seeder          *fakeSeeder
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	f := fixture{
		maintenanceRepo: mocks.NewMockMaintenanceRepository(ctrl),
		summaryRepo:     mocks.NewMockAnalyticsSummaryRepository(ctrl),
		userRepo:        mocks.NewMockUserRepository(ctrl),
		seeder:          &fakeSeeder{},
	}
	f.svc = NewService(f.maintenanceRepo, f.summaryRepo, f.userRepo, f.seeder, timezone.New(loc))
	return f
}

func TestService_CleanupSummaries(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.summaryRepo.EXPECT().DeleteDuplicates(gomock.Any()).Return(int64(2), nil),
		f.summaryRepo.EXPECT().CreateMissing(gomock.Any()).Return(int64(3), nil),
	)

	result, err := f.svc.CleanupSummaries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &CleanupResult{Created: 3, Removed: 2}, result)
}

func TestService_ResetAll(t *testing.T) {
	f := newFixture(t)
	f.maintenanceRepo.EXPECT().DeleteAll(gomock.Any()).Return([]domain.TableCount{
		{Table: "campaigns", Rows: 7},
		{Table: "users", Rows: 3},
	}, nil)

	result, err := f.svc.Reset(context.Background(), ResetOptions{Reseed: true})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.UsersRemoved)
	assert.True(t, result.Reseeded)
	assert.Equal(t, 1, f.seeder.runs)
}

func TestService_ResetDemoOnly(t *testing.T) {
	f := newFixture(t)
	f.userRepo.EXPECT().DeleteUsersByEmail(gomock.Any(), []string{"demo@advision.com", "admin@advision.com", "test@advision.com"}).Return(int64(3), nil)

	result, err := f.svc.Reset(context.Background(), ResetOptions{DemoOnly: true})
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.UsersRemoved)
	assert.False(t, result.Reseeded)
	assert.Zero(t, f.seeder.runs)
}

func TestService_ResetReseedFailure(t *testing.T) {
	f := newFixture(t)
	f.seeder.err = errors.New("falhou")
	f.userRepo.EXPECT().DeleteUsersByEmail(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	_, err := f.svc.Reset(context.Background(), ResetOptions{DemoOnly: true, Reseed: true})
	assert.ErrorContains(t, err, "falhou")
}

func TestService_Verify(t *testing.T) {
	f := newFixture(t)

	existing := append([]string{"schema_migrations"}, repository.Tables[1:]...)

	f.maintenanceRepo.EXPECT().DatabaseInfo(gomock.Any()).Return(&domain.DatabaseInfo{Version: "PostgreSQL 16", Database: "advision", User: "app"}, nil)
	f.maintenanceRepo.EXPECT().ExistingTables(gomock.Any()).Return(existing, nil)
	f.maintenanceRepo.EXPECT().TableCounts(gomock.Any(), repository.Tables[1:]).Return([]domain.TableCount{{Table: "users", Rows: 3}}, nil)
	f.summaryRepo.EXPECT().CountDuplicates(gomock.Any()).Return(int64(0), nil)
	f.maintenanceRepo.EXPECT().NaiveTimestampColumns(gomock.Any()).Return(nil, nil)
	f.maintenanceRepo.EXPECT().AppliedVersions(gomock.Any()).Return([]string{"0001", "0002"}, nil)

	report, err := f.svc.Verify(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{repository.Tables[0]}, report.MissingTables)
	assert.Equal(t, "advision", report.Info.Database)
	assert.Equal(t, []string{"0001", "0002"}, report.AppliedVersions)
	assert.False(t, report.Healthy())
}

func TestService_FixTimestamps(t *testing.T) {
	f := newFixture(t)
	columns := []domain.ColumnRef{
		{Table: "campaigns", Column: "created_at"},
		{Table: "users", Column: "updated_at"},
	}

	f.maintenanceRepo.EXPECT().NaiveTimestampColumns(gomock.Any()).Return(columns, nil)
	f.maintenanceRepo.EXPECT().ConvertColumn(gomock.Any(), columns[0], "America/Sao_Paulo").Return(nil)
	f.maintenanceRepo.EXPECT().ConvertColumn(gomock.Any(), columns[1], "America/Sao_Paulo").Return(errors.New("lock timeout"))

	converted, err := f.svc.FixTimestamps(context.Background())
	assert.Error(t, err)
	assert.Equal(t, columns[:1], converted)
}
