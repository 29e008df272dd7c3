package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/advision-api/internal/usecases/maintaining"
	maintainingMocks "github.com/vfg2006/advision-api/internal/usecases/maintaining/mocks"
	"github.com/vfg2006/advision-api/internal/usecases/seeding"
	"go.uber.org/mock/gomock"
)

func stubServices(t *testing.T, svc *services) {
	t.Helper()

	original := loadServices
	loadServices = func(ctx context.Context) (*services, error) { return svc, nil }
	t.Cleanup(func() { loadServices = original })
}

func execute(args ...string) (string, error) {
	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSetupDemo(t *testing.T) {
	ctrl := gomock.NewController(t)
	seeder := maintainingMocks.NewMockSeeder(ctrl)

	closed := false
	stubServices(t, &services{seeder: seeder, close: func() { closed = true }})

	seeder.EXPECT().Run(gomock.Any()).Return(&seeding.Result{Users: 3, Campaigns: 5, AnalyticsDays: 150}, nil)

	out, err := execute("setup-demo")

	require.NoError(t, err)
	assert.Contains(t, out, "Usuários: 3")
	assert.Contains(t, out, "Campanhas: 5")
	assert.Contains(t, out, "Dias de métricas: 150")
	assert.True(t, closed)
}

func TestSetupDemo_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	seeder := maintainingMocks.NewMockSeeder(ctrl)
	stubServices(t, &services{seeder: seeder})

	seeder.EXPECT().Run(gomock.Any()).Return(nil, errors.New("falha"))

	_, err := execute("setup-demo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "falha")
}

func TestUpdateAnalyticsSummaries(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		force bool
	}{
		{name: "padrão", args: []string{"update-analytics-summaries"}, force: false},
		{name: "forçado", args: []string{"update-analytics-summaries", "--force"}, force: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			updater := mocks.NewMockSummaryUpdater(ctrl)
			stubServices(t, &services{summaries: updater})

			top := &domain.RankedSummary{CampaignTitle: "Black Friday", Platform: domain.PlatformFacebook}
			top.PerformanceScore = 87.5

			updater.EXPECT().RefreshSummaries(gomock.Any(), tt.force).Return(&domain.SummaryRefreshResult{
				Total:   4,
				Created: 1,
				Updated: 2,
				Top:     []*domain.RankedSummary{top},
			}, nil)

			out, err := execute(tt.args...)

			require.NoError(t, err)
			assert.Contains(t, out, "Created: 1")
			assert.Contains(t, out, "Updated: 2")
			assert.Contains(t, out, "Total: 4")
			assert.Contains(t, out, "1. Black Friday (facebook) - 87.50")
		})
	}
}

func TestReset_RequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	maintainer := maintainingMocks.NewMockMaintainer(ctrl)
	stubServices(t, &services{maintainer: maintainer})

	_, err := execute("reset", "--demo-only")

	assert.ErrorIs(t, err, errNotConfirmed)
}

func TestReset_DemoOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	maintainer := maintainingMocks.NewMockMaintainer(ctrl)
	stubServices(t, &services{maintainer: maintainer})

	maintainer.EXPECT().
		Reset(gomock.Any(), maintaining.ResetOptions{DemoOnly: true, Reseed: true}).
		Return(&domain.ResetResult{
			Deleted:      []domain.TableCount{{Table: "campaigns", Rows: 5}},
			UsersRemoved: 3,
			Reseeded:     true,
		}, nil)

	out, err := execute("reset", "--demo-only", "--reseed", "--yes")

	require.NoError(t, err)
	assert.Contains(t, out, "campaigns: 5 linhas removidas")
	assert.Contains(t, out, "Usuários de demonstração removidos: 3")
	assert.Contains(t, out, "Dados de demonstração recriados")
}

func TestCleanupSummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	maintainer := maintainingMocks.NewMockMaintainer(ctrl)
	stubServices(t, &services{maintainer: maintainer})

	maintainer.EXPECT().CleanupSummaries(gomock.Any()).Return(&maintaining.CleanupResult{Created: 2, Removed: 1}, nil)

	out, err := execute("cleanup-summaries")

	require.NoError(t, err)
	assert.Contains(t, out, "Resumos criados: 2")
	assert.Contains(t, out, "Duplicados removidos: 1")
}

func TestFixTimestamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	maintainer := maintainingMocks.NewMockMaintainer(ctrl)
	stubServices(t, &services{maintainer: maintainer})

	maintainer.EXPECT().FixTimestamps(gomock.Any()).Return([]domain.ColumnRef{{Table: "users", Column: "created_at"}}, nil)

	out, err := execute("fix-timestamps")

	require.NoError(t, err)
	assert.Contains(t, out, "Convertida: users.created_at")
}

func TestVerifyDB(t *testing.T) {
	t.Run("saudável", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		maintainer := maintainingMocks.NewMockMaintainer(ctrl)
		stubServices(t, &services{maintainer: maintainer})

		maintainer.EXPECT().Verify(gomock.Any()).Return(&domain.VerificationReport{
			Info:   domain.DatabaseInfo{Version: "PostgreSQL 16", Database: "advision", User: "postgres"},
			Counts: []domain.TableCount{{Table: "users", Rows: 3}},
		}, nil)

		out, err := execute("verify-db")

		require.NoError(t, err)
		assert.Contains(t, out, "Banco: advision")
		assert.Contains(t, out, "Banco de dados OK")
	})

	t.Run("com pendências", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		maintainer := maintainingMocks.NewMockMaintainer(ctrl)
		stubServices(t, &services{maintainer: maintainer})

		maintainer.EXPECT().Verify(gomock.Any()).Return(&domain.VerificationReport{
			MissingTables:    []string{"reports"},
			DuplicateSummary: 2,
		}, nil)

		out, err := execute("verify-db")

		require.Error(t, err)
		assert.Contains(t, out, "Tabela ausente: reports")
		assert.Contains(t, out, "Resumos duplicados: 2")
	})
}

func TestMigrate(t *testing.T) {
	original := loadMigrator
	t.Cleanup(func() { loadMigrator = original })

	closed := false
	loadMigrator = func(ctx context.Context) (migrator, func(), error) {
		apply := func(ctx context.Context) ([]string, error) {
			return []string{"0001_init", "0002_unique_summary"}, nil
		}
		return apply, func() { closed = true }, nil
	}

	out, err := execute("migrate")

	require.NoError(t, err)
	assert.Contains(t, out, "Aplicada: 0001_init")
	assert.Contains(t, out, "Aplicada: 0002_unique_summary")
	assert.True(t, closed)
}

func TestLoadServicesError(t *testing.T) {
	original := loadServices
	t.Cleanup(func() { loadServices = original })
	loadServices = func(ctx context.Context) (*services, error) { return nil, errors.New("sem banco") }

	_, err := execute("cleanup-summaries")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sem banco")
}
