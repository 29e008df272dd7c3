// Package app monta as dependências compartilhadas pelos executáveis
// (API, worker e CLI) a partir da configuração.
package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/cache"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
	"github.com/vfg2006/advision-api/infrastructure/integrator/google"
	"github.com/vfg2006/advision-api/infrastructure/queue"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/infrastructure/storage"
	"github.com/vfg2006/advision-api/internal/api/handler"
	"github.com/vfg2006/advision-api/internal/config"
	"github.com/vfg2006/advision-api/internal/tasks"
	"github.com/vfg2006/advision-api/internal/usecases/analyzing"
	"github.com/vfg2006/advision-api/internal/usecases/authenticating"
	"github.com/vfg2006/advision-api/internal/usecases/campaigning"
	"github.com/vfg2006/advision-api/internal/usecases/credentialing"
	"github.com/vfg2006/advision-api/internal/usecases/experimenting"
	"github.com/vfg2006/advision-api/internal/usecases/maintaining"
	"github.com/vfg2006/advision-api/internal/usecases/predicting"
	"github.com/vfg2006/advision-api/internal/usecases/reporting"
	"github.com/vfg2006/advision-api/internal/usecases/seeding"
	"github.com/vfg2006/advision-api/pkg/secretbox"
	"github.com/vfg2006/advision-api/pkg/timezone"
)

type Repositories struct {
	User        repository.UserRepository
	APIKey      repository.APIKeyRepository
	Campaign    repository.CampaignRepository
	Content     repository.ContentRepository
	Analytics   repository.DailyAnalyticsRepository
	Summary     repository.AnalyticsSummaryRepository
	ABTest      repository.ABTestRepository
	Predictive  repository.PredictiveRepository
	Report      repository.ReportRepository
	Maintenance repository.MaintenanceRepository
}

type App struct {
	Config  *config.Config
	Clock   *timezone.Clock
	Conn    *postgres.Connection
	Redis   *redis.Client
	Queue   *queue.Queue
	Storage storage.Storage
	Repos   Repositories

	Runner   *tasks.Runner
	Enqueuer *tasks.Enqueuer

	Authenticator authenticating.Authenticator
	Campaigns     campaigning.CampaignService
	Analyzer      analyzing.Analyzer
	Experimenter  experimenting.Experimenter
	Predictor     predicting.Predictor
	Reporter      reporting.Reporter
	Credentials   credentialing.CredentialService
	Seeder        *seeding.Seeder
	Maintainer    maintaining.Maintainer
}

// Build conecta ao banco e, quando configurados, ao Redis, à fila e ao S3.
// Sem REDIS_ADDR o cache é desligado e sem AMQP_URL as tarefas rodam no processo.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{
		Config: cfg,
		Clock:  timezone.New(cfg.Location()),
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	a.Conn = conn
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	a.Repos = Repositories{
		User:        repository.NewUserRepository(conn),
		APIKey:      repository.NewAPIKeyRepository(conn),
		Campaign:    repository.NewCampaignRepository(conn),
		Content:     repository.NewContentRepository(conn),
		Analytics:   repository.NewDailyAnalyticsRepository(conn),
		Summary:     repository.NewAnalyticsSummaryRepository(conn),
		ABTest:      repository.NewABTestRepository(conn),
		Predictive:  repository.NewPredictiveRepository(conn),
		Report:      repository.NewReportRepository(conn),
		Maintenance: repository.NewMaintenanceRepository(conn),
	}

	summaryCache := a.summaryCache(ctx)

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("erro ao configurar armazenamento: %w", err)
	}
	a.Storage = store

	box, err := secretbox.New(cfg.Auth.EncryptionKey)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("erro ao configurar criptografia das credenciais: %w", err)
	}

	a.Analyzer = analyzing.NewService(a.Repos.Campaign, a.Repos.Analytics, a.Repos.Summary, summaryCache, a.Clock)
	a.Runner = tasks.NewRunner(a.Analyzer)

	var publisher tasks.Publisher
	if cfg.Queue.URL != "" {
		q, err := queue.Dial(cfg.Queue.URL, cfg.Queue.Name)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("erro ao conectar ao RabbitMQ: %w", err)
		}
		a.Queue = q
		publisher = q
		logrus.WithField("queue", q.Name()).Info("Fila de tarefas configurada")
	} else {
		logrus.Warn("AMQP_URL não configurada, tarefas serão executadas no próprio processo")
	}
	a.Enqueuer = tasks.NewEnqueuer(publisher, a.Runner)

	a.Authenticator = authenticating.NewService(a.Repos.User, google.NewClient(cfg.Google), a.Clock, cfg)
	a.Campaigns = campaigning.NewService(a.Repos.Campaign, a.Repos.Content, a.Repos.Analytics, store, a.Enqueuer, a.Clock)
	a.Experimenter = experimenting.NewService(a.Repos.ABTest, a.Repos.Campaign, a.Clock)
	a.Predictor = predicting.NewService(a.Repos.Campaign, a.Repos.Analytics, a.Repos.Summary, a.Repos.Predictive, a.Clock)
	a.Reporter = reporting.NewService(a.Repos.Report, a.Repos.Campaign, a.Repos.Analytics, a.Repos.Summary, store, a.Clock)
	a.Credentials = credentialing.NewService(a.Repos.APIKey, box)

	a.Seeder = seeding.New(seeding.Dependencies{
		UserRepo:      a.Repos.User,
		APIKeyRepo:    a.Repos.APIKey,
		CampaignRepo:  a.Repos.Campaign,
		ContentRepo:   a.Repos.Content,
		AnalyticsRepo: a.Repos.Analytics,
		ABTestRepo:    a.Repos.ABTest,
		ReportRepo:    a.Repos.Report,
		Summaries:     a.Analyzer,
		Predictor:     a.Predictor,
		Sealer:        a.Credentials.(*credentialing.Service),
		Clock:         a.Clock,
	})
	a.Maintainer = maintaining.NewService(a.Repos.Maintenance, a.Repos.Summary, a.Repos.User, a.Seeder, a.Clock)

	return a, nil
}

// summaryCache devolve o cache no Redis ou, se indisponível, um cache vazio
func (a *App) summaryCache(ctx context.Context) cache.SummaryCache {
	if a.Config.Redis.Addr == "" {
		logrus.Info("REDIS_ADDR não configurado, cache de resumos desativado")
		return cache.NoopSummaryCache{}
	}

	rdb, err := cache.NewRedisClient(a.Config.Redis.Addr, a.Config.Redis.Password, a.Config.Redis.DB)
	if err != nil {
		logrus.WithError(err).Warn("Cache de resumos desativado")
		return cache.NoopSummaryCache{}
	}

	if err := rdb.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, cache de resumos desativado")
		_ = rdb.Close()
		return cache.NoopSummaryCache{}
	}

	a.Redis = rdb
	logrus.WithField("addr", a.Config.Redis.Addr).Info("Cache de resumos no Redis ativado")
	return cache.NewSummaryCache(rdb, a.Config.Redis.SummaryCacheTTL)
}

// HealthChecks lista as dependências verificadas pelo /healthcheck
func (a *App) HealthChecks() map[string]handler.Pinger {
	checks := map[string]handler.Pinger{"database": a.Conn}
	if a.Redis != nil {
		checks["redis"] = redisPinger{a.Redis}
	}
	return checks
}

type redisPinger struct {
	rdb *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

func (a *App) Close() {
	if a.Queue != nil {
		if err := a.Queue.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com RabbitMQ")
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com Redis")
		}
	}
	if a.Conn != nil {
		if err := a.Conn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		}
	}
}
