package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
	"github.com/vfg2006/advision-api/infrastructure/migration"
	"github.com/vfg2006/advision-api/internal/app"
	"github.com/vfg2006/advision-api/internal/config"
	"github.com/vfg2006/advision-api/internal/usecases/analyzing"
	"github.com/vfg2006/advision-api/internal/usecases/maintaining"
	"github.com/vfg2006/advision-api/pkg/log"
)

// services são as dependências usadas pelos comandos
type services struct {
	summaries  analyzing.SummaryUpdater
	seeder     maintaining.Seeder
	maintainer maintaining.Maintainer
	close      func()
}

// migrator aplica as migrações embutidas
type migrator func(ctx context.Context) ([]string, error)

// loadServices e loadMigrator são substituídos nos testes
var (
	loadServices = func(ctx context.Context) (*services, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}

		application, err := app.Build(ctx, cfg)
		if err != nil {
			return nil, err
		}

		return &services{
			summaries:  application.Analyzer,
			seeder:     application.Seeder,
			maintainer: application.Maintainer,
			close:      application.Close,
		}, nil
	}

	loadMigrator = func(ctx context.Context) (migrator, func(), error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, nil, err
		}

		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}

		apply := func(ctx context.Context) ([]string, error) {
			return migration.Apply(ctx, conn)
		}
		return apply, func() { _ = conn.Close() }, nil
	}
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	log.Configure(cfg.App.LogLevel, cfg.App.Env)
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	var (
		timeout time.Duration
		cancel  context.CancelFunc = func() {}
	)

	root := &cobra.Command{
		Use:   "advision",
		Short: "Comandos de manutenção do AdVision",
		Long: `Comandos de gerenciamento do banco do AdVision.

Use setup-demo para popular o ambiente de demonstração e
update-analytics-summaries para recalcular as notas das campanhas.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if timeout > 0 {
				var ctx context.Context
				ctx, cancel = context.WithTimeout(cmd.Context(), timeout)
				cmd.SetContext(ctx)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cancel()
		},
	}

	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Minute, "Tempo máximo de execução do comando")

	root.AddCommand(
		newSetupDemoCmd(),
		newUpdateSummariesCmd(),
		newCleanupSummariesCmd(),
		newFixTimestampsCmd(),
		newResetCmd(),
		newVerifyDBCmd(),
		newMigrateCmd(),
	)

	return root
}

// withServices carrega as dependências, executa fn e libera as conexões
func withServices(cmd *cobra.Command, fn func(ctx context.Context, svc *services) error) error {
	svc, err := loadServices(cmd.Context())
	if err != nil {
		return err
	}
	if svc.close != nil {
		defer svc.close()
	}
	return fn(cmd.Context(), svc)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("Comando falhou")
		os.Exit(1)
	}
}
