// Package maintaining reúne as rotinas de manutenção do banco executadas pela CLI.
package maintaining

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/seeding"
	"github.com/vfg2006/advision-api/pkg/timezone"
)

// Seeder recria o ambiente de demonstração
type Seeder interface {
	Run(ctx context.Context) (*seeding.Result, error)
}

type ResetOptions struct {
	DemoOnly bool
	Reseed   bool
}

type CleanupResult struct {
	Created int64 `json:"created"`
	Removed int64 `json:"removed"`
}

type Maintainer interface {
	CleanupSummaries(ctx context.Context) (*CleanupResult, error)
	Reset(ctx context.Context, opts ResetOptions) (*domain.ResetResult, error)
	Verify(ctx context.Context) (*domain.VerificationReport, error)
	FixTimestamps(ctx context.Context) ([]domain.ColumnRef, error)
}

type Service struct {
	maintenanceRepo repository.MaintenanceRepository
	summaryRepo     repository.AnalyticsSummaryRepository
	userRepo        repository.UserRepository
	seeder          Seeder
	clock           *timezone.Clock
}

func NewService(
	maintenanceRepo repository.MaintenanceRepository,
	summaryRepo repository.AnalyticsSummaryRepository,
	userRepo repository.UserRepository,
	seeder Seeder,
	clock *timezone.Clock,
) Maintainer {
	return &Service{
		maintenanceRepo: maintenanceRepo,
		summaryRepo:     summaryRepo,
		userRepo:        userRepo,
		seeder:          seeder,
		clock:           clock,
	}
}

// CleanupSummaries cria os resumos que faltam e remove duplicados, mantendo o primeiro
func (s *Service) CleanupSummaries(ctx context.Context) (*CleanupResult, error) {
	removed, err := s.summaryRepo.DeleteDuplicates(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao remover resumos duplicados: %w", err)
	}

	created, err := s.summaryRepo.CreateMissing(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar resumos ausentes: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"created": created,
		"removed": removed,
	}).Info("Resumos de campanhas verificados")

	return &CleanupResult{Created: created, Removed: removed}, nil
}

func (s *Service) Reset(ctx context.Context, opts ResetOptions) (*domain.ResetResult, error) {
	result := &domain.ResetResult{}

	if opts.DemoOnly {
		// as demais tabelas são removidas em cascata a partir do usuário
		removed, err := s.userRepo.DeleteUsersByEmail(ctx, seeding.DemoEmails())
		if err != nil {
			return nil, fmt.Errorf("erro ao remover usuários de demonstração: %w", err)
		}
		result.UsersRemoved = removed
	} else {
		deleted, err := s.maintenanceRepo.DeleteAll(ctx)
		if err != nil {
			return nil, err
		}
		result.Deleted = deleted
		for _, d := range deleted {
			if d.Table == "users" {
				result.UsersRemoved = d.Rows
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"demo_only":     opts.DemoOnly,
		"users_removed": result.UsersRemoved,
	}).Warn("Banco de dados limpo")

	if opts.Reseed {
		if s.seeder == nil {
			return nil, fmt.Errorf("gerador de dados de demonstração não configurado")
		}
		if _, err := s.seeder.Run(ctx); err != nil {
			return nil, fmt.Errorf("erro ao recriar dados de demonstração: %w", err)
		}
		result.Reseeded = true
	}

	return result, nil
}

func (s *Service) Verify(ctx context.Context) (*domain.VerificationReport, error) {
	info, err := s.maintenanceRepo.DatabaseInfo(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.maintenanceRepo.ExistingTables(ctx)
	if err != nil {
		return nil, err
	}

	missing := make([]string, 0)
	expected := make([]string, 0, len(repository.Tables))
	for _, table := range repository.Tables {
		if slices.Contains(existing, table) {
			expected = append(expected, table)
		} else {
			missing = append(missing, table)
		}
	}

	counts, err := s.maintenanceRepo.TableCounts(ctx, expected)
	if err != nil {
		return nil, err
	}

	report := &domain.VerificationReport{
		Info:          *info,
		MissingTables: missing,
		Counts:        counts,
	}

	if slices.Contains(existing, "campaign_analytics_summaries") {
		if report.DuplicateSummary, err = s.summaryRepo.CountDuplicates(ctx); err != nil {
			return nil, err
		}
	}

	if report.NaiveColumns, err = s.maintenanceRepo.NaiveTimestampColumns(ctx); err != nil {
		return nil, err
	}

	if slices.Contains(existing, "schema_migrations") {
		if report.AppliedVersions, err = s.maintenanceRepo.AppliedVersions(ctx); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// FixTimestamps converte colunas timestamp sem fuso para timestamptz,
// interpretando os valores gravados no fuso configurado
func (s *Service) FixTimestamps(ctx context.Context) ([]domain.ColumnRef, error) {
	columns, err := s.maintenanceRepo.NaiveTimestampColumns(ctx)
	if err != nil {
		return nil, err
	}

	zone := s.clock.Location().String()
	converted := make([]domain.ColumnRef, 0, len(columns))
	for _, column := range columns {
		if err := s.maintenanceRepo.ConvertColumn(ctx, column, zone); err != nil {
			return converted, err
		}
		converted = append(converted, column)
		logrus.Infof("Coluna %s.%s convertida para timestamptz (%s)", column.Table, column.Column, zone)
	}

	return converted, nil
}
