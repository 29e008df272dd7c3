package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
	"github.com/vfg2006/advision-api/internal/domain"
)

// Tables lista as tabelas da aplicação, filhas antes das mães
var Tables = []string{
	"predictions",
	"predictive_models",
	"ab_test_variations",
	"ab_tests",
	"generated_reports",
	"report_schedule_campaigns",
	"report_schedules",
	"campaign_analytics_summaries",
	"daily_analytics",
	"comments",
	"image_assets",
	"ad_contents",
	"user_api_keys",
	"campaigns",
	"social_accounts",
	"social_apps",
	"email_addresses",
	"users",
}

type MaintenanceRepository interface {
	DatabaseInfo(ctx context.Context) (*domain.DatabaseInfo, error)
	ExistingTables(ctx context.Context) ([]string, error)
	AppliedVersions(ctx context.Context) ([]string, error)
	TableCounts(ctx context.Context, tables []string) ([]domain.TableCount, error)
	DeleteAll(ctx context.Context) ([]domain.TableCount, error)
	NaiveTimestampColumns(ctx context.Context) ([]domain.ColumnRef, error)
	ConvertColumn(ctx context.Context, column domain.ColumnRef, zone string) error
}

type maintenanceRepository struct {
	conn *postgres.Connection
}

func NewMaintenanceRepository(conn *postgres.Connection) MaintenanceRepository {
	return &maintenanceRepository{
		conn: conn,
	}
}

func (r *maintenanceRepository) DatabaseInfo(ctx context.Context) (*domain.DatabaseInfo, error) {
	var info domain.DatabaseInfo
	err := r.conn.QueryRow(ctx, "SELECT version(), current_database(), current_user").Scan(&info.Version, &info.Database, &info.User)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar informações do banco: %w", err)
	}
	return &info, nil
}

func (r *maintenanceRepository) ExistingTables(ctx context.Context) ([]string, error) {
	return r.strings(ctx, `SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name`)
}

func (r *maintenanceRepository) AppliedVersions(ctx context.Context) ([]string, error) {
	return r.strings(ctx, "SELECT version FROM schema_migrations ORDER BY version")
}

func (r *maintenanceRepository) strings(ctx context.Context, query string) ([]string, error) {
	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *maintenanceRepository) TableCounts(ctx context.Context, tables []string) ([]domain.TableCount, error) {
	counts := make([]domain.TableCount, 0, len(tables))
	for _, table := range tables {
		var n int64
		if err := r.conn.QueryRow(ctx, "SELECT COUNT(*) FROM "+pq.QuoteIdentifier(table)).Scan(&n); err != nil {
			return nil, fmt.Errorf("erro ao contar %s: %w", table, err)
		}
		counts = append(counts, domain.TableCount{Table: table, Rows: n})
	}
	return counts, nil
}

// DeleteAll apaga todas as linhas em ordem de dependência, numa única transação
func (r *maintenanceRepository) DeleteAll(ctx context.Context) ([]domain.TableCount, error) {
	deleted := make([]domain.TableCount, 0, len(Tables))

	err := r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, table := range Tables {
			result, err := q.Exec(ctx, "DELETE FROM "+pq.QuoteIdentifier(table))
			if err != nil {
				return fmt.Errorf("erro ao limpar %s: %w", table, err)
			}
			deleted = append(deleted, domain.TableCount{Table: table, Rows: rowsAffected(result)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

func (r *maintenanceRepository) NaiveTimestampColumns(ctx context.Context) ([]domain.ColumnRef, error) {
	rows, err := r.conn.Query(ctx, `SELECT table_name, column_name FROM information_schema.columns
		WHERE table_schema = 'public' AND data_type = 'timestamp without time zone'
		ORDER BY table_name, column_name`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar colunas sem fuso: %w", err)
	}
	defer rows.Close()

	columns := make([]domain.ColumnRef, 0)
	for rows.Next() {
		var c domain.ColumnRef
		if err := rows.Scan(&c.Table, &c.Column); err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, rows.Err()
}

// ConvertColumn converte a coluna para timestamptz interpretando os valores no fuso informado
func (r *maintenanceRepository) ConvertColumn(ctx context.Context, column domain.ColumnRef, zone string) error {
	col := pq.QuoteIdentifier(column.Column)
	query := fmt.Sprintf(
		"ALTER TABLE %s ALTER COLUMN %s TYPE TIMESTAMPTZ USING %s AT TIME ZONE %s",
		pq.QuoteIdentifier(column.Table), col, col, pq.QuoteLiteral(zone),
	)

	if _, err := r.conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("erro ao converter %s.%s: %w", column.Table, column.Column, err)
	}
	return nil
}
