package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
	"github.com/vfg2006/advision-api/internal/domain"
)

const (
	dailyAnalyticsTable = "daily_analytics"
	summariesTable      = "campaign_analytics_summaries"
)

var summaryColumns = []string{
	"s.id", "s.campaign_id", "s.total_impressions", "s.total_clicks", "s.total_conversions", "s.total_spend",
	"s.avg_ctr", "s.avg_conversion_rate", "s.avg_cpc", "s.cost_per_conversion", "s.days_tracked",
	"s.performance_score", "s.last_updated", "s.created_at",
}

type DailyAnalyticsRepository interface {
	SaveBatch(ctx context.Context, rows []*domain.DailyAnalytics) error
	CreateMissing(ctx context.Context, rows []*domain.DailyAnalytics) (int64, error)
	ListByCampaign(ctx context.Context, campaignID string, filters domain.AnalyticsFilters) ([]*domain.DailyAnalytics, error)
	TotalsByUser(ctx context.Context, userID string, start, end time.Time) (*domain.PeriodTotals, error)
	TopPlatform(ctx context.Context, userID string, start, end time.Time) (domain.Platform, error)
}

type dailyAnalyticsRepository struct {
	conn *postgres.Connection
}

func NewDailyAnalyticsRepository(conn *postgres.Connection) DailyAnalyticsRepository {
	return &dailyAnalyticsRepository{
		conn: conn,
	}
}

func (r *dailyAnalyticsRepository) insertBuilder(rows []*domain.DailyAnalytics) squirrel.InsertBuilder {
	builder := psql.
		Insert(dailyAnalyticsTable).
		Columns("id", "campaign_id", "date", "impressions", "clicks", "conversions", "spend")

	for _, row := range rows {
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		builder = builder.Values(row.ID, row.CampaignID, formatDate(row.Date), row.Impressions, row.Clicks, row.Conversions, row.Spend)
	}

	return builder
}

// SaveBatch grava as métricas, sobrescrevendo o dia quando já existir
func (r *dailyAnalyticsRepository) SaveBatch(ctx context.Context, rows []*domain.DailyAnalytics) error {
	if len(rows) == 0 {
		return nil
	}

	query, args, err := r.insertBuilder(rows).
		Suffix(`ON CONFLICT (campaign_id, date) DO UPDATE SET
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			conversions = EXCLUDED.conversions,
			spend = EXCLUDED.spend`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar métricas diárias: %w", err)
	}

	return nil
}

// CreateMissing insere apenas os dias que ainda não existem e retorna quantos foram criados
func (r *dailyAnalyticsRepository) CreateMissing(ctx context.Context, rows []*domain.DailyAnalytics) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query, args, err := r.insertBuilder(rows).
		Suffix("ON CONFLICT (campaign_id, date) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao inserir métricas diárias: %w", err)
	}

	return rowsAffected(result), nil
}

func (r *dailyAnalyticsRepository) ListByCampaign(ctx context.Context, campaignID string, filters domain.AnalyticsFilters) ([]*domain.DailyAnalytics, error) {
	queryBuilder := psql.
		Select("id", "campaign_id", "date", "impressions", "clicks", "conversions", "spend", "created_at").
		From(dailyAnalyticsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("date ASC")

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"date": formatDate(*filters.StartDate)})
	}

	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"date": formatDate(*filters.EndDate)})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.DailyAnalytics, 0)
	for rows.Next() {
		var d domain.DailyAnalytics
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.Date, &d.Impressions, &d.Clicks, &d.Conversions, &d.Spend, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
		}
		result = append(result, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func (r *dailyAnalyticsRepository) TotalsByUser(ctx context.Context, userID string, start, end time.Time) (*domain.PeriodTotals, error) {
	query, args, err := psql.
		Select(
			"COALESCE(SUM(da.impressions), 0)",
			"COALESCE(SUM(da.clicks), 0)",
			"COALESCE(SUM(da.conversions), 0)",
			"COALESCE(SUM(da.spend), 0)::float8",
		).
		From(dailyAnalyticsTable + " da").
		Join(campaignsTable + " c ON c.id = da.campaign_id").
		Where(squirrel.Eq{"c.user_id": userID}).
		Where(squirrel.GtOrEq{"da.date": formatDate(start)}).
		Where(squirrel.LtOrEq{"da.date": formatDate(end)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var totals domain.PeriodTotals
	err = r.conn.QueryRow(ctx, query, args...).Scan(&totals.Impressions, &totals.Clicks, &totals.Conversions, &totals.Spend)
	if err != nil {
		return nil, fmt.Errorf("erro ao totalizar métricas: %w", err)
	}

	return &totals, nil
}

// TopPlatform retorna a plataforma com mais conversões no período, ou "" sem dados
func (r *dailyAnalyticsRepository) TopPlatform(ctx context.Context, userID string, start, end time.Time) (domain.Platform, error) {
	query, args, err := psql.
		Select("c.platform").
		From(dailyAnalyticsTable + " da").
		Join(campaignsTable + " c ON c.id = da.campaign_id").
		Where(squirrel.Eq{"c.user_id": userID}).
		Where(squirrel.GtOrEq{"da.date": formatDate(start)}).
		Where(squirrel.LtOrEq{"da.date": formatDate(end)}).
		GroupBy("c.platform").
		OrderBy("SUM(da.conversions) DESC", "SUM(da.clicks) DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var platform domain.Platform
	err = r.conn.QueryRow(ctx, query, args...).Scan(&platform)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("erro ao buscar plataforma: %w", err)
	}

	return platform, nil
}

type AnalyticsSummaryRepository interface {
	GetByCampaignID(ctx context.Context, campaignID string) (*domain.CampaignAnalyticsSummary, error)
	ListByCampaignIDs(ctx context.Context, campaignIDs []string) (map[string]*domain.CampaignAnalyticsSummary, error)
	GetOrCreate(ctx context.Context, campaignID string) (*domain.CampaignAnalyticsSummary, bool, error)
	Save(ctx context.Context, summary *domain.CampaignAnalyticsSummary) error
	ListTop(ctx context.Context, userID *string, limit uint64) ([]*domain.RankedSummary, error)
	CreateMissing(ctx context.Context) (int64, error)
	CountDuplicates(ctx context.Context) (int64, error)
	DeleteDuplicates(ctx context.Context) (int64, error)
}

type analyticsSummaryRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsSummaryRepository(conn *postgres.Connection) AnalyticsSummaryRepository {
	return &analyticsSummaryRepository{
		conn: conn,
	}
}

func (r *analyticsSummaryRepository) GetByCampaignID(ctx context.Context, campaignID string) (*domain.CampaignAnalyticsSummary, error) {
	query, args, err := psql.
		Select(summaryColumns...).
		From(summariesTable + " s").
		Where(squirrel.Eq{"s.campaign_id": campaignID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary, err := scanSummary(r.conn.QueryRow(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear resumo: %w", err)
	}

	return summary, nil
}

func (r *analyticsSummaryRepository) ListByCampaignIDs(ctx context.Context, campaignIDs []string) (map[string]*domain.CampaignAnalyticsSummary, error) {
	result := make(map[string]*domain.CampaignAnalyticsSummary, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.
		Select(summaryColumns...).
		From(summariesTable + " s").
		Where(squirrel.Eq{"s.campaign_id": campaignIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo: %w", err)
		}
		result[summary.CampaignID] = summary
	}

	return result, rows.Err()
}

// GetOrCreate garante o resumo da campanha. O booleano indica se foi criado agora.
func (r *analyticsSummaryRepository) GetOrCreate(ctx context.Context, campaignID string) (*domain.CampaignAnalyticsSummary, bool, error) {
	query, args, err := psql.
		Insert(summariesTable).
		Columns("id", "campaign_id").
		Values(uuid.NewString(), campaignID).
		Suffix("ON CONFLICT (campaign_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("erro ao criar resumo: %w", err)
	}
	created := rowsAffected(result) > 0

	summary, err := r.GetByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, false, err
	}
	if summary == nil {
		return nil, false, fmt.Errorf("resumo da campanha %s não encontrado", campaignID)
	}

	return summary, created, nil
}

// Save grava o resumo com upsert na campanha, nunca criando uma segunda linha
func (r *analyticsSummaryRepository) Save(ctx context.Context, s *domain.CampaignAnalyticsSummary) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(summariesTable).
		Columns(
			"id", "campaign_id", "total_impressions", "total_clicks", "total_conversions", "total_spend",
			"avg_ctr", "avg_conversion_rate", "avg_cpc", "cost_per_conversion", "days_tracked",
			"performance_score", "last_updated",
		).
		Values(
			s.ID, s.CampaignID, s.TotalImpressions, s.TotalClicks, s.TotalConversions, s.TotalSpend,
			s.AvgCTR, s.AvgConversionRate, s.AvgCPC, s.CostPerConversion, s.DaysTracked,
			s.PerformanceScore, s.LastUpdated,
		).
		Suffix(`ON CONFLICT (campaign_id) DO UPDATE SET
			total_impressions = EXCLUDED.total_impressions,
			total_clicks = EXCLUDED.total_clicks,
			total_conversions = EXCLUDED.total_conversions,
			total_spend = EXCLUDED.total_spend,
			avg_ctr = EXCLUDED.avg_ctr,
			avg_conversion_rate = EXCLUDED.avg_conversion_rate,
			avg_cpc = EXCLUDED.avg_cpc,
			cost_per_conversion = EXCLUDED.cost_per_conversion,
			days_tracked = EXCLUDED.days_tracked,
			performance_score = EXCLUDED.performance_score,
			last_updated = EXCLUDED.last_updated
		RETURNING id, created_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		return fmt.Errorf("erro ao salvar resumo: %w", err)
	}

	return nil
}

func (r *analyticsSummaryRepository) ListTop(ctx context.Context, userID *string, limit uint64) ([]*domain.RankedSummary, error) {
	columns := append(append([]string{}, summaryColumns...), "c.title", "c.platform")

	queryBuilder := psql.
		Select(columns...).
		From(summariesTable + " s").
		Join(campaignsTable + " c ON c.id = s.campaign_id").
		OrderBy("s.performance_score DESC", "c.title ASC")

	if userID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.user_id": *userID})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.RankedSummary, 0)
	for rows.Next() {
		var item domain.RankedSummary
		s := &item.CampaignAnalyticsSummary
		if err := rows.Scan(
			&s.ID, &s.CampaignID, &s.TotalImpressions, &s.TotalClicks, &s.TotalConversions, &s.TotalSpend,
			&s.AvgCTR, &s.AvgConversionRate, &s.AvgCPC, &s.CostPerConversion, &s.DaysTracked,
			&s.PerformanceScore, &s.LastUpdated, &s.CreatedAt,
			&item.CampaignTitle, &item.Platform,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
		}
		result = append(result, &item)
	}

	return result, rows.Err()
}

// CreateMissing cria resumos vazios para campanhas que ainda não têm um
func (r *analyticsSummaryRepository) CreateMissing(ctx context.Context) (int64, error) {
	result, err := r.conn.Exec(ctx, `INSERT INTO campaign_analytics_summaries (id, campaign_id)
		SELECT gen_random_uuid(), c.id FROM campaigns c
		WHERE NOT EXISTS (SELECT 1 FROM campaign_analytics_summaries s WHERE s.campaign_id = c.id)
		ON CONFLICT (campaign_id) DO NOTHING`)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar resumos ausentes: %w", err)
	}
	return rowsAffected(result), nil
}

func (r *analyticsSummaryRepository) CountDuplicates(ctx context.Context) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx, `SELECT COALESCE(SUM(n - 1), 0) FROM (
		SELECT COUNT(*) AS n FROM campaign_analytics_summaries GROUP BY campaign_id HAVING COUNT(*) > 1
	) d`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar resumos duplicados: %w", err)
	}
	return count, nil
}

// DeleteDuplicates mantém o primeiro resumo criado de cada campanha
func (r *analyticsSummaryRepository) DeleteDuplicates(ctx context.Context) (int64, error) {
	result, err := r.conn.Exec(ctx, `DELETE FROM campaign_analytics_summaries s
		USING campaign_analytics_summaries older
		WHERE s.campaign_id = older.campaign_id
		AND (older.created_at, older.id) < (s.created_at, s.id)`)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover resumos duplicados: %w", err)
	}
	return rowsAffected(result), nil
}

func scanSummary(row scanner) (*domain.CampaignAnalyticsSummary, error) {
	var s domain.CampaignAnalyticsSummary
	err := row.Scan(
		&s.ID, &s.CampaignID, &s.TotalImpressions, &s.TotalClicks, &s.TotalConversions, &s.TotalSpend,
		&s.AvgCTR, &s.AvgConversionRate, &s.AvgCPC, &s.CostPerConversion, &s.DaysTracked,
		&s.PerformanceScore, &s.LastUpdated, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
