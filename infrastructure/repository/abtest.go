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
	abTestsTable    = "ab_tests"
	variationsTable = "ab_test_variations"
)

var abTestColumns = []string{
	"t.id", "t.campaign_id", "t.name", "t.description", "t.status", "t.success_metric", "t.min_sample_size",
	"t.start_date", "t.end_date", "t.winner_variation_id", "t.created_at",
}

type ABTestRepository interface {
	Create(ctx context.Context, test *domain.ABTest) error
	GetOrCreate(ctx context.Context, test *domain.ABTest) (*domain.ABTest, bool, error)
	GetByID(ctx context.Context, testID string) (*domain.ABTest, error)
	ListByUser(ctx context.Context, userID *string) ([]*domain.ABTest, error)
	AddVariation(ctx context.Context, variation *domain.ABTestVariation) error
	Complete(ctx context.Context, testID string, winnerID *string, endDate time.Time) error
}

type abTestRepository struct {
	conn *postgres.Connection
}

func NewABTestRepository(conn *postgres.Connection) ABTestRepository {
	return &abTestRepository{
		conn: conn,
	}
}

// Create grava o teste e suas variações na mesma transação
func (r *abTestRepository) Create(ctx context.Context, test *domain.ABTest) error {
	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		return r.create(ctx, q, test)
	})
}

func (r *abTestRepository) create(ctx context.Context, q postgres.Queryer, test *domain.ABTest) error {
	if test.ID == "" {
		test.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(abTestsTable).
		Columns("id", "campaign_id", "name", "description", "status", "success_metric", "min_sample_size", "start_date", "end_date").
		Values(test.ID, test.CampaignID, test.Name, test.Description, test.Status, test.SuccessMetric, test.MinSampleSize, test.StartDate, test.EndDate).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&test.CreatedAt); err != nil {
		return fmt.Errorf("erro ao criar teste A/B: %w", err)
	}

	for _, v := range test.Variations {
		v.ABTestID = test.ID
		if err := r.insertVariation(ctx, q, v); err != nil {
			return err
		}
	}

	return nil
}

// GetOrCreate usa (campanha, nome) como chave natural
func (r *abTestRepository) GetOrCreate(ctx context.Context, test *domain.ABTest) (*domain.ABTest, bool, error) {
	var (
		result  *domain.ABTest
		created bool
	)

	err := r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		existing, err := r.getTest(ctx, q, squirrel.Eq{"t.campaign_id": test.CampaignID, "t.name": test.Name})
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}

		if err := r.create(ctx, q, test); err != nil {
			return err
		}
		result, created = test, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return result, created, nil
}

func (r *abTestRepository) GetByID(ctx context.Context, testID string) (*domain.ABTest, error) {
	if !validID(testID) {
		return nil, nil
	}
	return r.getTest(ctx, r.conn, squirrel.Eq{"t.id": testID})
}

func (r *abTestRepository) getTest(ctx context.Context, q postgres.Queryer, where squirrel.Eq) (*domain.ABTest, error) {
	query, args, err := psql.
		Select(abTestColumns...).
		From(abTestsTable + " t").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	test, err := scanABTest(q.QueryRow(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear teste A/B: %w", err)
	}

	variations, err := r.listVariations(ctx, q, []string{test.ID})
	if err != nil {
		return nil, err
	}
	test.Variations = variations[test.ID]

	return test, nil
}

func (r *abTestRepository) ListByUser(ctx context.Context, userID *string) ([]*domain.ABTest, error) {
	queryBuilder := psql.
		Select(abTestColumns...).
		From(abTestsTable + " t").
		Join(campaignsTable + " c ON c.id = t.campaign_id").
		OrderBy("t.created_at DESC")

	if userID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.user_id": *userID})
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

	tests := make([]*domain.ABTest, 0)
	ids := make([]string, 0)
	for rows.Next() {
		test, err := scanABTest(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear teste A/B: %w", err)
		}
		tests = append(tests, test)
		ids = append(ids, test.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	variations, err := r.listVariations(ctx, r.conn, ids)
	if err != nil {
		return nil, err
	}
	for _, test := range tests {
		test.Variations = variations[test.ID]
	}

	return tests, nil
}

func (r *abTestRepository) AddVariation(ctx context.Context, variation *domain.ABTestVariation) error {
	return r.insertVariation(ctx, r.conn, variation)
}

func (r *abTestRepository) Complete(ctx context.Context, testID string, winnerID *string, endDate time.Time) error {
	query, args, err := psql.
		Update(abTestsTable).
		Set("status", domain.ABTestCompleted).
		Set("winner_variation_id", winnerID).
		Set("end_date", endDate).
		Where(squirrel.Eq{"id": testID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao concluir teste A/B: %w", err)
	}
	return nil
}

func (r *abTestRepository) insertVariation(ctx context.Context, q postgres.Queryer, v *domain.ABTestVariation) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(variationsTable).
		Columns("id", "ab_test_id", "name", "ad_content_id", "impressions", "clicks", "conversions", "spend").
		Values(v.ID, v.ABTestID, v.Name, v.AdContentID, v.Impressions, v.Clicks, v.Conversions, v.Spend).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao criar variação %s: %w", v.Name, err)
	}
	return nil
}

func (r *abTestRepository) listVariations(ctx context.Context, q postgres.Queryer, testIDs []string) (map[string][]*domain.ABTestVariation, error) {
	result := make(map[string][]*domain.ABTestVariation, len(testIDs))
	if len(testIDs) == 0 {
		return result, nil
	}

	query, args, err := psql.
		Select("id", "ab_test_id", "name", "ad_content_id", "impressions", "clicks", "conversions", "spend").
		From(variationsTable).
		Where(squirrel.Eq{"ab_test_id": testIDs}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar variações: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.ABTestVariation
		if err := rows.Scan(&v.ID, &v.ABTestID, &v.Name, &v.AdContentID, &v.Impressions, &v.Clicks, &v.Conversions, &v.Spend); err != nil {
			return nil, fmt.Errorf("erro ao escanear variação: %w", err)
		}
		result[v.ABTestID] = append(result[v.ABTestID], &v)
	}

	return result, rows.Err()
}

func scanABTest(row scanner) (*domain.ABTest, error) {
	var t domain.ABTest
	var startDate sql.NullTime
	err := row.Scan(
		&t.ID, &t.CampaignID, &t.Name, &t.Description, &t.Status, &t.SuccessMetric, &t.MinSampleSize,
		&startDate, &t.EndDate, &t.WinnerVariationID, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.StartDate = startDate.Time
	return &t, nil
}
