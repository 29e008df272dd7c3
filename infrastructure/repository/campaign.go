package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
	"github.com/vfg2006/advision-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{"id", "user_id", "title", "description", "platform", "budget", "start_date", "end_date", "is_active", "created_at", "updated_at"}

type CampaignFilters struct {
	UserID     *string
	ActiveOnly bool
	IDs        []string
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	Update(ctx context.Context, campaign *domain.Campaign) error
	Delete(ctx context.Context, campaignID string) (bool, error)
	GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error)
	List(ctx context.Context, filters CampaignFilters) ([]*domain.Campaign, error)
	GetOrCreateByTitle(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, bool, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(campaignsTable).
		Columns("id", "user_id", "title", "description", "platform", "budget", "start_date", "end_date", "is_active").
		Values(
			campaign.ID,
			campaign.UserID,
			campaign.Title,
			campaign.Description,
			campaign.Platform,
			campaign.Budget,
			formatDate(campaign.StartDate),
			formatDate(campaign.EndDate),
			campaign.IsActive,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&campaign.CreatedAt, &campaign.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao criar campanha: %w", err)
	}

	return nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := psql.
		Update(campaignsTable).
		Set("title", campaign.Title).
		Set("description", campaign.Description).
		Set("platform", campaign.Platform).
		Set("budget", campaign.Budget).
		Set("start_date", formatDate(campaign.StartDate)).
		Set("end_date", formatDate(campaign.EndDate)).
		Set("is_active", campaign.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaign.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&campaign.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao atualizar campanha: %w", err)
	}

	return nil
}

func (r *campaignRepository) Delete(ctx context.Context, campaignID string) (bool, error) {
	if !validID(campaignID) {
		return false, nil
	}
	query, args, err := psql.
		Delete(campaignsTable).
		Where(squirrel.Eq{"id": campaignID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover campanha: %w", err)
	}

	return rowsAffected(result) > 0, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	if !validID(campaignID) {
		return nil, nil
	}
	query, args, err := psql.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": campaignID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) List(ctx context.Context, filters CampaignFilters) ([]*domain.Campaign, error) {
	queryBuilder := psql.
		Select(campaignColumns...).
		From(campaignsTable).
		OrderBy("created_at DESC")

	if filters.UserID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"user_id": *filters.UserID})
	}

	if filters.ActiveOnly {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_active": true})
	}

	if len(filters.IDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"id": filters.IDs})
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

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// GetOrCreateByTitle busca a campanha do usuário pelo título e cria caso não exista
func (r *campaignRepository) GetOrCreateByTitle(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, bool, error) {
	query, args, err := psql.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": campaign.UserID, "title": campaign.Title}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	existing, err := scanCampaign(r.conn.QueryRow(ctx, query, args...))
	if err == nil {
		return existing, false, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	if err := r.Create(ctx, campaign); err != nil {
		return nil, false, err
	}

	return campaign, true, nil
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.Description,
		&c.Platform,
		&c.Budget,
		&c.StartDate,
		&c.EndDate,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
