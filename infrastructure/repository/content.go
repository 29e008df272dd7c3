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

const (
	adContentsTable  = "ad_contents"
	imageAssetsTable = "image_assets"
	commentsTable    = "comments"
)

type ContentRepository interface {
	CreateAdContent(ctx context.Context, ad *domain.AdContent) error
	ListAdContents(ctx context.Context, campaignID string) ([]*domain.AdContent, error)
	GetOrCreateAdContent(ctx context.Context, ad *domain.AdContent) (*domain.AdContent, bool, error)
	CreateImageAsset(ctx context.Context, image *domain.ImageAsset) error
	ListImageAssets(ctx context.Context, campaignID string) ([]*domain.ImageAsset, error)
	CreateComment(ctx context.Context, comment *domain.Comment) error
	ListComments(ctx context.Context, campaignID string) ([]*domain.Comment, error)
	GetOrCreateComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, bool, error)
}

type contentRepository struct {
	conn *postgres.Connection
}

func NewContentRepository(conn *postgres.Connection) ContentRepository {
	return &contentRepository{
		conn: conn,
	}
}

func (r *contentRepository) CreateAdContent(ctx context.Context, ad *domain.AdContent) error {
	if ad.ID == "" {
		ad.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(adContentsTable).
		Columns("id", "campaign_id", "text", "tone", "platform", "views", "clicks", "conversions").
		Values(ad.ID, ad.CampaignID, ad.Text, ad.Tone, ad.Platform, ad.Views, ad.Clicks, ad.Conversions).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&ad.CreatedAt); err != nil {
		return fmt.Errorf("erro ao criar anúncio: %w", err)
	}
	return nil
}

func (r *contentRepository) ListAdContents(ctx context.Context, campaignID string) ([]*domain.AdContent, error) {
	query, args, err := psql.
		Select("id", "campaign_id", "text", "tone", "platform", "views", "clicks", "conversions", "created_at").
		From(adContentsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ads := make([]*domain.AdContent, 0)
	for rows.Next() {
		ad, err := scanAdContent(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear anúncio: %w", err)
		}
		ads = append(ads, ad)
	}

	return ads, rows.Err()
}

// GetOrCreateAdContent usa (campanha, texto) como chave natural
func (r *contentRepository) GetOrCreateAdContent(ctx context.Context, ad *domain.AdContent) (*domain.AdContent, bool, error) {
	query, args, err := psql.
		Select("id", "campaign_id", "text", "tone", "platform", "views", "clicks", "conversions", "created_at").
		From(adContentsTable).
		Where(squirrel.Eq{"campaign_id": ad.CampaignID, "text": ad.Text}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	existing, err := scanAdContent(r.conn.QueryRow(ctx, query, args...))
	if err == nil {
		return existing, false, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	if err := r.CreateAdContent(ctx, ad); err != nil {
		return nil, false, err
	}
	return ad, true, nil
}

func (r *contentRepository) CreateImageAsset(ctx context.Context, image *domain.ImageAsset) error {
	if image.ID == "" {
		image.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(imageAssetsTable).
		Columns("id", "campaign_id", "url", "storage_key", "prompt", "content_type").
		Values(image.ID, image.CampaignID, image.URL, image.StorageKey, image.Prompt, image.ContentType).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&image.CreatedAt); err != nil {
		return fmt.Errorf("erro ao registrar imagem: %w", err)
	}
	return nil
}

func (r *contentRepository) ListImageAssets(ctx context.Context, campaignID string) ([]*domain.ImageAsset, error) {
	query, args, err := psql.
		Select("id", "campaign_id", "url", "storage_key", "prompt", "content_type", "created_at").
		From(imageAssetsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	images := make([]*domain.ImageAsset, 0)
	for rows.Next() {
		var img domain.ImageAsset
		if err := rows.Scan(&img.ID, &img.CampaignID, &img.URL, &img.StorageKey, &img.Prompt, &img.ContentType, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear imagem: %w", err)
		}
		images = append(images, &img)
	}

	return images, rows.Err()
}

func (r *contentRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}

	query, args, err := psql.
		Insert(commentsTable).
		Columns("id", "campaign_id", "user_id", "message").
		Values(comment.ID, comment.CampaignID, comment.UserID, comment.Message).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&comment.CreatedAt); err != nil {
		return fmt.Errorf("erro ao criar comentário: %w", err)
	}
	return nil
}

func (r *contentRepository) ListComments(ctx context.Context, campaignID string) ([]*domain.Comment, error) {
	query, args, err := psql.
		Select("id", "campaign_id", "user_id", "message", "created_at").
		From(commentsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear comentário: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (r *contentRepository) GetOrCreateComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, bool, error) {
	query, args, err := psql.
		Select("id", "campaign_id", "user_id", "message", "created_at").
		From(commentsTable).
		Where(squirrel.Eq{"campaign_id": comment.CampaignID, "user_id": comment.UserID, "message": comment.Message}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	existing, err := scanComment(r.conn.QueryRow(ctx, query, args...))
	if err == nil {
		return existing, false, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, err
	}

	if err := r.CreateComment(ctx, comment); err != nil {
		return nil, false, err
	}
	return comment, true, nil
}

func scanAdContent(row scanner) (*domain.AdContent, error) {
	var ad domain.AdContent
	if err := row.Scan(&ad.ID, &ad.CampaignID, &ad.Text, &ad.Tone, &ad.Platform, &ad.Views, &ad.Clicks, &ad.Conversions, &ad.CreatedAt); err != nil {
		return nil, err
	}
	return &ad, nil
}

func scanComment(row scanner) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.CampaignID, &c.UserID, &c.Message, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
