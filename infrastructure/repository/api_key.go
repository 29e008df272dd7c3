package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
	"github.com/vfg2006/advision-api/internal/domain"
)

const apiKeysTable = "user_api_keys"

var apiKeyColumns = []string{
	"id", "user_id", "api_type", "api_name", "account_id", "developer_token", "encrypted_key",
	"encrypted_secret", "verification_status", "is_active", "last_verified", "created_at",
}

type APIKeyRepository interface {
	Create(ctx context.Context, key *domain.UserAPIKey) error
	CreateIfNotExists(ctx context.Context, key *domain.UserAPIKey) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.UserAPIKey, error)
	Delete(ctx context.Context, userID, keyID string) (bool, error)
}

type apiKeyRepository struct {
	conn *postgres.Connection
}

func NewAPIKeyRepository(conn *postgres.Connection) APIKeyRepository {
	return &apiKeyRepository{
		conn: conn,
	}
}

func (r *apiKeyRepository) insertBuilder(key *domain.UserAPIKey) squirrel.InsertBuilder {
	if key.ID == "" {
		key.ID = uuid.NewString()
	}

	return psql.
		Insert(apiKeysTable).
		Columns("id", "user_id", "api_type", "api_name", "account_id", "developer_token", "encrypted_key", "encrypted_secret", "verification_status", "is_active", "last_verified").
		Values(key.ID, key.UserID, key.APIType, key.APIName, key.AccountID, key.DeveloperToken, key.EncryptedKey, key.EncryptedSecret, key.VerificationStatus, key.IsActive, key.LastVerified)
}

func (r *apiKeyRepository) Create(ctx context.Context, key *domain.UserAPIKey) error {
	query, args, err := r.insertBuilder(key).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&key.CreatedAt); err != nil {
		return fmt.Errorf("erro ao salvar chave de API: %w", err)
	}
	return nil
}

// CreateIfNotExists ignora chaves já cadastradas com o mesmo tipo e nome
func (r *apiKeyRepository) CreateIfNotExists(ctx context.Context, key *domain.UserAPIKey) (bool, error) {
	query, args, err := r.insertBuilder(key).
		Suffix("ON CONFLICT (user_id, api_type, api_name) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao salvar chave de API: %w", err)
	}
	return rowsAffected(result) > 0, nil
}

func (r *apiKeyRepository) ListByUser(ctx context.Context, userID string) ([]*domain.UserAPIKey, error) {
	query, args, err := psql.
		Select(apiKeyColumns...).
		From(apiKeysTable).
		Where(squirrel.Eq{"user_id": userID}).
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

	keys := make([]*domain.UserAPIKey, 0)
	for rows.Next() {
		var k domain.UserAPIKey
		if err := rows.Scan(
			&k.ID, &k.UserID, &k.APIType, &k.APIName, &k.AccountID, &k.DeveloperToken, &k.EncryptedKey,
			&k.EncryptedSecret, &k.VerificationStatus, &k.IsActive, &k.LastVerified, &k.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave de API: %w", err)
		}
		keys = append(keys, &k)
	}

	return keys, rows.Err()
}

func (r *apiKeyRepository) Delete(ctx context.Context, userID, keyID string) (bool, error) {
	if !validID(keyID) {
		return false, nil
	}
	query, args, err := psql.
		Delete(apiKeysTable).
		Where(squirrel.Eq{"id": keyID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover chave de API: %w", err)
	}
	return rowsAffected(result) > 0, nil
}
