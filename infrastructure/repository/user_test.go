package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/domain"
)

var userRowColumns = []string{"id", "email", "password_hash", "role", "first_name", "last_name", "is_active", "timezone", "created_at", "updated_at"}

func TestUserRepository_UpsertSocialLogin(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	joined := now.AddDate(0, -1, 0)

	login := domain.SocialLogin{
		Provider:  domain.ProviderGoogle,
		UID:       "google-123",
		Email:     "Maria@Example.com",
		FirstName: "Maria",
		LastName:  "Silva",
		ExtraData: map[string]any{"id": "google-123"},
		App:       domain.SocialApp{Name: "Google", ClientID: "client-id", Secret: "secret"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,email,role,first_name,last_name,is_active) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (email) DO NOTHING")).
		WithArgs(sqlmock.AnyArg(), "maria@example.com", "viewer", "Maria", "Silva", true).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("maria@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow("user-1", "maria@example.com", "", "viewer", "Maria", "Silva", true, nil, joined, joined))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO email_addresses")).
		WithArgs(sqlmock.AnyArg(), "user-1", "maria@example.com", true, true).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO social_apps")).
		WithArgs(sqlmock.AnyArg(), "google", "Google", "client-id", "secret").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, provider) DO UPDATE SET")).
		WithArgs(sqlmock.AnyArg(), "user-1", "google", "google-123", sqlmock.AnyArg(), now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date_joined"}).AddRow("social-1", joined))
	mock.ExpectCommit()

	user, account, err := repo.UpsertSocialLogin(context.Background(), login, now)
	require.NoError(t, err)

	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, domain.RoleViewer, user.Role)
	assert.Nil(t, user.Timezone)
	assert.Equal(t, "social-1", account.ID)
	assert.Equal(t, joined, account.DateJoined)
	assert.Equal(t, now, account.LastLogin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpsertSocialLoginRollback(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, _, err := repo.UpsertSocialLogin(context.Background(), domain.SocialLogin{Email: "x@y.com"}, time.Now())
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	t.Run("usuário inexistente retorna nil", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewUserRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByEmail(context.Background(), " Nobody@Example.com ")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("usuário encontrado", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewUserRepository(conn)
		tz := "America/Sao_Paulo"
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("demo@advision.com").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow("user-1", "demo@advision.com", "hash", "admin", "Demo", "User", true, tz, now, now))

		user, err := repo.GetUserByEmail(context.Background(), "demo@advision.com")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
		require.NotNil(t, user.Timezone)
		assert.Equal(t, tz, *user.Timezone)
	})
}

func TestUserRepository_DeleteUsersByEmail(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE email IN ($1,$2)")).
		WithArgs("a@x.com", "b@x.com").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteUsersByEmail(context.Background(), []string{"a@x.com", "b@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.DeleteUsersByEmail(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
