package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
	"github.com/vfg2006/advision-api/internal/domain"
)

const (
	usersTable          = "users"
	emailAddressesTable = "email_addresses"
	socialAppsTable     = "social_apps"
	socialAccountsTable = "social_accounts"
)

var userColumns = []string{"id", "email", "password_hash", "role", "first_name", "last_name", "is_active", "timezone", "created_at", "updated_at"}

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetOrCreateUser(ctx context.Context, user *domain.User) (*domain.User, bool, error)
	UpsertSocialLogin(ctx context.Context, login domain.SocialLogin, now time.Time) (*domain.User, *domain.SocialAccount, error)
	DeleteUsersByEmail(ctx context.Context, emails []string) (int64, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	query, args, err := psql.
		Insert(usersTable).
		Columns("id", "email", "password_hash", "role", "first_name", "last_name", "is_active", "timezone").
		Values(user.ID, user.Email, user.PasswordHash, user.Role, user.FirstName, user.LastName, user.IsActive, user.Timezone).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	queryBuilder := psql.
		Update(usersTable).
		Set("is_active", user.IsActive).
		Set("timezone", user.Timezone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID})

	if user.FirstName != "" {
		queryBuilder = queryBuilder.Set("first_name", user.FirstName)
	}

	if user.LastName != "" {
		queryBuilder = queryBuilder.Set("last_name", user.LastName)
	}

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	if user.Role != "" {
		queryBuilder = queryBuilder.Set("role", user.Role)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(ctx, query, args...)
	return err
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, r.conn, squirrel.Eq{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if !validID(userID) {
		return nil, nil
	}
	return r.getUser(ctx, r.conn, squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, q postgres.Queryer, where squirrel.Eq) (*domain.User, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	user, err := scanUser(q.QueryRow(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetOrCreateUser busca o usuário pelo email e cria caso não exista.
// O booleano indica se o usuário foi criado.
func (r *userRepository) GetOrCreateUser(ctx context.Context, user *domain.User) (*domain.User, bool, error) {
	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	created, err := r.CreateUser(ctx, user)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// UpsertSocialLogin garante, numa única transação, o usuário, o email verificado,
// o app social e a conta social do provedor. Repetir a chamada com o mesmo
// provedor só atualiza extra_data e last_login.
func (r *userRepository) UpsertSocialLogin(ctx context.Context, login domain.SocialLogin, now time.Time) (*domain.User, *domain.SocialAccount, error) {
	var (
		user    *domain.User
		account *domain.SocialAccount
	)

	err := r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		email := strings.ToLower(strings.TrimSpace(login.Email))

		query, args, err := psql.
			Insert(usersTable).
			Columns("id", "email", "role", "first_name", "last_name", "is_active").
			Values(uuid.NewString(), email, domain.RoleViewer, login.FirstName, login.LastName, true).
			Suffix("ON CONFLICT (email) DO NOTHING").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao criar usuário: %w", err)
		}

		user, err = r.getUser(ctx, q, squirrel.Eq{"email": email})
		if err != nil {
			return fmt.Errorf("erro ao buscar usuário: %w", err)
		}
		if user == nil {
			return fmt.Errorf("usuário %s não encontrado após inserção", email)
		}

		query, args, err = psql.
			Insert(emailAddressesTable).
			Columns("id", "user_id", "email", "verified", "is_primary").
			Values(uuid.NewString(), user.ID, email, true, true).
			Suffix("ON CONFLICT (user_id, email) DO NOTHING").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao registrar email: %w", err)
		}

		query, args, err = psql.
			Insert(socialAppsTable).
			Columns("id", "provider", "name", "client_id", "secret").
			Values(uuid.NewString(), login.Provider, login.App.Name, login.App.ClientID, login.App.Secret).
			Suffix("ON CONFLICT (provider) DO NOTHING").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao registrar app social: %w", err)
		}

		extraData, err := json.Marshal(login.ExtraData)
		if err != nil {
			return fmt.Errorf("erro ao serializar extra_data: %w", err)
		}

		query, args, err = psql.
			Insert(socialAccountsTable).
			Columns("id", "user_id", "provider", "uid", "extra_data", "last_login", "date_joined").
			Values(uuid.NewString(), user.ID, login.Provider, login.UID, extraData, now, now).
			Suffix(`ON CONFLICT (user_id, provider) DO UPDATE SET
				uid = EXCLUDED.uid,
				extra_data = EXCLUDED.extra_data,
				last_login = EXCLUDED.last_login
			RETURNING id, date_joined`).
			ToSql()
		if err != nil {
			return err
		}

		account = &domain.SocialAccount{
			UserID:    user.ID,
			Provider:  login.Provider,
			UID:       login.UID,
			ExtraData: login.ExtraData,
			LastLogin: now,
		}
		if err := q.QueryRow(ctx, query, args...).Scan(&account.ID, &account.DateJoined); err != nil {
			return fmt.Errorf("erro ao registrar conta social: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return user, account, nil
}

func (r *userRepository) DeleteUsersByEmail(ctx context.Context, emails []string) (int64, error) {
	if len(emails) == 0 {
		return 0, nil
	}

	query, args, err := psql.
		Delete(usersTable).
		Where(squirrel.Eq{"email": emails}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover usuários: %w", err)
	}

	return rowsAffected(result), nil
}

func scanUser(row scanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.FirstName,
		&user.LastName,
		&user.IsActive,
		&user.Timezone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
