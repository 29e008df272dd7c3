package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/infrastructure/integrator/google"
	googlemocks "github.com/vfg2006/advision-api/infrastructure/integrator/google/mocks"
	"github.com/vfg2006/advision-api/infrastructure/repository/mocks"
	"github.com/vfg2006/advision-api/internal/config"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/timezone"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey: "test-secret",
		Auth: config.Auth{
			AccessTTL:  time.Hour,
			RefreshTTL: 24 * time.Hour,
		},
		Cors: config.Cors{
			FrontendURL:            "http://localhost:5173",
			AdditionalFrontendURLs: []string{"https://app.advision.com"},
		},
	}
}

type fixture struct {
	svc      *Service
	userRepo *mocks.MockUserRepository
	google   *googlemocks.MockClient
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	googleClient := googlemocks.NewMockClient(ctrl)
	clock := timezone.New(time.UTC, timezone.WithNow(func() time.Time { return fixedNow }))

	svc := NewService(userRepo, googleClient, clock, testConfig()).(*Service)
	return fixture{svc: svc, userRepo: userRepo, google: googleClient}
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &domain.User{
		ID:           "user-1",
		Email:        "demo@advision.com",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
}

func assertAuthCode(t *testing.T, err error, base error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, base), "esperado %v, obtido %v", base, err)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, code, authErr.Code)
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(f fixture, t *testing.T)
		wantErr  error
		wantCode string
	}{
		{
			name:     "dados ausentes",
			email:    "",
			password: "x",
			setup:    func(fixture, *testing.T) {},
			wantErr:  ErrMissingRequiredData,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "usuário inexistente",
			email:    "ghost@advision.com",
			password: "demo1234",
			setup: func(f fixture, _ *testing.T) {
				f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@advision.com").Return(nil, nil)
			},
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "senha incorreta",
			email:    " Demo@AdVision.com ",
			password: "errada",
			setup: func(f fixture, t *testing.T) {
				f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "demo@advision.com").Return(activeUser(t, "demo123"), nil)
			},
			wantErr:  ErrInvalidCredentials,
			wantCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "usuário desativado",
			email:    "demo@advision.com",
			password: "demo123",
			setup: func(f fixture, t *testing.T) {
				user := activeUser(t, "demo123")
				user.IsActive = false
				f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "demo@advision.com").Return(user, nil)
			},
			wantErr:  ErrUserDisabled,
			wantCode: apiErrors.ErrUserDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f, t)

			_, err := f.svc.Login(context.Background(), tt.email, tt.password)
			assertAuthCode(t, err, tt.wantErr, tt.wantCode)
		})
	}
}

func TestService_LoginIssuesTokenPair(t *testing.T) {
	f := newFixture(t)
	f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "demo@advision.com").Return(activeUser(t, "demo123"), nil)

	pair, err := f.svc.Login(context.Background(), "demo@advision.com", "demo123")
	require.NoError(t, err)

	assert.Equal(t, "user-1", pair.User.ID)
	assert.Equal(t, domain.RoleAdmin, pair.User.Role)

	access, err := f.svc.ValidateToken(pair.Access)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenTypeAccess, access.TokenType)
	assert.Equal(t, fixedNow.Add(time.Hour).Unix(), access.ExpiresAt.Unix())

	refresh, err := f.svc.ValidateToken(pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenTypeRefresh, refresh.TokenType)
}

func TestService_Refresh(t *testing.T) {
	f := newFixture(t)
	user := activeUser(t, "demo123")

	pair, err := f.svc.IssueTokens(user)
	require.NoError(t, err)

	_, err = f.svc.Refresh(context.Background(), pair.Access)
	assertAuthCode(t, err, ErrInvalidToken, apiErrors.ErrInvalidToken)

	f.userRepo.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(user, nil)
	refreshed, err := f.svc.Refresh(context.Background(), pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Access)

	_, err = f.svc.Refresh(context.Background(), "lixo")
	assertAuthCode(t, err, ErrInvalidToken, apiErrors.ErrInvalidToken)
}

func TestService_Register(t *testing.T) {
	f := newFixture(t)

	f.userRepo.EXPECT().GetUserByEmail(gomock.Any(), "nova@advision.com").Return(nil, nil)
	f.userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleViewer, user.Role)
			assert.True(t, user.IsActive)
			assert.NotEqual(t, "senha1234", user.PasswordHash)
			user.ID = "new-id"
			return user, nil
		})

	user, err := f.svc.Register(context.Background(), &domain.CreateUserRequest{
		Email:    "Nova@AdVision.com",
		Password: "senha1234",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", user.ID)

	_, err = f.svc.Register(context.Background(), &domain.CreateUserRequest{Email: "x@advision.com", Password: "curta"})
	assertAuthCode(t, err, ErrWeakPassword, apiErrors.ErrInvalidRequest)
}

func TestService_GoogleLogin(t *testing.T) {
	profile := &domain.GoogleProfile{
		ID:         "google-123",
		Email:      "maria@example.com",
		GivenName:  "Maria",
		FamilyName: "Silva",
	}

	t.Run("código ausente", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.GoogleLogin(context.Background(), " ", "")
		assertAuthCode(t, err, ErrMissingCode, apiErrors.ErrOAuthMissingCode)
	})

	t.Run("redirect fora das origens", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.GoogleLogin(context.Background(), "code", "https://evil.com/callback")
		assertAuthCode(t, err, ErrInvalidRedirect, apiErrors.ErrOAuthInvalidRedirect)
	})

	t.Run("falha ao trocar código", func(t *testing.T) {
		f := newFixture(t)
		f.google.EXPECT().ExchangeCode(gomock.Any(), "code", "http://localhost:5173").
			Return(nil, &google.ProviderError{Step: "token", StatusCode: 400, Body: `{"error":"invalid_grant"}`})

		_, err := f.svc.GoogleLogin(context.Background(), "code", "")
		assertAuthCode(t, err, ErrProviderFailure, apiErrors.ErrOAuthProvider)

		var provErr *google.ProviderError
		require.True(t, errors.As(err, &provErr))
		assert.Contains(t, provErr.Body, "invalid_grant")
	})

	t.Run("erro de rede", func(t *testing.T) {
		f := newFixture(t)
		f.google.EXPECT().ExchangeCode(gomock.Any(), "code", "https://app.advision.com/auth").
			Return(nil, &google.NetworkError{Err: errors.New("connection refused")})

		_, err := f.svc.GoogleLogin(context.Background(), "code", "https://app.advision.com/auth")
		assertAuthCode(t, err, ErrProviderNetwork, apiErrors.ErrOAuthNetwork)
	})

	t.Run("perfil sem email", func(t *testing.T) {
		f := newFixture(t)
		f.google.EXPECT().ExchangeCode(gomock.Any(), "code", gomock.Any()).Return(&google.TokenResponse{AccessToken: "tok"}, nil)
		f.google.EXPECT().GetUserInfo(gomock.Any(), "tok").Return(&domain.GoogleProfile{ID: "1"}, nil)

		_, err := f.svc.GoogleLogin(context.Background(), "code", "")
		assertAuthCode(t, err, ErrMissingEmail, apiErrors.ErrOAuthMissingEmail)
	})

	t.Run("login repetido usa o mesmo upsert", func(t *testing.T) {
		f := newFixture(t)
		user := &domain.User{ID: "user-9", Email: "maria@example.com", Role: domain.RoleViewer, IsActive: true}

		f.google.EXPECT().App().Return(domain.SocialApp{Provider: domain.ProviderGoogle}).Times(2)
		f.google.EXPECT().ExchangeCode(gomock.Any(), "code", gomock.Any()).Return(&google.TokenResponse{AccessToken: "tok"}, nil).Times(2)
		f.google.EXPECT().GetUserInfo(gomock.Any(), "tok").Return(profile, nil).Times(2)
		f.userRepo.EXPECT().UpsertSocialLogin(gomock.Any(), gomock.Any(), fixedNow).DoAndReturn(
			func(_ context.Context, login domain.SocialLogin, _ time.Time) (*domain.User, *domain.SocialAccount, error) {
				assert.Equal(t, "google-123", login.UID)
				assert.Equal(t, "Maria", login.FirstName)
				assert.Equal(t, "Silva", login.LastName)
				assert.Equal(t, "maria@example.com", login.ExtraData["email"])
				return user, &domain.SocialAccount{ID: "acc-1", UserID: user.ID, UID: login.UID}, nil
			}).Times(2)

		first, err := f.svc.GoogleLogin(context.Background(), "code", "")
		require.NoError(t, err)
		second, err := f.svc.GoogleLogin(context.Background(), "code", "")
		require.NoError(t, err)

		assert.Equal(t, first.User, second.User)
		assert.Equal(t, domain.UserSummary{ID: "user-9", Email: "maria@example.com", Role: domain.RoleViewer}, first.User)
	})

	t.Run("falha no banco", func(t *testing.T) {
		f := newFixture(t)
		f.google.EXPECT().App().Return(domain.SocialApp{})
		f.google.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(&google.TokenResponse{AccessToken: "tok"}, nil)
		f.google.EXPECT().GetUserInfo(gomock.Any(), gomock.Any()).Return(profile, nil)
		f.userRepo.EXPECT().UpsertSocialLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("deadlock"))

		_, err := f.svc.GoogleLogin(context.Background(), "code", "")
		assertAuthCode(t, err, ErrSocialAuthFailed, apiErrors.ErrOAuthFailed)
		assert.Contains(t, err.Error(), "Authentication failed: deadlock")
	})
}

func TestProfileNames(t *testing.T) {
	first, last := profileNames(&domain.GoogleProfile{Name: "Ana Maria Souza"})
	assert.Equal(t, "Ana", first)
	assert.Equal(t, "Maria Souza", last)

	first, last = profileNames(&domain.GoogleProfile{})
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestGenerateStrongPassword(t *testing.T) {
	f := newFixture(t)
	password, err := generateStrongPassword(12)
	require.NoError(t, err)
	assert.Len(t, password, 12)
	assert.NoError(t, f.svc.ValidatePasswordStrength(password+"a1"))
}
