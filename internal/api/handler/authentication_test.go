package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/infrastructure/integrator/google"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/authenticating"
	"github.com/vfg2006/advision-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		setup      func(service *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name: "sucesso",
			body: LoginRequest{Email: "demo@advision.com", Password: "demo123"},
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().Login(gomock.Any(), "demo@advision.com", "demo123").Return(&domain.TokenPair{
					Access:  "access-token",
					Refresh: "refresh-token",
					User:    domain.UserSummary{ID: "u1", Email: "demo@advision.com"},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "campos ausentes",
			body:       LoginRequest{Email: "demo@advision.com"},
			setup:      func(service *mocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "credenciais inválidas",
			body: LoginRequest{Email: "demo@advision.com", Password: "errada"},
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().Login(gomock.Any(), "demo@advision.com", "errada").
					Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "usuário desativado",
			body: LoginRequest{Email: "inativo@advision.com", Password: "demo123"},
			setup: func(service *mocks.MockAuthenticator) {
				service.EXPECT().Login(gomock.Any(), "inativo@advision.com", "demo123").
					Return(nil, authenticating.NewAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, ""))
			},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrUserDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			rec := serve(t, Authentication(service), nil, jsonRequest(t, http.MethodPost, "/v1/login", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}

			var pair domain.TokenPair
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
			assert.Equal(t, "access-token", pair.Access)
			assert.Equal(t, "refresh-token", pair.Refresh)
		})
	}
}

func TestRefreshToken(t *testing.T) {
	t.Run("token ausente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		rec := serve(t, Authentication(service), nil, jsonRequest(t, http.MethodPost, "/v1/auth/token/refresh", RefreshRequest{}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token expirado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		service.EXPECT().Refresh(gomock.Any(), "velho").
			Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))

		rec := serve(t, Authentication(service), nil, jsonRequest(t, http.MethodPost, "/v1/auth/token/refresh", RefreshRequest{Refresh: "velho"}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrExpiredToken, decodeError(t, rec).Code)
	})
}

func TestGoogleLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "código ausente",
			err:         authenticating.NewAuthError(authenticating.ErrMissingCode, apiErrors.ErrOAuthMissingCode, "Authorization code is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    apiErrors.ErrOAuthMissingCode,
			wantMessage: "Authorization code is required",
		},
		{
			name: "falha no provedor devolve a resposta do Google",
			err: &authenticating.AuthError{
				Err:     authenticating.ErrProviderFailure,
				Code:    apiErrors.ErrOAuthProvider,
				Details: "Failed to get access token from Google",
				Cause:   &google.ProviderError{Step: "token", StatusCode: http.StatusBadRequest, Body: `{"error":"invalid_grant"}`},
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    apiErrors.ErrOAuthProvider,
			wantMessage: "Failed to get access token from Google",
			wantDetails: `{"error":"invalid_grant"}`,
		},
		{
			name:        "erro inesperado",
			err:         errors.New("pane"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    apiErrors.ErrOAuthFailed,
			wantMessage: "Authentication failed: pane",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)

			service.EXPECT().GoogleLogin(gomock.Any(), "abc", "http://localhost:3000/callback").Return(nil, tt.err)

			req := jsonRequest(t, http.MethodPost, "/v1/auth/google", GoogleLoginRequest{Code: "abc", RedirectURI: "http://localhost:3000/callback"})
			rec := serve(t, Authentication(service), nil, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			apiErr := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantDetails, apiErr.Details)
		})
	}
}

func TestChangePassword_OnlySelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)

	body := ChangePasswordRequest{CurrentPassword: "Antiga@123", NewPassword: "Nova@12345"}

	rec := serve(t, Authentication(service), editorClaims, jsonRequest(t, http.MethodPost, "/v1/users/outro/change-password", body))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	service.EXPECT().ChangePassword(gomock.Any(), editorClaims.UserID, "Antiga@123", "Nova@12345").Return(nil)

	rec = serve(t, Authentication(service), editorClaims, jsonRequest(t, http.MethodPost, "/v1/users/"+editorClaims.UserID+"/change-password", body))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGeneratePassword_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)

	rec := serve(t, Authentication(service), editorClaims, httptest.NewRequest(http.MethodPost, "/v1/users/u2/generate-password", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	service.EXPECT().GenerateStrongPassword(gomock.Any(), "u2").Return("Xk9#mQ2!pL7@", nil)

	rec = serve(t, Authentication(service), adminClaims, httptest.NewRequest(http.MethodPost, "/v1/users/u2/generate-password", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"password":"Xk9#mQ2!pL7@"}`, rec.Body.String())
}

func TestGetMe_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAuthenticator(ctrl)

	rec := serve(t, Authentication(service), nil, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateUser_Permissions(t *testing.T) {
	admin := domain.RoleAdmin

	tests := []struct {
		name       string
		claims     *domain.Claims
		target     string
		body       domain.UpdateUserRequest
		expectCall bool
		wantStatus int
	}{
		{
			name:       "viewer altera o próprio nome",
			claims:     viewerClaims,
			target:     viewerClaims.UserID,
			body:       domain.UpdateUserRequest{FirstName: ptr("Ana")},
			expectCall: true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "viewer não altera outro usuário",
			claims:     viewerClaims,
			target:     "u9",
			body:       domain.UpdateUserRequest{FirstName: ptr("Ana")},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "viewer não promove a si mesmo",
			claims:     viewerClaims,
			target:     viewerClaims.UserID,
			body:       domain.UpdateUserRequest{Role: &admin},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin altera papel de outro usuário",
			claims:     adminClaims,
			target:     "u9",
			body:       domain.UpdateUserRequest{Role: &admin},
			expectCall: true,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)

			if tt.expectCall {
				service.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req *domain.UpdateUserRequest) (*domain.User, error) {
						assert.Equal(t, tt.target, req.ID)
						return &domain.User{ID: req.ID}, nil
					})
			}

			rec := serve(t, User(service), tt.claims, jsonRequest(t, http.MethodPut, "/v1/users/"+tt.target, tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
