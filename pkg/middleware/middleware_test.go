package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	access := &domain.Claims{UserID: "u1", UserRole: domain.RoleEditor, TokenType: domain.TokenTypeAccess}
	refresh := &domain.Claims{UserID: "u1", UserRole: domain.RoleEditor, TokenType: domain.TokenTypeRefresh}

	tests := []struct {
		name       string
		method     string
		path       string
		header     string
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
	}{
		{name: "rota pública", method: http.MethodPost, path: "/v1/login", wantStatus: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, path: "/v1/campaigns", wantStatus: http.StatusOK},
		{name: "sem cabeçalho", method: http.MethodGet, path: "/v1/campaigns", wantStatus: http.StatusUnauthorized},
		{name: "sem Bearer", method: http.MethodGet, path: "/v1/campaigns", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{
			name: "token inválido", method: http.MethodGet, path: "/v1/campaigns", header: "Bearer ruim",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("ruim").Return(nil, errors.New("assinatura inválida"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token de atualização recusado", method: http.MethodGet, path: "/v1/campaigns", header: "Bearer refresh",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("refresh").Return(refresh, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token de acesso", method: http.MethodGet, path: "/v1/campaigns", header: "Bearer access",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("access").Return(access, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			var got *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.header == "Bearer access" {
				assert.Equal(t, access, got)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		guard      func() func(http.Handler) http.Handler
		wantStatus int
	}{
		{name: "sem usuário", guard: AllRoles, wantStatus: http.StatusUnauthorized},
		{name: "viewer em rota de leitura", claims: &domain.Claims{UserRole: domain.RoleViewer}, guard: AllRoles, wantStatus: http.StatusOK},
		{name: "viewer em rota de escrita", claims: &domain.Claims{UserRole: domain.RoleViewer}, guard: Editors, wantStatus: http.StatusForbidden},
		{name: "editor em rota de escrita", claims: &domain.Claims{UserRole: domain.RoleEditor}, guard: Editors, wantStatus: http.StatusOK},
		{name: "editor em rota de admin", claims: &domain.Claims{UserRole: domain.RoleEditor}, guard: AdminOnly, wantStatus: http.StatusForbidden},
		{name: "admin", claims: &domain.Claims{UserRole: domain.RoleAdmin}, guard: AdminOnly, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.guard()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000/", "https://app.advision.com"})(okHandler())

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight não chega ao handler", func(t *testing.T) {
		called := false
		h := Cors([]string{"https://app.advision.com"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodOptions, "/v1/campaigns", nil)
		req.Header.Set("Origin", "https://app.advision.com")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, called)
	})
}

func TestAllowedHosts(t *testing.T) {
	handler := AllowedHosts([]string{"api.advision.com", "localhost"})(okHandler())

	tests := []struct {
		host       string
		wantStatus int
	}{
		{host: "api.advision.com", wantStatus: http.StatusOK},
		{host: "API.AdVision.com", wantStatus: http.StatusOK},
		{host: "localhost:8080", wantStatus: http.StatusOK},
		{host: "evil.com", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
			req.Host = tt.host
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	t.Run("reaproveita o ID recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/campaigns", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("gera um ID quando ausente", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil))

		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	})
}

func TestLoggingResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := newLoggingResponseWriter(rec)

	lrw.WriteHeader(http.StatusNotFound)
	lrw.WriteHeader(http.StatusOK)
	n, err := lrw.Write([]byte("não encontrado"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, lrw.statusCode)
	assert.Equal(t, n, lrw.written)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
