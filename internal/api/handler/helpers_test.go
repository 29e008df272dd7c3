package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/api/handler/router"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/middleware"
)

var (
	adminClaims  = &domain.Claims{UserID: "admin-1", UserEmail: "admin@advision.com", UserRole: domain.RoleAdmin, TokenType: domain.TokenTypeAccess}
	editorClaims = &domain.Claims{UserID: "editor-1", UserEmail: "editor@advision.com", UserRole: domain.RoleEditor, TokenType: domain.TokenTypeAccess}
	viewerClaims = &domain.Claims{UserID: "viewer-1", UserEmail: "viewer@advision.com", UserRole: domain.RoleViewer, TokenType: domain.TokenTypeAccess}
)

// serve monta o router com as rotas informadas e executa a requisição como o usuário dado
func serve(t *testing.T, routes []router.Route, userClaims *domain.Claims, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	var h http.Handler = router.New(router.WithRoutes(routes...))
	if userClaims != nil {
		next := h
		h = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithClaims(r.Context(), userClaims)))
		})
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}
