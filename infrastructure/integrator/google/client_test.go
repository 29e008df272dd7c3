package google

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/config"
)

func newTestClient(server *httptest.Server) Client {
	return NewClient(config.Google{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     server.URL + "/token",
		UserInfoURL:  server.URL + "/userinfo",
	})
}

func TestGoogleClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())

		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "http://localhost:5173", r.PostForm.Get("redirect_uri"))
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"ya29.token","expires_in":3599,"token_type":"Bearer"}`))
	}))
	defer server.Close()

	token, err := newTestClient(server).ExchangeCode(context.Background(), "auth-code", "http://localhost:5173")
	require.NoError(t, err)
	assert.Equal(t, "ya29.token", token.AccessToken)
}

func TestGoogleClient_ExchangeCodeProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).ExchangeCode(context.Background(), "bad", "http://localhost")

	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, http.StatusBadRequest, providerErr.StatusCode)
	assert.Contains(t, providerErr.Body, "invalid_grant")
}

func TestGoogleClient_GetUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ya29.token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"1234","email":"maria@example.com","verified_email":true,"given_name":"Maria","family_name":"Silva"}`))
	}))
	defer server.Close()

	profile, err := newTestClient(server).GetUserInfo(context.Background(), "ya29.token")
	require.NoError(t, err)
	assert.Equal(t, "1234", profile.ID)
	assert.Equal(t, "maria@example.com", profile.Email)
	assert.Equal(t, "Maria", profile.GivenName)
	assert.True(t, profile.VerifiedEmail)
}

func TestGoogleClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(server)
	server.Close()

	_, err := client.GetUserInfo(context.Background(), "token")

	var networkErr *NetworkError
	assert.True(t, errors.As(err, &networkErr))
}
