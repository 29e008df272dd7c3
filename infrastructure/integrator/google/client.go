package google

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/config"
	"github.com/vfg2006/advision-api/internal/domain"
)

const (
	DefaultTokenURL    = "https://oauth2.googleapis.com/token"
	DefaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	requestTimeout     = 10 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TokenResponse representa a resposta do Google ao trocar o código de autorização
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
	IDToken      string `json:"id_token"`
}

type Client interface {
	ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error)
	GetUserInfo(ctx context.Context, accessToken string) (*domain.GoogleProfile, error)
	App() domain.SocialApp
}

type GoogleClient struct {
	clientID     string
	clientSecret string
	tokenURL     string
	userInfoURL  string
	httpClient   *http.Client
}

func NewClient(cfg config.Google) Client {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = DefaultUserInfoURL
	}

	return &GoogleClient{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		tokenURL:     tokenURL,
		userInfoURL:  userInfoURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// App retorna o app social usado para registrar logins do Google
func (c *GoogleClient) App() domain.SocialApp {
	return domain.SocialApp{
		Provider: domain.ProviderGoogle,
		Name:     "Google",
		ClientID: c.clientID,
		Secret:   c.clientSecret,
	}
}

// ExchangeCode troca o código de autorização por um access token
func (c *GoogleClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("redirect_uri", redirectURI)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, "token")
	if err != nil {
		return nil, err
	}

	var token TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("erro ao decodificar token: %w", err)
	}

	if token.AccessToken == "" {
		return nil, &ProviderError{Step: "token", StatusCode: http.StatusOK, Body: "access_token ausente"}
	}

	return &token, nil
}

// GetUserInfo busca o perfil do usuário autenticado
func (c *GoogleClient) GetUserInfo(ctx context.Context, accessToken string) (*domain.GoogleProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição de perfil: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, "userinfo")
	if err != nil {
		return nil, err
	}

	var profile domain.GoogleProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("erro ao decodificar perfil: %w", err)
	}

	return &profile, nil
}

func (c *GoogleClient) do(req *http.Request, step string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("erro ao ler resposta: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"step":   step,
			"status": resp.StatusCode,
		}).Warn("google: resposta inesperada do provedor")
		return nil, &ProviderError{Step: step, StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
