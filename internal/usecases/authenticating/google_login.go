package authenticating

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/integrator/google"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
)

// GoogleLogin troca o código de autorização por um token, busca o perfil,
// registra usuário e conta social e devolve o par de tokens da aplicação.
func (s *Service) GoogleLogin(ctx context.Context, code, redirectURI string) (*domain.TokenPair, error) {
	if strings.TrimSpace(code) == "" {
		return nil, NewAuthError(ErrMissingCode, apiErrors.ErrOAuthMissingCode, "Authorization code is required")
	}

	redirectURI, err := s.resolveRedirectURI(redirectURI)
	if err != nil {
		return nil, err
	}

	token, err := s.google.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return nil, providerError(err, "Failed to exchange code for token")
	}

	profile, err := s.google.GetUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, providerError(err, "Failed to get user info from Google")
	}

	if strings.TrimSpace(profile.Email) == "" {
		return nil, NewAuthError(ErrMissingEmail, apiErrors.ErrOAuthMissingEmail, "Email not provided by Google")
	}

	firstName, lastName := profileNames(profile)

	user, account, err := s.userRepo.UpsertSocialLogin(ctx, domain.SocialLogin{
		Provider:  domain.ProviderGoogle,
		UID:       profile.ID,
		Email:     profile.Email,
		FirstName: firstName,
		LastName:  lastName,
		ExtraData: profile.ExtraData(),
		App:       s.google.App(),
	}, s.clock.Now())
	if err != nil {
		logrus.WithError(err).Error("Erro ao registrar login social")
		return nil, newCausedError(ErrSocialAuthFailed, apiErrors.ErrOAuthFailed, "Authentication failed: "+err.Error(), err)
	}

	if !user.IsActive {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"account_id": account.ID,
	}).Info("Login com Google realizado")

	pair, err := s.IssueTokens(user)
	if err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) {
			return nil, newCausedError(ErrSocialAuthFailed, apiErrors.ErrOAuthFailed, "Authentication failed: "+authErr.Error(), err)
		}
		return nil, err
	}
	return pair, nil
}

// resolveRedirectURI usa FRONTEND_URL quando o cliente não informa o redirect_uri
// e recusa endereços fora das origens permitidas
func (s *Service) resolveRedirectURI(redirectURI string) (string, error) {
	redirectURI = strings.TrimSpace(redirectURI)
	if redirectURI == "" {
		return s.cfg.Cors.FrontendURL, nil
	}

	for _, origin := range s.cfg.AllowedOrigins() {
		if redirectURI == origin || strings.HasPrefix(redirectURI, origin+"/") {
			return redirectURI, nil
		}
	}

	return "", NewAuthError(ErrInvalidRedirect, apiErrors.ErrOAuthInvalidRedirect, "redirect_uri is not allowed")
}

func providerError(err error, message string) error {
	var networkErr *google.NetworkError
	if errors.As(err, &networkErr) {
		return newCausedError(ErrProviderNetwork, apiErrors.ErrOAuthNetwork, "Network error: "+networkErr.Error(), err)
	}

	var provErr *google.ProviderError
	if errors.As(err, &provErr) {
		return newCausedError(ErrProviderFailure, apiErrors.ErrOAuthProvider, message, err)
	}

	return newCausedError(ErrSocialAuthFailed, apiErrors.ErrOAuthFailed, "Authentication failed: "+err.Error(), err)
}

func profileNames(profile *domain.GoogleProfile) (string, string) {
	if profile.GivenName != "" || profile.FamilyName != "" {
		return profile.GivenName, profile.FamilyName
	}

	parts := strings.Fields(profile.Name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
