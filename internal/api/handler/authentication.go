package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/integrator/google"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/authenticating"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type GoogleLoginRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", nil)
			return
		}

		pair, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err, "Erro interno ao realizar login")
			return
		}

		writeJSON(w, http.StatusOK, pair)
	}
}

// Register é o cadastro público, sempre com o papel viewer
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.Register(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao cadastrar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

func RefreshToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.Refresh == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Token de atualização é obrigatório", nil)
			return
		}

		pair, err := service.Refresh(r.Context(), req.Refresh)
		if err != nil {
			writeServiceError(w, err, "Erro ao renovar token")
			return
		}

		writeJSON(w, http.StatusOK, pair)
	}
}

// GoogleLogin troca o código do Google pelo par de tokens da aplicação
func GoogleLogin(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GoogleLoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		pair, err := service.GoogleLogin(r.Context(), req.Code, req.RedirectURI)
		if err != nil {
			writeOAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, pair)
	}
}

// writeOAuthError usa a mensagem do fluxo OAuth e, para falhas do provedor,
// devolve a resposta dele como detalhe
func writeOAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if !errors.As(err, &authErr) {
		logrus.WithError(err).Error("Erro no login com Google")
		apiErrors.WriteError(w, apiErrors.ErrOAuthFailed, "Authentication failed: "+err.Error(), nil)
		return
	}

	var details any
	var providerErr *google.ProviderError
	if errors.As(err, &providerErr) {
		details = providerErr.Body
	}

	if apiErrors.IsServerError(authErr.Code) {
		logrus.WithError(err).Error("Erro no login com Google")
	}

	message := authErr.Details
	if message == "" {
		message = authErr.Err.Error()
	}
	apiErrors.WriteError(w, authErr.Code, message, details)
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, err, "Erro ao obter dados do usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// ChangePassword permite que o usuário altere apenas a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		targetUserID := param(r, "id")
		if targetUserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		if userClaims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro usuário", nil)
			return
		}

		var req ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.ChangePassword(r.Context(), targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeServiceError(w, err, "Erro ao alterar senha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GeneratePassword gera uma senha forte para outro usuário (somente administradores)
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserID := param(r, "id")
		if targetUserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		password, err := service.GenerateStrongPassword(r.Context(), targetUserID)
		if err != nil {
			writeServiceError(w, err, "Erro ao gerar senha")
			return
		}

		writeJSON(w, http.StatusOK, GeneratePasswordResponse{Password: password})
	}
}
