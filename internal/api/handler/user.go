package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/authenticating"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
)

// GetUser retorna informações do usuário por ID
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		if userClaims.UserRole != domain.RoleAdmin && userClaims.UserID != id {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a consultar outro usuário", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// CreateUser cria um usuário com o papel escolhido pelo administrador
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.CreateUser(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar usuário")
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"user_role": user.Role,
		}).Info("Usuário criado")

		writeJSON(w, http.StatusCreated, user)
	}
}

// UpdateUser atualiza o perfil. Papel e status só podem ser alterados por administradores.
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var req domain.UpdateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = param(r, "id")

		if userClaims.UserRole != domain.RoleAdmin {
			if userClaims.UserID != req.ID {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar outro usuário", nil)
				return
			}
			if req.Role != nil || req.IsActive != nil {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem alterar papel ou status", nil)
				return
			}
		}

		user, err := service.UpdateUser(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao atualizar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
