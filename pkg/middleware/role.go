package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos roles
func RoleMiddleware(allowedRoles []domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRole == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%s, Role=%s", userClaims.UserID, userClaims.UserRole)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin})
}

// Editors permite acesso para quem pode alterar dados
func Editors() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin, domain.RoleEditor})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.Role{domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer})
}
