package handler

import (
	"net/http"

	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/internal/usecases/credentialing"
)

// ListAPIKeys nunca devolve a chave em claro, apenas a versão mascarada
func ListAPIKeys(service credentialing.CredentialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		keys, err := service.List(r.Context(), userClaims)
		if err != nil {
			writeServiceError(w, err, "Erro ao listar credenciais")
			return
		}

		writeJSON(w, http.StatusOK, keys)
	}
}

func CreateAPIKey(service credentialing.CredentialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		var req domain.APIKeyRequest
		if !decodeBody(w, r, &req) {
			return
		}

		key, err := service.Create(r.Context(), userClaims, &req)
		if err != nil {
			writeServiceError(w, err, "Erro ao salvar credencial")
			return
		}

		writeJSON(w, http.StatusCreated, key)
	}
}

func DeleteAPIKey(service credentialing.CredentialService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := claims(w, r)
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), userClaims, param(r, "id")); err != nil {
			writeServiceError(w, err, "Erro ao remover credencial")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
