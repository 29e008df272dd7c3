package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Autenticação
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"
	ErrUserAlreadyExists     = "AUTH_009"

	// Validação
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrMethodNotAllowed    = "VAL_004"
	ErrPayloadTooLarge     = "VAL_005"

	// Recursos
	ErrResourceNotFound = "RES_001"
	ErrResourceConflict = "RES_002"

	// Login social
	ErrOAuthMissingCode     = "OAUTH_001" // código de autorização ausente
	ErrOAuthProvider        = "OAUTH_002" // falha no token ou no userinfo
	ErrOAuthMissingEmail    = "OAUTH_003"
	ErrOAuthInvalidRedirect = "OAUTH_004" // redirect_uri fora das origens permitidas
	ErrOAuthNetwork         = "OAUTH_005"
	ErrOAuthFailed          = "OAUTH_006"

	// Servidor
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003" // armazenamento de arquivos ou fila
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrPayloadTooLarge:       http.StatusRequestEntityTooLarge,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrResourceConflict:      http.StatusConflict,
	ErrOAuthMissingCode:      http.StatusBadRequest,
	ErrOAuthProvider:         http.StatusBadRequest,
	ErrOAuthMissingEmail:     http.StatusBadRequest,
	ErrOAuthInvalidRedirect:  http.StatusBadRequest,
	ErrOAuthNetwork:          http.StatusInternalServerError,
	ErrOAuthFailed:           http.StatusInternalServerError,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError é o corpo de toda resposta de erro
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Status retorna o status HTTP do código; códigos desconhecidos viram 500
func Status(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// IsServerError indica se o código é uma falha do servidor, cujos detalhes não vão para o cliente
func IsServerError(code string) bool {
	return Status(code) >= http.StatusInternalServerError
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}
