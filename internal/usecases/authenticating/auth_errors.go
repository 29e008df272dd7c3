package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	// Erros de autenticação
	ErrInvalidCredentials    = errors.New("credenciais inválidas")
	ErrUserDisabled          = errors.New("usuário desativado")
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrUserAlreadyExists     = errors.New("usuário já existe")

	// Erros de validação
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")

	// Erros relacionados a senha
	ErrWeakPassword = errors.New("senha fraca")
	ErrSamePassword = errors.New("nova senha deve ser diferente da atual")

	// Erros do login social
	ErrMissingCode      = errors.New("código de autorização ausente")
	ErrProviderFailure  = errors.New("falha no provedor de identidade")
	ErrMissingEmail     = errors.New("perfil sem email")
	ErrInvalidRedirect  = errors.New("redirect_uri não permitido")
	ErrProviderNetwork  = errors.New("falha de rede com o provedor")
	ErrSocialAuthFailed = errors.New("falha na autenticação social")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  string // ID do usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
	Cause   error  // Erro original, quando diferente do erro base
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro base e a causa original
func (e *AuthError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// IsCredentialsError verifica se o erro está relacionado a credenciais inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserNotFound)
}

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError cria um novo erro de autenticação com contexto de usuário
func NewUserAuthError(baseErr error, code string, userID string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

// newCausedError preserva o erro original para quem precisar inspecioná-lo
func newCausedError(baseErr error, code, details string, cause error) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
		Cause:   cause,
	}
}
