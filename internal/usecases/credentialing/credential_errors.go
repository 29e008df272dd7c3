package credentialing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de credenciais
var (
	// Erros de validação
	ErrInvalidAPIType    = errors.New("invalid api type")
	ErrKeyRequired       = errors.New("api key is required")
	ErrSecretRequired    = errors.New("api secret is required")
	ErrCredentialMissing = errors.New("credential not found")

	// Erros de criptografia
	ErrEncryption = errors.New("credential encryption error")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// CredentialError é um erro com contexto adicional para credenciais
type CredentialError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	KeyID   string // ID da credencial envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *CredentialError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

func NewCredentialError(err error, code string, details string) *CredentialError {
	return &CredentialError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCredentialErrorWithID(err error, code string, keyID string, details string) *CredentialError {
	return &CredentialError{
		Err:     err,
		Code:    code,
		KeyID:   keyID,
		Details: details,
	}
}
