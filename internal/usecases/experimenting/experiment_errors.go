package experimenting

import (
	"errors"
	"fmt"
)

var (
	ErrTestNotFound      = errors.New("teste A/B não encontrado")
	ErrCampaignNotFound  = errors.New("campanha não encontrada")
	ErrInvalidTest       = errors.New("dados do teste A/B inválidos")
	ErrTestCompleted     = errors.New("teste A/B já finalizado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

type ExperimentError struct {
	Err     error
	Code    string
	TestID  string
	Details string
}

func (e *ExperimentError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ExperimentError) Unwrap() error {
	return e.Err
}

func NewExperimentError(err error, code string, details string) *ExperimentError {
	return &ExperimentError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewExperimentErrorWithID(err error, code string, testID string, details string) *ExperimentError {
	return &ExperimentError{
		Err:     err,
		Code:    code,
		TestID:  testID,
		Details: details,
	}
}
