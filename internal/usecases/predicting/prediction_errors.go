package predicting

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound  = errors.New("campanha não encontrada")
	ErrModelNotFound     = errors.New("nenhum modelo treinado para a campanha")
	ErrInsufficientData  = errors.New("dados insuficientes para treinar o modelo")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

type PredictionError struct {
	Err        error
	Code       string
	CampaignID string
	Details    string
}

func (e *PredictionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

func NewPredictionError(err error, code string, details string) *PredictionError {
	return &PredictionError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewPredictionErrorWithID(err error, code string, campaignID string, details string) *PredictionError {
	return &PredictionError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
