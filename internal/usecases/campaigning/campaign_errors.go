package campaigning

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound  = errors.New("campanha não encontrada")
	ErrForbidden         = errors.New("campanha pertence a outro usuário")
	ErrInvalidCampaign   = errors.New("dados da campanha inválidos")
	ErrInvalidContent    = errors.New("conteúdo inválido")
	ErrInvalidAnalytics  = errors.New("métricas diárias inválidas")
	ErrStorage           = errors.New("erro ao armazenar arquivo")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // Campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCampaignErrorWithID(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
