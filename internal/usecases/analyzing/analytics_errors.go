package analyzing

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound  = errors.New("campanha não encontrada")
	ErrSummaryUpdate     = errors.New("erro ao atualizar resumo da campanha")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

type AnalyticsError struct {
	Err        error
	Code       string
	CampaignID string
	Details    string
}

func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewAnalyticsError(err error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewAnalyticsErrorWithID(err error, code string, campaignID string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
