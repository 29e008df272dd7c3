package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrScheduleNotFound  = errors.New("agendamento de relatório não encontrado")
	ErrInvalidSchedule   = errors.New("agendamento de relatório inválido")
	ErrCampaignNotFound  = errors.New("campanha não encontrada")
	ErrStorage           = errors.New("erro ao armazenar relatório")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

type ReportError struct {
	Err        error
	Code       string
	ScheduleID string
	Details    string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewReportErrorWithID(err error, code string, scheduleID string, details string) *ReportError {
	return &ReportError{
		Err:        err,
		Code:       code,
		ScheduleID: scheduleID,
		Details:    details,
	}
}
