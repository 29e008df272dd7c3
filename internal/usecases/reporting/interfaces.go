package reporting

import (
	"context"

	"github.com/vfg2006/advision-api/internal/domain"
)

type Reporter interface {
	CreateSchedule(ctx context.Context, actor *domain.Claims, schedule *domain.ReportSchedule) (*domain.ReportSchedule, error)
	ListSchedules(ctx context.Context, actor *domain.Claims) ([]*domain.ReportSchedule, error)
	DeleteSchedule(ctx context.Context, actor *domain.Claims, scheduleID string) error

	// RunSchedule gera o relatório na hora, sem alterar a próxima execução
	RunSchedule(ctx context.Context, actor *domain.Claims, scheduleID string) (*domain.GeneratedReport, error)
	ListReports(ctx context.Context, actor *domain.Claims, limit int) ([]*domain.GeneratedReport, error)
	WeeklyReport(ctx context.Context, actor *domain.Claims) (*domain.WeeklyReport, error)

	// DispatchDueSchedules gera os relatórios vencidos e retorna quantos foram gerados
	DispatchDueSchedules(ctx context.Context) (int, error)
}
