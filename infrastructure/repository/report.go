package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vfg2006/advision-api/infrastructure/database/postgres"
	"github.com/vfg2006/advision-api/internal/domain"
)

const (
	schedulesTable         = "report_schedules"
	scheduleCampaignsTable = "report_schedule_campaigns"
	generatedReportsTable  = "generated_reports"
)

var scheduleColumns = []string{
	"rs.id", "rs.user_id", "rs.name", "rs.frequency", "rs.format", "rs.email_recipients",
	"rs.is_active", "rs.next_run", "rs.last_run", "rs.created_at",
	"COALESCE((SELECT array_agg(rsc.campaign_id::text) FROM report_schedule_campaigns rsc WHERE rsc.schedule_id = rs.id), '{}')",
}

type ReportRepository interface {
	CreateSchedule(ctx context.Context, schedule *domain.ReportSchedule) error
	GetOrCreateSchedule(ctx context.Context, schedule *domain.ReportSchedule) (*domain.ReportSchedule, bool, error)
	GetSchedule(ctx context.Context, scheduleID string) (*domain.ReportSchedule, error)
	ListSchedules(ctx context.Context, userID string) ([]*domain.ReportSchedule, error)
	ListDueSchedules(ctx context.Context, now time.Time) ([]*domain.ReportSchedule, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID string) (bool, error)
	MarkScheduleRun(ctx context.Context, scheduleID string, lastRun, nextRun time.Time) error
	CreateGeneratedReport(ctx context.Context, report *domain.GeneratedReport) error
	ListGeneratedReports(ctx context.Context, userID string, limit uint64) ([]*domain.GeneratedReport, error)
	GetWeeklyActivity(ctx context.Context, userID string, start, end time.Time) (*domain.WeeklyActivity, error)
}

type reportRepository struct {
	conn *postgres.Connection
}

func NewReportRepository(conn *postgres.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

// CreateSchedule grava o agendamento e as campanhas incluídas na mesma transação
func (r *reportRepository) CreateSchedule(ctx context.Context, schedule *domain.ReportSchedule) error {
	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		return r.createSchedule(ctx, q, schedule)
	})
}

func (r *reportRepository) createSchedule(ctx context.Context, q postgres.Queryer, schedule *domain.ReportSchedule) error {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}

	recipients := schedule.EmailRecipients
	if recipients == nil {
		recipients = []string{}
	}

	query, args, err := psql.
		Insert(schedulesTable).
		Columns("id", "user_id", "name", "frequency", "format", "email_recipients", "is_active", "next_run").
		Values(schedule.ID, schedule.UserID, schedule.Name, schedule.Frequency, schedule.Format, pq.Array(recipients), schedule.IsActive, schedule.NextRun).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&schedule.CreatedAt); err != nil {
		return fmt.Errorf("erro ao criar agendamento: %w", err)
	}

	if len(schedule.IncludeCampaigns) == 0 {
		return nil
	}

	builder := psql.
		Insert(scheduleCampaignsTable).
		Columns("schedule_id", "campaign_id").
		Suffix("ON CONFLICT DO NOTHING")
	for _, campaignID := range schedule.IncludeCampaigns {
		builder = builder.Values(schedule.ID, campaignID)
	}

	query, args, err = builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao vincular campanhas ao agendamento: %w", err)
	}

	return nil
}

// GetOrCreateSchedule usa (usuário, nome) como chave natural
func (r *reportRepository) GetOrCreateSchedule(ctx context.Context, schedule *domain.ReportSchedule) (*domain.ReportSchedule, bool, error) {
	var (
		result  *domain.ReportSchedule
		created bool
	)

	err := r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		existing, err := r.getSchedule(ctx, q, squirrel.Eq{"rs.user_id": schedule.UserID, "rs.name": schedule.Name})
		if err != nil {
			return err
		}
		if existing != nil {
			result = existing
			return nil
		}

		if err := r.createSchedule(ctx, q, schedule); err != nil {
			return err
		}
		result, created = schedule, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return result, created, nil
}

func (r *reportRepository) GetSchedule(ctx context.Context, scheduleID string) (*domain.ReportSchedule, error) {
	if !validID(scheduleID) {
		return nil, nil
	}
	return r.getSchedule(ctx, r.conn, squirrel.Eq{"rs.id": scheduleID})
}

func (r *reportRepository) getSchedule(ctx context.Context, q postgres.Queryer, where squirrel.Eq) (*domain.ReportSchedule, error) {
	query, args, err := psql.
		Select(scheduleColumns...).
		From(schedulesTable + " rs").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	schedule, err := scanSchedule(q.QueryRow(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
	}
	return schedule, nil
}

func (r *reportRepository) ListSchedules(ctx context.Context, userID string) ([]*domain.ReportSchedule, error) {
	return r.listSchedules(ctx, psql.
		Select(scheduleColumns...).
		From(schedulesTable+" rs").
		Where(squirrel.Eq{"rs.user_id": userID}).
		OrderBy("rs.created_at DESC"))
}

func (r *reportRepository) ListDueSchedules(ctx context.Context, now time.Time) ([]*domain.ReportSchedule, error) {
	return r.listSchedules(ctx, psql.
		Select(scheduleColumns...).
		From(schedulesTable+" rs").
		Where(squirrel.Eq{"rs.is_active": true}).
		Where(squirrel.LtOrEq{"rs.next_run": now}).
		OrderBy("rs.next_run ASC"))
}

func (r *reportRepository) listSchedules(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.ReportSchedule, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	schedules := make([]*domain.ReportSchedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	return schedules, rows.Err()
}

func (r *reportRepository) DeleteSchedule(ctx context.Context, userID, scheduleID string) (bool, error) {
	if !validID(scheduleID) {
		return false, nil
	}
	query, args, err := psql.
		Delete(schedulesTable).
		Where(squirrel.Eq{"id": scheduleID, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover agendamento: %w", err)
	}
	return rowsAffected(result) > 0, nil
}

func (r *reportRepository) MarkScheduleRun(ctx context.Context, scheduleID string, lastRun, nextRun time.Time) error {
	query, args, err := psql.
		Update(schedulesTable).
		Set("last_run", lastRun).
		Set("next_run", nextRun).
		Where(squirrel.Eq{"id": scheduleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar agendamento: %w", err)
	}
	return nil
}

func (r *reportRepository) CreateGeneratedReport(ctx context.Context, report *domain.GeneratedReport) error {
	if report.ID == "" {
		report.ID = uuid.NewString()
	}

	summary, err := json.Marshal(report.Summary)
	if err != nil {
		return fmt.Errorf("erro ao serializar resumo do relatório: %w", err)
	}

	query, args, err := psql.
		Insert(generatedReportsTable).
		Columns("id", "user_id", "schedule_id", "format", "storage_key", "file_url", "period_start", "period_end", "summary").
		Values(report.ID, report.UserID, report.ScheduleID, report.Format, report.StorageKey, report.FileURL, formatDate(report.PeriodStart), formatDate(report.PeriodEnd), summary).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&report.CreatedAt); err != nil {
		return fmt.Errorf("erro ao registrar relatório: %w", err)
	}
	return nil
}

func (r *reportRepository) ListGeneratedReports(ctx context.Context, userID string, limit uint64) ([]*domain.GeneratedReport, error) {
	queryBuilder := psql.
		Select("id", "user_id", "schedule_id", "format", "storage_key", "file_url", "period_start", "period_end", "summary", "created_at").
		From(generatedReportsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]*domain.GeneratedReport, 0)
	for rows.Next() {
		var (
			rep     domain.GeneratedReport
			summary []byte
		)
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.ScheduleID, &rep.Format, &rep.StorageKey, &rep.FileURL, &rep.PeriodStart, &rep.PeriodEnd, &summary, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
		}
		if len(summary) > 0 {
			if err := json.Unmarshal(summary, &rep.Summary); err != nil {
				return nil, fmt.Errorf("erro ao deserializar resumo do relatório: %w", err)
			}
		}
		reports = append(reports, &rep)
	}

	return reports, rows.Err()
}

// GetWeeklyActivity conta o que o usuário criou no período
func (r *reportRepository) GetWeeklyActivity(ctx context.Context, userID string, start, end time.Time) (*domain.WeeklyActivity, error) {
	const query = `SELECT
		(SELECT COUNT(*) FROM campaigns c WHERE c.user_id = $1 AND c.created_at BETWEEN $2 AND $3),
		(SELECT COUNT(*) FROM ad_contents a JOIN campaigns c ON c.id = a.campaign_id WHERE c.user_id = $1 AND a.created_at BETWEEN $2 AND $3),
		(SELECT COUNT(*) FROM image_assets i JOIN campaigns c ON c.id = i.campaign_id WHERE c.user_id = $1 AND i.created_at BETWEEN $2 AND $3),
		(SELECT COUNT(*) FROM campaigns c WHERE c.user_id = $1 AND c.is_active)`

	var activity domain.WeeklyActivity
	err := r.conn.QueryRow(ctx, query, userID, start, end).Scan(
		&activity.CampaignsCreated,
		&activity.AdsGenerated,
		&activity.ImagesGenerated,
		&activity.ActiveCampaigns,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar atividade: %w", err)
	}

	return &activity, nil
}

func scanSchedule(row scanner) (*domain.ReportSchedule, error) {
	var (
		s       domain.ReportSchedule
		nextRun sql.NullTime
	)
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Frequency, &s.Format, pq.Array(&s.EmailRecipients),
		&s.IsActive, &nextRun, &s.LastRun, &s.CreatedAt, pq.Array(&s.IncludeCampaigns),
	)
	if err != nil {
		return nil, err
	}
	s.NextRun = nextRun.Time
	return &s, nil
}
