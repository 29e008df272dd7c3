package reporting

import (
	"context"
	"fmt"
	"net/mail"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/infrastructure/storage"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/timezone"
)

const (
	defaultReportsLimit = 20
	maxReportsLimit     = 100
)

type Service struct {
	reportRepo    repository.ReportRepository
	campaignRepo  repository.CampaignRepository
	analyticsRepo repository.DailyAnalyticsRepository
	summaryRepo   repository.AnalyticsSummaryRepository
	storage       storage.Storage
	clock         *timezone.Clock
}

func NewService(
	reportRepo repository.ReportRepository,
	campaignRepo repository.CampaignRepository,
	analyticsRepo repository.DailyAnalyticsRepository,
	summaryRepo repository.AnalyticsSummaryRepository,
	store storage.Storage,
	clock *timezone.Clock,
) Reporter {
	return &Service{
		reportRepo:    reportRepo,
		campaignRepo:  campaignRepo,
		analyticsRepo: analyticsRepo,
		summaryRepo:   summaryRepo,
		storage:       store,
		clock:         clock,
	}
}

func (s *Service) CreateSchedule(ctx context.Context, actor *domain.Claims, schedule *domain.ReportSchedule) (*domain.ReportSchedule, error) {
	schedule.UserID = actor.UserID
	schedule.Name = strings.TrimSpace(schedule.Name)

	switch {
	case schedule.Name == "":
		return nil, NewReportError(ErrInvalidSchedule, apiErrors.ErrMissingRequiredData, "name é obrigatório")
	case !schedule.Frequency.Valid():
		return nil, NewReportError(ErrInvalidSchedule, apiErrors.ErrInvalidFormat, fmt.Sprintf("frequência inválida: %q", schedule.Frequency))
	case !schedule.Format.Valid():
		return nil, NewReportError(ErrInvalidSchedule, apiErrors.ErrInvalidFormat, fmt.Sprintf("formato inválido: %q", schedule.Format))
	case schedule.Format == domain.FormatEmail && len(schedule.EmailRecipients) == 0:
		return nil, NewReportError(ErrInvalidSchedule, apiErrors.ErrMissingRequiredData, "email_recipients é obrigatório para o formato email")
	}

	for i, recipient := range schedule.EmailRecipients {
		addr, err := mail.ParseAddress(recipient)
		if err != nil {
			return nil, NewReportError(ErrInvalidSchedule, apiErrors.ErrInvalidFormat, fmt.Sprintf("email inválido: %q", recipient))
		}
		schedule.EmailRecipients[i] = strings.ToLower(addr.Address)
	}

	for _, campaignID := range schedule.IncludeCampaigns {
		campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
		if err != nil {
			return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		if campaign == nil || !campaign.AccessibleBy(actor) {
			return nil, NewReportError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID)
		}
	}

	if schedule.NextRun.IsZero() {
		schedule.NextRun = schedule.Frequency.Next(s.clock.Now())
	}
	schedule.IsActive = true
	schedule.LastRun = nil

	if err := s.reportRepo.CreateSchedule(ctx, schedule); err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return schedule, nil
}

func (s *Service) ListSchedules(ctx context.Context, actor *domain.Claims) ([]*domain.ReportSchedule, error) {
	schedules, err := s.reportRepo.ListSchedules(ctx, actor.UserID)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return schedules, nil
}

func (s *Service) DeleteSchedule(ctx context.Context, actor *domain.Claims, scheduleID string) error {
	deleted, err := s.reportRepo.DeleteSchedule(ctx, actor.UserID, scheduleID)
	if err != nil {
		return NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, scheduleID, err.Error())
	}
	if !deleted {
		return NewReportErrorWithID(ErrScheduleNotFound, apiErrors.ErrResourceNotFound, scheduleID, "")
	}
	return nil
}

func (s *Service) RunSchedule(ctx context.Context, actor *domain.Claims, scheduleID string) (*domain.GeneratedReport, error) {
	schedule, err := s.reportRepo.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, scheduleID, err.Error())
	}
	if schedule == nil || (schedule.UserID != actor.UserID && actor.UserRole != domain.RoleAdmin) {
		return nil, NewReportErrorWithID(ErrScheduleNotFound, apiErrors.ErrResourceNotFound, scheduleID, "")
	}

	now := s.clock.Now()
	report, err := s.generate(ctx, schedule, now)
	if err != nil {
		return nil, err
	}

	if err := s.reportRepo.MarkScheduleRun(ctx, schedule.ID, now, schedule.NextRun); err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, scheduleID, err.Error())
	}

	return report, nil
}

func (s *Service) ListReports(ctx context.Context, actor *domain.Claims, limit int) ([]*domain.GeneratedReport, error) {
	if limit <= 0 {
		limit = defaultReportsLimit
	}
	if limit > maxReportsLimit {
		limit = maxReportsLimit
	}

	reports, err := s.reportRepo.ListGeneratedReports(ctx, actor.UserID, uint64(limit))
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return reports, nil
}

func (s *Service) DispatchDueSchedules(ctx context.Context) (int, error) {
	now := s.clock.Now()

	schedules, err := s.reportRepo.ListDueSchedules(ctx, now)
	if err != nil {
		return 0, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	generated := 0
	for _, schedule := range schedules {
		if ctx.Err() != nil {
			return generated, ctx.Err()
		}

		log := logrus.WithFields(logrus.Fields{
			"schedule_id": schedule.ID,
			"user_id":     schedule.UserID,
		})

		if _, err := s.generate(ctx, schedule, now); err != nil {
			log.WithError(err).Errorf("Falha ao gerar relatório %s", schedule.Name)
			continue
		}

		next := NextRun(schedule.Frequency, schedule.NextRun, now)
		if err := s.reportRepo.MarkScheduleRun(ctx, schedule.ID, now, next); err != nil {
			log.WithError(err).Error("Falha ao atualizar próxima execução")
			continue
		}

		generated++
	}

	if generated > 0 {
		logrus.Infof("%d relatórios agendados gerados", generated)
	}
	return generated, nil
}

// NextRun avança a partir da execução prevista até passar de now,
// mantendo a cadência mesmo depois de execuções perdidas
func NextRun(frequency domain.ReportFrequency, scheduled, now time.Time) time.Time {
	next := frequency.Next(scheduled)
	for !next.After(now) {
		next = frequency.Next(next)
	}
	return next
}

func (s *Service) generate(ctx context.Context, schedule *domain.ReportSchedule, now time.Time) (*domain.GeneratedReport, error) {
	start, end := schedule.Frequency.Period(s.clock.StartOfDay(now))
	end = end.AddDate(0, 0, -1)

	filters := repository.CampaignFilters{UserID: &schedule.UserID, IDs: schedule.IncludeCampaigns}
	campaigns, err := s.campaignRepo.List(ctx, filters)
	if err != nil {
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, schedule.ID, err.Error())
	}

	rows := make([]CampaignRow, 0, len(campaigns))
	for _, campaign := range campaigns {
		daily, err := s.analyticsRepo.ListByCampaign(ctx, campaign.ID, domain.AnalyticsFilters{StartDate: &start, EndDate: &end})
		if err != nil {
			return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, schedule.ID, err.Error())
		}
		rows = append(rows, newCampaignRow(campaign, daily))
	}

	doc := newDocument(schedule.Name, start, end, now, rows)
	data, contentType, ext, err := render(schedule.Format, doc)
	if err != nil {
		return nil, NewReportErrorWithID(ErrStorage, apiErrors.ErrInternalServer, schedule.ID, err.Error())
	}

	key, err := storage.NewKey(path.Join("reports", schedule.UserID), now.Format("2006/01"), schedule.Name+"."+ext)
	if err != nil {
		return nil, NewReportErrorWithID(ErrStorage, apiErrors.ErrInternalServer, schedule.ID, err.Error())
	}

	url, err := s.storage.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, NewReportErrorWithID(ErrStorage, apiErrors.ErrExternalService, schedule.ID, err.Error())
	}

	summary := doc.summary()
	if schedule.Format == domain.FormatEmail {
		// sem servidor SMTP o relatório fica disponível pelo link
		summary["recipients"] = schedule.EmailRecipients
	}

	scheduleID := schedule.ID
	report := &domain.GeneratedReport{
		UserID:      schedule.UserID,
		ScheduleID:  &scheduleID,
		Format:      schedule.Format,
		StorageKey:  key,
		FileURL:     url,
		PeriodStart: start,
		PeriodEnd:   end,
		Summary:     summary,
	}
	if err := s.reportRepo.CreateGeneratedReport(ctx, report); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logrus.WithError(delErr).WithField("schedule_id", schedule.ID).Warn("Arquivo órfão no armazenamento")
		}
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, schedule.ID, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"schedule_id": schedule.ID,
		"format":      schedule.Format,
		"campaigns":   len(rows),
	}).Info("Relatório gerado")

	return report, nil
}
