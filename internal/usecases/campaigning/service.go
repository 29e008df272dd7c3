package campaigning

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/infrastructure/repository"
	"github.com/vfg2006/advision-api/infrastructure/storage"
	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/apiErrors"
	"github.com/vfg2006/advision-api/pkg/timezone"
)

const (
	defaultDurationDays = 30
	maxImageSize        = 10 << 20
	maxImportRows       = 366
)

// SummaryEnqueuer agenda o recálculo do resumo de uma campanha
type SummaryEnqueuer interface {
	EnqueueCampaignSummary(ctx context.Context, campaignID string) error
}

type CampaignService interface {
	Create(ctx context.Context, actor *domain.Claims, req *domain.CampaignRequest) (*domain.Campaign, error)
	Update(ctx context.Context, actor *domain.Claims, campaignID string, req *domain.CampaignRequest) (*domain.Campaign, error)
	Delete(ctx context.Context, actor *domain.Claims, campaignID string) error
	Get(ctx context.Context, actor *domain.Claims, campaignID string) (*domain.Campaign, error)
	List(ctx context.Context, actor *domain.Claims, activeOnly bool) ([]*domain.Campaign, error)

	ListAds(ctx context.Context, actor *domain.Claims, campaignID string) ([]*domain.AdContent, error)
	CreateAd(ctx context.Context, actor *domain.Claims, campaignID string, ad *domain.AdContent) (*domain.AdContent, error)
	ListComments(ctx context.Context, actor *domain.Claims, campaignID string) ([]*domain.Comment, error)
	CreateComment(ctx context.Context, actor *domain.Claims, campaignID, message string) (*domain.Comment, error)
	ListImages(ctx context.Context, actor *domain.Claims, campaignID string) ([]*domain.ImageAsset, error)
	UploadImage(ctx context.Context, actor *domain.Claims, campaignID string, upload ImageUpload) (*domain.ImageAsset, error)

	ImportAnalytics(ctx context.Context, actor *domain.Claims, campaignID string, rows []domain.DailyAnalyticsInput) (int, error)
	ListAnalytics(ctx context.Context, actor *domain.Claims, campaignID string, filters domain.AnalyticsFilters) ([]*domain.DailyAnalytics, error)
}

// ImageUpload é um arquivo recebido pelo upload multipart
type ImageUpload struct {
	Filename    string
	ContentType string
	Prompt      string
	Data        []byte
}

type Service struct {
	campaignRepo  repository.CampaignRepository
	contentRepo   repository.ContentRepository
	analyticsRepo repository.DailyAnalyticsRepository
	storage       storage.Storage
	summaries     SummaryEnqueuer
	clock         *timezone.Clock
}

func NewService(
	campaignRepo repository.CampaignRepository,
	contentRepo repository.ContentRepository,
	analyticsRepo repository.DailyAnalyticsRepository,
	store storage.Storage,
	summaries SummaryEnqueuer,
	clock *timezone.Clock,
) CampaignService {
	return &Service{
		campaignRepo:  campaignRepo,
		contentRepo:   contentRepo,
		analyticsRepo: analyticsRepo,
		storage:       store,
		summaries:     summaries,
		clock:         clock,
	}
}

func (s *Service) Create(ctx context.Context, actor *domain.Claims, req *domain.CampaignRequest) (*domain.Campaign, error) {
	today := s.clock.Today()
	campaign := &domain.Campaign{
		UserID:    actor.UserID,
		StartDate: today,
		EndDate:   today.AddDate(0, 0, defaultDurationDays),
		IsActive:  true,
	}

	if err := s.apply(campaign, req); err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"user_id":     actor.UserID,
	}).Info("Campanha criada")

	return campaign, nil
}

func (s *Service) Update(ctx context.Context, actor *domain.Claims, campaignID string, req *domain.CampaignRequest) (*domain.Campaign, error) {
	campaign, err := s.Get(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}

	if err := s.apply(campaign, req); err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	// orçamento e datas entram na nota de desempenho
	s.enqueueSummary(ctx, campaign.ID)

	return campaign, nil
}

func (s *Service) Delete(ctx context.Context, actor *domain.Claims, campaignID string) error {
	if _, err := s.Get(ctx, actor, campaignID); err != nil {
		return err
	}

	deleted, err := s.campaignRepo.Delete(ctx, campaignID)
	if err != nil {
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if !deleted {
		return NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}
	return nil
}

// Get retorna a campanha se ela existir e o usuário puder acessá-la
func (s *Service) Get(ctx context.Context, actor *domain.Claims, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}

	if !CanAccess(actor, campaign) {
		// não revelamos a existência de campanhas de outros usuários
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "")
	}

	return campaign, nil
}

func (s *Service) List(ctx context.Context, actor *domain.Claims, activeOnly bool) ([]*domain.Campaign, error) {
	filters := repository.CampaignFilters{ActiveOnly: activeOnly}
	if actor.UserRole != domain.RoleAdmin {
		filters.UserID = &actor.UserID
	}

	campaigns, err := s.campaignRepo.List(ctx, filters)
	if err != nil {
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return campaigns, nil
}

// CanAccess indica se o usuário pode ver a campanha
func CanAccess(actor *domain.Claims, campaign *domain.Campaign) bool {
	return campaign.AccessibleBy(actor)
}

// apply valida e copia os campos informados para a campanha
func (s *Service) apply(campaign *domain.Campaign, req *domain.CampaignRequest) error {
	if req.Title != nil {
		campaign.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		campaign.Description = strings.TrimSpace(*req.Description)
	}
	if req.Platform != nil {
		campaign.Platform = domain.Platform(strings.ToLower(string(*req.Platform)))
	}
	if req.Budget != nil {
		campaign.Budget = req.Budget.Round(2)
	}
	if req.IsActive != nil {
		campaign.IsActive = *req.IsActive
	}

	if req.StartDate != nil {
		start, err := s.clock.ParseDate(*req.StartDate)
		if err != nil {
			return NewCampaignError(ErrInvalidCampaign, apiErrors.ErrInvalidFormat, "start_date inválida")
		}
		campaign.StartDate = s.clock.StartOfDay(start)
	}
	if req.EndDate != nil {
		end, err := s.clock.ParseDate(*req.EndDate)
		if err != nil {
			return NewCampaignError(ErrInvalidCampaign, apiErrors.ErrInvalidFormat, "end_date inválida")
		}
		campaign.EndDate = s.clock.StartOfDay(end)
	}

	switch {
	case campaign.Title == "":
		return NewCampaignError(ErrInvalidCampaign, apiErrors.ErrMissingRequiredData, "title é obrigatório")
	case !campaign.Platform.Valid():
		return NewCampaignError(ErrInvalidCampaign, apiErrors.ErrInvalidFormat, fmt.Sprintf("plataforma inválida: %q", campaign.Platform))
	case !campaign.Budget.GreaterThan(decimal.Zero):
		return NewCampaignError(ErrInvalidCampaign, apiErrors.ErrInvalidRequest, "budget deve ser maior que zero")
	case campaign.EndDate.Before(campaign.StartDate):
		return NewCampaignError(ErrInvalidCampaign, apiErrors.ErrInvalidRequest, "end_date deve ser posterior a start_date")
	}

	return nil
}

func (s *Service) enqueueSummary(ctx context.Context, campaignID string) {
	if s.summaries == nil {
		return
	}
	if err := s.summaries.EnqueueCampaignSummary(ctx, campaignID); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Warn("Não foi possível agendar o recálculo do resumo")
	}
}

func (s *Service) ListAds(ctx context.Context, actor *domain.Claims, campaignID string) ([]*domain.AdContent, error) {
	if _, err := s.Get(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	ads, err := s.contentRepo.ListAdContents(ctx, campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	return ads, nil
}

func (s *Service) CreateAd(ctx context.Context, actor *domain.Claims, campaignID string, ad *domain.AdContent) (*domain.AdContent, error) {
	campaign, err := s.Get(ctx, actor, campaignID)
	if err != nil {
		return nil, err
	}

	ad.Text = strings.TrimSpace(ad.Text)
	if ad.Text == "" {
		return nil, NewCampaignErrorWithID(ErrInvalidContent, apiErrors.ErrMissingRequiredData, campaignID, "text é obrigatório")
	}

	if ad.Tone == "" {
		ad.Tone = domain.TonePersuasive
	}
	switch ad.Tone {
	case domain.TonePersuasive, domain.ToneWitty, domain.ToneCasual, domain.ToneFormal:
	default:
		return nil, NewCampaignErrorWithID(ErrInvalidContent, apiErrors.ErrInvalidFormat, campaignID, fmt.Sprintf("tom inválido: %q", ad.Tone))
	}

	if ad.Platform == "" {
		ad.Platform = campaign.Platform
	}
	if !ad.Platform.Valid() {
		return nil, NewCampaignErrorWithID(ErrInvalidContent, apiErrors.ErrInvalidFormat, campaignID, fmt.Sprintf("plataforma inválida: %q", ad.Platform))
	}

	if ad.Views < 0 || ad.Clicks < 0 || ad.Conversions < 0 || ad.Clicks > ad.Views {
		return nil, NewCampaignErrorWithID(ErrInvalidContent, apiErrors.ErrInvalidRequest, campaignID, "contadores inconsistentes")
	}

	ad.CampaignID = campaign.ID
	if err := s.contentRepo.CreateAdContent(ctx, ad); err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	return ad, nil
}

func (s *Service) ListComments(ctx context.Context, actor *domain.Claims, campaignID string) ([]*domain.Comment, error) {
	if _, err := s.Get(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	comments, err := s.contentRepo.ListComments(ctx, campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	return comments, nil
}

func (s *Service) CreateComment(ctx context.Context, actor *domain.Claims, campaignID, message string) (*domain.Comment, error) {
	if _, err := s.Get(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, NewCampaignErrorWithID(ErrInvalidContent, apiErrors.ErrMissingRequiredData, campaignID, "message é obrigatório")
	}

	comment := &domain.Comment{
		CampaignID: campaignID,
		UserID:     actor.UserID,
		Message:    message,
	}
	if err := s.contentRepo.CreateComment(ctx, comment); err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	return comment, nil
}

func (s *Service) ListImages(ctx context.Context, actor *domain.Claims, campaignID string) ([]*domain.ImageAsset, error) {
	if _, err := s.Get(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	images, err := s.contentRepo.ListImageAssets(ctx, campaignID)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	return images, nil
}

func (s *Service) UploadImage(ctx context.Context, actor *domain.Claims, campaignID string, upload ImageUpload) (*domain.ImageAsset, error) {
	if _, err := s.Get(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	if len(upload.Data) == 0 {
		return nil, NewCampaignErrorWithID(ErrInvalidContent, apiErrors.ErrMissingRequiredData, campaignID, "arquivo vazio")
	}
	if len(upload.Data) > maxImageSize {
		return nil, NewCampaignErrorWithID(ErrInvalidContent, apiErrors.ErrInvalidRequest, campaignID, "arquivo maior que 10MB")
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, NewCampaignErrorWithID(ErrInvalidContent, apiErrors.ErrInvalidFormat, campaignID, "apenas imagens são aceitas")
	}

	now := s.clock.Now()
	key, err := storage.NewKey(path.Join("campaign_images", campaignID), now.Format("2006/01"), upload.Filename)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrStorage, apiErrors.ErrInternalServer, campaignID, err.Error())
	}

	url, err := s.storage.Put(ctx, key, upload.Data, upload.ContentType)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrStorage, apiErrors.ErrExternalService, campaignID, err.Error())
	}

	image := &domain.ImageAsset{
		CampaignID:  campaignID,
		URL:         url,
		StorageKey:  key,
		Prompt:      strings.TrimSpace(upload.Prompt),
		ContentType: upload.ContentType,
	}
	if err := s.contentRepo.CreateImageAsset(ctx, image); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			logrus.WithError(delErr).WithField("campaign_id", campaignID).Warn("Arquivo órfão no armazenamento")
		}
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	return image, nil
}

// ImportAnalytics grava as métricas diárias (upsert por dia) e agenda o recálculo do resumo
func (s *Service) ImportAnalytics(ctx context.Context, actor *domain.Claims, campaignID string, rows []domain.DailyAnalyticsInput) (int, error) {
	campaign, err := s.Get(ctx, actor, campaignID)
	if err != nil {
		return 0, err
	}

	if len(rows) == 0 {
		return 0, NewCampaignErrorWithID(ErrInvalidAnalytics, apiErrors.ErrMissingRequiredData, campaignID, "nenhuma linha informada")
	}
	if len(rows) > maxImportRows {
		return 0, NewCampaignErrorWithID(ErrInvalidAnalytics, apiErrors.ErrInvalidRequest, campaignID, fmt.Sprintf("máximo de %d linhas por importação", maxImportRows))
	}

	seen := make(map[string]bool, len(rows))
	records := make([]*domain.DailyAnalytics, 0, len(rows))
	for i, row := range rows {
		date, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(row.Date), s.clock.Location())
		if err != nil {
			return 0, NewCampaignErrorWithID(ErrInvalidAnalytics, apiErrors.ErrInvalidFormat, campaignID, fmt.Sprintf("linha %d: data inválida %q", i+1, row.Date))
		}
		day := date.Format(time.DateOnly)
		if seen[day] {
			return 0, NewCampaignErrorWithID(ErrInvalidAnalytics, apiErrors.ErrInvalidRequest, campaignID, fmt.Sprintf("linha %d: data repetida %s", i+1, day))
		}
		seen[day] = true

		if row.Impressions < 0 || row.Clicks < 0 || row.Conversions < 0 || row.Spend.IsNegative() {
			return 0, NewCampaignErrorWithID(ErrInvalidAnalytics, apiErrors.ErrInvalidRequest, campaignID, fmt.Sprintf("linha %d: valores negativos", i+1))
		}
		if row.Clicks > row.Impressions || row.Conversions > row.Clicks {
			return 0, NewCampaignErrorWithID(ErrInvalidAnalytics, apiErrors.ErrInvalidRequest, campaignID, fmt.Sprintf("linha %d: cliques ou conversões acima do possível", i+1))
		}

		records = append(records, &domain.DailyAnalytics{
			CampaignID:  campaign.ID,
			Date:        date,
			Impressions: row.Impressions,
			Clicks:      row.Clicks,
			Conversions: row.Conversions,
			Spend:       row.Spend.Round(2),
		})
	}

	if err := s.analyticsRepo.SaveBatch(ctx, records); err != nil {
		return 0, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}

	s.enqueueSummary(ctx, campaign.ID)

	return len(records), nil
}

func (s *Service) ListAnalytics(ctx context.Context, actor *domain.Claims, campaignID string, filters domain.AnalyticsFilters) ([]*domain.DailyAnalytics, error) {
	if _, err := s.Get(ctx, actor, campaignID); err != nil {
		return nil, err
	}

	rows, err := s.analyticsRepo.ListByCampaign(ctx, campaignID, filters)
	if err != nil {
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, err.Error())
	}
	return rows, nil
}
