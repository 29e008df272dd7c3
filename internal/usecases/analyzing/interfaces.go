package analyzing

import (
	"context"

	"github.com/vfg2006/advision-api/internal/domain"
)

// SummaryUpdater recalcula os resumos a partir das métricas diárias
type SummaryUpdater interface {
	// UpdateCampaignSummary retorna false quando a campanha não existe
	UpdateCampaignSummary(ctx context.Context, campaignID string) (bool, error)

	// UpdateAllCampaignSummaries atualiza as campanhas ativas e retorna quantas foram atualizadas
	UpdateAllCampaignSummaries(ctx context.Context) (int, error)

	// RefreshSummaries garante um resumo por campanha e atualiza os recém-criados,
	// os zerados ou, com force, todos
	RefreshSummaries(ctx context.Context, force bool) (*domain.SummaryRefreshResult, error)
}

// Analyzer é a interface completa usada pela API
type Analyzer interface {
	UpdateCampaignSummary(ctx context.Context, campaignID string) (bool, error)
	UpdateAllCampaignSummaries(ctx context.Context) (int, error)
	RefreshSummaries(ctx context.Context, force bool) (*domain.SummaryRefreshResult, error)

	GetSummary(ctx context.Context, actor *domain.Claims, campaignID string) (*domain.CampaignAnalyticsSummary, error)
	Top(ctx context.Context, actor *domain.Claims, limit int) ([]*domain.RankedSummary, error)
}
