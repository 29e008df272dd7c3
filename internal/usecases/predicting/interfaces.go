package predicting

import (
	"context"

	"github.com/vfg2006/advision-api/internal/domain"
)

type Predictor interface {
	// Train ajusta um modelo linear por métrica sobre o histórico diário da campanha
	Train(ctx context.Context, actor *domain.Claims, campaignID string) (*domain.TrainingResult, error)

	// PredictNextWeek gera e grava a previsão dos próximos 7 dias com o modelo ativo
	PredictNextWeek(ctx context.Context, actor *domain.Claims, campaignID string) (*domain.Forecast, error)

	// RecommendBudget redistribui o orçamento das campanhas ativas pela nota de desempenho
	RecommendBudget(ctx context.Context, actor *domain.Claims) ([]*domain.BudgetRecommendation, error)
}
