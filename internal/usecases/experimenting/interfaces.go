package experimenting

import (
	"context"

	"github.com/vfg2006/advision-api/internal/domain"
)

type Experimenter interface {
	Create(ctx context.Context, actor *domain.Claims, test *domain.ABTest) (*domain.ABTest, error)
	Get(ctx context.Context, actor *domain.Claims, testID string) (*domain.ABTest, error)
	List(ctx context.Context, actor *domain.Claims) ([]*domain.ABTest, error)
	AddVariation(ctx context.Context, actor *domain.Claims, testID string, variation *domain.ABTestVariation) (*domain.ABTestVariation, error)

	// Results calcula o resultado e, quando significativo, finaliza o teste em andamento
	Results(ctx context.Context, actor *domain.Claims, testID string) (*domain.ABTestResult, error)
}
