// Package cache mantém os resumos de analytics em Redis para as leituras da API.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/advision-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultSummaryTTL = 10 * time.Minute

type SummaryCache interface {
	Get(ctx context.Context, campaignID string) (*domain.CampaignAnalyticsSummary, error)
	Set(ctx context.Context, summary *domain.CampaignAnalyticsSummary) error
	Invalidate(ctx context.Context, campaignID string) error
}

type redisSummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSummaryCache(rdb *redis.Client, ttl time.Duration) SummaryCache {
	if rdb == nil {
		return NoopSummaryCache{}
	}
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}
	return &redisSummaryCache{rdb: rdb, ttl: ttl}
}

func summaryKey(campaignID string) string {
	return fmt.Sprintf("advision:summary:%s", campaignID)
}

// Get retorna nil quando o resumo não está em cache
func (c *redisSummaryCache) Get(ctx context.Context, campaignID string) (*domain.CampaignAnalyticsSummary, error) {
	raw, err := c.rdb.Get(ctx, summaryKey(campaignID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resumo do cache: %w", err)
	}

	var summary domain.CampaignAnalyticsSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Warn("Resumo em cache corrompido, descartando")
		_ = c.rdb.Del(ctx, summaryKey(campaignID)).Err()
		return nil, nil
	}

	return &summary, nil
}

func (c *redisSummaryCache) Set(ctx context.Context, summary *domain.CampaignAnalyticsSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("erro ao serializar resumo: %w", err)
	}

	if err := c.rdb.Set(ctx, summaryKey(summary.CampaignID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar resumo no cache: %w", err)
	}
	return nil
}

func (c *redisSummaryCache) Invalidate(ctx context.Context, campaignID string) error {
	if err := c.rdb.Del(ctx, summaryKey(campaignID)).Err(); err != nil {
		return fmt.Errorf("erro ao invalidar resumo no cache: %w", err)
	}
	return nil
}

// NoopSummaryCache é usado quando REDIS_ADDR não está configurado
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(context.Context, string) (*domain.CampaignAnalyticsSummary, error) {
	return nil, nil
}

func (NoopSummaryCache) Set(context.Context, *domain.CampaignAnalyticsSummary) error { return nil }

func (NoopSummaryCache) Invalidate(context.Context, string) error { return nil }
