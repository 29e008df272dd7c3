package seeding

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/domain"
)

func testGenerator() *generator {
	return newGenerator(rand.New(rand.NewPCG(42, 7)))
}

func TestGenerator_AdContents(t *testing.T) {
	g := testGenerator()
	campaign := &domain.Campaign{ID: "c1", Platform: domain.PlatformTikTok}

	for _, level := range []Level{LevelHigh, LevelMedium, LevelLow} {
		ads := g.adContents(campaign, level)
		require.GreaterOrEqual(t, len(ads), 3)
		require.LessOrEqual(t, len(ads), 5)

		for i, ad := range ads {
			assert.Equal(t, toneCycle[i%4], ad.Tone)
			assert.Equal(t, adTemplates[domain.PlatformTikTok][i%3], ad.Text)
			assert.LessOrEqual(t, ad.Conversions, ad.Clicks)

			switch level {
			case LevelHigh:
				assert.True(t, ad.Views >= 15000 && ad.Views <= 50000)
				assert.True(t, ad.CTR() < 8.0)
			case LevelLow:
				assert.True(t, ad.Views >= 3000 && ad.Views <= 12000)
				assert.True(t, ad.CTR() < 2.5)
			}
		}
	}
}

func TestGenerator_AdContentsUnknownPlatform(t *testing.T) {
	ads := testGenerator().adContents(&domain.Campaign{Platform: domain.PlatformGoogle}, LevelMedium)
	assert.Equal(t, adTemplates[domain.PlatformInstagram][0], ads[0].Text)
}

func TestGenerator_DailyAnalytics(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		daysAgo  int
		wantDays int
	}{
		{"histórico limitado a 45 dias", 60, 45},
		{"campanha recente", 10, 11},
		{"começa hoje", 0, 1},
		{"começa no futuro", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := &domain.Campaign{
				ID:        "c1",
				Platform:  domain.PlatformInstagram,
				Budget:    decimal.NewFromInt(4500),
				StartDate: today.AddDate(0, 0, -tt.daysAgo),
			}

			rows := testGenerator().dailyAnalytics(campaign, LevelHigh, today)
			require.Len(t, rows, tt.wantDays)
			if tt.wantDays == 0 {
				return
			}

			assert.Equal(t, today, rows[len(rows)-1].Date)
			assert.Equal(t, today.AddDate(0, 0, -(tt.wantDays-1)), rows[0].Date)

			for _, row := range rows {
				assert.Equal(t, "c1", row.CampaignID)
				assert.Positive(t, row.Impressions)
				assert.GreaterOrEqual(t, row.Clicks, int64(float64(row.Impressions)*0.01)-1)
				assert.LessOrEqual(t, row.Conversions, row.Clicks)
				assert.True(t, row.Spend.IsPositive())
			}
		})
	}
}

func TestGenerator_Growth(t *testing.T) {
	g := testGenerator()

	assert.Equal(t, 0.6, g.growth(0, 40, LevelLow))
	assert.InDelta(t, 0.8, g.growth(6, 40, LevelLow), 0.0001)

	mid := g.growth(20, 40, LevelLow)
	assert.True(t, mid >= 0.9 && mid <= 1.2)

	late := g.growth(35, 40, LevelLow)
	assert.True(t, late >= 0.65 && late <= 0.85)

	high := g.growth(35, 40, LevelHigh)
	assert.True(t, high >= 1.0 && high <= 1.2)
}

func TestWeekdayMultiplier(t *testing.T) {
	assert.Equal(t, 1.15, weekdayMultiplier(time.Friday))
	assert.Equal(t, 1.15, weekdayMultiplier(time.Saturday))
	assert.Equal(t, 1.05, weekdayMultiplier(time.Monday))
	assert.Equal(t, 1.0, weekdayMultiplier(time.Sunday))
}
