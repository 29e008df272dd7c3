package seeding

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/advision-api/internal/domain"
)

// generator produz os números simulados. A fonte aleatória é injetada
// para que os testes sejam determinísticos.
type generator struct {
	rng *rand.Rand
}

func newGenerator(rng *rand.Rand) *generator {
	return &generator{rng: rng}
}

func (g *generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// between sorteia um inteiro no intervalo fechado [lo, hi]
func (g *generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *generator) adContents(campaign *domain.Campaign, level Level) []*domain.AdContent {
	templates, ok := adTemplates[campaign.Platform]
	if !ok {
		templates = adTemplates[domain.PlatformInstagram]
	}

	count := g.between(3, 5)
	ads := make([]*domain.AdContent, 0, count)
	for i := 0; i < count; i++ {
		var views int
		var ctr float64
		switch level {
		case LevelHigh:
			views, ctr = g.between(15000, 50000), g.uniform(0.04, 0.08)
		case LevelMedium:
			views, ctr = g.between(8000, 25000), g.uniform(0.025, 0.04)
		default:
			views, ctr = g.between(3000, 12000), g.uniform(0.01, 0.025)
		}
		clicks := int64(float64(views) * ctr)
		conversions := int64(float64(clicks) * g.uniform(0.05, 0.15))

		ads = append(ads, &domain.AdContent{
			CampaignID:  campaign.ID,
			Text:        templates[i%len(templates)],
			Tone:        toneCycle[i%len(toneCycle)],
			Platform:    campaign.Platform,
			Views:       int64(views),
			Clicks:      clicks,
			Conversions: conversions,
		})
	}
	return ads
}

type levelProfile struct {
	impressions float64
	ctr         float64
	conversion  float64
}

var levelProfiles = map[Level]levelProfile{
	LevelHigh:   {impressions: 1.5, ctr: 0.045, conversion: 1.3},
	LevelMedium: {impressions: 1.0, ctr: 0.03, conversion: 1.0},
	LevelLow:    {impressions: 0.7, ctr: 0.018, conversion: 0.7},
}

// dailyAnalytics gera o histórico diário até today com fases de crescimento
// (rampa nos primeiros 30% do período, estável até 70%, tendência depois)
func (g *generator) dailyAnalytics(campaign *domain.Campaign, level Level, today time.Time) []*domain.DailyAnalytics {
	start := time.Date(campaign.StartDate.Year(), campaign.StartDate.Month(), campaign.StartDate.Day(), 0, 0, 0, 0, today.Location())
	age := daysBetween(start, today)
	if age < 0 {
		return nil
	}

	days := min(maxHistoryDays, age+1)
	profile, ok := levelProfiles[level]
	if !ok {
		profile = levelProfiles[LevelMedium]
	}

	base, ok := baseImpressions[campaign.Platform]
	if !ok {
		base = defaultBaseImpressions
	}
	base = int(float64(base) * profile.impressions)

	dailyBudget := campaign.Budget.InexactFloat64() / float64(max(days, 1))

	rows := make([]*domain.DailyAnalytics, 0, days)
	for offset := 0; offset < days; offset++ {
		date := today.AddDate(0, 0, -(days - offset - 1))
		if date.After(today) || date.Before(start) {
			continue
		}

		growth := g.growth(offset, days, level)
		randomness := g.uniform(0.85, 1.15)
		impressions := int64(float64(base) * growth * weekdayMultiplier(date.Weekday()) * randomness)

		ctr := math.Max(0.01, profile.ctr+g.uniform(-0.01, 0.01))
		clicks := int64(float64(impressions) * ctr)
		conversions := int64(float64(clicks) * g.uniform(0.05, 0.15) * profile.conversion)
		spend := decimal.NewFromFloat(dailyBudget * g.uniform(0.85, 1.15)).Round(2)

		rows = append(rows, &domain.DailyAnalytics{
			CampaignID:  campaign.ID,
			Date:        date,
			Impressions: impressions,
			Clicks:      clicks,
			Conversions: conversions,
			Spend:       spend,
		})
	}
	return rows
}

func (g *generator) growth(offset, days int, level Level) float64 {
	ramp := float64(days) * 0.3
	switch {
	case float64(offset) < ramp:
		return 0.6 + float64(offset)/ramp*0.4
	case float64(offset) < float64(days)*0.7:
		return 1.0 + g.uniform(-0.1, 0.2)
	}

	switch level {
	case LevelHigh:
		return 1.1 + g.uniform(-0.1, 0.1)
	case LevelLow:
		return 0.8 + g.uniform(-0.15, 0.05)
	default:
		return 0.95 + g.uniform(-0.1, 0.1)
	}
}

func weekdayMultiplier(day time.Weekday) float64 {
	switch day {
	case time.Friday, time.Saturday:
		return 1.15
	case time.Monday, time.Tuesday:
		return 1.05
	}
	return 1.0
}

func daysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}
