package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/advision-api/pkg/utils"
)

// Referências usadas na nota de desempenho
const (
	BenchmarkCTR            = 5.0  // CTR (%) que garante a nota máxima do componente
	BenchmarkConversionRate = 15.0 // taxa de conversão (%) que garante a nota máxima do componente

	weightCTR        = 40.0
	weightConversion = 40.0
	weightPacing     = 20.0
)

// UpdateMetrics recalcula todos os agregados do resumo a partir das métricas diárias.
// now é usado para estimar quanto do orçamento já deveria ter sido gasto.
func (s *CampaignAnalyticsSummary) UpdateMetrics(campaign *Campaign, rows []*DailyAnalytics, now time.Time) {
	var impressions, clicks, conversions int64
	spend := decimal.Zero
	days := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		impressions += row.Impressions
		clicks += row.Clicks
		conversions += row.Conversions
		spend = spend.Add(row.Spend)
		days[row.Date.Format(time.DateOnly)] = struct{}{}
	}

	s.CampaignID = campaign.ID
	s.TotalImpressions = impressions
	s.TotalClicks = clicks
	s.TotalConversions = conversions
	s.TotalSpend = spend.Round(2)
	s.DaysTracked = len(days)
	s.LastUpdated = now

	spendF := spend.InexactFloat64()
	s.AvgCTR = utils.RoundWithTwoDecimalPlace(utils.Percent(clicks, impressions))
	s.AvgConversionRate = utils.RoundWithTwoDecimalPlace(utils.Percent(conversions, clicks))
	s.AvgCPC = utils.RoundWithTwoDecimalPlace(utils.Ratio(spendF, clicks))
	s.CostPerConversion = utils.RoundWithTwoDecimalPlace(utils.Ratio(spendF, conversions))

	if len(rows) == 0 {
		s.PerformanceScore = 0
		return
	}

	score := weightCTR*math.Min(s.AvgCTR/BenchmarkCTR, 1) +
		weightConversion*math.Min(s.AvgConversionRate/BenchmarkConversionRate, 1) +
		weightPacing*budgetPacing(campaign, spendF, now)

	s.PerformanceScore = utils.RoundWithTwoDecimalPlace(score)
}

// budgetPacing compara o gasto real com o gasto esperado para os dias já decorridos.
// Retorna 1 quando o gasto está exatamente no ritmo e cai até 0 conforme se afasta.
func budgetPacing(campaign *Campaign, spend float64, now time.Time) float64 {
	budget := campaign.Budget.InexactFloat64()
	if budget <= 0 {
		return 0
	}

	elapsed := campaign.ElapsedDays(now)
	if elapsed == 0 {
		return 0
	}

	expected := budget * float64(elapsed) / float64(campaign.DurationDays())
	pacing := 1 - math.Abs(spend/expected-1)

	return math.Max(0, math.Min(1, pacing))
}

