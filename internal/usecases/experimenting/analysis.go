package experimenting

import (
	"math"

	"github.com/vfg2006/advision-api/internal/domain"
	"github.com/vfg2006/advision-api/pkg/utils"
)

// SignificanceLevel é o p-valor máximo para declarar um vencedor
const SignificanceLevel = 0.05

// ZTest compara duas proporções (sucessos/tentativas) e retorna o z-score
// e o p-valor bicaudal. Sem tentativas em algum dos lados, retorna (0, 1).
func ZTest(successA, trialsA, successB, trialsB int64) (float64, float64) {
	if trialsA == 0 || trialsB == 0 {
		return 0, 1
	}

	pA := float64(successA) / float64(trialsA)
	pB := float64(successB) / float64(trialsB)
	pooled := float64(successA+successB) / float64(trialsA+trialsB)

	se := math.Sqrt(pooled * (1 - pooled) * (1/float64(trialsA) + 1/float64(trialsB)))
	if se == 0 {
		return 0, 1
	}

	z := (pB - pA) / se
	return z, math.Erfc(math.Abs(z) / math.Sqrt2)
}

// Analyze compara cada variação com a primeira (controle) na métrica de sucesso do teste
func Analyze(test *domain.ABTest) *domain.ABTestResult {
	result := &domain.ABTestResult{
		TestID:            test.ID,
		SuccessMetric:     test.SuccessMetric,
		Variations:        make([]*domain.VariationResult, 0, len(test.Variations)),
		SampleSizeReached: len(test.Variations) >= 2,
	}
	if len(test.Variations) == 0 {
		return result
	}

	metric := test.SuccessMetric
	control := test.Variations[0]
	controlRate := rate(control, metric)

	for _, v := range test.Variations {
		if v.Trials(metric) < test.MinSampleSize {
			result.SampleSizeReached = false
		}

		item := &domain.VariationResult{
			VariationID:    v.ID,
			Name:           v.Name,
			Impressions:    v.Impressions,
			Clicks:         v.Clicks,
			Conversions:    v.Conversions,
			CTR:            utils.RoundWithTwoDecimalPlace(v.CTR()),
			ConversionRate: utils.RoundWithTwoDecimalPlace(v.ConversionRate()),
			PValue:         1,
		}

		if v != control {
			z, p := ZTest(control.Successes(metric), control.Trials(metric), v.Successes(metric), v.Trials(metric))
			item.ZScore = utils.RoundWithTwoDecimalPlace(z)
			item.PValue = p
			if controlRate > 0 {
				item.Lift = utils.RoundWithTwoDecimalPlace((rate(v, metric) - controlRate) / controlRate * 100)
			}
		}

		result.Variations = append(result.Variations, item)
	}

	best := 0
	for i, v := range test.Variations {
		if rate(v, metric) > rate(test.Variations[best], metric) {
			best = i
		}
	}

	// p-valor do vencedor: contra o controle ou, se o controle vence, o pior entre os desafiantes
	pValue := result.Variations[best].PValue
	if best == 0 {
		pValue = 0
		for _, item := range result.Variations[1:] {
			pValue = math.Max(pValue, item.PValue)
		}
		if len(result.Variations) == 1 {
			pValue = 1
		}
	}

	result.Confidence = utils.RoundWithTwoDecimalPlace((1 - pValue) * 100)
	result.Significant = result.SampleSizeReached && pValue < SignificanceLevel

	if result.Significant {
		winner := test.Variations[best]
		result.WinnerID = &winner.ID
		result.WinnerName = winner.Name
	}

	return result
}

func rate(v *domain.ABTestVariation, metric domain.SuccessMetric) float64 {
	trials := v.Trials(metric)
	if trials == 0 {
		return 0
	}
	return float64(v.Successes(metric)) / float64(trials)
}
