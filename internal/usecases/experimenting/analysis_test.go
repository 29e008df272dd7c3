package experimenting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/advision-api/internal/domain"
)

func headlineTest() *domain.ABTest {
	return &domain.ABTest{
		ID:            "t1",
		SuccessMetric: domain.MetricCTR,
		MinSampleSize: 1000,
		Variations: []*domain.ABTestVariation{
			{ID: "a", Name: "Variation A", Impressions: 8500, Clicks: 340, Conversions: 42, Spend: decimal.NewFromInt(250)},
			{ID: "b", Name: "Variation B", Impressions: 8500, Clicks: 468, Conversions: 61, Spend: decimal.NewFromInt(250)},
		},
	}
}

func TestZTest(t *testing.T) {
	z, p := ZTest(340, 8500, 468, 8500)
	assert.InDelta(t, 4.614, z, 0.001)
	assert.Less(t, p, 0.0001)

	z, p = ZTest(100, 1000, 100, 1000)
	assert.Equal(t, 0.0, z)
	assert.InDelta(t, 1.0, p, 1e-9)

	_, p = ZTest(0, 0, 10, 100)
	assert.Equal(t, 1.0, p)
}

func TestAnalyze_SignificantWinner(t *testing.T) {
	result := Analyze(headlineTest())

	require.Len(t, result.Variations, 2)
	assert.Equal(t, 4.0, result.Variations[0].CTR)
	assert.Equal(t, 5.51, result.Variations[1].CTR)
	assert.Equal(t, 37.65, result.Variations[1].Lift)

	assert.True(t, result.SampleSizeReached)
	assert.True(t, result.Significant)
	require.NotNil(t, result.WinnerID)
	assert.Equal(t, "b", *result.WinnerID)
	assert.Equal(t, "Variation B", result.WinnerName)
	assert.Greater(t, result.Confidence, 99.9)
}

func TestAnalyze_SampleSizeNotReached(t *testing.T) {
	test := headlineTest()
	test.MinSampleSize = 10000

	result := Analyze(test)
	assert.False(t, result.SampleSizeReached)
	assert.False(t, result.Significant)
	assert.Nil(t, result.WinnerID)
}

func TestAnalyze_ConversionRateMetric(t *testing.T) {
	test := headlineTest()
	test.SuccessMetric = domain.MetricConversionRate
	test.MinSampleSize = 100

	result := Analyze(test)

	// 42/340 contra 61/468: taxas quase iguais
	assert.True(t, result.SampleSizeReached)
	assert.False(t, result.Significant)
	assert.Equal(t, 12.35, result.Variations[0].ConversionRate)
}

func TestAnalyze_ControlWins(t *testing.T) {
	test := headlineTest()
	test.Variations[0].Clicks, test.Variations[1].Clicks = 468, 340

	result := Analyze(test)
	require.True(t, result.Significant)
	assert.Equal(t, "a", *result.WinnerID)
}

func TestAnalyze_SingleVariation(t *testing.T) {
	test := headlineTest()
	test.Variations = test.Variations[:1]

	result := Analyze(test)
	assert.False(t, result.SampleSizeReached)
	assert.False(t, result.Significant)
	assert.Equal(t, 0.0, result.Confidence)
}
