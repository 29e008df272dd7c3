package predicting

import (
	"math"

	"github.com/vfg2006/advision-api/internal/domain"
)

// Fit ajusta y = a + b·x por mínimos quadrados
func Fit(xs, ys []float64) domain.LinearFit {
	n := float64(len(xs))
	if len(xs) == 0 || len(xs) != len(ys) {
		return domain.LinearFit{}
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}

	fit := domain.LinearFit{Intercept: meanY}
	if sxx != 0 {
		fit.Slope = sxy / sxx
		fit.Intercept = meanY - fit.Slope*meanX
	}

	var ssRes, ssTot float64
	for i := range xs {
		res := ys[i] - fit.At(xs[i])
		ssRes += res * res
		dev := ys[i] - meanY
		ssTot += dev * dev
	}

	switch {
	case ssTot == 0 && ssRes < 1e-9:
		fit.R2 = 1
	case ssTot == 0:
		fit.R2 = 0
	default:
		fit.R2 = math.Max(0, 1-ssRes/ssTot)
	}

	return fit
}
