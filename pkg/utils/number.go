package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percent retorna part/total em porcentagem, ou zero quando total é zero
func Percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Ratio divide value por divisor, ou retorna zero quando divisor é zero
func Ratio(value float64, divisor int64) float64 {
	if divisor == 0 {
		return 0
	}
	return value / float64(divisor)
}

// Growth é a variação percentual de previous para current.
// Sem base de comparação, qualquer valor positivo conta como 100%.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}
