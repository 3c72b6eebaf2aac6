package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PctOf calcula a participação percentual de part sobre total, arredondada
// em duas casas; total zero produz nil (divisão indefinida, nunca zero)
func PctOf(part, total float64) *float64 {
	if total == 0 {
		return nil
	}

	pct := RoundWithTwoDecimalPlace(part * 100.0 / total)
	return &pct
}
