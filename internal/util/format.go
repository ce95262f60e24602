package util

import (
	"fmt"
	"math"
)

// FormatMeanStd formats a mean and its standard deviation with the given number of decimals.
// Examples: (10.2, 0.5, 2) -> "10.20 ± 0.50"
func FormatMeanStd(mean, std float64, decimals int) string {
	return fmt.Sprintf("%.*f ± %.*f", decimals, mean, decimals, std)
}

// FormatPercent formats a signed percentage with two decimals.
// Examples: 23.5 -> "+23.50%", -4 -> "-4.00%", 0 -> "0.00%"
func FormatPercent(p float64) string {
	if p == 0 || math.Abs(p) < 0.005 {
		return "0.00%"
	}
	return fmt.Sprintf("%+.2f%%", p)
}

// FormatSeconds formats a duration in seconds as a short human string.
// Examples: 42 -> "42.0s", 1520.4 -> "25m 20s", 7260 -> "2h 1m"
func FormatSeconds(s float64) string {
	if s < 60 {
		return fmt.Sprintf("%.1fs", s)
	}
	total := int64(math.Round(s))
	if total < 3600 {
		return fmt.Sprintf("%dm %ds", total/60, total%60)
	}
	return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
}
