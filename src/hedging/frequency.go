package hedging

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jiaming2012/option-pricer/src/models"
)

const TradingDaysPerYear = 252.0

// ParseFrequency converts a rebalancing frequency descriptor to a time step
// in years. Named frequencies are daily, weekly, biweekly and monthly; any
// other value is parsed as a number of trading days.
func ParseFrequency(freq string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(freq)) {
	case "daily":
		return 1.0 / TradingDaysPerYear, nil
	case "weekly":
		return 1.0 / 52.0, nil
	case "biweekly":
		return 1.0 / 26.0, nil
	case "monthly":
		return 1.0 / 12.0, nil
	}

	days, err := strconv.ParseFloat(strings.TrimSpace(freq), 64)
	if err != nil {
		return 0, models.NewValidationError("rebalance_freq", fmt.Sprintf("invalid rebalancing frequency: %s. Use 'daily', 'weekly', 'biweekly', 'monthly', or a number of days", freq))
	}

	if days <= 0 {
		return 0, models.NewValidationError("rebalance_freq", "number of days must be positive")
	}

	return days / TradingDaysPerYear, nil
}
