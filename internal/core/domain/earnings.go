package domain

import (
	"fmt"
	"strings"
)

const (
	// ProfitPerUnitCents is the reseller margin on one unit (R$ 17,50).
	ProfitPerUnitCents int64 = 1750
	// WorkingDays is the month length the simulator assumes.
	WorkingDays = 30

	MinDailyGoal     = 1
	MaxDailyGoal     = 20
	DefaultDailyGoal = 4
)

// ReferenceGoals are the fixed examples shown above the slider.
var ReferenceGoals = []int{2, 5, 10}

// Earnings is a monthly projection for a daily sales goal.
type Earnings struct {
	DailyUnits   int    `json:"daily_units"`
	MonthlyCents int64  `json:"monthly_cents"`
	Monthly      string `json:"monthly"`
}

// MonthlyEarningsCents is units × profit per unit × working days.
func MonthlyEarningsCents(dailyUnits int) int64 {
	return int64(dailyUnits) * ProfitPerUnitCents * WorkingDays
}

// SimulateEarnings projects the month for dailyUnits, which must lie in
// [MinDailyGoal, MaxDailyGoal].
func SimulateEarnings(dailyUnits int) (Earnings, error) {
	if dailyUnits < MinDailyGoal || dailyUnits > MaxDailyGoal {
		return Earnings{}, fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidDailyGoal, dailyUnits, MinDailyGoal, MaxDailyGoal)
	}
	cents := MonthlyEarningsCents(dailyUnits)
	return Earnings{DailyUnits: dailyUnits, MonthlyCents: cents, Monthly: FormatBRL(cents)}, nil
}

// FormatBRL renders centavos the pt-BR way, e.g. 105000 → "R$ 1.050,00".
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := fmt.Sprintf("%d", cents/100)

	var b strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), cents%100)
}
