package domain

import (
	"math"

	"travelbook/internal/domain/models"
)

// AdvanceDue returns the upfront amount owed when initiating payment.
// Group tours pay advance_percentage of the total (default 30) with the
// remainder due later; individual tours pay in full.
func AdvanceDue(total int64, tourType models.TourType, advancePercent int) int64 {
	if total <= 0 {
		return 0
	}
	if tourType != models.TourGroup {
		return total
	}
	pct := advancePercent
	if pct <= 0 {
		pct = models.DefaultAdvancePercent
	}
	if pct >= 100 {
		return total
	}
	return int64(math.Round(float64(total) * float64(pct) / 100.0))
}
