package derive

import (
	"sort"

	"finsight/internal/models"
)

// TopHoldingsCount is the dashboard's top-holdings panel size.
const TopHoldingsCount = 5

// TopByCurrentValue returns the n largest holdings by current value, sorted
// strictly descending. Ties keep input order (stable sort), and the input
// slice is left untouched.
func TopByCurrentValue(holdings []models.Holding, n int) []models.Holding {
	ranked := make([]models.Holding, len(holdings))
	copy(ranked, holdings)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CurrentValue.GreaterThan(ranked[j].CurrentValue)
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
