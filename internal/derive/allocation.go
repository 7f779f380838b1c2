package derive

import (
	"sort"
	"strings"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// NamedValue is one portfolio position for allocation purposes.
type NamedValue struct {
	Name  string
	Value decimal.Decimal
}

// categoryKeywords maps lowercase name fragments to allocation categories.
// Order matters, first match wins.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"gold", "Gold"},
	{"liquid", "Debt"},
	{"debt", "Debt"},
	{"gilt", "Debt"},
	{"bond", "Debt"},
	{"overnight", "Debt"},
	{"elss", "ELSS"},
	{"tax saver", "ELSS"},
	{"index", "Index"},
	{"nifty", "Index"},
	{"sensex", "Index"},
	{"etf", "Index"},
	{"international", "International"},
	{"global", "International"},
	{"nasdaq", "International"},
	{"small cap", "Small Cap"},
	{"smallcap", "Small Cap"},
	{"mid cap", "Mid Cap"},
	{"midcap", "Mid Cap"},
}

// Categorize assigns an allocation category from a free-text name.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryKeywords {
		if strings.Contains(lower, rule.keyword) {
			return rule.category
		}
	}
	return "Equity"
}

// Allocation computes the percentage-of-total breakdown per category, sorted
// descending by value. Positions with non-positive value are skipped.
func Allocation(positions []NamedValue) []models.AllocationSlice {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	grandTotal := decimal.Zero
	for _, position := range positions {
		if position.Value.LessThanOrEqual(decimal.Zero) {
			continue
		}
		category := Categorize(position.Name)
		if _, ok := totals[category]; !ok {
			order = append(order, category)
		}
		totals[category] = totals[category].Add(position.Value)
		grandTotal = grandTotal.Add(position.Value)
	}

	if grandTotal.IsZero() {
		return nil
	}

	hundred := decimal.New(100, 0)
	slices := make([]models.AllocationSlice, 0, len(order))
	for _, category := range order {
		value := totals[category]
		slices = append(slices, models.AllocationSlice{
			Category: category,
			Value:    value,
			Percent:  value.Mul(hundred).Div(grandTotal).Round(2),
		})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value.GreaterThan(slices[j].Value)
	})
	return slices
}
