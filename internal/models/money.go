package models

import (
	"github.com/shopspring/decimal"
)

// nanosPerUnit is the fixed scale of the MoneyAmount.Nanos component.
const nanosPerUnit = 1_000_000_000

// MoneyAmount mirrors the aggregator's money shape: a decimal-as-string units
// component plus a fractional nanos component. An absent Units means the value
// is unknown, not zero; consumers must render a fallback rather than coerce.
type MoneyAmount struct {
	CurrencyCode string `json:"currencyCode,omitempty"`
	Units        string `json:"units,omitempty" validate:"omitempty,money_units"`
	Nanos        int64  `json:"nanos,omitempty"`
}

// Decimal converts the amount to a decimal value. The second return is false
// when the amount is unknown (no units present).
func (m MoneyAmount) Decimal() (decimal.Decimal, bool) {
	if m.Units == "" {
		return decimal.Zero, false
	}
	units, err := decimal.NewFromString(m.Units)
	if err != nil {
		return decimal.Zero, false
	}
	nanos := decimal.New(m.Nanos, -9)
	return units.Add(nanos), true
}

// Known reports whether the amount carries a usable value.
func (m MoneyAmount) Known() bool {
	_, ok := m.Decimal()
	return ok
}

// MoneyFromDecimal builds a MoneyAmount from a decimal value.
func MoneyFromDecimal(currencyCode string, d decimal.Decimal) MoneyAmount {
	units := d.Truncate(0)
	nanos := d.Sub(units).Mul(decimal.New(nanosPerUnit, 0)).IntPart()
	return MoneyAmount{
		CurrencyCode: currencyCode,
		Units:        units.String(),
		Nanos:        nanos,
	}
}
