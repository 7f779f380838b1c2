package models

import "github.com/shopspring/decimal"

// ClassValue pairs an asset or liability class with its value.
type ClassValue struct {
	Class string      `json:"class" validate:"required"`
	Value MoneyAmount `json:"value"`
}

// InstrumentHolding is one instrument held inside an account (equity, ETF,
// REIT, InvIT or similar).
type InstrumentHolding struct {
	ISIN            string          `json:"isin,omitempty" validate:"omitempty,isin"`
	Description     string          `json:"description"`
	Units           decimal.Decimal `json:"units"`
	LastTradedPrice MoneyAmount     `json:"lastTradedPrice"`
}

// AccountHoldings is everything known about one linked account.
type AccountHoldings struct {
	MaskedAccountNumber string              `json:"maskedAccountNumber" validate:"required"`
	Institution         string              `json:"institution,omitempty"`
	Kind                string              `json:"kind"`
	Balance             MoneyAmount         `json:"balance"`
	Instruments         []InstrumentHolding `json:"instruments,omitempty" validate:"dive"`
}

// NetWorthSnapshot is the normalized fetch_net_worth payload. It is built
// fresh per dashboard load and never cached across requests.
type NetWorthSnapshot struct {
	TotalNetWorth MoneyAmount                `json:"totalNetWorth"`
	Assets        []ClassValue               `json:"assets" validate:"dive"`
	Liabilities   []ClassValue               `json:"liabilities" validate:"dive"`
	Accounts      map[string]AccountHoldings `json:"accounts,omitempty"`
}
