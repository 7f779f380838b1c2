package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockTransactionType classifies an equity transaction.
// Unrecognized upstream codes map to StockTxnUnknown rather than being
// silently classified as buys.
type StockTransactionType string

const (
	StockTxnBuy     StockTransactionType = "BUY"
	StockTxnSell    StockTransactionType = "SELL"
	StockTxnBonus   StockTransactionType = "BONUS"
	StockTxnSplit   StockTransactionType = "SPLIT"
	StockTxnUnknown StockTransactionType = "UNKNOWN"
)

// StockTransaction is one normalized equity trade.
type StockTransaction struct {
	TradeDate time.Time            `json:"tradeDate" validate:"required"`
	StockName string               `json:"stockName" validate:"required"`
	ISIN      string               `json:"isin" validate:"required,isin"`
	Type      StockTransactionType `json:"transactionType" validate:"required,stock_txn_type"`
	Quantity  decimal.Decimal      `json:"quantity"`
	Price     MoneyAmount          `json:"price"`
	Amount    MoneyAmount          `json:"amount"`
}

// StockTransactionsResult is the normalized fetch_stock_transactions payload,
// sorted descending by trade date.
type StockTransactionsResult struct {
	Transactions []StockTransaction `json:"transactions" validate:"dive"`
}

// Holding is the derived net position for one security.
// InvestedAmount accumulates buys only; sells never reduce it.
type Holding struct {
	ISIN           string          `json:"isin" validate:"required,isin"`
	StockName      string          `json:"stockName"`
	NetQuantity    decimal.Decimal `json:"netQuantity"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	// CurrentValue is NetQuantity x live price when a price is known,
	// otherwise it falls back to InvestedAmount
	CurrentValue decimal.Decimal `json:"currentValue"`
	PriceKnown   bool            `json:"priceKnown"`
}

// SecurityProfile is the enrichment record for one ISIN.
type SecurityProfile struct {
	ISIN      string `json:"isin"`
	Name      string `json:"name"`
	Ticker    string `json:"ticker,omitempty"`
	Exchange  string `json:"exchange,omitempty"`
	MarketCap string `json:"marketCap,omitempty"`
	IPODate   string `json:"ipoDate,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Quote is a tri-state price: Known=false means "no usable price", which is
// deliberately distinct from a zero price.
type Quote struct {
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency,omitempty"`
	Known    bool            `json:"known"`
}
