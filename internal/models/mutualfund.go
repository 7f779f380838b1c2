package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MfTransactionType classifies a mutual-fund transaction.
type MfTransactionType string

const (
	MfTxnPurchase MfTransactionType = "PURCHASE"
	MfTxnSell     MfTransactionType = "SELL"
)

// MfTransaction is one normalized mutual-fund transaction.
type MfTransaction struct {
	Date        time.Time         `json:"date" validate:"required"`
	SchemeName  string            `json:"schemeName" validate:"required"`
	FolioNumber string            `json:"folioNumber"`
	Type        MfTransactionType `json:"transactionType" validate:"required,mf_txn_type"`
	Amount      decimal.Decimal   `json:"amount"`
	Units       decimal.Decimal   `json:"units"`
	NAV         decimal.Decimal   `json:"nav"`
}

// MfTransactionsResult is the normalized fetch_mf_transactions payload.
type MfTransactionsResult struct {
	Transactions []MfTransaction `json:"transactions" validate:"dive"`
}
