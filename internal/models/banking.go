package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a bank transaction by direction.
type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
	TransactionOther  TransactionType = "OTHER"
)

// BankTransaction is one normalized entry of a bank statement.
// The ID is synthesized from account and position when the aggregator does
// not supply one, and is unique within the returned statement.
type BankTransaction struct {
	ID             string           `json:"transactionId" validate:"required"`
	Amount         decimal.Decimal  `json:"amount"`
	Narration      string           `json:"narration"`
	Timestamp      time.Time        `json:"timestamp" validate:"required"`
	Type           TransactionType  `json:"transactionType" validate:"required,bank_txn_type"`
	Mode           string           `json:"mode,omitempty"`
	RunningBalance *decimal.Decimal `json:"runningBalance,omitempty"`
}

// BankAccountStatement groups the transactions of one (masked) account.
type BankAccountStatement struct {
	Account      string            `json:"account" validate:"required"`
	Transactions []BankTransaction `json:"transactions" validate:"dive"`
}

// BankTransactionsResult is the full normalized fetch_bank_transactions payload.
type BankTransactionsResult struct {
	Statements []BankAccountStatement `json:"statements" validate:"dive"`
}
