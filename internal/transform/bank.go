package transform

import (
	"encoding/json"
	"fmt"

	"finsight/internal/models"
)

// bankPayload is the decoded fetch_bank_transactions payload: transactions
// grouped per account as positional rows.
type bankPayload struct {
	BankTransactions []struct {
		Bank string `json:"bank"`
		Txns []row  `json:"txns"`
	} `json:"bankTransactions"`
}

// bank typeCode values on the wire.
const (
	bankTypeCredit = 1
	bankTypeDebit  = 2
)

// BankTransactions normalizes the fetch_bank_transactions payload.
// Transaction IDs are synthesized as "{bank}-{accountIndex}-{txnIndex}" and
// are unique within the returned set. The transformer fully succeeds or
// fails for the whole domain; there is no partial output.
func BankTransactions(payload json.RawMessage) (*models.BankTransactionsResult, error) {
	var upstream bankPayload
	if err := json.Unmarshal(payload, &upstream); err != nil {
		return nil, fmt.Errorf("bank transactions: %w", err)
	}

	result := &models.BankTransactionsResult{
		Statements: make([]models.BankAccountStatement, 0, len(upstream.BankTransactions)),
	}

	for accountIdx, account := range upstream.BankTransactions {
		statement := models.BankAccountStatement{
			Account:      account.Bank,
			Transactions: make([]models.BankTransaction, 0, len(account.Txns)),
		}

		for txnIdx, txn := range account.Txns {
			amount, err := txn.decimalAt(bankTxnColumns.Amount)
			if err != nil {
				return nil, fmt.Errorf("bank transactions: account %d txn %d: %w", accountIdx, txnIdx, err)
			}
			narration, err := txn.stringAt(bankTxnColumns.Narration)
			if err != nil {
				return nil, fmt.Errorf("bank transactions: account %d txn %d: %w", accountIdx, txnIdx, err)
			}
			timestamp, err := txn.timeAt(bankTxnColumns.Timestamp)
			if err != nil {
				return nil, fmt.Errorf("bank transactions: account %d txn %d: %w", accountIdx, txnIdx, err)
			}
			typeCode, err := txn.intAt(bankTxnColumns.Type)
			if err != nil {
				return nil, fmt.Errorf("bank transactions: account %d txn %d: %w", accountIdx, txnIdx, err)
			}

			normalized := models.BankTransaction{
				ID:        fmt.Sprintf("%s-%d-%d", account.Bank, accountIdx, txnIdx),
				Amount:    amount,
				Narration: narration,
				Timestamp: timestamp,
				Type:      bankTransactionType(typeCode),
			}

			// mode and running balance are optional trailing columns
			if mode, err := txn.stringAt(bankTxnColumns.Mode); err == nil {
				normalized.Mode = mode
			}
			if balance, err := txn.decimalAt(bankTxnColumns.Balance); err == nil {
				normalized.RunningBalance = &balance
			}

			statement.Transactions = append(statement.Transactions, normalized)
		}

		result.Statements = append(result.Statements, statement)
	}

	return result, nil
}

func bankTransactionType(code int) models.TransactionType {
	switch code {
	case bankTypeCredit:
		return models.TransactionCredit
	case bankTypeDebit:
		return models.TransactionDebit
	default:
		return models.TransactionOther
	}
}
