package transform

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// mfPayload is the decoded fetch_mf_transactions payload. Unlike the bank
// and stock flows this one already carries named fields, so the transform is
// a structural passthrough with type normalization.
type mfPayload struct {
	MfTransactions []struct {
		SchemeName      string          `json:"schemeName"`
		FolioNumber     string          `json:"folioNumber"`
		TransactionDate string          `json:"transactionDate"`
		OrderType       string          `json:"orderType"`
		Amount          decimal.Decimal `json:"transactionAmount"`
		Units           decimal.Decimal `json:"transactionUnits"`
		NAV             decimal.Decimal `json:"purchasePrice"`
	} `json:"mfTransactions"`
}

// MfTransactions normalizes the fetch_mf_transactions payload.
func MfTransactions(payload json.RawMessage) (*models.MfTransactionsResult, error) {
	var upstream mfPayload
	if err := json.Unmarshal(payload, &upstream); err != nil {
		return nil, fmt.Errorf("mf transactions: %w", err)
	}

	result := &models.MfTransactionsResult{
		Transactions: make([]models.MfTransaction, 0, len(upstream.MfTransactions)),
	}

	for idx, txn := range upstream.MfTransactions {
		date, err := parseMfDate(txn.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("mf transactions: txn %d: %w", idx, err)
		}

		txnType := models.MfTxnPurchase
		if strings.EqualFold(txn.OrderType, "SELL") || strings.EqualFold(txn.OrderType, "REDEEM") {
			txnType = models.MfTxnSell
		}

		result.Transactions = append(result.Transactions, models.MfTransaction{
			Date:        date,
			SchemeName:  txn.SchemeName,
			FolioNumber: txn.FolioNumber,
			Type:        txnType,
			Amount:      txn.Amount,
			Units:       txn.Units,
			NAV:         txn.NAV,
		})
	}

	return result, nil
}

func parseMfDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
