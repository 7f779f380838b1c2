package transform

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"finsight/internal/models"
)

// stockPayload is the decoded fetch_stock_transactions payload: per-ISIN
// groups of positional rows.
type stockPayload struct {
	StockTransactions []struct {
		ISIN string `json:"isin"`
		Txns []row  `json:"txns"`
	} `json:"stockTransactions"`
}

// stock typeCode values on the wire.
const (
	stockTypeBuy   = 1
	stockTypeSell  = 2
	stockTypeBonus = 3
	stockTypeSplit = 4
)

// StockISINs lists the unique security identifiers present in a
// fetch_stock_transactions payload, in payload order. Callers use it to
// drive the enrichment fan-out before transforming.
func StockISINs(payload json.RawMessage) ([]string, error) {
	var upstream stockPayload
	if err := json.Unmarshal(payload, &upstream); err != nil {
		return nil, fmt.Errorf("stock transactions: %w", err)
	}
	seen := make(map[string]struct{}, len(upstream.StockTransactions))
	isins := make([]string, 0, len(upstream.StockTransactions))
	for _, security := range upstream.StockTransactions {
		if _, ok := seen[security.ISIN]; ok {
			continue
		}
		seen[security.ISIN] = struct{}{}
		isins = append(isins, security.ISIN)
	}
	return isins, nil
}

// StockTransactions normalizes the fetch_stock_transactions payload.
// Display names come from the caller's enrichment lookup; securities missing
// from the map fall back to their ISIN. The result is sorted descending by
// trade date, ties kept in input order.
func StockTransactions(payload json.RawMessage, names map[string]string) (*models.StockTransactionsResult, error) {
	var upstream stockPayload
	if err := json.Unmarshal(payload, &upstream); err != nil {
		return nil, fmt.Errorf("stock transactions: %w", err)
	}

	var transactions []models.StockTransaction
	for _, security := range upstream.StockTransactions {
		name := names[security.ISIN]
		if name == "" {
			name = security.ISIN
		}

		for txnIdx, txn := range security.Txns {
			typeCode, err := txn.intAt(stockTxnColumns.Type)
			if err != nil {
				return nil, fmt.Errorf("stock transactions: %s txn %d: %w", security.ISIN, txnIdx, err)
			}
			tradeDate, err := txn.timeAt(stockTxnColumns.TradeDate)
			if err != nil {
				return nil, fmt.Errorf("stock transactions: %s txn %d: %w", security.ISIN, txnIdx, err)
			}
			quantity, err := txn.decimalAt(stockTxnColumns.Quantity)
			if err != nil {
				return nil, fmt.Errorf("stock transactions: %s txn %d: %w", security.ISIN, txnIdx, err)
			}

			normalized := models.StockTransaction{
				TradeDate: tradeDate,
				StockName: name,
				ISIN:      security.ISIN,
				Type:      stockTransactionType(typeCode, security.ISIN),
				Quantity:  quantity,
			}

			// the price column is absent for bonus/split rows
			if price, err := txn.decimalAt(stockTxnColumns.Price); err == nil {
				normalized.Price = models.MoneyFromDecimal(defaultCurrency, price)
				normalized.Amount = models.MoneyFromDecimal(defaultCurrency, quantity.Mul(price))
			}

			transactions = append(transactions, normalized)
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].TradeDate.After(transactions[j].TradeDate)
	})

	return &models.StockTransactionsResult{Transactions: transactions}, nil
}

// stockTransactionType maps the wire code to a transaction type. Unmapped
// codes become UNKNOWN with a warning; defaulting them to BUY would
// misclassify unrecognized codes as a meaningful business value.
func stockTransactionType(code int, isin string) models.StockTransactionType {
	switch code {
	case stockTypeBuy:
		return models.StockTxnBuy
	case stockTypeSell:
		return models.StockTxnSell
	case stockTypeBonus:
		return models.StockTxnBonus
	case stockTypeSplit:
		return models.StockTxnSplit
	default:
		slog.Warn("unmapped stock transaction type code",
			"isin", isin,
			"type_code", code)
		return models.StockTxnUnknown
	}
}
