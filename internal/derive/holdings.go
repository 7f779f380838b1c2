package derive

import (
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// Holdings folds a validated stock transaction list into net positions per
// ISIN, preserving first-seen order. Quantity math applies buys positive and
// sells negative; bonus and split rows are excluded from quantity math.
// Invested amount accumulates buy amounts only; a sell never reduces it.
func Holdings(transactions []models.StockTransaction) []models.Holding {
	index := make(map[string]int)
	var holdings []models.Holding

	for _, txn := range transactions {
		pos, ok := index[txn.ISIN]
		if !ok {
			pos = len(holdings)
			index[txn.ISIN] = pos
			holdings = append(holdings, models.Holding{
				ISIN:      txn.ISIN,
				StockName: txn.StockName,
			})
		}

		switch txn.Type {
		case models.StockTxnBuy:
			holdings[pos].NetQuantity = holdings[pos].NetQuantity.Add(txn.Quantity)
			if amount, ok := txn.Amount.Decimal(); ok {
				holdings[pos].InvestedAmount = holdings[pos].InvestedAmount.Add(amount)
			}
		case models.StockTxnSell:
			holdings[pos].NetQuantity = holdings[pos].NetQuantity.Sub(txn.Quantity)
		}
	}

	return holdings
}

// WithQuotes fills current values from live quotes. A known price values the
// position at quantity times price; without one the invested amount stands in,
// and PriceKnown stays false so consumers can label the figure.
func WithQuotes(holdings []models.Holding, quotes map[string]models.Quote) []models.Holding {
	valued := make([]models.Holding, len(holdings))
	for i, holding := range holdings {
		valued[i] = holding
		quote, ok := quotes[holding.ISIN]
		if ok && quote.Known {
			valued[i].CurrentValue = holding.NetQuantity.Mul(quote.Price)
			valued[i].PriceKnown = true
			continue
		}
		valued[i].CurrentValue = holding.InvestedAmount
		valued[i].PriceKnown = false
	}
	return valued
}

// TotalInvested sums invested amounts across holdings.
func TotalInvested(holdings []models.Holding) decimal.Decimal {
	total := decimal.Zero
	for _, holding := range holdings {
		total = total.Add(holding.InvestedAmount)
	}
	return total
}
