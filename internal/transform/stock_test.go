package transform

import (
	"encoding/json"
	"testing"

	"finsight/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stockFixture = `{
	"stockTransactions": [
		{
			"isin": "INE040A01034",
			"txns": [
				[1, "2025-01-10", 10, 1500],
				[2, "2025-03-05", 4, 1620.25]
			]
		},
		{
			"isin": "INE002A01018",
			"txns": [
				[3, "2025-02-20", 2],
				[9, "2025-02-21", 1]
			]
		}
	]
}`

func TestStockISINs(t *testing.T) {
	isins, err := StockISINs(json.RawMessage(stockFixture))
	require.NoError(t, err)
	assert.Equal(t, []string{"INE040A01034", "INE002A01018"}, isins)
}

func TestStockISINs_Deduplicates(t *testing.T) {
	payload := `{"stockTransactions":[{"isin":"INE040A01034","txns":[]},{"isin":"INE040A01034","txns":[]}]}`
	isins, err := StockISINs(json.RawMessage(payload))
	require.NoError(t, err)
	assert.Equal(t, []string{"INE040A01034"}, isins)
}

func TestStockTransactions(t *testing.T) {
	names := map[string]string{"INE040A01034": "HDFC Bank Limited"}

	result, err := StockTransactions(json.RawMessage(stockFixture), names)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 4)

	// sorted newest first
	assert.Equal(t, "2025-03-05", result.Transactions[0].TradeDate.Format("2006-01-02"))
	assert.Equal(t, "2025-01-10", result.Transactions[3].TradeDate.Format("2006-01-02"))

	sell := result.Transactions[0]
	assert.Equal(t, models.StockTxnSell, sell.Type)
	assert.Equal(t, "HDFC Bank Limited", sell.StockName)
	assert.Equal(t, "4", sell.Quantity.String())

	// price column present: amount is quantity x price
	price, ok := sell.Price.Decimal()
	require.True(t, ok)
	assert.Equal(t, "1620.25", price.String())
	amount, ok := sell.Amount.Decimal()
	require.True(t, ok)
	assert.Equal(t, "6481", amount.String())
}

func TestStockTransactions_NameFallsBackToISIN(t *testing.T) {
	result, err := StockTransactions(json.RawMessage(stockFixture), nil)
	require.NoError(t, err)

	for _, txn := range result.Transactions {
		assert.Equal(t, txn.ISIN, txn.StockName)
	}
}

func TestStockTransactions_BonusHasNoPrice(t *testing.T) {
	result, err := StockTransactions(json.RawMessage(stockFixture), nil)
	require.NoError(t, err)

	var bonus *models.StockTransaction
	for i := range result.Transactions {
		if result.Transactions[i].Type == models.StockTxnBonus {
			bonus = &result.Transactions[i]
		}
	}
	require.NotNil(t, bonus)
	assert.False(t, bonus.Price.Known())
	assert.False(t, bonus.Amount.Known())
}

func TestStockTransactions_UnmappedCodeIsUnknown(t *testing.T) {
	result, err := StockTransactions(json.RawMessage(stockFixture), nil)
	require.NoError(t, err)

	var unknown int
	for _, txn := range result.Transactions {
		if txn.Type == models.StockTxnUnknown {
			unknown++
		}
	}
	assert.Equal(t, 1, unknown, "type code 9 must surface as UNKNOWN, not BUY")
}

func TestStockTransactions_StableTieOrder(t *testing.T) {
	payload := `{
		"stockTransactions": [
			{"isin": "INE040A01034", "txns": [[1, "2025-01-10", 1, 100]]},
			{"isin": "INE002A01018", "txns": [[1, "2025-01-10", 2, 100]]}
		]
	}`
	result, err := StockTransactions(json.RawMessage(payload), nil)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)

	// equal trade dates keep payload order
	assert.Equal(t, "INE040A01034", result.Transactions[0].ISIN)
	assert.Equal(t, "INE002A01018", result.Transactions[1].ISIN)
}

func TestStockTransactions_MalformedRow(t *testing.T) {
	payload := `{"stockTransactions":[{"isin":"INE040A01034","txns":[["BUY","2025-01-10",1]]}]}`
	_, err := StockTransactions(json.RawMessage(payload), nil)
	assert.Error(t, err)
}
