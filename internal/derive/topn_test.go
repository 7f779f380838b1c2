package derive

import (
	"testing"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holding(isin string, value int64) models.Holding {
	return models.Holding{ISIN: isin, CurrentValue: decimal.New(value, 0)}
}

func TestTopByCurrentValue(t *testing.T) {
	holdings := []models.Holding{
		holding("A", 300),
		holding("B", 900),
		holding("C", 100),
		holding("D", 700),
		holding("E", 500),
		holding("F", 800),
		holding("G", 200),
	}

	top := TopByCurrentValue(holdings, TopHoldingsCount)
	require.Len(t, top, 5)

	want := []string{"B", "F", "D", "E", "A"}
	for i, isin := range want {
		assert.Equal(t, isin, top[i].ISIN)
	}
}

func TestTopByCurrentValue_TiesKeepInputOrder(t *testing.T) {
	holdings := []models.Holding{
		holding("first", 500),
		holding("second", 500),
		holding("third", 600),
	}

	top := TopByCurrentValue(holdings, 3)
	assert.Equal(t, "third", top[0].ISIN)
	assert.Equal(t, "first", top[1].ISIN)
	assert.Equal(t, "second", top[2].ISIN)
}

func TestTopByCurrentValue_FewerThanN(t *testing.T) {
	holdings := []models.Holding{holding("A", 1), holding("B", 2)}
	top := TopByCurrentValue(holdings, TopHoldingsCount)
	assert.Len(t, top, 2)
}

func TestTopByCurrentValue_InputUntouched(t *testing.T) {
	holdings := []models.Holding{holding("A", 1), holding("B", 2)}
	_ = TopByCurrentValue(holdings, 1)
	assert.Equal(t, "A", holdings[0].ISIN)
	assert.Equal(t, "B", holdings[1].ISIN)
}
