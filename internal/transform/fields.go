package transform

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// defaultCurrency applies to aggregator amounts, which arrive without a
// currency code on positional rows.
const defaultCurrency = "INR"

// The aggregator encodes transactions as positional arrays. Each domain's
// column layout is declared once here so index meaning lives in one place
// instead of at every call site.

// bankTxnColumns is the layout of one fetch_bank_transactions row:
// [amount, narration, timestampISO, typeCode, mode, runningBalance]
var bankTxnColumns = struct {
	Amount, Narration, Timestamp, Type, Mode, Balance int
}{0, 1, 2, 3, 4, 5}

// stockTxnColumns is the layout of one fetch_stock_transactions row:
// [typeCode, tradeDate, quantity, price?]; price is optional.
var stockTxnColumns = struct {
	Type, TradeDate, Quantity, Price int
}{0, 1, 2, 3}

// row is one positional upstream record, fields kept raw because the
// aggregator mixes numbers and strings freely.
type row []json.RawMessage

func (r row) has(idx int) bool {
	return idx < len(r) && len(r[idx]) > 0 && string(r[idx]) != "null"
}

// decimalAt parses a numeric column that may arrive as a JSON number or a
// quoted decimal string.
func (r row) decimalAt(idx int) (decimal.Decimal, error) {
	if !r.has(idx) {
		return decimal.Zero, fmt.Errorf("column %d missing", idx)
	}
	var asString string
	if err := json.Unmarshal(r[idx], &asString); err == nil {
		d, err := decimal.NewFromString(asString)
		if err != nil {
			return decimal.Zero, fmt.Errorf("column %d: %w", idx, err)
		}
		return d, nil
	}
	var asNumber json.Number
	if err := json.Unmarshal(r[idx], &asNumber); err != nil {
		return decimal.Zero, fmt.Errorf("column %d: %w", idx, err)
	}
	d, err := decimal.NewFromString(asNumber.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("column %d: %w", idx, err)
	}
	return d, nil
}

func (r row) stringAt(idx int) (string, error) {
	if !r.has(idx) {
		return "", fmt.Errorf("column %d missing", idx)
	}
	var s string
	if err := json.Unmarshal(r[idx], &s); err != nil {
		return "", fmt.Errorf("column %d: %w", idx, err)
	}
	return s, nil
}

func (r row) intAt(idx int) (int, error) {
	if !r.has(idx) {
		return 0, fmt.Errorf("column %d missing", idx)
	}
	var n int
	if err := json.Unmarshal(r[idx], &n); err == nil {
		return n, nil
	}
	// some flows quote the type code
	var s string
	if err := json.Unmarshal(r[idx], &s); err != nil {
		return 0, fmt.Errorf("column %d: %w", idx, err)
	}
	var parsed int
	if _, err := fmt.Sscanf(s, "%d", &parsed); err != nil {
		return 0, fmt.Errorf("column %d: %w", idx, err)
	}
	return parsed, nil
}

// timeAt parses a timestamp column, accepting RFC 3339 or a bare date.
func (r row) timeAt(idx int) (time.Time, error) {
	s, err := r.stringAt(idx)
	if err != nil {
		return time.Time{}, err
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %d: %w", idx, err)
	}
	return t, nil
}
