package sandbox

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator produces deterministic fake aggregator payloads so the dashboard
// and its tests work without upstream credentials. Payload shapes match the
// real wire contract, positional rows included.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// securities the sandbox portfolio trades in.
var sandboxSecurities = []struct {
	ISIN string
	Name string
}{
	{"INE040A01034", "HDFC Bank Limited"},
	{"INE002A01018", "Reliance Industries Limited"},
	{"INE467B01029", "Tata Consultancy Services Limited"},
	{"INE009A01021", "Infosys Limited"},
	{"INE062A01020", "State Bank of India"},
	{"INE397D01024", "Bharti Airtel Limited"},
	{"INE030A01027", "Hindustan Unilever Limited"},
}

var sandboxSchemes = []string{
	"Parag Parikh Flexi Cap Fund Direct Growth",
	"UTI Nifty 50 Index Fund Direct Growth",
	"HDFC Liquid Fund Direct Growth",
	"Axis Small Cap Fund Direct Growth",
	"SBI Gold Fund Direct Growth",
}

var sandboxBanks = []string{"HDFC Bank", "ICICI Bank", "Axis Bank"}

// NewGenerator seeds a deterministic faker.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
}

// BankTransactionsPayload builds a fetch_bank_transactions payload of
// positional rows: [amount, narration, timestamp, typeCode, mode, balance].
func (g *Generator) BankTransactionsPayload() map[string]any {
	accounts := make([]map[string]any, 0, len(sandboxBanks))
	for _, bank := range sandboxBanks {
		balance := float64(g.faker.Number(50_000, 400_000))
		txns := make([][]any, 0, 12)
		for i := 0; i < 12; i++ {
			amount := float64(g.faker.Number(500, 60_000))
			typeCode := 2
			narration := fmt.Sprintf("UPI/%s/%s", g.faker.Company(), g.faker.Word())
			if i%4 == 0 {
				typeCode = 1
				narration = fmt.Sprintf("NEFT SALARY %s", g.faker.Company())
			}
			if typeCode == 1 {
				balance += amount
			} else {
				balance -= amount
			}
			txnTime := g.now.AddDate(0, 0, -i*3)
			txns = append(txns, []any{
				fmt.Sprintf("%.2f", amount),
				narration,
				txnTime.Format(time.RFC3339),
				typeCode,
				g.faker.RandomString([]string{"UPI", "NEFT", "IMPS", "ATM"}),
				fmt.Sprintf("%.2f", balance),
			})
		}
		accounts = append(accounts, map[string]any{
			"bank": bank,
			"txns": txns,
		})
	}
	return map[string]any{"bankTransactions": accounts}
}

// StockTransactionsPayload builds a fetch_stock_transactions payload of
// positional rows: [typeCode, tradeDate, quantity, price].
func (g *Generator) StockTransactionsPayload() map[string]any {
	securities := make([]map[string]any, 0, len(sandboxSecurities))
	for idx, security := range sandboxSecurities {
		txns := make([][]any, 0, 4)
		for i := 0; i < 3+idx%2; i++ {
			typeCode := 1
			if i == 2 {
				typeCode = 2
			}
			price := float64(g.faker.Number(200, 3_500))
			txns = append(txns, []any{
				typeCode,
				g.now.AddDate(0, -i*2, -idx).Format("2006-01-02"),
				g.faker.Number(2, 40),
				price,
			})
		}
		securities = append(securities, map[string]any{
			"isin": security.ISIN,
			"txns": txns,
		})
	}
	return map[string]any{"stockTransactions": securities}
}

// MfTransactionsPayload builds a fetch_mf_transactions payload.
func (g *Generator) MfTransactionsPayload() map[string]any {
	txns := make([]map[string]any, 0, len(sandboxSchemes)*3)
	for idx, scheme := range sandboxSchemes {
		folio := fmt.Sprintf("%d/%d", 10_000+idx, g.faker.Number(10, 99))
		for i := 0; i < 3; i++ {
			nav := float64(g.faker.Number(20, 90))
			units := float64(g.faker.Number(50, 400))
			txns = append(txns, map[string]any{
				"schemeName":        scheme,
				"folioNumber":       folio,
				"transactionDate":   g.now.AddDate(0, -i, -idx).Format("2006-01-02"),
				"orderType":         "BUY",
				"transactionAmount": nav * units,
				"transactionUnits":  units,
				"purchasePrice":     nav,
			})
		}
	}
	return map[string]any{"mfTransactions": txns}
}

// NetWorthPayload builds a fetch_net_worth payload.
func (g *Generator) NetWorthPayload() map[string]any {
	mfValue := g.faker.Number(500_000, 1_500_000)
	equityValue := g.faker.Number(300_000, 900_000)
	epfValue := g.faker.Number(200_000, 700_000)
	savings := g.faker.Number(100_000, 400_000)
	loan := g.faker.Number(50_000, 300_000)
	total := mfValue + equityValue + epfValue + savings - loan

	money := func(units int) map[string]any {
		return map[string]any{"currencyCode": "INR", "units": fmt.Sprintf("%d", units)}
	}

	holdings := make([]map[string]any, 0, 3)
	for _, security := range sandboxSecurities[:3] {
		holdings = append(holdings, map[string]any{
			"isin":            security.ISIN,
			"issuerName":      security.Name,
			"units":           g.faker.Number(5, 60),
			"lastTradedPrice": money(g.faker.Number(300, 3_000)),
		})
	}

	return map[string]any{
		"netWorthResponse": map[string]any{
			"assetValues": []map[string]any{
				{"netWorthAttribute": "ASSET_TYPE_MUTUAL_FUND", "value": money(mfValue)},
				{"netWorthAttribute": "ASSET_TYPE_INDIAN_SECURITIES", "value": money(equityValue)},
				{"netWorthAttribute": "ASSET_TYPE_EPF", "value": money(epfValue)},
				{"netWorthAttribute": "ASSET_TYPE_SAVINGS_ACCOUNTS", "value": money(savings)},
			},
			"liabilityValues": []map[string]any{
				{"netWorthAttribute": "LIABILITY_TYPE_LOAN", "value": money(loan)},
			},
			"totalNetWorthValue": money(total),
		},
		"accountDetailsBulkResponse": map[string]any{
			"accountDetailsMap": map[string]any{
				"acc-savings-1": map[string]any{
					"accountDetails": map[string]any{
						"maskedAccountNumber": "XXXXXX4321",
						"accInstrumentType":   "ACC_INSTRUMENT_TYPE_DEPOSIT",
						"fipMeta":             map[string]any{"displayName": "HDFC Bank"},
					},
					"depositSummary": map[string]any{"currentBalance": money(savings)},
				},
				"acc-broker-1": map[string]any{
					"accountDetails": map[string]any{
						"maskedAccountNumber": "XXXXXX9876",
						"accInstrumentType":   "ACC_INSTRUMENT_TYPE_EQUITIES",
						"fipMeta":             map[string]any{"displayName": "Zerodha"},
					},
					"equitySummary": map[string]any{
						"currentValue": money(equityValue),
						"holdingsInfo": holdings,
					},
				},
			},
		},
	}
}

// EpfDetailsPayload builds a fetch_epf_details payload.
func (g *Generator) EpfDetailsPayload() map[string]any {
	share := func(balance int) map[string]any {
		return map[string]any{"balance": balance}
	}
	estDetails := make([]map[string]any, 0, 2)
	for i := 0; i < 2; i++ {
		employee := g.faker.Number(80_000, 250_000)
		employer := g.faker.Number(60_000, 200_000)
		estDetails = append(estDetails, map[string]any{
			"est_name":  g.faker.Company(),
			"member_id": fmt.Sprintf("MH/%d/%d", g.faker.Number(10_000, 99_999), g.faker.Number(100, 999)),
			"pf_balance": map[string]any{
				"net_balance":    employee + employer,
				"employee_share": share(employee),
				"employer_share": share(employer),
			},
		})
	}
	return map[string]any{
		"uanAccounts": []map[string]any{
			{
				"rawDetails": map[string]any{
					"uan":         fmt.Sprintf("%d", g.faker.Number(100_000_000_000, 999_999_999_999)),
					"name":        g.faker.Name(),
					"dob":         "1992-04-18",
					"est_details": estDetails,
				},
			},
		},
	}
}

// CreditReportPayload builds a fetch_credit_report payload in the bureau's
// nested shape, including a settled and a closed tradeline.
func (g *Generator) CreditReportPayload() map[string]any {
	details := []map[string]any{
		{
			"subscriberName": "HDFC Bank",
			"accountType":    "10",
			"accountStatus":  "11",
			"currentBalance": fmt.Sprintf("%d", g.faker.Number(5_000, 80_000)),
			"amountPastDue":  "0",
			"openDate":       "2019-03-12",
			"dateReported":   g.now.Format("2006-01-02"),
		},
		{
			"subscriberName": "Bajaj Finance",
			"accountType":    "06",
			"accountStatus":  "71",
			"currentBalance": "0",
			"amountPastDue":  "0",
			"openDate":       "2020-08-01",
			"dateReported":   g.now.Format("2006-01-02"),
		},
		{
			"subscriberName": "ICICI Bank",
			"accountType":    "02",
			"accountStatus":  "83",
			"currentBalance": "0",
			"amountPastDue":  "0",
			"openDate":       "2016-01-20",
			"dateReported":   g.now.Format("2006-01-02"),
		},
	}

	outstanding := 0
	for range details {
		outstanding += g.faker.Number(0, 40_000)
	}

	return map[string]any{
		"creditReports": []map[string]any{
			{
				"creditReportData": map[string]any{
					"score": map[string]any{
						"bureauScore": fmt.Sprintf("%d", g.faker.Number(680, 820)),
					},
					"creditAccount": map[string]any{
						"creditAccountSummary": map[string]any{
							"totalOutstandingBalance": map[string]any{
								"outstandingBalanceAll": fmt.Sprintf("%d", outstanding),
							},
						},
						"creditAccountDetails": details,
					},
				},
			},
		},
	}
}
