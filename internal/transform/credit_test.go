package transform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAccountType(t *testing.T) {
	assert.Equal(t, "Credit Card", GetAccountType("10"))
	assert.Equal(t, "Personal Loan", GetAccountType("05"))
	// unmapped codes fall back rather than leak the numeric code
	assert.Equal(t, "Other", GetAccountType("999"))
	assert.Equal(t, "Other", GetAccountType(""))
}

func TestGetAccountStatus(t *testing.T) {
	assert.Equal(t, "Active", GetAccountStatus("11"))
	assert.Equal(t, "Settled", GetAccountStatus("71"))
	assert.Equal(t, "Closed", GetAccountStatus("83"))
	assert.Equal(t, "Unknown", GetAccountStatus("99"))
}

const creditFixture = `{
	"creditReports": [
		{
			"creditReportData": {
				"score": {"bureauScore": "765"},
				"creditAccount": {
					"creditAccountSummary": {
						"totalOutstandingBalance": {"outstandingBalanceAll": "61000"}
					},
					"creditAccountDetails": [
						{
							"subscriberName": "HDFC Bank",
							"accountType": "10",
							"accountStatus": "11",
							"currentBalance": "45000",
							"amountPastDue": "1200",
							"openDate": "2019-03-12",
							"dateReported": "2025-06-01"
						},
						{
							"subscriberName": "Bajaj Finance",
							"accountType": "06",
							"accountStatus": "71",
							"currentBalance": "0",
							"amountPastDue": "0",
							"openDate": "2020-08-01",
							"dateReported": "2025-06-01"
						},
						{
							"subscriberName": "ICICI Bank",
							"accountType": "02",
							"accountStatus": "83",
							"currentBalance": "16000",
							"amountPastDue": "0",
							"openDate": "2016-01-20",
							"dateReported": "2025-06-01"
						}
					]
				}
			}
		}
	]
}`

func TestCreditReport(t *testing.T) {
	report, err := CreditReport(json.RawMessage(creditFixture))
	require.NoError(t, err)

	require.Len(t, report.Scores, 1)
	assert.Equal(t, "Experian", report.Scores[0].Bureau)
	assert.Equal(t, 765, report.Scores[0].Score)

	// only the mapped-Active tradeline is open; settled and closed are not
	require.Len(t, report.OpenAccounts, 1)
	assert.Equal(t, "HDFC Bank", report.OpenAccounts[0].Lender)
	assert.Equal(t, "Credit Card", report.OpenAccounts[0].AccountType)

	require.Len(t, report.ClosedAccounts, 2)
	assert.Equal(t, "Settled", report.ClosedAccounts[0].Status)
	assert.Equal(t, "Closed", report.ClosedAccounts[1].Status)

	// summary total wins over the per-account sum when present
	assert.Equal(t, "61000", report.TotalBalance.String())
	assert.Equal(t, "1200", report.TotalOverdue.String())
}

func TestCreditReport_HistoryExplicitlyUnavailable(t *testing.T) {
	report, err := CreditReport(json.RawMessage(creditFixture))
	require.NoError(t, err)

	assert.False(t, report.ScoreHistory.Available)
	assert.Empty(t, report.ScoreHistory.Points)
}

func TestCreditReport_NoSummaryFallsBackToSum(t *testing.T) {
	payload := json.RawMessage(`{
		"creditReports": [
			{
				"creditReportData": {
					"score": {"bureauScore": "700"},
					"creditAccount": {
						"creditAccountDetails": [
							{"subscriberName": "A", "accountType": "10", "accountStatus": "11", "currentBalance": "100", "amountPastDue": "0"},
							{"subscriberName": "B", "accountType": "02", "accountStatus": "83", "currentBalance": "250", "amountPastDue": "0"}
						]
					}
				}
			}
		]
	}`)

	report, err := CreditReport(payload)
	require.NoError(t, err)
	assert.Equal(t, "350", report.TotalBalance.String())
}

func TestCreditReport_Malformed(t *testing.T) {
	cases := map[string]string{
		"no reports": `{"creditReports": []}`,
		"bad score": `{"creditReports":[{"creditReportData":{"score":{"bureauScore":"excellent"},
			"creditAccount":{"creditAccountDetails":[]}}}]}`,
		"bad balance": `{"creditReports":[{"creditReportData":{"score":{"bureauScore":"700"},
			"creditAccount":{"creditAccountDetails":[{"currentBalance":"??","amountPastDue":"0"}]}}}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := CreditReport(json.RawMessage(raw))
			assert.Error(t, err)
		})
	}
}
