package transform

import (
	"encoding/json"
	"fmt"
	"strconv"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// creditPayload mirrors the aggregator's Experian-style fetch_credit_report
// shape. Only the fields the dashboard consumes are decoded.
type creditPayload struct {
	CreditReports []struct {
		CreditReportData struct {
			Score struct {
				BureauScore string `json:"bureauScore"`
			} `json:"score"`
			CreditAccount struct {
				CreditAccountSummary struct {
					TotalOutstandingBalance struct {
						OutstandingBalanceAll string `json:"outstandingBalanceAll"`
					} `json:"totalOutstandingBalance"`
				} `json:"creditAccountSummary"`
				CreditAccountDetails []struct {
					SubscriberName string `json:"subscriberName"`
					AccountType    string `json:"accountType"`
					AccountStatus  string `json:"accountStatus"`
					CurrentBalance string `json:"currentBalance"`
					AmountPastDue  string `json:"amountPastDue"`
					OpenDate       string `json:"openDate"`
					DateReported   string `json:"dateReported"`
				} `json:"creditAccountDetails"`
			} `json:"creditAccount"`
		} `json:"creditReportData"`
	} `json:"creditReports"`
}

// CreditReport normalizes the fetch_credit_report payload: bureau codes are
// translated through the lookup tables and accounts partition into open and
// closed by whether the mapped status is "Active". Score history and factor
// commentary are not present in this flow, so they are surfaced as explicit
// unavailable states rather than fabricated values.
func CreditReport(payload json.RawMessage) (*models.CreditReport, error) {
	var upstream creditPayload
	if err := json.Unmarshal(payload, &upstream); err != nil {
		return nil, fmt.Errorf("credit report: %w", err)
	}
	if len(upstream.CreditReports) == 0 {
		return nil, fmt.Errorf("credit report: payload contains no reports")
	}

	data := upstream.CreditReports[0].CreditReportData

	report := &models.CreditReport{
		ScoreHistory: models.ScoreHistory{Available: false},
	}

	if data.Score.BureauScore != "" {
		score, err := strconv.Atoi(data.Score.BureauScore)
		if err != nil {
			return nil, fmt.Errorf("credit report: bureau score %q: %w", data.Score.BureauScore, err)
		}
		report.Scores = append(report.Scores, models.CreditScore{
			Bureau: "Experian",
			Score:  score,
		})
	}

	totalOverdue := decimal.Zero
	for idx, account := range data.CreditAccount.CreditAccountDetails {
		balance, err := parseBureauAmount(account.CurrentBalance)
		if err != nil {
			return nil, fmt.Errorf("credit report: account %d balance: %w", idx, err)
		}
		overdue, err := parseBureauAmount(account.AmountPastDue)
		if err != nil {
			return nil, fmt.Errorf("credit report: account %d overdue: %w", idx, err)
		}

		status := GetAccountStatus(account.AccountStatus)
		normalized := models.CreditAccount{
			Lender:         account.SubscriberName,
			AccountType:    GetAccountType(account.AccountType),
			Status:         status,
			CurrentBalance: balance,
			AmountOverdue:  overdue,
			OpenedAt:       account.OpenDate,
			LastReportedAt: account.DateReported,
		}

		if status == "Active" {
			report.OpenAccounts = append(report.OpenAccounts, normalized)
		} else {
			report.ClosedAccounts = append(report.ClosedAccounts, normalized)
		}
		report.TotalBalance = report.TotalBalance.Add(balance)
		totalOverdue = totalOverdue.Add(overdue)
	}
	report.TotalOverdue = totalOverdue

	if summary := data.CreditAccount.CreditAccountSummary.TotalOutstandingBalance.OutstandingBalanceAll; summary != "" {
		if total, err := parseBureauAmount(summary); err == nil {
			report.TotalBalance = total
		}
	}

	return report, nil
}

// parseBureauAmount parses bureau money strings; absent values mean zero here
// because the bureau reports balances, not unknowns.
func parseBureauAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
