package models

import "github.com/shopspring/decimal"

// CreditScore is one bureau's score for the user.
type CreditScore struct {
	Bureau     string `json:"bureau"`
	Score      int    `json:"score" validate:"gte=0,lte=900"`
	ReportedAt string `json:"reportedAt,omitempty"`
}

// ScorePoint is one month of score history.
type ScorePoint struct {
	Month string `json:"month"`
	Score int    `json:"score"`
}

// ScoreHistory is explicitly tri-state: the aggregator does not provide
// history for this flow yet, so Available stays false and Points empty
// instead of being filled with fabricated values.
type ScoreHistory struct {
	Available bool         `json:"available"`
	Points    []ScorePoint `json:"points,omitempty"`
}

// CreditAccount is one tradeline from the bureau report, with numeric
// type/status codes already translated to labels.
type CreditAccount struct {
	Lender         string          `json:"lender"`
	AccountType    string          `json:"accountType" validate:"required"`
	Status         string          `json:"status" validate:"required"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AmountOverdue  decimal.Decimal `json:"amountOverdue"`
	OpenedAt       string          `json:"openedAt,omitempty"`
	LastReportedAt string          `json:"lastReportedAt,omitempty"`
}

// CreditReport is the normalized fetch_credit_report payload. Accounts are
// partitioned by whether their mapped status is "Active".
type CreditReport struct {
	Scores         []CreditScore   `json:"scores" validate:"dive"`
	ScoreHistory   ScoreHistory    `json:"scoreHistory"`
	OpenAccounts   []CreditAccount `json:"openAccounts" validate:"dive"`
	ClosedAccounts []CreditAccount `json:"closedAccounts" validate:"dive"`
	TotalBalance   decimal.Decimal `json:"totalBalance"`
	TotalOverdue   decimal.Decimal `json:"totalOverdue"`
}
