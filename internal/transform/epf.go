package transform

import (
	"encoding/json"
	"fmt"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// epfPayload mirrors the aggregator's fetch_epf_details shape: one entry per
// UAN with raw establishment details and split balances.
type epfPayload struct {
	UanAccounts []struct {
		RawDetails struct {
			UAN         string `json:"uan"`
			Name        string `json:"name"`
			DateOfBirth string `json:"dob"`
			EstDetails  []struct {
				EstName   string `json:"est_name"`
				MemberID  string `json:"member_id"`
				PfBalance struct {
					NetBalance    decimal.Decimal `json:"net_balance"`
					EmployeeShare epfShare        `json:"employee_share"`
					EmployerShare epfShare        `json:"employer_share"`
				} `json:"pf_balance"`
			} `json:"est_details"`
		} `json:"rawDetails"`
	} `json:"uanAccounts"`
}

type epfShare struct {
	Balance decimal.Decimal `json:"balance"`
}

// EpfDetails normalizes the fetch_epf_details payload. The aggregator may
// report multiple UANs; only the first is surfaced, the dashboard is
// single-member.
func EpfDetails(payload json.RawMessage) (*models.EpfProfile, error) {
	var upstream epfPayload
	if err := json.Unmarshal(payload, &upstream); err != nil {
		return nil, fmt.Errorf("epf details: %w", err)
	}
	if len(upstream.UanAccounts) == 0 {
		return nil, fmt.Errorf("epf details: payload contains no UAN accounts")
	}

	raw := upstream.UanAccounts[0].RawDetails
	profile := &models.EpfProfile{
		UAN:         raw.UAN,
		Name:        raw.Name,
		DateOfBirth: raw.DateOfBirth,
		Accounts:    make([]models.EpfAccount, 0, len(raw.EstDetails)),
	}

	for _, est := range raw.EstDetails {
		profile.Accounts = append(profile.Accounts, models.EpfAccount{
			MemberID:          est.MemberID,
			EstablishmentName: est.EstName,
			TotalBalance:      est.PfBalance.NetBalance,
			EmployeeShare:     est.PfBalance.EmployeeShare.Balance,
			EmployerShare:     est.PfBalance.EmployerShare.Balance,
		})
	}

	return profile, nil
}
