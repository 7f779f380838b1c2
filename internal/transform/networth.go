package transform

import (
	"encoding/json"
	"fmt"
	"strings"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// netWorthPayload mirrors the aggregator's fetch_net_worth shape: class
// totals plus a per-account holdings map.
type netWorthPayload struct {
	NetWorthResponse struct {
		AssetValues []struct {
			NetWorthAttribute string             `json:"netWorthAttribute"`
			Value             models.MoneyAmount `json:"value"`
		} `json:"assetValues"`
		LiabilityValues []struct {
			NetWorthAttribute string             `json:"netWorthAttribute"`
			Value             models.MoneyAmount `json:"value"`
		} `json:"liabilityValues"`
		TotalNetWorthValue models.MoneyAmount `json:"totalNetWorthValue"`
	} `json:"netWorthResponse"`
	AccountDetailsBulkResponse struct {
		AccountDetailsMap map[string]accountEntry `json:"accountDetailsMap"`
	} `json:"accountDetailsBulkResponse"`
}

type accountEntry struct {
	AccountDetails struct {
		MaskedAccountNumber string `json:"maskedAccountNumber"`
		AccInstrumentType   string `json:"accInstrumentType"`
		FipMeta             struct {
			DisplayName string `json:"displayName"`
		} `json:"fipMeta"`
	} `json:"accountDetails"`
	DepositSummary *struct {
		CurrentBalance models.MoneyAmount `json:"currentBalance"`
	} `json:"depositSummary"`
	EquitySummary *holdingsSummary `json:"equitySummary"`
	EtfSummary    *holdingsSummary `json:"etfSummary"`
	ReitSummary   *holdingsSummary `json:"reitSummary"`
	InvitSummary  *holdingsSummary `json:"invitSummary"`
}

type holdingsSummary struct {
	CurrentValue models.MoneyAmount `json:"currentValue"`
	HoldingsInfo []struct {
		ISIN            string             `json:"isin"`
		IssuerName      string             `json:"issuerName"`
		Units           decimal.Decimal    `json:"units"`
		LastTradedPrice models.MoneyAmount `json:"lastTradedPrice"`
	} `json:"holdingsInfo"`
}

// NetWorth normalizes the fetch_net_worth payload into a snapshot.
func NetWorth(payload json.RawMessage) (*models.NetWorthSnapshot, error) {
	var upstream netWorthPayload
	if err := json.Unmarshal(payload, &upstream); err != nil {
		return nil, fmt.Errorf("net worth: %w", err)
	}

	snapshot := &models.NetWorthSnapshot{
		TotalNetWorth: upstream.NetWorthResponse.TotalNetWorthValue,
		Accounts:      make(map[string]models.AccountHoldings),
	}

	for _, asset := range upstream.NetWorthResponse.AssetValues {
		snapshot.Assets = append(snapshot.Assets, models.ClassValue{
			Class: classLabel(asset.NetWorthAttribute, "ASSET_TYPE_"),
			Value: asset.Value,
		})
	}
	for _, liability := range upstream.NetWorthResponse.LiabilityValues {
		snapshot.Liabilities = append(snapshot.Liabilities, models.ClassValue{
			Class: classLabel(liability.NetWorthAttribute, "LIABILITY_TYPE_"),
			Value: liability.Value,
		})
	}

	for accountID, entry := range upstream.AccountDetailsBulkResponse.AccountDetailsMap {
		holdings := models.AccountHoldings{
			MaskedAccountNumber: entry.AccountDetails.MaskedAccountNumber,
			Institution:         entry.AccountDetails.FipMeta.DisplayName,
			Kind:                classLabel(entry.AccountDetails.AccInstrumentType, "ACC_INSTRUMENT_TYPE_"),
		}

		if entry.DepositSummary != nil {
			holdings.Balance = entry.DepositSummary.CurrentBalance
		}
		for _, summary := range []*holdingsSummary{
			entry.EquitySummary, entry.EtfSummary, entry.ReitSummary, entry.InvitSummary,
		} {
			if summary == nil {
				continue
			}
			if summary.CurrentValue.Known() {
				holdings.Balance = summary.CurrentValue
			}
			for _, info := range summary.HoldingsInfo {
				holdings.Instruments = append(holdings.Instruments, models.InstrumentHolding{
					ISIN:            info.ISIN,
					Description:     info.IssuerName,
					Units:           info.Units,
					LastTradedPrice: info.LastTradedPrice,
				})
			}
		}

		snapshot.Accounts[accountID] = holdings
	}

	return snapshot, nil
}

// classLabel strips the aggregator's enum prefix from a class attribute.
func classLabel(attribute, prefix string) string {
	return strings.TrimPrefix(attribute, prefix)
}
