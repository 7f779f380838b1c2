package models

import "github.com/shopspring/decimal"

// EpfContribution is one month's provident-fund contribution.
type EpfContribution struct {
	Month          string          `json:"month"`
	EmployeeAmount decimal.Decimal `json:"employeeAmount"`
	EmployerAmount decimal.Decimal `json:"employerAmount"`
	PensionAmount  decimal.Decimal `json:"pensionAmount"`
}

// EpfAccount is one employer's EPF account for the member.
type EpfAccount struct {
	MemberID          string            `json:"memberId" validate:"required"`
	EstablishmentName string            `json:"establishmentName" validate:"required"`
	TotalBalance      decimal.Decimal   `json:"totalBalance"`
	EmployeeShare     decimal.Decimal   `json:"employeeShare"`
	EmployerShare     decimal.Decimal   `json:"employerShare"`
	Contributions     []EpfContribution `json:"contributions,omitempty"`
}

// EpfProfile is the normalized fetch_epf_details payload: the member's
// identity and their per-establishment accounts.
type EpfProfile struct {
	UAN         string       `json:"uan" validate:"required"`
	Name        string       `json:"name"`
	DateOfBirth string       `json:"dateOfBirth,omitempty"`
	Accounts    []EpfAccount `json:"accounts" validate:"dive"`
}
