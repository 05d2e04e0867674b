package model

import "fmt"

// RequestStatus is derived state: APPROVED means both approval slots are
// filled, anything less is PENDING. Only the approval engine flips it.
type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusApproved RequestStatus = "APPROVED"
)

// AccountType is the fund category an expense request draws from.
type AccountType string

const (
	AccountSubsidy AccountType = "Subsidy"
	AccountIncome  AccountType = "Income"
	AccountLunch   AccountType = "Lunch"
)

func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountSubsidy, AccountIncome, AccountLunch:
		return AccountType(s), nil
	default:
		return "", fmt.Errorf("unknown account type: %s", s)
	}
}

func AccountTypes() []AccountType {
	return []AccountType{AccountSubsidy, AccountIncome, AccountLunch}
}
