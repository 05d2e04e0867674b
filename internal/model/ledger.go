package model

import "fmt"

// LedgerType identifies one of the three fund registers.
type LedgerType string

const (
	LedgerSubsidy LedgerType = "Subsidy"
	LedgerIncome  LedgerType = "Income"
	LedgerLunch   LedgerType = "Lunch"
)

func ParseLedgerType(s string) (LedgerType, error) {
	switch LedgerType(s) {
	case LedgerSubsidy, LedgerIncome, LedgerLunch:
		return LedgerType(s), nil
	default:
		return "", fmt.Errorf("unknown ledger type: %s", s)
	}
}

func LedgerTypes() []LedgerType {
	return []LedgerType{LedgerSubsidy, LedgerIncome, LedgerLunch}
}

// Title is the register heading used by views and exported reports.
func (lt LedgerType) Title() string {
	switch lt {
	case LedgerSubsidy:
		return "Subsidy Fund Register"
	case LedgerIncome:
		return "School Income Register"
	case LedgerLunch:
		return "Lunch Fund Register"
	default:
		return string(lt)
	}
}

// TransactionType is the direction of a ledger entry.
type TransactionType string

const (
	TxnIncome  TransactionType = "Income"
	TxnExpense TransactionType = "Expense"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TxnIncome, TxnExpense:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %s", s)
	}
}

// LedgerTypeForAccount maps an expense request's fund category to the
// register it posts into. Unmapped values fall back to the Subsidy
// register rather than failing the posting.
func LedgerTypeForAccount(at AccountType) LedgerType {
	switch at {
	case AccountSubsidy:
		return LedgerSubsidy
	case AccountIncome:
		return LedgerIncome
	case AccountLunch:
		return LedgerLunch
	default:
		return LedgerSubsidy
	}
}
