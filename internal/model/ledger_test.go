package model

import "testing"

func TestLedgerTypeForAccount(t *testing.T) {
	tests := []struct {
		name    string
		account AccountType
		want    LedgerType
	}{
		{"subsidy", AccountSubsidy, LedgerSubsidy},
		{"income", AccountIncome, LedgerIncome},
		{"lunch", AccountLunch, LedgerLunch},
		{"unmapped falls back to subsidy", AccountType("Travel"), LedgerSubsidy},
		{"empty falls back to subsidy", AccountType(""), LedgerSubsidy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LedgerTypeForAccount(tt.account); got != tt.want {
				t.Errorf("LedgerTypeForAccount(%q) = %s, expected %s", tt.account, got, tt.want)
			}
		})
	}
}

func TestParseLedgerType(t *testing.T) {
	for _, lt := range LedgerTypes() {
		if _, err := ParseLedgerType(string(lt)); err != nil {
			t.Errorf("ParseLedgerType(%q) returned error: %v", lt, err)
		}
	}
	if _, err := ParseLedgerType("Petty Cash"); err == nil {
		t.Error("ParseLedgerType accepted an unknown register")
	}
}
