package validation

import (
	"testing"

	"github.com/somchaipk/schoolfin/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"integer", "500", "500", false},
		{"decimal", "120.50", "120.5", false},
		{"surrounding spaces", "  42  ", "42", false},
		{"empty", "", "", true},
		{"zero", "0", "", true},
		{"negative", "-10", "", true},
		{"words", "ten baht", "", true},
		{"thousands separator", "1,500", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseAmount(%q) = %s, expected error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) returned error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %s, expected %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "2024-03-05", false},
		{"surrounding spaces", " 2024-03-05 ", false},
		{"slash layout", "05/03/2024", true},
		{"month out of range", "2024-13-01", true},
		{"day out of range", "2024-02-30", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name     string
		lt       model.LedgerType
		category string
		wantErr  bool
	}{
		{"subsidy known", model.LedgerSubsidy, "Instruction", false},
		{"subsidy unknown", model.LedgerSubsidy, "Furniture", true},
		{"income known", model.LedgerIncome, "Donations", false},
		{"income unknown", model.LedgerIncome, "Instruction", true},
		{"lunch free text", model.LedgerLunch, "Rice and vegetables", false},
		{"empty", model.LedgerLunch, "", true},
		{"whitespace only", model.LedgerSubsidy, "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(tt.lt, tt.category)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategory(%s, %q) error = %v, wantErr %v", tt.lt, tt.category, err, tt.wantErr)
			}
		})
	}
}
