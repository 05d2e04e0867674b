package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
)

// ParseAmount parses a positive money amount.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", input)
	}

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}

	return amount, nil
}

// ValidateAmount adapts ParseAmount for interactive form validators.
func ValidateAmount(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}
	_, err := ParseAmount(input)
	return err
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	date, err := time.Parse(constants.DateFormat, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", input)
	}
	return date, nil
}

func ValidateDate(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("date must be a string")
	}
	_, err := ParseDate(input)
	return err
}

// ValidateCategory checks a category against the register's vocabulary.
// Registers without a fixed list (Lunch) accept any non-empty text.
func ValidateCategory(lt model.LedgerType, category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("category is required")
	}

	allowed, ok := constants.LedgerCategories[lt]
	if !ok {
		return nil
	}

	for _, c := range allowed {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("category '%s' is not valid for the %s register", category, lt)
}

func ValidateDescription(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("description must be a string")
	}
	if len(input) > constants.MaxDescriptionLen {
		return fmt.Errorf("description too long (max %d characters)", constants.MaxDescriptionLen)
	}
	return nil
}
