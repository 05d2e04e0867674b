package prompts

import (
	"time"

	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/validation"
)

// PromptRequestDate prompts for the expense date, defaulting to today.
func PromptRequestDate() (string, error) {
	defaultDate := time.Now().Format(constants.DateFormat)
	return PromptDate(
		"Expense date (YYYY-MM-DD):",
		defaultDate,
		"Press Enter for today",
		func(s string) error { return validation.ValidateDate(s) },
	)
}

// PromptDescription limits the text to the stored column size.
func PromptDescription() (string, error) {
	return PromptInput("Description:", "", func(s string) error {
		return validation.ValidateDescription(s)
	})
}

// PromptAccountType selects which fund the request draws from.
func PromptAccountType() (string, error) {
	var options []string
	for _, at := range model.AccountTypes() {
		options = append(options, string(at))
	}

	return PromptSelect("Fund to draw from:", options, string(model.AccountSubsidy))
}

func PromptRequestAmount() (string, error) {
	return PromptAmount("Amount:", "e.g. 500 or 499.50", validation.ValidateAmount)
}
