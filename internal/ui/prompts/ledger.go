package prompts

import (
	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
)

// PromptCategory selects from the register's vocabulary, or falls back to
// free text for registers without one (Lunch).
func PromptCategory(lt model.LedgerType) (string, error) {
	categories, ok := constants.LedgerCategories[lt]
	if !ok {
		return PromptText("Category:", true)
	}

	return PromptSelect("Category:", categories, categories[0])
}

func PromptTransactionType() (string, error) {
	options := []string{string(model.TxnIncome), string(model.TxnExpense)}
	return PromptSelect("Transaction type:", options, string(model.TxnIncome))
}
