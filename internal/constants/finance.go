package constants

import "github.com/somchaipk/schoolfin/internal/model"

const (
	// Date Layouts
	DateFormat       = "2006-01-02"
	ReportDateFormat = "02/01/2006"

	// Field limits
	MaxNameLen        = 150
	MaxDescriptionLen = 500
)

// Category label given to ledger entries posted automatically from an
// approved expense request.
const CategoryExpenditure = "Expenditure"

// Category vocabularies per register. The lunch register has no fixed
// list; its categories are free text.
var LedgerCategories = map[model.LedgerType][]string{
	model.LedgerSubsidy: {
		"Instruction",
		"Learner Development Activities",
		"Uniforms",
		"Learning Materials",
		"Textbooks",
		"Other",
	},
	model.LedgerIncome: {
		"Donations",
		"Scholarships",
		"Teacher Wages",
		"Other",
	},
}
