package views

import (
	"github.com/pterm/pterm"

	"github.com/somchaipk/schoolfin/internal/ui"
)

type SummaryItem struct {
	LedgerTitle  string
	Month        string
	MonthIncome  string
	MonthExpense string
	RangeStart   string
	RangeEnd     string
	Balance      string
}

type SummaryView struct{}

func NewSummaryView() *SummaryView {
	return &SummaryView{}
}

func (v *SummaryView) Render(item SummaryItem) error {
	ui.PrintL1Title("%s", item.LedgerTitle)
	ui.PrintL2Title("Balance period %s to %s", item.RangeStart, item.RangeEnd)

	tableData := pterm.TableData{
		{"Income this month (" + item.Month + ")", pterm.Green(item.MonthIncome)},
		{"Expense this month (" + item.Month + ")", pterm.Red(item.MonthExpense)},
		{"Net balance", item.Balance},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
