package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/somchaipk/schoolfin/internal/ui"
)

type LedgerListItem struct {
	ID          int64
	Date        string
	Category    string
	Actor       string
	Description string
	Income      string
	Expense     string
	Note        string
}

type LedgerListView struct{}

func NewLedgerListView() *LedgerListView {
	return &LedgerListView{}
}

func (v *LedgerListView) Render(title string, items []LedgerListItem) error {
	ui.PrintL1Title("%s", title)

	if len(items) == 0 {
		pterm.Warning.Println("No entries in this register")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Category", "Actor", "Description", "Income", "Expense", "Note"},
	}

	for _, item := range items {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.ID),
			item.Date,
			item.Category,
			item.Actor,
			item.Description,
			pterm.Green(item.Income),
			pterm.Red(item.Expense),
			item.Note,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d entries\n", len(items))
	return nil
}
