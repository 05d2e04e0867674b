package views

import (
	"github.com/pterm/pterm"
)

type HistoryListItem struct {
	EditedAt string
	EditedBy string
	Field    string
	OldValue string
	NewValue string
}

type HistoryListView struct{}

func NewHistoryListView() *HistoryListView {
	return &HistoryListView{}
}

func (v *HistoryListView) Render(entryID int64, items []HistoryListItem) error {
	pterm.DefaultSection.Printf("Edit history for ledger entry #%d", entryID)

	if len(items) == 0 {
		pterm.Info.Println("This entry has never been edited")
		return nil
	}

	tableData := pterm.TableData{
		{"Edited At", "Edited By", "Field", "Old Value", "New Value"},
	}

	for _, item := range items {
		tableData = append(tableData, []string{
			item.EditedAt,
			item.EditedBy,
			item.Field,
			item.OldValue,
			item.NewValue,
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
