package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type RequestListItem struct {
	ID          int64
	Reference   string
	Date        string
	Requester   string
	Amount      string
	AccountType string
	Description string
	Status      string
	Signatures  string
}

// FormatSignatures shows which of the two approval slots are filled.
func FormatSignatures(finance, director bool) string {
	mark := func(done bool) string {
		if done {
			return "signed"
		}
		return "-"
	}
	return fmt.Sprintf("finance: %s, director: %s", mark(finance), mark(director))
}

type RequestListView struct {
	// ShowRequester is set for the approval queue, where requests from
	// many people are listed together.
	ShowRequester bool
}

func NewRequestListView(showRequester bool) *RequestListView {
	return &RequestListView{ShowRequester: showRequester}
}

func (v *RequestListView) Render(title string, items []RequestListItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No expense requests found")
		return nil
	}

	pterm.DefaultSection.Println(title)

	header := []string{"ID", "Date", "Amount", "Fund", "Description", "Signatures", "Status"}
	if v.ShowRequester {
		header = []string{"ID", "Date", "Requester", "Amount", "Fund", "Description", "Signatures", "Status"}
	}

	tableData := pterm.TableData{header}

	for _, item := range items {
		status := item.Status
		if status == "APPROVED" {
			status = pterm.Green(status)
		} else {
			status = pterm.Yellow(status)
		}

		row := []string{
			fmt.Sprintf("%d", item.ID),
			item.Date,
			item.Amount,
			item.AccountType,
			item.Description,
			item.Signatures,
			status,
		}
		if v.ShowRequester {
			row = []string{
				fmt.Sprintf("%d", item.ID),
				item.Date,
				item.Requester,
				item.Amount,
				item.AccountType,
				item.Description,
				item.Signatures,
				status,
			}
		}

		tableData = append(tableData, row)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d requests\n", len(items))
	return nil
}
