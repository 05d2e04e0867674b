package ledger

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/session"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/ui/views"
)

type listRunner struct {
	svc *service.Service
}

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "Show every entry in a register",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := session.Resolve(cmd, svc)
			if err != nil {
				return err
			}

			lt, err := resolveLedgerType(cmd)
			if err != nil {
				return err
			}

			runner := &listRunner{svc: svc}
			return runner.Run(actor, lt)
		},
	}
}

func (r *listRunner) Run(actor *store.User, lt model.LedgerType) error {
	entries, err := r.svc.Ledger.Entries(actor, lt)
	if err != nil {
		return fmt.Errorf("failed to list register entries: %w", err)
	}

	var items []views.LedgerListItem
	for _, e := range entries {
		item := views.LedgerListItem{
			ID:          e.ID,
			Date:        e.Date,
			Category:    e.Category,
			Actor:       e.ActorName,
			Description: e.Description,
			Note:        e.Note,
		}
		if e.TransactionType == model.TxnIncome {
			item.Income = e.Amount.StringFixed(2)
		} else {
			item.Expense = e.Amount.StringFixed(2)
		}
		items = append(items, item)
	}

	return views.NewLedgerListView().Render(lt.Title(), items)
}
