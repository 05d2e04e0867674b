package ledger

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/session"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/ui/views"
)

type historyRunner struct {
	svc *service.Service
}

func NewHistoryCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "history <entry-id>",
		Aliases: []string{"h", "log"},
		Short:   "Show the edit history of a register entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := session.Resolve(cmd, svc)
			if err != nil {
				return err
			}

			entryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id: %s", args[0])
			}

			runner := &historyRunner{svc: svc}
			return runner.Run(actor, entryID)
		},
	}
}

func (r *historyRunner) Run(actor *store.User, entryID int64) error {
	history, err := r.svc.Ledger.History(actor, entryID)
	if err != nil {
		return err
	}

	var items []views.HistoryListItem
	for _, h := range history {
		items = append(items, views.HistoryListItem{
			EditedAt: time.Unix(h.EditedAt, 0).Format("2006-01-02 15:04"),
			EditedBy: h.EditedByName,
			Field:    h.FieldName,
			OldValue: h.OldValue,
			NewValue: h.NewValue,
		})
	}

	return views.NewHistoryListView().Render(entryID, items)
}
