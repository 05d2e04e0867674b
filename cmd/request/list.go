package request

import (
	"fmt"

	"github.com/spf13/cobra"

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
		Aliases: []string{"ls", "l", "status"},
		Short:   "Show your submitted requests and their approval status",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := session.Resolve(cmd, svc)
			if err != nil {
				return err
			}

			runner := &listRunner{svc: svc}
			return runner.Run(actor)
		},
	}
}

func (r *listRunner) Run(actor *store.User) error {
	requests, err := r.svc.Request.ListByRequester(actor)
	if err != nil {
		return fmt.Errorf("failed to list requests: %w", err)
	}

	var items []views.RequestListItem
	for _, req := range requests {
		items = append(items, views.RequestListItem{
			ID:          req.ID,
			Reference:   req.Reference,
			Date:        req.Date,
			Amount:      req.Amount.StringFixed(2),
			AccountType: string(req.AccountType),
			Description: req.Description,
			Status:      string(req.Status),
			Signatures:  views.FormatSignatures(req.FinanceApprovedAt != nil, req.DirectorApprovedAt != nil),
		})
	}

	title := fmt.Sprintf("Expense requests submitted by %s", actor.Name)
	return views.NewRequestListView(false).Render(title, items)
}
