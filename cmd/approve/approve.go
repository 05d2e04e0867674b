package approve

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/session"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/ui/views"
)

type approveRunner struct {
	svc *service.Service
}

// NewApproveCmd lists the approval queue when called without arguments,
// and records a signature when given a request id.
func NewApproveCmd(svc *service.Service) *cobra.Command {
	cmd := newApproveRootCmd(svc)
	cmd.AddCommand(newListCmd(svc))
	return cmd
}

func newApproveRootCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "approve [request-id]",
		Aliases: []string{"a"},
		Short:   "Review and sign pending expense requests",
		Long: `Without arguments, list every request still waiting for a signature.
With a request id, record your signature on it. A request needs both
the finance officer's and the director's signature; the second one
finalizes it and posts the amount into the matching fund register.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := session.Resolve(cmd, svc)
			if err != nil {
				return err
			}

			runner := &approveRunner{svc: svc}

			if len(args) == 0 {
				return runner.RunList(actor)
			}

			requestID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid request id: %s", args[0])
			}
			return runner.RunApprove(actor, requestID)
		},
	}
}

func newListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List requests still waiting for a signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := session.Resolve(cmd, svc)
			if err != nil {
				return err
			}

			runner := &approveRunner{svc: svc}
			return runner.RunList(actor)
		},
	}
}

func (r *approveRunner) RunList(actor *store.User) error {
	pending, err := r.svc.Request.ListPending(actor)
	if err != nil {
		return fmt.Errorf("failed to list pending requests: %w", err)
	}

	var items []views.RequestListItem
	for _, req := range pending {
		items = append(items, views.RequestListItem{
			ID:          req.ID,
			Reference:   req.Reference,
			Date:        req.Date,
			Requester:   req.RequesterName,
			Amount:      req.Amount.StringFixed(2),
			AccountType: string(req.AccountType),
			Description: req.Description,
			Status:      string(req.Status),
			Signatures:  views.FormatSignatures(req.FinanceApprovedAt != nil, req.DirectorApprovedAt != nil),
		})
	}

	return views.NewRequestListView(true).Render("Requests awaiting approval", items)
}

func (r *approveRunner) RunApprove(actor *store.User, requestID int64) error {
	result, err := r.svc.Approval.Approve(actor, requestID)
	if err != nil {
		return err
	}

	if !result.Changed {
		pterm.Info.Printf("Request #%d already carries your signature, nothing to do\n", requestID)
		return nil
	}

	if !result.Completed {
		pterm.Success.Printf("Signature recorded on request #%d, waiting for the second signature\n", requestID)
		return nil
	}

	// Surfaced as a warning by the error handler; the approval stands.
	if result.PostingErr != nil {
		return result.PostingErr
	}

	pterm.Success.Printf("Request #%d approved and posted to the %s register (entry #%d)\n",
		requestID, result.LedgerType, result.LedgerEntryID)
	return nil
}
