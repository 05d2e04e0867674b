package service

import (
	"fmt"
	"time"

	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/store"
)

// ApprovalService drives the two-signature workflow. A request needs one
// finance signature and one director signature, in either order; the call
// that fills the second slot flips the request to APPROVED and posts it
// into the matching register.
type ApprovalService struct {
	repo store.Repository
}

func NewApprovalService(repo store.Repository) *ApprovalService {
	return &ApprovalService{repo: repo}
}

type ApprovalResult struct {
	// Request is the state after this call.
	Request *store.ExpenseRequest
	// Changed is false when the actor's slot was already filled and the
	// call was an idempotent no-op.
	Changed bool
	// Completed is true only for the single call that filled the second
	// slot and flipped the status.
	Completed bool

	LedgerEntryID int64
	LedgerType    model.LedgerType
	// PostingErr is set when the approval committed but the automatic
	// ledger entry failed. The approval is durable regardless.
	PostingErr *PostingError
}

// Approve records the actor's signature on a request. The slot fill, the
// both-filled check and the status flip run in one store transaction, so
// concurrent calls on the same request cannot lose an update or fire the
// completion edge twice.
func (as *ApprovalService) Approve(actor *store.User, requestID int64) (*ApprovalResult, error) {
	if err := Authorize(OpApproveRequest, actor.Role); err != nil {
		return nil, err
	}

	res := &ApprovalResult{}

	err := as.repo.ExecTx(func(r store.Repository) error {
		req, err := r.GetExpenseRequestByID(requestID)
		if err != nil {
			return err
		}

		now := time.Now().Unix()

		switch actor.Role {
		case model.RoleFinance:
			if req.FinanceApprovedAt == nil {
				if err := r.FillFinanceApproval(req.ID, actor.ID, now); err != nil {
					return err
				}
				req.FinanceApproverID = &actor.ID
				req.FinanceApprovedAt = &now
				res.Changed = true
			}
		case model.RoleDirector:
			if req.DirectorApprovedAt == nil {
				if err := r.FillDirectorApproval(req.ID, actor.ID, now); err != nil {
					return err
				}
				req.DirectorApproverID = &actor.ID
				req.DirectorApprovedAt = &now
				res.Changed = true
			}
		default:
			return &AuthorizationError{Op: OpApproveRequest, Role: actor.Role}
		}

		if res.Changed && req.BothApproved() && req.Status != model.StatusApproved {
			if err := r.MarkRequestApproved(req.ID); err != nil {
				return err
			}
			req.Status = model.StatusApproved
			res.Completed = true
		}

		res.Request = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Posting runs after the approval transaction commits: a posting
	// failure must not roll back the recorded signatures.
	if res.Completed {
		entryID, lt, err := as.postToLedger(res.Request, actor)
		if err != nil {
			res.PostingErr = &PostingError{RequestID: requestID, Err: err}
		} else {
			res.LedgerEntryID = entryID
			res.LedgerType = lt
		}
	}

	return res, nil
}

// postToLedger creates the register entry for a completed request. The
// UNIQUE constraint on the request reference guarantees at most one entry
// per request; hitting it here is a programming error, not a handled case.
func (as *ApprovalService) postToLedger(req *store.ExpenseRequest, completer *store.User) (int64, model.LedgerType, error) {
	lt := model.LedgerTypeForAccount(req.AccountType)

	entry := store.LedgerEntry{
		Date:             req.Date,
		Amount:           req.Amount,
		Description:      fmt.Sprintf("Approved from request #%d", req.ID),
		LedgerType:       lt,
		Category:         constants.CategoryExpenditure,
		TransactionType:  model.TxnExpense,
		ExpenseRequestID: &req.ID,
		CreatedByID:      &completer.ID,
		CreatedAt:        time.Now().Unix(),
	}

	id, err := as.repo.CreateLedgerEntry(entry)
	if err != nil {
		return 0, lt, err
	}
	return id, lt, nil
}
