package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/store"
)

// checkSlotsMatchStatus asserts the core workflow invariant: a request is
// APPROVED exactly when both signature slots are filled.
func checkSlotsMatchStatus(t *testing.T, req *store.ExpenseRequest) {
	t.Helper()

	if req.BothApproved() != (req.Status == model.StatusApproved) {
		t.Errorf("status %s does not match slots (finance=%v director=%v)",
			req.Status, req.FinanceApprovedAt != nil, req.DirectorApprovedAt != nil)
	}
}

func TestApproveEitherOrderPostsOnce(t *testing.T) {
	tests := []struct {
		name  string
		order []string
	}{
		{"finance then director", []string{"finance", "director"}},
		{"director then finance", []string{"director", "finance"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, s, users := newTestService(t)
			req := submitRequest(t, svc, users.Teacher, "500", "Subsidy")

			actors := map[string]*store.User{
				"finance":  users.Finance,
				"director": users.Director,
			}

			first, err := svc.Approval.Approve(actors[tt.order[0]], req.ID)
			if err != nil {
				t.Fatalf("first approval failed: %v", err)
			}
			if !first.Changed || first.Completed {
				t.Errorf("first approval: Changed=%v Completed=%v, want Changed without Completed",
					first.Changed, first.Completed)
			}
			if first.Request.Status != model.StatusPending {
				t.Errorf("status after one signature = %s, want %s", first.Request.Status, model.StatusPending)
			}
			checkSlotsMatchStatus(t, first.Request)

			// Nothing is posted while the second signature is missing.
			if _, err := s.GetLedgerEntryByRequest(req.ID); !errors.Is(err, store.ErrRecordNotFound) {
				t.Errorf("ledger lookup after one signature returned %v, want %v", err, store.ErrRecordNotFound)
			}

			second, err := svc.Approval.Approve(actors[tt.order[1]], req.ID)
			if err != nil {
				t.Fatalf("second approval failed: %v", err)
			}
			if !second.Changed || !second.Completed {
				t.Errorf("second approval: Changed=%v Completed=%v, want both true",
					second.Changed, second.Completed)
			}
			if second.PostingErr != nil {
				t.Fatalf("unexpected posting error: %v", second.PostingErr)
			}
			if second.LedgerType != model.LedgerSubsidy {
				t.Errorf("posted to %s register, want %s", second.LedgerType, model.LedgerSubsidy)
			}
			checkSlotsMatchStatus(t, second.Request)

			stored, err := s.GetExpenseRequestByID(req.ID)
			if err != nil {
				t.Fatalf("failed to reload request: %v", err)
			}
			if stored.Status != model.StatusApproved {
				t.Errorf("stored status = %s, want %s", stored.Status, model.StatusApproved)
			}

			entry, err := s.GetLedgerEntryByRequest(req.ID)
			if err != nil {
				t.Fatalf("no ledger entry posted for request: %v", err)
			}
			if !entry.Amount.Equal(decimal.NewFromInt(500)) {
				t.Errorf("posted amount = %s, want 500", entry.Amount)
			}
			if entry.TransactionType != model.TxnExpense {
				t.Errorf("posted transaction type = %s, want %s", entry.TransactionType, model.TxnExpense)
			}
			if entry.Category != constants.CategoryExpenditure {
				t.Errorf("posted category = %q, want %q", entry.Category, constants.CategoryExpenditure)
			}
			if entry.ExpenseRequestID == nil || *entry.ExpenseRequestID != req.ID {
				t.Errorf("posted entry not linked to request %d", req.ID)
			}
		})
	}
}

func TestApproveIdempotent(t *testing.T) {
	svc, s, users := newTestService(t)
	req := submitRequest(t, svc, users.Teacher, "120.50", "Income")

	first, err := svc.Approval.Approve(users.Finance, req.ID)
	if err != nil {
		t.Fatalf("first approval failed: %v", err)
	}
	if !first.Changed {
		t.Fatal("first approval should fill the finance slot")
	}
	firstAt := *first.Request.FinanceApprovedAt

	// Same signer again: no-op, same recorded timestamp.
	repeat, err := svc.Approval.Approve(users.Finance, req.ID)
	if err != nil {
		t.Fatalf("repeat approval failed: %v", err)
	}
	if repeat.Changed || repeat.Completed {
		t.Errorf("repeat approval: Changed=%v Completed=%v, want a no-op", repeat.Changed, repeat.Completed)
	}
	if repeat.Request.FinanceApprovedAt == nil || *repeat.Request.FinanceApprovedAt != firstAt {
		t.Error("repeat approval must not overwrite the recorded signature time")
	}

	if _, err := svc.Approval.Approve(users.Director, req.ID); err != nil {
		t.Fatalf("director approval failed: %v", err)
	}

	// Signing an already approved request changes nothing and never posts
	// a second register entry.
	after, err := svc.Approval.Approve(users.Finance, req.ID)
	if err != nil {
		t.Fatalf("post-completion approval failed: %v", err)
	}
	if after.Changed || after.Completed {
		t.Errorf("post-completion approval: Changed=%v Completed=%v, want a no-op", after.Changed, after.Completed)
	}

	entries, err := s.GetEntriesByType(model.LedgerIncome)
	if err != nil {
		t.Fatalf("failed to list register: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("register has %d entries for the request, want exactly 1", len(entries))
	}
}

func TestApproveTeacherUnauthorized(t *testing.T) {
	svc, s, users := newTestService(t)
	req := submitRequest(t, svc, users.Teacher, "75", "Lunch")

	_, err := svc.Approval.Approve(users.Teacher, req.ID)
	var authErr *AuthorizationError
	if !errors.As(err, &authErr) {
		t.Fatalf("teacher approval returned %v, want AuthorizationError", err)
	}

	stored, err := s.GetExpenseRequestByID(req.ID)
	if err != nil {
		t.Fatalf("failed to reload request: %v", err)
	}
	if stored.Status != model.StatusPending || stored.FinanceApprovedAt != nil || stored.DirectorApprovedAt != nil {
		t.Error("unauthorized approval attempt must leave the request untouched")
	}
}

func TestApproveUnknownRequest(t *testing.T) {
	svc, _, users := newTestService(t)

	_, err := svc.Approval.Approve(users.Finance, 9999)
	if !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("approving unknown request returned %v, want %v", err, store.ErrRecordNotFound)
	}
}

func TestApproveConcurrentDoubleSubmission(t *testing.T) {
	svc, s, users := newTestService(t)

	for i := 0; i < 20; i++ {
		req := submitRequest(t, svc, users.Teacher, "500", "Subsidy")

		approvers := []*store.User{users.Finance, users.Director}
		results := make([]*ApprovalResult, len(approvers))

		var wg sync.WaitGroup
		for n, actor := range approvers {
			wg.Add(1)
			go func(n int, actor *store.User) {
				defer wg.Done()

				// sqlite admits one writer at a time; a signer whose
				// transaction loses gets a busy error and submits again.
				for attempt := 0; attempt < 10; attempt++ {
					res, err := svc.Approval.Approve(actor, req.ID)
					if err == nil {
						results[n] = res
						return
					}
				}
				t.Errorf("approval by %s never went through", actor.Role)
			}(n, actor)
		}
		wg.Wait()

		completions := 0
		for _, res := range results {
			if res == nil {
				t.FailNow()
			}
			if res.Completed {
				completions++
			}
			if res.PostingErr != nil {
				t.Fatalf("unexpected posting error: %v", res.PostingErr)
			}
		}
		if completions != 1 {
			t.Fatalf("completion edge fired %d times, want exactly once", completions)
		}

		stored, err := s.GetExpenseRequestByID(req.ID)
		if err != nil {
			t.Fatalf("failed to reload request: %v", err)
		}
		if stored.Status != model.StatusApproved || !stored.BothApproved() {
			t.Fatalf("after concurrent signatures: status=%s finance=%v director=%v",
				stored.Status, stored.FinanceApprovedAt != nil, stored.DirectorApprovedAt != nil)
		}
		checkSlotsMatchStatus(t, stored)

		if _, err := s.GetLedgerEntryByRequest(req.ID); err != nil {
			t.Fatalf("no ledger entry posted for request %d: %v", req.ID, err)
		}
		entries, err := s.GetEntriesByType(model.LedgerSubsidy)
		if err != nil {
			t.Fatalf("failed to list register: %v", err)
		}
		if len(entries) != i+1 {
			t.Fatalf("register has %d entries after %d approved requests", len(entries), i+1)
		}
	}
}

func TestApprovePostingFailureKeepsApproval(t *testing.T) {
	svc, s, users := newTestService(t)
	req := submitRequest(t, svc, users.Teacher, "500", "Subsidy")

	if _, err := svc.Approval.Approve(users.Finance, req.ID); err != nil {
		t.Fatalf("finance approval failed: %v", err)
	}

	// Occupy the request's register slot so the automatic posting runs
	// into the UNIQUE constraint.
	if _, err := s.CreateLedgerEntry(store.LedgerEntry{
		Date:             req.Date,
		Amount:           req.Amount,
		Description:      "reconciled by hand",
		LedgerType:       model.LedgerSubsidy,
		Category:         constants.CategoryExpenditure,
		TransactionType:  model.TxnExpense,
		ExpenseRequestID: &req.ID,
		CreatedByID:      &users.Finance.ID,
		CreatedAt:        1709251200,
	}); err != nil {
		t.Fatalf("failed to occupy the register slot: %v", err)
	}

	res, err := svc.Approval.Approve(users.Director, req.ID)
	if err != nil {
		t.Fatalf("director approval failed: %v", err)
	}
	if !res.Completed {
		t.Fatal("second signature should complete the request")
	}
	if res.PostingErr == nil {
		t.Fatal("posting into an occupied slot should surface a posting error")
	}
	if res.PostingErr.RequestID != req.ID {
		t.Errorf("posting error names request %d, want %d", res.PostingErr.RequestID, req.ID)
	}
	if !errors.Is(res.PostingErr, store.ErrConstraintViolation) {
		t.Errorf("posting error = %v, want it to wrap %v", res.PostingErr, store.ErrConstraintViolation)
	}

	// The approval is durable regardless of the posting outcome.
	stored, err := s.GetExpenseRequestByID(req.ID)
	if err != nil {
		t.Fatalf("failed to reload request: %v", err)
	}
	if stored.Status != model.StatusApproved {
		t.Errorf("status after posting failure = %s, want %s", stored.Status, model.StatusApproved)
	}
}

func TestPostingTargetsMatchingRegister(t *testing.T) {
	tests := []struct {
		accountType string
		want        model.LedgerType
	}{
		{"Subsidy", model.LedgerSubsidy},
		{"Income", model.LedgerIncome},
		{"Lunch", model.LedgerLunch},
	}

	for _, tt := range tests {
		t.Run(tt.accountType, func(t *testing.T) {
			svc, s, users := newTestService(t)
			req := submitRequest(t, svc, users.Teacher, "200", tt.accountType)

			if _, err := svc.Approval.Approve(users.Director, req.ID); err != nil {
				t.Fatalf("director approval failed: %v", err)
			}
			res, err := svc.Approval.Approve(users.Finance, req.ID)
			if err != nil {
				t.Fatalf("finance approval failed: %v", err)
			}
			if res.LedgerType != tt.want {
				t.Errorf("posted to %s register, want %s", res.LedgerType, tt.want)
			}

			entry, err := s.GetLedgerEntryByRequest(req.ID)
			if err != nil {
				t.Fatalf("no ledger entry posted: %v", err)
			}
			if entry.LedgerType != tt.want {
				t.Errorf("stored entry register = %s, want %s", entry.LedgerType, tt.want)
			}
		})
	}
}
