package store

import (
	"github.com/shopspring/decimal"

	"github.com/somchaipk/schoolfin/internal/model"
)

type User struct {
	ID           int64
	Username     string
	Name         string
	PasswordHash string
	Role         model.Role
}

// ExpenseRequest is a staff expense request with its two approval slots.
// Timestamps are unix seconds; Date is a YYYY-MM-DD string.
type ExpenseRequest struct {
	ID          int64
	Reference   string
	RequesterID int64
	Date        string
	Amount      decimal.Decimal
	Description string
	AccountType model.AccountType
	Status      model.RequestStatus

	FinanceApproverID  *int64
	FinanceApprovedAt  *int64
	DirectorApproverID *int64
	DirectorApprovedAt *int64
}

// BothApproved reports whether both approval slots are filled.
func (r *ExpenseRequest) BothApproved() bool {
	return r.FinanceApprovedAt != nil && r.DirectorApprovedAt != nil
}

// ExpenseRequestRow is an ExpenseRequest with the requester's display
// name resolved, for approval and status views.
type ExpenseRequestRow struct {
	ExpenseRequest
	RequesterName string
}

type LedgerEntry struct {
	ID               int64
	Date             string
	Amount           decimal.Decimal
	Description      string
	Note             string
	LedgerType       model.LedgerType
	Category         string
	TransactionType  model.TransactionType
	ExpenseRequestID *int64
	CreatedByID      *int64
	CreatedAt        int64
}

// LedgerEntryRow is a LedgerEntry with the acting person's display name
// resolved: the original requester when the entry was posted from an
// approved request, otherwise the manual creator, otherwise "-".
type LedgerEntryRow struct {
	LedgerEntry
	ActorName string
}

type LedgerEntryHistory struct {
	ID            int64
	LedgerEntryID int64
	EditedByID    int64
	EditedByName  string
	EditedAt      int64
	FieldName     string
	OldValue      string
	NewValue      string
}
