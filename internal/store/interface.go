package store

import (
	"github.com/shopspring/decimal"

	"github.com/somchaipk/schoolfin/internal/model"
)

type Repository interface {
	// User Operations
	CreateUser(username, name, passwordHash string, role model.Role) (int64, error)
	GetUserByUsername(username string) (*User, error)
	GetUserByID(id int64) (*User, error)
	GetAllUsers() ([]*User, error)
	CountUsers() (int64, error)

	// Expense Request Operations
	CreateExpenseRequest(req ExpenseRequest) (int64, error)
	GetExpenseRequestByID(id int64) (*ExpenseRequest, error)
	GetRequestsByRequester(requesterID int64) ([]*ExpenseRequest, error)
	GetPendingRequests() ([]*ExpenseRequestRow, error)
	FillFinanceApproval(requestID, approverID, approvedAt int64) error
	FillDirectorApproval(requestID, approverID, approvedAt int64) error
	MarkRequestApproved(requestID int64) error

	// Ledger Operations
	CreateLedgerEntry(entry LedgerEntry) (int64, error)
	GetLedgerEntryByID(id int64) (*LedgerEntry, error)
	GetLedgerEntryByRequest(requestID int64) (*LedgerEntry, error)
	GetEntriesByType(lt model.LedgerType) ([]*LedgerEntryRow, error)
	UpdateLedgerEntryFields(id int64, amount decimal.Decimal, description, note string) error
	SumByTypeAndRange(lt model.LedgerType, tt model.TransactionType, start, end string) (decimal.Decimal, error)

	// Audit History Operations
	CreateLedgerHistory(h LedgerEntryHistory) (int64, error)
	GetHistoryByEntry(entryID int64) ([]*LedgerEntryHistory, error)

	// ExecTx runs fn against a transactional Repository. Calling it on a
	// Repository that is already inside a transaction is an error.
	ExecTx(fn func(Repository) error) error

	Close() error
}
