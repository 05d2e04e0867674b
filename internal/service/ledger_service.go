package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/somchaipk/schoolfin/internal/config"
	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/validation"
)

type LedgerService struct {
	repo store.Repository
	cfg  *config.Config

	// now is swappable so month-window math is testable.
	now func() time.Time
}

func NewLedgerService(repo store.Repository, cfg *config.Config) *LedgerService {
	return &LedgerService{repo: repo, cfg: cfg, now: time.Now}
}

// AddEntryInput carries raw form values for a manual register entry.
type AddEntryInput struct {
	LedgerType      string
	Date            string
	Amount          string
	Description     string
	Note            string
	Category        string
	TransactionType string
}

func (ls *LedgerService) Add(actor *store.User, input AddEntryInput) (*store.LedgerEntry, error) {
	if err := Authorize(OpPostLedger, actor.Role); err != nil {
		return nil, err
	}

	lt, err := model.ParseLedgerType(input.LedgerType)
	if err != nil {
		return nil, &ValidationError{Field: "ledger type", Reason: err.Error()}
	}

	date, err := validation.ParseDate(input.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Reason: err.Error()}
	}

	amount, err := validation.ParseAmount(input.Amount)
	if err != nil {
		return nil, &ValidationError{Field: "amount", Reason: err.Error()}
	}

	txnType, err := model.ParseTransactionType(input.TransactionType)
	if err != nil {
		return nil, &ValidationError{Field: "transaction type", Reason: err.Error()}
	}

	if err := validation.ValidateCategory(lt, input.Category); err != nil {
		return nil, &ValidationError{Field: "category", Reason: err.Error()}
	}

	entry := store.LedgerEntry{
		Date:            date.Format(constants.DateFormat),
		Amount:          amount,
		Description:     input.Description,
		Note:            input.Note,
		LedgerType:      lt,
		Category:        strings.TrimSpace(input.Category),
		TransactionType: txnType,
		CreatedByID:     &actor.ID,
		CreatedAt:       ls.now().Unix(),
	}

	id, err := ls.repo.CreateLedgerEntry(entry)
	if err != nil {
		return nil, err
	}

	return ls.repo.GetLedgerEntryByID(id)
}

// EditEntryInput holds the fields an edit may change. Nil means "leave
// untouched"; empty string clears the field.
type EditEntryInput struct {
	Amount      *string
	Description *string
	Note        *string
}

// Edit applies the changed fields and writes one audit row per actual
// change, old value first. All of it commits in a single transaction.
func (ls *LedgerService) Edit(actor *store.User, entryID int64, input EditEntryInput) (*store.LedgerEntry, error) {
	if err := Authorize(OpEditLedger, actor.Role); err != nil {
		return nil, err
	}

	var newAmount *decimal.Decimal
	if input.Amount != nil {
		amount, err := validation.ParseAmount(*input.Amount)
		if err != nil {
			return nil, &ValidationError{Field: "amount", Reason: err.Error()}
		}
		newAmount = &amount
	}

	var updated *store.LedgerEntry

	err := ls.repo.ExecTx(func(r store.Repository) error {
		entry, err := r.GetLedgerEntryByID(entryID)
		if err != nil {
			return err
		}

		editedAt := ls.now().Unix()
		changed := false

		record := func(field, oldValue, newValue string) error {
			_, err := r.CreateLedgerHistory(store.LedgerEntryHistory{
				LedgerEntryID: entry.ID,
				EditedByID:    actor.ID,
				EditedAt:      editedAt,
				FieldName:     field,
				OldValue:      oldValue,
				NewValue:      newValue,
			})
			return err
		}

		if newAmount != nil && !entry.Amount.Equal(*newAmount) {
			if err := record("amount", entry.Amount.String(), newAmount.String()); err != nil {
				return err
			}
			entry.Amount = *newAmount
			changed = true
		}

		if input.Description != nil && entry.Description != *input.Description {
			if err := record("description", entry.Description, *input.Description); err != nil {
				return err
			}
			entry.Description = *input.Description
			changed = true
		}

		if input.Note != nil && entry.Note != *input.Note {
			if err := record("note", entry.Note, *input.Note); err != nil {
				return err
			}
			entry.Note = *input.Note
			changed = true
		}

		if changed {
			if err := r.UpdateLedgerEntryFields(entry.ID, entry.Amount, entry.Description, entry.Note); err != nil {
				return err
			}
		}

		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Get returns one register entry by id.
func (ls *LedgerService) Get(entryID int64) (*store.LedgerEntry, error) {
	return ls.repo.GetLedgerEntryByID(entryID)
}

// Entries lists a register in date order with actor names resolved.
func (ls *LedgerService) Entries(actor *store.User, lt model.LedgerType) ([]*store.LedgerEntryRow, error) {
	if err := Authorize(OpViewLedger, actor.Role); err != nil {
		return nil, err
	}
	return ls.repo.GetEntriesByType(lt)
}

func (ls *LedgerService) History(actor *store.User, entryID int64) ([]*store.LedgerEntryHistory, error) {
	if err := Authorize(OpViewHistory, actor.Role); err != nil {
		return nil, err
	}

	if _, err := ls.repo.GetLedgerEntryByID(entryID); err != nil {
		return nil, err
	}
	return ls.repo.GetHistoryByEntry(entryID)
}

// LedgerSummary is the figure block shown above a register: the current
// month's movements plus the net balance over a chosen range.
type LedgerSummary struct {
	MonthIncome  decimal.Decimal
	MonthExpense decimal.Decimal

	BalanceStart string
	BalanceEnd   string
	Balance      decimal.Decimal
}

// Summary computes the register figures. An empty range defaults to the
// start of the current year through today.
func (ls *LedgerService) Summary(actor *store.User, lt model.LedgerType, balanceStart, balanceEnd string) (*LedgerSummary, error) {
	if err := Authorize(OpViewLedger, actor.Role); err != nil {
		return nil, err
	}

	today := ls.now()

	if balanceStart == "" || balanceEnd == "" {
		balanceStart = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()).Format(constants.DateFormat)
		balanceEnd = today.Format(constants.DateFormat)
	} else {
		if _, err := validation.ParseDate(balanceStart); err != nil {
			return nil, &ValidationError{Field: "balance start", Reason: err.Error()}
		}
		if _, err := validation.ParseDate(balanceEnd); err != nil {
			return nil, &ValidationError{Field: "balance end", Reason: err.Error()}
		}
	}

	monthStart, monthEnd := monthRange(today)

	monthIncome, err := ls.repo.SumByTypeAndRange(lt, model.TxnIncome, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	monthExpense, err := ls.repo.SumByTypeAndRange(lt, model.TxnExpense, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	rangeIncome, err := ls.repo.SumByTypeAndRange(lt, model.TxnIncome, balanceStart, balanceEnd)
	if err != nil {
		return nil, err
	}
	rangeExpense, err := ls.repo.SumByTypeAndRange(lt, model.TxnExpense, balanceStart, balanceEnd)
	if err != nil {
		return nil, err
	}

	return &LedgerSummary{
		MonthIncome:  monthIncome,
		MonthExpense: monthExpense,
		BalanceStart: balanceStart,
		BalanceEnd:   balanceEnd,
		Balance:      rangeIncome.Sub(rangeExpense),
	}, nil
}

// SumByTypeAndRange exposes the raw inclusive-range total. Returns zero
// when nothing matches.
func (ls *LedgerService) SumByTypeAndRange(actor *store.User, lt model.LedgerType, tt model.TransactionType, start, end string) (decimal.Decimal, error) {
	if err := Authorize(OpViewLedger, actor.Role); err != nil {
		return decimal.Zero, err
	}
	return ls.repo.SumByTypeAndRange(lt, tt, start, end)
}

func monthRange(today time.Time) (string, string) {
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	end := start.AddDate(0, 1, -1)
	return start.Format(constants.DateFormat), end.Format(constants.DateFormat)
}
