package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/somchaipk/schoolfin/internal/model"
)

func (s *Store) CreateLedgerEntry(entry LedgerEntry) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO ledger_entries
			(date, amount, description, note, ledger_type, category,
			 transaction_type, expense_request_id, created_by_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64

	err = stmt.QueryRow(
		entry.Date,
		entry.Amount.String(),
		entry.Description,
		entry.Note,
		string(entry.LedgerType),
		entry.Category,
		string(entry.TransactionType),
		entry.ExpenseRequestID,
		entry.CreatedByID,
		entry.CreatedAt,
	).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: ledger_entries.expense_request_id") {
			return 0, fmt.Errorf("%w: request already has a ledger entry", ErrConstraintViolation)
		}
		return 0, fmt.Errorf("failed to insert ledger entry : %w", err)
	}

	return newID, nil
}

func (s *Store) GetLedgerEntryByID(id int64) (*LedgerEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, date, amount, description, note, ledger_type, category,
		       transaction_type, expense_request_id, created_by_id, created_at
		FROM ledger_entries
		WHERE id = ?
	`, id)

	entry, err := scanLedgerEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to query ledger entry %d: %w", id, err)
	}
	return entry, nil
}

func (s *Store) GetLedgerEntryByRequest(requestID int64) (*LedgerEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, date, amount, description, note, ledger_type, category,
		       transaction_type, expense_request_id, created_by_id, created_at
		FROM ledger_entries
		WHERE expense_request_id = ?
	`, requestID)

	entry, err := scanLedgerEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to query ledger entry for request %d: %w", requestID, err)
	}
	return entry, nil
}

// GetEntriesByType lists a register in date order with the actor name
// resolved in one query: the originating requester for auto-posted
// entries, else the manual creator.
func (s *Store) GetEntriesByType(lt model.LedgerType) ([]*LedgerEntryRow, error) {
	rows, err := s.db.Query(`
		SELECT e.id, e.date, e.amount, e.description, e.note, e.ledger_type,
		       e.category, e.transaction_type, e.expense_request_id,
		       e.created_by_id, e.created_at,
		       COALESCE(req_user.name, creator.name, '-')
		FROM ledger_entries e
		LEFT JOIN expense_requests r ON r.id = e.expense_request_id
		LEFT JOIN users req_user ON req_user.id = r.requester_id
		LEFT JOIN users creator ON creator.id = e.created_by_id
		WHERE e.ledger_type = ?
		ORDER BY e.date ASC, e.id ASC
	`, string(lt))
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*LedgerEntryRow
	for rows.Next() {
		row := &LedgerEntryRow{}
		var (
			amountStr            string
			ledgerType, txnType  string
			requestID, creatorID sql.NullInt64
		)

		err := rows.Scan(
			&row.ID, &row.Date, &amountStr, &row.Description, &row.Note,
			&ledgerType, &row.Category, &txnType,
			&requestID, &creatorID, &row.CreatedAt,
			&row.ActorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}

		row.Amount, err = decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("invalid amount in ledger entry %d: %w", row.ID, err)
		}
		row.LedgerType = model.LedgerType(ledgerType)
		row.TransactionType = model.TransactionType(txnType)
		assignNullable(&row.ExpenseRequestID, requestID)
		assignNullable(&row.CreatedByID, creatorID)

		entries = append(entries, row)
	}

	return entries, rows.Err()
}

func (s *Store) UpdateLedgerEntryFields(id int64, amount decimal.Decimal, description, note string) error {
	result, err := s.db.Exec(`
		UPDATE ledger_entries
		SET amount = ?, description = ?, note = ?
		WHERE id = ?
	`, amount.String(), description, note, id)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// SumByTypeAndRange totals amounts for one register and direction over an
// inclusive date range. Amounts are stored as decimal strings, so the sum
// is folded here instead of with SQL SUM.
func (s *Store) SumByTypeAndRange(lt model.LedgerType, tt model.TransactionType, start, end string) (decimal.Decimal, error) {
	rows, err := s.db.Query(`
		SELECT amount
		FROM ledger_entries
		WHERE ledger_type = ? AND transaction_type = ? AND date >= ? AND date <= ?
	`, string(lt), string(tt), start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query ledger amounts: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amountStr string
		if err := rows.Scan(&amountStr); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan amount: %w", err)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid stored amount %q: %w", amountStr, err)
		}
		total = total.Add(amount)
	}

	return total, rows.Err()
}

func scanLedgerEntry(row rowScanner) (*LedgerEntry, error) {
	entry := &LedgerEntry{}
	var (
		amountStr            string
		ledgerType, txnType  string
		requestID, creatorID sql.NullInt64
	)

	err := row.Scan(
		&entry.ID, &entry.Date, &amountStr, &entry.Description, &entry.Note,
		&ledgerType, &entry.Category, &txnType,
		&requestID, &creatorID, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Amount, err = decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("invalid amount in ledger entry %d: %w", entry.ID, err)
	}
	entry.LedgerType = model.LedgerType(ledgerType)
	entry.TransactionType = model.TransactionType(txnType)
	assignNullable(&entry.ExpenseRequestID, requestID)
	assignNullable(&entry.CreatedByID, creatorID)

	return entry, nil
}
