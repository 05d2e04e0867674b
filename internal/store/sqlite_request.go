package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/somchaipk/schoolfin/internal/model"
)

const expenseRequestColumns = `
	id, reference, requester_id, date, amount, description, account_type, status,
	finance_approver_id, finance_approved_at, director_approver_id, director_approved_at`

func (s *Store) CreateExpenseRequest(req ExpenseRequest) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO expense_requests (reference, requester_id, date, amount, description, account_type, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64

	err = stmt.QueryRow(
		req.Reference,
		req.RequesterID,
		req.Date,
		req.Amount.String(),
		req.Description,
		string(req.AccountType),
		string(req.Status),
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense request : %w", err)
	}

	return newID, nil
}

func (s *Store) GetExpenseRequestByID(id int64) (*ExpenseRequest, error) {
	row := s.db.QueryRow(`
		SELECT`+expenseRequestColumns+`
		FROM expense_requests
		WHERE id = ?
	`, id)

	req, err := scanExpenseRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to query expense request %d: %w", id, err)
	}
	return req, nil
}

func (s *Store) GetRequestsByRequester(requesterID int64) ([]*ExpenseRequest, error) {
	rows, err := s.db.Query(`
		SELECT`+expenseRequestColumns+`
		FROM expense_requests
		WHERE requester_id = ?
		ORDER BY date DESC, id DESC
	`, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense requests: %w", err)
	}
	defer rows.Close()

	var requests []*ExpenseRequest
	for rows.Next() {
		req, err := scanExpenseRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// GetPendingRequests returns every request that is not yet fully approved,
// with the requester's display name resolved.
func (s *Store) GetPendingRequests() ([]*ExpenseRequestRow, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.reference, r.requester_id, r.date, r.amount, r.description,
		       r.account_type, r.status,
		       r.finance_approver_id, r.finance_approved_at,
		       r.director_approver_id, r.director_approved_at,
		       u.name
		FROM expense_requests r
		INNER JOIN users u ON u.id = r.requester_id
		WHERE r.status != ?
		ORDER BY r.date ASC, r.id ASC
	`, string(model.StatusApproved))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending requests: %w", err)
	}
	defer rows.Close()

	var requests []*ExpenseRequestRow
	for rows.Next() {
		row := &ExpenseRequestRow{}
		var (
			amountStr           string
			accountType, status string
			finID, dirID        sql.NullInt64
			finAt, dirAt        sql.NullInt64
		)

		err := rows.Scan(
			&row.ID, &row.Reference, &row.RequesterID, &row.Date, &amountStr,
			&row.Description, &accountType, &status,
			&finID, &finAt, &dirID, &dirAt,
			&row.RequesterName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending request: %w", err)
		}

		row.Amount, err = decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("invalid amount in expense request %d: %w", row.ID, err)
		}
		row.AccountType = model.AccountType(accountType)
		row.Status = model.RequestStatus(status)
		assignNullable(&row.FinanceApproverID, finID)
		assignNullable(&row.FinanceApprovedAt, finAt)
		assignNullable(&row.DirectorApproverID, dirID)
		assignNullable(&row.DirectorApprovedAt, dirAt)

		requests = append(requests, row)
	}

	return requests, rows.Err()
}

// FillFinanceApproval records the finance signature. The WHERE guard keeps
// the write idempotent: an already-filled slot is never overwritten.
func (s *Store) FillFinanceApproval(requestID, approverID, approvedAt int64) error {
	result, err := s.db.Exec(`
		UPDATE expense_requests
		SET finance_approver_id = ?, finance_approved_at = ?
		WHERE id = ? AND finance_approved_at IS NULL
	`, approverID, approvedAt, requestID)
	if err != nil {
		return fmt.Errorf("failed to record finance approval: %w", err)
	}
	return checkRequestUpdated(result, requestID)
}

func (s *Store) FillDirectorApproval(requestID, approverID, approvedAt int64) error {
	result, err := s.db.Exec(`
		UPDATE expense_requests
		SET director_approver_id = ?, director_approved_at = ?
		WHERE id = ? AND director_approved_at IS NULL
	`, approverID, approvedAt, requestID)
	if err != nil {
		return fmt.Errorf("failed to record director approval: %w", err)
	}
	return checkRequestUpdated(result, requestID)
}

// MarkRequestApproved flips the derived status. The status guard makes the
// completion edge fire at most once.
func (s *Store) MarkRequestApproved(requestID int64) error {
	result, err := s.db.Exec(`
		UPDATE expense_requests
		SET status = ?
		WHERE id = ? AND status != ?
	`, string(model.StatusApproved), requestID, string(model.StatusApproved))
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	return checkRequestUpdated(result, requestID)
}

func checkRequestUpdated(result sql.Result, requestID int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("expense request %d: no row updated", requestID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpenseRequest(row rowScanner) (*ExpenseRequest, error) {
	req := &ExpenseRequest{}
	var (
		amountStr           string
		accountType, status string
		finID, dirID        sql.NullInt64
		finAt, dirAt        sql.NullInt64
	)

	err := row.Scan(
		&req.ID, &req.Reference, &req.RequesterID, &req.Date, &amountStr,
		&req.Description, &accountType, &status,
		&finID, &finAt, &dirID, &dirAt,
	)
	if err != nil {
		return nil, err
	}

	req.Amount, err = decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("invalid amount in expense request %d: %w", req.ID, err)
	}
	req.AccountType = model.AccountType(accountType)
	req.Status = model.RequestStatus(status)
	assignNullable(&req.FinanceApproverID, finID)
	assignNullable(&req.FinanceApprovedAt, finAt)
	assignNullable(&req.DirectorApproverID, dirID)
	assignNullable(&req.DirectorApprovedAt, dirAt)

	return req, nil
}

func assignNullable(dst **int64, src sql.NullInt64) {
	if src.Valid {
		v := src.Int64
		*dst = &v
	}
}
