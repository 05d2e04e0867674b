package store

import "fmt"

func (s *Store) CreateLedgerHistory(h LedgerEntryHistory) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO ledger_entry_history
			(ledger_entry_id, edited_by_id, edited_at, field_name, old_value, new_value)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64

	err = stmt.QueryRow(
		h.LedgerEntryID,
		h.EditedByID,
		h.EditedAt,
		h.FieldName,
		h.OldValue,
		h.NewValue,
	).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert history row : %w", err)
	}

	return newID, nil
}

// GetHistoryByEntry returns the audit rows for one ledger entry, most
// recent edit first, with the editor's display name resolved.
func (s *Store) GetHistoryByEntry(entryID int64) ([]*LedgerEntryHistory, error) {
	rows, err := s.db.Query(`
		SELECT h.id, h.ledger_entry_id, h.edited_by_id, u.name, h.edited_at,
		       h.field_name, h.old_value, h.new_value
		FROM ledger_entry_history h
		INNER JOIN users u ON u.id = h.edited_by_id
		WHERE h.ledger_entry_id = ?
		ORDER BY h.edited_at DESC, h.id DESC
	`, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var history []*LedgerEntryHistory
	for rows.Next() {
		h := &LedgerEntryHistory{}

		err := rows.Scan(
			&h.ID, &h.LedgerEntryID, &h.EditedByID, &h.EditedByName,
			&h.EditedAt, &h.FieldName, &h.OldValue, &h.NewValue,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, h)
	}

	return history, rows.Err()
}
