package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/somchaipk/schoolfin/internal/model"
)

func (s *Store) CreateUser(username, name, passwordHash string, role model.Role) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO users (username, name, password_hash, role)
		VALUES (?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64

	err = stmt.QueryRow(username, name, passwordHash, string(role)).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return 0, fmt.Errorf("%w: %s", ErrUserExists, username)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetUserByUsername(username string) (*User, error) {
	row := s.db.QueryRow(`
		SELECT id, username, name, password_hash, role
		FROM users
		WHERE username = ?
	`, username)

	return scanUser(row)
}

func (s *Store) GetUserByID(id int64) (*User, error) {
	row := s.db.QueryRow(`
		SELECT id, username, name, password_hash, role
		FROM users
		WHERE id = ?
	`, id)

	return scanUser(row)
}

func scanUser(row *sql.Row) (*User, error) {
	u := &User{}
	var role string

	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	u.Role = model.Role(role)
	return u, nil
}

func (s *Store) GetAllUsers() ([]*User, error) {
	rows, err := s.db.Query(`
		SELECT id, username, name, password_hash, role
		FROM users
		ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		var role string

		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &role); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Role = model.Role(role)
		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *Store) CountUsers() (int64, error) {
	var count int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
