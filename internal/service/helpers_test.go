package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/somchaipk/schoolfin/internal/config"
	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/store"
)

// testUsers holds one seeded account per role.
type testUsers struct {
	Teacher  *store.User
	Finance  *store.User
	Director *store.User
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "schoolfin_test.db")
	s, err := store.NewStore(dbPath, os.DirFS("../.."))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// newTestService wires a Service against a fresh temp database with one
// account per role already present. Passwords are not hashed for real
// because these tests pass the actor in directly.
func newTestService(t *testing.T) (*Service, *store.Store, testUsers) {
	t.Helper()

	s := newTestStore(t)
	svc := NewService(s, config.NewDefault())

	return svc, s, testUsers{
		Teacher:  seedUser(t, s, "teacher01", model.RoleTeacher),
		Finance:  seedUser(t, s, "finance01", model.RoleFinance),
		Director: seedUser(t, s, "director01", model.RoleDirector),
	}
}

func seedUser(t *testing.T, repo store.Repository, username string, role model.Role) *store.User {
	t.Helper()

	id, err := repo.CreateUser(username, username, "unused-hash", role)
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	user, err := repo.GetUserByID(id)
	if err != nil {
		t.Fatalf("failed to load seeded user %s: %v", username, err)
	}
	return user
}

// submitRequest creates a pending expense request for tests that exercise
// the approval flow.
func submitRequest(t *testing.T, svc *Service, requester *store.User, amount, accountType string) *store.ExpenseRequest {
	t.Helper()

	req, err := svc.Request.Create(requester, CreateRequestInput{
		Date:        "2024-03-01",
		Amount:      amount,
		Description: "whiteboard markers",
		AccountType: accountType,
	})
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	return req
}
