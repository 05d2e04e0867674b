package service

import (
	"errors"
	"testing"

	"github.com/somchaipk/schoolfin/internal/config"
	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/store"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _, _ := newTestService(t)

	user, err := svc.Account.Register("somsak", "Somsak J.", "correct horse", model.RoleTeacher)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != model.RoleTeacher {
		t.Errorf("registered role = %s, want %s", user.Role, model.RoleTeacher)
	}

	got, err := svc.Account.Authenticate("somsak", "correct horse")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated as user %d, want %d", got.ID, user.ID)
	}

	if _, err := svc.Account.Authenticate("somsak", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password returned %v, want %v", err, ErrInvalidCredentials)
	}
	if _, err := svc.Account.Authenticate("nobody", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user returned %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
		role     model.Role
	}{
		{"empty username", "", "long enough", model.RoleTeacher},
		{"short password", "somsak", "short", model.RoleTeacher},
		{"unknown role", "somsak", "long enough", model.Role("janitor")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Account.Register(tt.username, "", tt.password, tt.role)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("Register(%s) returned %v, want ValidationError", tt.name, err)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, users := newTestService(t)

	_, err := svc.Account.Register(users.Teacher.Username, "", "long enough", model.RoleTeacher)
	if !errors.Is(err, store.ErrUserExists) {
		t.Errorf("duplicate username returned %v, want %v", err, store.ErrUserExists)
	}
}

func TestEnsureDefaultUsers(t *testing.T) {
	s := newTestStore(t)
	svc := NewService(s, config.NewDefault())

	seeded, err := svc.Account.EnsureDefaultUsers()
	if err != nil {
		t.Fatalf("seeding failed: %v", err)
	}
	if !seeded {
		t.Fatal("empty database should be seeded")
	}

	all, err := svc.Account.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != len(constants.SeedUsers) {
		t.Fatalf("seeded %d users, want %d", len(all), len(constants.SeedUsers))
	}

	roles := map[model.Role]bool{}
	for _, u := range all {
		roles[u.Role] = true
	}
	for _, role := range []model.Role{model.RoleTeacher, model.RoleDirector, model.RoleFinance} {
		if !roles[role] {
			t.Errorf("no seeded account for role %s", role)
		}
	}

	// Second run is a no-op.
	seeded, err = svc.Account.EnsureDefaultUsers()
	if err != nil {
		t.Fatalf("second seeding check failed: %v", err)
	}
	if seeded {
		t.Error("non-empty database must not be reseeded")
	}
}
