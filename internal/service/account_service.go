package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/store"
)

// ErrInvalidCredentials is deliberately generic: it does not reveal
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("incorrect username or password")

type AccountService struct {
	repo store.Repository
}

func NewAccountService(repo store.Repository) *AccountService {
	return &AccountService{repo: repo}
}

func (as *AccountService) Register(username, name, password string, role model.Role) (*store.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "username is required"}
	}
	if len(username) > constants.MaxNameLen {
		return nil, &ValidationError{Field: "username", Reason: fmt.Sprintf("too long (max %d characters)", constants.MaxNameLen)}
	}
	if !role.Valid() {
		return nil, &ValidationError{Field: "role", Reason: fmt.Sprintf("unknown role '%s'", role)}
	}
	if len(password) < 8 {
		return nil, &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	if name == "" {
		name = username
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := as.repo.CreateUser(username, name, string(hash), role)
	if err != nil {
		return nil, err
	}

	return as.repo.GetUserByID(id)
}

// Authenticate resolves the acting identity for a session. Every core
// operation then receives that identity explicitly.
func (as *AccountService) Authenticate(username, password string) (*store.User, error) {
	user, err := as.repo.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (as *AccountService) GetByID(id int64) (*store.User, error) {
	return as.repo.GetUserByID(id)
}

func (as *AccountService) List() ([]*store.User, error) {
	return as.repo.GetAllUsers()
}

// EnsureDefaultUsers seeds one account per role on a fresh database.
func (as *AccountService) EnsureDefaultUsers() (bool, error) {
	count, err := as.repo.CountUsers()
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, seed := range constants.SeedUsers {
		if _, err := as.Register(seed.Username, seed.Name, constants.DefaultPassword, seed.Role); err != nil {
			return false, fmt.Errorf("failed to seed user %s: %w", seed.Username, err)
		}
	}
	return true, nil
}
