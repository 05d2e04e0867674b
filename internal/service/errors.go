package service

import (
	"fmt"

	"github.com/somchaipk/schoolfin/internal/model"
)

// ValidationError reports rejected input. Nothing is written when one is
// returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthorizationError reports an operation attempted by a role outside its
// permission set. Nothing is written when one is returned.
type AuthorizationError struct {
	Op   Operation
	Role model.Role
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("%s is not permitted to %s", e.Role.DisplayName(), e.Op)
}

// PostingError means an approval completed and committed, but the
// automatic ledger entry could not be created. The approval stands; the
// caller surfaces this as a warning, not a failure.
type PostingError struct {
	RequestID int64
	Err       error
}

func (e *PostingError) Error() string {
	return fmt.Sprintf("request %d approved but ledger posting failed: %v", e.RequestID, e.Err)
}

func (e *PostingError) Unwrap() error {
	return e.Err
}
