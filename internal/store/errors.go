package store

import "errors"

var (
	ErrUserExists          = errors.New("username already taken")
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
)
