package entity

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidIssuer     = errors.New("invalid payment issuer")
	ErrUserNotFound      = errors.New("user not found")
	ErrCreditorNotFound  = errors.New("creditor not found")
	ErrDuplicateBill     = errors.New("bill already exists for this user and creditor")
	ErrDuplicateCreditor = errors.New("creditor already exists")
	ErrOutstandingDebt   = errors.New("bill has outstanding debt")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
)
