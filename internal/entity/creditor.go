package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Creditor is a person or institution money is owed to or by. Creditors
// are registered by a user and referenced by bills, so they are never
// deleted automatically.
type Creditor struct {
	ID            uuid.UUID
	Name          string
	Description   string
	StreetAddress string
	City          string
	State         string
	Country       string
	Phone         string
	Email         string
	BankName      string
	AccountNumber string
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the fields required at registration time. A bank
// account number is only valid together with a bank name.
func (c Creditor) Validate() error {
	if c.Name == "" || c.Phone == "" {
		return fmt.Errorf("%w: creditor name and phone are required", ErrInvalidArgument)
	}

	if c.AccountNumber != "" && c.BankName == "" {
		return fmt.Errorf("%w: an account number requires a bank name", ErrInvalidArgument)
	}

	return nil
}

// Normalize title-cases the creditor's display fields.
func (c Creditor) Normalize() Creditor {
	c.Name = toTitleCase(c.Name)
	c.City = toTitleCase(c.City)
	c.State = toTitleCase(c.State)
	c.Country = toTitleCase(c.Country)
	c.BankName = toTitleCase(c.BankName)

	return c
}

// CreditorPatch carries a partial update. Nil fields are left untouched.
type CreditorPatch struct {
	Name          *string
	Description   *string
	StreetAddress *string
	City          *string
	State         *string
	Country       *string
	Phone         *string
	Email         *string
	BankName      *string
	AccountNumber *string
}

func toTitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}

	return strings.Join(words, " ")
}
