package entity

import (
	"github.com/gofrs/uuid/v5"
)

// User is the identity resolved by the auth service. Only the fields
// the ledger needs are carried; a local users reference table is kept
// in sync from auth events for foreign keys.
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Role      string
	Active    bool
}

const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Privileged reports whether the user may operate on bills and
// payments they are not a party to.
func (u User) Privileged() bool {
	return u.Role == RoleStaff || u.Role == RoleAdmin
}
