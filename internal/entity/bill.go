package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Bill is a tracked debt between one user and one creditor.
// At most one bill exists per (user, creditor) pair.
//
// CurrentBalance and Paid are generated columns derived from the two
// totals by the database. They are scanned on reads and never written
// by the application.
type Bill struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	CreditorID        uuid.UUID
	Description       string
	TotalCreditAmount decimal.Decimal
	TotalPaidAmount   decimal.Decimal
	CurrentBalance    decimal.Decimal // total_paid_amount - total_credit_amount
	Paid              bool            // total_paid_amount >= total_credit_amount
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type BillFilter struct {
	Paid    *bool
	Page    uint64
	Limit   uint64
	SortBy  BillSortCol
	OrderBy OrderByCol
}

type BillSortCol string

const (
	SortByCreatedAt BillSortCol = "created_at"
	SortByBalance   BillSortCol = "current_balance"
	SortByCredit    BillSortCol = "total_credit_amount"
)

func (b BillSortCol) String() string {
	return string(b)
}

func (b BillSortCol) IsValid() bool {
	switch b {
	case SortByCreatedAt, SortByBalance, SortByCredit:
		return true
	}

	return false
}

type OrderByCol string

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) String() string {
	return string(o)
}

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
