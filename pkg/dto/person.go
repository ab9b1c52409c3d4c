package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PersonRead is a read-optimized view of a person with its account summary.
// Account is nil when the account was deleted on its own.
type PersonRead struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"nome"`
	Account   *AccountSummary `json:"conta"`
	CreatedAt time.Time       `json:"-"`
}

// AccountSummary is the nested account shape inside PersonRead.
type AccountSummary struct {
	ID      uuid.UUID       `json:"id"`
	Balance decimal.Decimal `json:"saldo"`
}

// PersonCreate represents the data needed to create a new person.
type PersonCreate struct {
	ID   uuid.UUID
	Name string
}

// PersonUpdate represents the fields of a person that can be updated.
type PersonUpdate struct {
	Name *string
}
