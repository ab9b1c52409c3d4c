package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRead is a read-optimized DTO for account queries and API responses.
type AccountRead struct {
	ID        uuid.UUID       `json:"id"`
	PersonID  uuid.UUID       `json:"pessoaId"`
	Balance   decimal.Decimal `json:"saldo"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

// AccountCreate is a DTO for creating a new account.
type AccountCreate struct {
	ID       uuid.UUID
	PersonID uuid.UUID       // Person who owns the account
	Balance  decimal.Decimal // Opening balance
}

// AccountUpdate is a DTO for updating one or more fields of an account.
type AccountUpdate struct {
	Balance *decimal.Decimal // Optional balance update
}

// BalanceRead is the person/account/balance triple returned by a balance query.
type BalanceRead struct {
	PersonID  uuid.UUID       `json:"pessoaId"`
	Name      string          `json:"nome"`
	AccountID uuid.UUID       `json:"contaId"`
	Balance   decimal.Decimal `json:"saldo"`
}
