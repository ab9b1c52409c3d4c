package account

import (
	"fmt"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits a balance or amount may carry.
// It matches the numeric(18,2) column the store uses.
const Scale int32 = 2

// MaxBalance is the exclusive upper bound on any balance or amount.
var MaxBalance = decimal.New(1, 16)

var (
	// ErrTransactionAmountMustBePositive is returned when a credit or debit amount is zero or negative.
	ErrTransactionAmountMustBePositive = fmt.Errorf("transaction amount must be positive: %w", domain.ErrInvalidInput)

	// ErrAmountPrecision is returned when an amount or balance has more fractional digits than Scale.
	ErrAmountPrecision = fmt.Errorf("amount has more than 2 decimal places: %w", domain.ErrInvalidInput)

	// ErrNegativeBalance is returned when an account would be opened with a negative balance.
	ErrNegativeBalance = fmt.Errorf("initial balance cannot be negative: %w", domain.ErrInvalidInput)

	// ErrBalanceOverflow is returned when a credit would push the balance past MaxBalance.
	ErrBalanceOverflow = fmt.Errorf("balance would exceed maximum allowed value: %w", domain.ErrInvalidInput)

	// ErrInsufficientFunds is returned when a debit exceeds the current balance.
	ErrInsufficientFunds = fmt.Errorf("insufficient funds: %w", domain.ErrInsufficientFunds)

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("account not found: %w", domain.ErrNotFound)

	// ErrPersonRequired is returned when an account is built without an owner.
	ErrPersonRequired = fmt.Errorf("personID is required: %w", domain.ErrInvalidInput)
)

// Account holds the monetary balance owned by exactly one Person.
//
// Invariants:
//   - An account always references its owning person (PersonID).
//   - The balance is never negative after a successful Credit or Debit.
//   - Balances and amounts carry at most Scale fractional digits.
type Account struct {
	ID        uuid.UUID
	PersonID  uuid.UUID
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id        uuid.UUID
	personID  uuid.UUID
	balance   decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

// New creates a new Builder with a fresh UUID and a zero balance.
func New() *Builder {
	now := time.Now().UTC()
	return &Builder{
		id:        uuid.New(),
		balance:   decimal.Zero,
		createdAt: now,
		updatedAt: now,
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithPersonID sets the owning person. This is a mandatory field.
func (b *Builder) WithPersonID(personID uuid.UUID) *Builder {
	b.personID = personID
	return b
}

// WithBalance sets the opening balance.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// WithCreatedAt sets the creation timestamp. Used when hydrating from the store.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the last-updated timestamp. Used when hydrating from the store.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates the opening balance and owner and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.personID == uuid.Nil {
		return nil, ErrPersonRequired
	}
	if b.balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	if err := validatePrecision(b.balance); err != nil {
		return nil, err
	}
	if b.balance.GreaterThanOrEqual(MaxBalance) {
		return nil, ErrBalanceOverflow
	}
	return &Account{
		ID:        b.id,
		PersonID:  b.personID,
		Balance:   b.balance,
		CreatedAt: b.createdAt,
		UpdatedAt: b.updatedAt,
	}, nil
}

func validatePrecision(amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(Scale)) {
		return ErrAmountPrecision
	}
	return nil
}

// ValidateAmount checks that amount is a usable credit or debit amount.
// It needs no account, so callers run it before touching the store.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrTransactionAmountMustBePositive
	}
	if err := validatePrecision(amount); err != nil {
		return err
	}
	if amount.GreaterThanOrEqual(MaxBalance) {
		return ErrBalanceOverflow
	}
	return nil
}

// ValidateCredit checks all business invariants for a credit operation.
func (a *Account) ValidateCredit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if a.Balance.Add(amount).GreaterThanOrEqual(MaxBalance) {
		return ErrBalanceOverflow
	}
	return nil
}

// ValidateDebit checks all business invariants for a debit operation.
// Invariants enforced:
//   - Debit amount must be positive.
//   - Cannot debit more than the current balance.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// Credit adds amount to the balance and returns the new balance.
// The account is left untouched when validation fails.
func (a *Account) Credit(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := a.ValidateCredit(amount); err != nil {
		return a.Balance, err
	}
	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = time.Now().UTC()
	return a.Balance, nil
}

// Debit subtracts amount from the balance and returns the new balance.
// The account is left untouched when validation fails.
func (a *Account) Debit(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := a.ValidateDebit(amount); err != nil {
		return a.Balance, err
	}
	a.Balance = a.Balance.Sub(amount)
	a.UpdatedAt = time.Now().UTC()
	return a.Balance, nil
}
