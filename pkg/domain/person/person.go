package person

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrPersonNotFound is returned when a person cannot be found.
	ErrPersonNotFound = fmt.Errorf("person not found: %w", domain.ErrNotFound)

	// ErrNameRequired is returned when a person name is empty or only whitespace.
	ErrNameRequired = fmt.Errorf("name is required: %w", domain.ErrInvalidInput)

	// ErrNameTooLong is returned when a name exceeds MaxNameLength characters.
	ErrNameTooLong = fmt.Errorf("name is too long: %w", domain.ErrInvalidInput)
)

// MaxNameLength matches the people.name column.
const MaxNameLength = 200

// Person is an individual that owns one Account.
//
// Account is a pointer because an account may be deleted on its own, which
// leaves the person in place without one.
type Person struct {
	ID        uuid.UUID
	Name      string
	Account   *account.Account
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a Person together with its Account holding initialBalance.
// Both get fresh identifiers; the pair is meant to be persisted as one unit.
func New(name string, initialBalance decimal.Decimal) (*Person, error) {
	name, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	id := uuid.New()
	acc, err := account.New().
		WithPersonID(id).
		WithBalance(initialBalance).
		WithCreatedAt(now).
		WithUpdatedAt(now).
		Build()
	if err != nil {
		return nil, err
	}
	return &Person{
		ID:        id,
		Name:      name,
		Account:   acc,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateName trims name and rejects it when nothing is left or it does not
// fit in MaxNameLength characters.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// Rename applies a partial name update. A nil name leaves the person unchanged.
func (p *Person) Rename(name *string) error {
	if name == nil {
		return nil
	}
	n, err := ValidateName(*name)
	if err != nil {
		return err
	}
	p.Name = n
	p.UpdatedAt = time.Now().UTC()
	return nil
}
