package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for account data access operations with support for CQRS (Command/Query Responsibility Segregation).
type Repository interface {
	// Create inserts a new account record from a DTO.
	Create(ctx context.Context, create dto.AccountCreate) error

	// Update updates an existing account by its ID using a DTO.
	Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error

	// GetForUpdate retrieves an account by its ID and holds a row lock on it
	// until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// List retrieves all accounts, oldest first.
	List(ctx context.Context) ([]*dto.AccountRead, error)

	// Delete removes the account only; its person is kept.
	Delete(ctx context.Context, id uuid.UUID) error
}
