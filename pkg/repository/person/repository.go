package person

import (
	"context"

	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for person data access operations with
// support for CQRS (Command/Query Responsibility Segregation).
type Repository interface {
	// Create inserts a new person record from a DTO.
	Create(ctx context.Context, create dto.PersonCreate) error

	// Update applies the non-nil fields of the DTO to the person with the given ID.
	Update(ctx context.Context, id uuid.UUID, update dto.PersonUpdate) error

	// Get retrieves a person and its account summary by ID.
	Get(ctx context.Context, id uuid.UUID) (*dto.PersonRead, error)

	// List retrieves all people with their account summaries, oldest first.
	List(ctx context.Context) ([]*dto.PersonRead, error)

	// Delete removes the person; the store cascades the delete to its account.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of people.
	Count(ctx context.Context) (int64, error)
}
