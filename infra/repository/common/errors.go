package common

import (
	"errors"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM and postgres errors to domain errors.
// This keeps infrastructure concerns (database errors) within the infrastructure layer.
// Errors that match no known case are wrapped in domain.ErrStore so callers can
// still tell a store failure apart from a business rule violation.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation:
		return domain.ErrAlreadyExists
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrStore):
		// Already classified.
		return err
	}

	return fmt.Errorf("%w: %w", domain.ErrStore, err)
}

// WrapError wraps a GORM operation and automatically maps errors.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(user).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}

// RequireAffected maps a write that touched no rows to domain.ErrNotFound.
func RequireAffected(result *gorm.DB) error {
	if result.Error != nil {
		return MapGormErrorToDomain(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
