// Package person provides the business logic for managing people and the
// account each of them owns.
//
// Every mutation runs inside a unit of work, so a person and its account are
// written, renamed or removed as one unit.
package person

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/person"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service provides person operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new person Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreatePerson creates a person together with an account holding initialBalance.
// Validation happens before any store access.
func (s *Service) CreatePerson(
	ctx context.Context,
	name string,
	initialBalance decimal.Decimal,
) (p *dto.PersonRead, err error) {
	log := s.logger.With("context", "CreatePerson")
	log.Debug("CreatePerson called", "name", name, "initialBalance", initialBalance.String())

	entity, err := person.New(name, initialBalance)
	if err != nil {
		log.Warn("CreatePerson rejected", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		people, err := uow.PersonRepository()
		if err != nil {
			return err
		}
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if err := people.Create(ctx, dto.PersonCreate{ID: entity.ID, Name: entity.Name}); err != nil {
			return err
		}
		return accounts.Create(ctx, dto.AccountCreate{
			ID:       entity.Account.ID,
			PersonID: entity.ID,
			Balance:  entity.Account.Balance,
		})
	})
	if err != nil {
		log.Error("CreatePerson failed", "error", err)
		return nil, err
	}

	p = &dto.PersonRead{
		ID:   entity.ID,
		Name: entity.Name,
		Account: &dto.AccountSummary{
			ID:      entity.Account.ID,
			Balance: entity.Account.Balance,
		},
		CreatedAt: entity.CreatedAt,
	}
	log.Info("CreatePerson successful", "personID", p.ID, "accountID", p.Account.ID)
	return
}

// GetPerson returns the person with the given id and its account summary,
// which is nil when the account was deleted on its own.
func (s *Service) GetPerson(ctx context.Context, id uuid.UUID) (p *dto.PersonRead, err error) {
	log := s.logger.With("context", "GetPerson", "personID", id)
	log.Debug("GetPerson called")
	people, err := s.uow.PersonRepository()
	if err != nil {
		log.Error("GetPerson failed", "error", err)
		return nil, err
	}
	p, err = people.Get(ctx, id)
	if err != nil {
		err = notFound(err)
		log.Error("GetPerson failed", "error", err)
		return nil, err
	}
	log.Debug("GetPerson successful")
	return
}

// ListPeople returns every person, oldest first.
func (s *Service) ListPeople(ctx context.Context) (people []*dto.PersonRead, err error) {
	log := s.logger.With("context", "ListPeople")
	log.Debug("ListPeople called")
	repo, err := s.uow.PersonRepository()
	if err != nil {
		log.Error("ListPeople failed", "error", err)
		return nil, err
	}
	people, err = repo.List(ctx)
	if err != nil {
		log.Error("ListPeople failed", "error", err)
		return nil, err
	}
	log.Debug("ListPeople successful", "count", len(people))
	return
}

// UpdatePersonName applies a partial update. A nil name changes nothing but
// the person must still exist; a blank name is rejected.
func (s *Service) UpdatePersonName(ctx context.Context, id uuid.UUID, name *string) (err error) {
	log := s.logger.With("context", "UpdatePersonName", "personID", id)
	log.Debug("UpdatePersonName called")

	var update dto.PersonUpdate
	if name != nil {
		trimmed, err := person.ValidateName(*name)
		if err != nil {
			log.Warn("UpdatePersonName rejected", "error", err)
			return err
		}
		update.Name = &trimmed
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		people, err := uow.PersonRepository()
		if err != nil {
			return err
		}
		if update.Name == nil {
			_, err = people.Get(ctx, id)
			return notFound(err)
		}
		return notFound(people.Update(ctx, id, update))
	})
	if err != nil {
		log.Error("UpdatePersonName failed", "error", err)
		return err
	}
	log.Info("UpdatePersonName successful")
	return nil
}

// DeletePerson removes the person; the store cascades the delete to its account.
func (s *Service) DeletePerson(ctx context.Context, id uuid.UUID) (err error) {
	log := s.logger.With("context", "DeletePerson", "personID", id)
	log.Debug("DeletePerson called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		people, err := uow.PersonRepository()
		if err != nil {
			return err
		}
		return notFound(people.Delete(ctx, id))
	})
	if err != nil {
		log.Error("DeletePerson failed", "error", err)
		return err
	}
	log.Info("DeletePerson successful")
	return nil
}

// Count returns the number of stored people.
func (s *Service) Count(ctx context.Context) (int64, error) {
	people, err := s.uow.PersonRepository()
	if err != nil {
		return 0, err
	}
	return people.Count(ctx)
}

func notFound(err error) error {
	if err != nil && errors.Is(err, domain.ErrNotFound) {
		return person.ErrPersonNotFound
	}
	return err
}
