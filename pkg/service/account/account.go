// Package account provides the balance operations of the ledger: balance
// queries, credits, debits and standalone account removal.
//
// Credits and debits read the account row with a lock held for the rest of the
// transaction, so concurrent operations on one account apply one after the
// other and a debit can never drive the balance below zero.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/person"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	opCredit = "credit"
	opDebit  = "debit"
)

// Recorder counts balance operations by outcome.
type Recorder interface {
	ObserveBalanceOperation(op, result string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveBalanceOperation(string, string) {}

// Service provides account operations.
type Service struct {
	uow      repository.UnitOfWork
	recorder Recorder
	logger   *slog.Logger
}

// New creates a new account Service. A nil recorder disables counting.
func New(uow repository.UnitOfWork, recorder Recorder, logger *slog.Logger) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{uow: uow, recorder: recorder, logger: logger}
}

// GetBalance returns the name, account id and balance for the given person.
// A person whose account was deleted yields ErrAccountNotFound.
func (s *Service) GetBalance(ctx context.Context, personID uuid.UUID) (b *dto.BalanceRead, err error) {
	log := s.logger.With("context", "GetBalance", "personID", personID)
	log.Debug("GetBalance called")
	people, err := s.uow.PersonRepository()
	if err != nil {
		log.Error("GetBalance failed", "error", err)
		return nil, err
	}
	p, err := people.Get(ctx, personID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = person.ErrPersonNotFound
		}
		log.Error("GetBalance failed", "error", err)
		return nil, err
	}
	if p.Account == nil {
		log.Warn("GetBalance failed", "error", account.ErrAccountNotFound)
		return nil, account.ErrAccountNotFound
	}
	b = &dto.BalanceRead{
		PersonID:  p.ID,
		Name:      p.Name,
		AccountID: p.Account.ID,
		Balance:   p.Account.Balance,
	}
	log.Debug("GetBalance successful", "balance", b.Balance.String())
	return
}

// ListAccounts returns every account, oldest first.
func (s *Service) ListAccounts(ctx context.Context) (accounts []*dto.AccountRead, err error) {
	log := s.logger.With("context", "ListAccounts")
	log.Debug("ListAccounts called")
	repo, err := s.uow.AccountRepository()
	if err != nil {
		log.Error("ListAccounts failed", "error", err)
		return nil, err
	}
	accounts, err = repo.List(ctx)
	if err != nil {
		log.Error("ListAccounts failed", "error", err)
		return nil, err
	}
	log.Debug("ListAccounts successful", "count", len(accounts))
	return
}

// Credit adds amount to the account and returns the new balance.
func (s *Service) Credit(
	ctx context.Context,
	accountID uuid.UUID,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	return s.apply(ctx, opCredit, accountID, amount, (*account.Account).Credit)
}

// Debit subtracts amount from the account and returns the new balance.
// It fails with ErrInsufficientFunds, leaving the balance unchanged, when
// amount exceeds the current balance.
func (s *Service) Debit(
	ctx context.Context,
	accountID uuid.UUID,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	return s.apply(ctx, opDebit, accountID, amount, (*account.Account).Debit)
}

func (s *Service) apply(
	ctx context.Context,
	op string,
	accountID uuid.UUID,
	amount decimal.Decimal,
	mutate func(*account.Account, decimal.Decimal) (decimal.Decimal, error),
) (balance decimal.Decimal, err error) {
	log := s.logger.With("context", op, "accountID", accountID, "amount", amount.String())
	log.Debug(op + " called")
	defer func() { s.recorder.ObserveBalanceOperation(op, result(err)) }()

	if err = account.ValidateAmount(amount); err != nil {
		log.Warn(op+" rejected", "error", err)
		return decimal.Zero, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		row, err := repo.GetForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return account.ErrAccountNotFound
			}
			return err
		}
		acc := &account.Account{
			ID:        row.ID,
			PersonID:  row.PersonID,
			Balance:   row.Balance,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		}
		if balance, err = mutate(acc, amount); err != nil {
			return err
		}
		return repo.Update(ctx, accountID, dto.AccountUpdate{Balance: &balance})
	})
	if err != nil {
		log.Error(op+" failed", "error", err)
		return decimal.Zero, err
	}
	log.Info(op+" successful", "balance", balance.String())
	return balance, nil
}

// DeleteAccount removes the account only; its person is kept and shows no
// account afterwards.
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) (err error) {
	log := s.logger.With("context", "DeleteAccount", "accountID", id)
	log.Debug("DeleteAccount called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return account.ErrAccountNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		log.Error("DeleteAccount failed", "error", err)
		return err
	}
	log.Info("DeleteAccount successful")
	return nil
}

func result(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, domain.ErrStore):
		return metrics.ResultError
	default:
		return metrics.ResultRejected
	}
}
