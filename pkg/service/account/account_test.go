package account_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/domain"
	accountdomain "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/person"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/amirasaad/ledger/pkg/repository"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	op, result string
}

type fakeRecorder struct {
	calls []recorded
}

func (f *fakeRecorder) ObserveBalanceOperation(op, result string) {
	f.calls = append(f.calls, recorded{op, result})
}

func runInTx(uow *mocks.MockUnitOfWork) {
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Once()
}

func lockedRow(id uuid.UUID, balance string) *dto.AccountRead {
	return &dto.AccountRead{
		ID:       id,
		PersonID: uuid.New(),
		Balance:  decimal.RequireFromString(balance),
	}
}

func TestCredit_Success(t *testing.T) {
	assert := assert.New(t)
	uow := mocks.NewMockUnitOfWork(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	rec := &fakeRecorder{}
	id := uuid.New()

	runInTx(uow)
	uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
	accountRepo.EXPECT().GetForUpdate(mock.Anything, id).Return(lockedRow(id, "1000.00"), nil).Once()
	accountRepo.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(u dto.AccountUpdate) bool {
		return u.Balance != nil && u.Balance.Equal(decimal.RequireFromString("1250.50"))
	})).Return(nil).Once()

	svc := accountsvc.New(uow, rec, slog.Default())
	balance, err := svc.Credit(context.Background(), id, decimal.RequireFromString("250.50"))
	require.NoError(t, err)
	assert.True(decimal.RequireFromString("1250.50").Equal(balance))
	assert.Equal([]recorded{{"credit", metrics.ResultOK}}, rec.calls)
}

func TestDebit_Success(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	id := uuid.New()

	runInTx(uow)
	uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
	accountRepo.EXPECT().GetForUpdate(mock.Anything, id).Return(lockedRow(id, "500.00"), nil).Once()
	accountRepo.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil).Once()

	balance, err := accountsvc.New(uow, nil, slog.Default()).
		Debit(context.Background(), id, decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestDebit_InsufficientFundsWritesNothing(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	rec := &fakeRecorder{}
	id := uuid.New()

	runInTx(uow)
	uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
	accountRepo.EXPECT().GetForUpdate(mock.Anything, id).Return(lockedRow(id, "100.00"), nil).Once()

	_, err := accountsvc.New(uow, rec, slog.Default()).
		Debit(context.Background(), id, decimal.RequireFromString("100.01"))
	assert.ErrorIs(t, err, accountdomain.ErrInsufficientFunds)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []recorded{{"debit", metrics.ResultRejected}}, rec.calls)
}

func TestBalanceOperation_InvalidAmountNeverTouchesStore(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	svc := accountsvc.New(uow, nil, slog.Default())
	id := uuid.New()

	for _, amount := range []string{"0", "-10", "0.001"} {
		_, err := svc.Credit(context.Background(), id, decimal.RequireFromString(amount))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, amount)
		_, err = svc.Debit(context.Background(), id, decimal.RequireFromString(amount))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, amount)
	}
}

func TestCredit_UnknownAccount(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	id := uuid.New()

	runInTx(uow)
	uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
	accountRepo.EXPECT().GetForUpdate(mock.Anything, id).Return(nil, domain.ErrNotFound).Once()

	_, err := accountsvc.New(uow, nil, slog.Default()).Credit(context.Background(), id, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetBalance(t *testing.T) {
	personID, accountID := uuid.New(), uuid.New()

	t.Run("person with account", func(t *testing.T) {
		uow := mocks.NewMockUnitOfWork(t)
		personRepo := mocks.NewMockPersonRepository(t)
		uow.EXPECT().PersonRepository().Return(personRepo, nil).Once()
		personRepo.EXPECT().Get(mock.Anything, personID).Return(&dto.PersonRead{
			ID:      personID,
			Name:    "Ana",
			Account: &dto.AccountSummary{ID: accountID, Balance: decimal.NewFromInt(300)},
		}, nil).Once()

		b, err := accountsvc.New(uow, nil, slog.Default()).GetBalance(context.Background(), personID)
		require.NoError(t, err)
		assert.Equal(t, &dto.BalanceRead{
			PersonID:  personID,
			Name:      "Ana",
			AccountID: accountID,
			Balance:   decimal.NewFromInt(300),
		}, b)
	})

	t.Run("person without account", func(t *testing.T) {
		uow := mocks.NewMockUnitOfWork(t)
		personRepo := mocks.NewMockPersonRepository(t)
		uow.EXPECT().PersonRepository().Return(personRepo, nil).Once()
		personRepo.EXPECT().Get(mock.Anything, personID).Return(&dto.PersonRead{ID: personID, Name: "Ana"}, nil).Once()

		b, err := accountsvc.New(uow, nil, slog.Default()).GetBalance(context.Background(), personID)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
	})

	t.Run("unknown person", func(t *testing.T) {
		uow := mocks.NewMockUnitOfWork(t)
		personRepo := mocks.NewMockPersonRepository(t)
		uow.EXPECT().PersonRepository().Return(personRepo, nil).Once()
		personRepo.EXPECT().Get(mock.Anything, personID).Return(nil, domain.ErrNotFound).Once()

		_, err := accountsvc.New(uow, nil, slog.Default()).GetBalance(context.Background(), personID)
		assert.ErrorIs(t, err, person.ErrPersonNotFound)
	})
}

func TestListAccounts(t *testing.T) {
	uow := mocks.NewMockUnitOfWork(t)
	accountRepo := mocks.NewMockAccountRepository(t)
	want := []*dto.AccountRead{lockedRow(uuid.New(), "1.00")}
	uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
	accountRepo.EXPECT().List(mock.Anything).Return(want, nil).Once()

	got, err := accountsvc.New(uow, nil, slog.Default()).ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDeleteAccount(t *testing.T) {
	id := uuid.New()

	t.Run("deletes", func(t *testing.T) {
		uow := mocks.NewMockUnitOfWork(t)
		accountRepo := mocks.NewMockAccountRepository(t)
		runInTx(uow)
		uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
		accountRepo.EXPECT().Delete(mock.Anything, id).Return(nil).Once()
		assert.NoError(t, accountsvc.New(uow, nil, slog.Default()).DeleteAccount(context.Background(), id))
	})

	t.Run("unknown account", func(t *testing.T) {
		uow := mocks.NewMockUnitOfWork(t)
		accountRepo := mocks.NewMockAccountRepository(t)
		runInTx(uow)
		uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
		accountRepo.EXPECT().Delete(mock.Anything, id).Return(domain.ErrNotFound).Once()
		err := accountsvc.New(uow, nil, slog.Default()).DeleteAccount(context.Background(), id)
		assert.ErrorIs(t, err, accountdomain.ErrAccountNotFound)
	})
}
