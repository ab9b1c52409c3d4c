package account_test

import (
	"sync"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	domainaccount "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(t *testing.T, balance string) *domainaccount.Account {
	t.Helper()
	acc, err := domainaccount.New().
		WithPersonID(uuid.New()).
		WithBalance(decimal.RequireFromString(balance)).
		Build()
	require.NoError(t, err)
	return acc
}

func TestNewAccount(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	acc, err := domainaccount.New().WithPersonID(uuid.New()).Build()
	require.NoError(err)
	assert.NotEqual(t, uuid.Nil, acc.ID, "Account ID should not be empty")
	assert.True(t, acc.Balance.IsZero())
}

func TestBuild_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		builder  *domainaccount.Builder
		expected error
	}{
		{
			name:     "missing person",
			builder:  domainaccount.New(),
			expected: domainaccount.ErrPersonRequired,
		},
		{
			name:     "negative opening balance",
			builder:  domainaccount.New().WithPersonID(uuid.New()).WithBalance(decimal.NewFromInt(-1)),
			expected: domainaccount.ErrNegativeBalance,
		},
		{
			name:     "too many decimal places",
			builder:  domainaccount.New().WithPersonID(uuid.New()).WithBalance(decimal.RequireFromString("1.005")),
			expected: domainaccount.ErrAmountPrecision,
		},
		{
			name:     "above maximum",
			builder:  domainaccount.New().WithPersonID(uuid.New()).WithBalance(domainaccount.MaxBalance),
			expected: domainaccount.ErrBalanceOverflow,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			acc, err := tc.builder.Build()
			assert.Nil(t, acc)
			assert.ErrorIs(t, err, tc.expected)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCredit(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	acc := newAccount(t, "100")

	balance, err := acc.Credit(decimal.RequireFromString("50.25"))
	assert.NoError(err)
	assert.True(decimal.RequireFromString("150.25").Equal(balance))
	assert.True(balance.Equal(acc.Balance))
}

func TestCredit_InvalidAmount(t *testing.T) {
	t.Parallel()
	for _, amount := range []string{"0", "-10", "0.001"} {
		t.Run(amount, func(t *testing.T) {
			acc := newAccount(t, "100")
			balance, err := acc.Credit(decimal.RequireFromString(amount))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.True(t, decimal.NewFromInt(100).Equal(balance))
			assert.True(t, decimal.NewFromInt(100).Equal(acc.Balance))
		})
	}
}

func TestCredit_Overflow(t *testing.T) {
	t.Parallel()
	acc := newAccount(t, "9999999999999999")
	_, err := acc.Credit(decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domainaccount.ErrBalanceOverflow)
}

func TestDebit(t *testing.T) {
	t.Parallel()
	acc := newAccount(t, "100")

	t.Run("insufficient funds leaves balance unchanged", func(t *testing.T) {
		balance, err := acc.Debit(decimal.NewFromInt(200))
		assert.ErrorIs(t, err, domainaccount.ErrInsufficientFunds)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.True(t, decimal.NewFromInt(100).Equal(balance))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := acc.Debit(decimal.Zero)
		assert.ErrorIs(t, err, domainaccount.ErrTransactionAmountMustBePositive)
		_, err = acc.Debit(decimal.NewFromInt(-5))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("full balance", func(t *testing.T) {
		balance, err := acc.Debit(decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.True(t, balance.IsZero())
	})
}

func TestAnaScenario(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	acc := newAccount(t, "100")

	balance, err := acc.Credit(decimal.NewFromInt(50))
	assert.NoError(err)
	assert.True(decimal.NewFromInt(150).Equal(balance))

	_, err = acc.Debit(decimal.NewFromInt(200))
	assert.ErrorIs(err, domainaccount.ErrInsufficientFunds)
	assert.True(decimal.NewFromInt(150).Equal(acc.Balance))

	balance, err = acc.Debit(decimal.NewFromInt(150))
	assert.NoError(err)
	assert.True(balance.IsZero())

	_, err = acc.Debit(decimal.NewFromInt(1))
	assert.ErrorIs(err, domainaccount.ErrInsufficientFunds)
	assert.True(acc.Balance.IsZero())
}

func TestCredit_OrderIndependent(t *testing.T) {
	t.Parallel()
	amounts := []string{"0.10", "0.20", "13.37", "1000", "0.01"}

	forward := newAccount(t, "5")
	for _, a := range amounts {
		_, err := forward.Credit(decimal.RequireFromString(a))
		require.NoError(t, err)
	}
	backward := newAccount(t, "5")
	for i := len(amounts) - 1; i >= 0; i-- {
		_, err := backward.Credit(decimal.RequireFromString(amounts[i]))
		require.NoError(t, err)
	}
	assert.True(t, forward.Balance.Equal(backward.Balance))
	assert.True(t, decimal.RequireFromString("1018.68").Equal(forward.Balance))
}

func TestDebit_SerializedNeverNegative(t *testing.T) {
	t.Parallel()
	acc := newAccount(t, "100")
	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		succeeded int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			if _, err := acc.Debit(decimal.NewFromInt(30)); err == nil {
				succeeded++
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, succeeded)
	assert.True(t, decimal.NewFromInt(10).Equal(acc.Balance))
}
