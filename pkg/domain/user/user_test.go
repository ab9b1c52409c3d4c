package user_test

import (
	"strings"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := user.NewUser("visualAPI", "senha123")
	require.NoError(t, err)
	assert.Equal(t, "visualAPI", u.Username)
	assert.NotEqual(t, "senha123", u.Password)
	assert.True(t, utils.CheckPasswordHash("senha123", u.Password))
}

func TestNewUser_Blank(t *testing.T) {
	for _, tc := range []struct{ username, password string }{
		{"", "secret"},
		{"bob", ""},
		{"  ", "secret"},
		{"bob", "\t"},
	} {
		u, err := user.NewUser(tc.username, tc.password)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, user.ErrCredentialsRequired)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestNewUser_TooLong(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		expected error
	}{
		{"username over column size", strings.Repeat("u", user.MaxUsernameLength+1), "secret", user.ErrUsernameTooLong},
		{"password over bcrypt limit", "alice", strings.Repeat("p", user.MaxPasswordBytes+1), user.ErrPasswordTooLong},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := user.NewUser(tc.username, tc.password)
			assert.Nil(t, u)
			assert.ErrorIs(t, err, tc.expected)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestNewUser_AtLimits(t *testing.T) {
	u, err := user.NewUser(strings.Repeat("ú", user.MaxUsernameLength), strings.Repeat("p", user.MaxPasswordBytes))
	require.NoError(t, err)
	assert.Equal(t, user.MaxUsernameLength, len([]rune(u.Username)))
}
