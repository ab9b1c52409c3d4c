package user

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = fmt.Errorf("user not found: %w", domain.ErrNotFound)
	// ErrUserUnauthorized is returned for any failed login, whether the
	// username is unknown or the password does not match.
	ErrUserUnauthorized = fmt.Errorf("invalid username or password: %w", domain.ErrUnauthorized)
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = fmt.Errorf("username already exists: %w", domain.ErrAlreadyExists)
	// ErrCredentialsRequired is returned when username or password is blank.
	ErrCredentialsRequired = fmt.Errorf("username and password are required: %w", domain.ErrInvalidInput)
	// ErrUsernameTooLong is returned when a username exceeds MaxUsernameLength characters.
	ErrUsernameTooLong = fmt.Errorf("username is too long: %w", domain.ErrInvalidInput)
	// ErrPasswordTooLong is returned when a password exceeds MaxPasswordBytes,
	// the most bcrypt can hash.
	ErrPasswordTooLong = fmt.Errorf("password is too long: %w", domain.ErrInvalidInput)
)

const (
	// MaxUsernameLength matches the users.username column.
	MaxUsernameLength = 100
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// User is a credential record. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// NewUser creates a new User with a hashed password and current timestamps.
// Usernames are case-sensitive.
func NewUser(username, password string) (*User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrCredentialsRequired
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return nil, ErrUsernameTooLong
	}
	if len(password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
