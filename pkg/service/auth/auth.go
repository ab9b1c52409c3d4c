package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

// RoleUser is the only role issued today.
const RoleUser = "User"

type Strategy interface {
	Login(ctx context.Context, username, password string) (*dto.UserRead, error)
	GenerateToken(ctx context.Context, u *dto.UserRead) (string, error)
}

type Service struct {
	uow      repository.UnitOfWork
	strategy Strategy
	logger   *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	strategy Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, strategy: strategy, logger: logger}
}

func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(uow, NewJWTStrategy(uow, cfg, logger), logger)
}

// Register stores a new user with a bcrypt hash of password.
func (s *Service) Register(
	ctx context.Context,
	username, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Register", "username", username)
	log.Debug("Register called")

	entity, err := user.NewUser(username, password)
	if err != nil {
		log.Warn("Register rejected", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		exists, err := repo.ExistsByUsername(ctx, entity.Username)
		if err != nil {
			return err
		}
		if exists {
			return user.ErrUsernameTaken
		}
		err = repo.Create(ctx, &dto.UserCreate{
			ID:       entity.ID,
			Username: entity.Username,
			Password: entity.Password,
		})
		// Lost a race with a concurrent registration.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return user.ErrUsernameTaken
		}
		return err
	})
	if err != nil {
		log.Error("Register failed", "error", err)
		return nil, err
	}

	u = &dto.UserRead{
		ID:             entity.ID,
		Username:       entity.Username,
		HashedPassword: entity.Password,
		CreatedAt:      entity.CreatedAt,
		UpdatedAt:      entity.UpdatedAt,
	}
	log.Info("Register successful", "userID", u.ID)
	return
}

// Login verifies the credentials and returns a signed token. Unknown users and
// wrong passwords fail with the same ErrUserUnauthorized.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (token string, err error) {
	log := s.logger.With("context", "Login", "username", username)
	log.Debug("Login called")
	u, err := s.strategy.Login(ctx, username, password)
	if err != nil {
		log.Error("Login failed", "error", err)
		return "", err
	}
	token, err = s.strategy.GenerateToken(ctx, u)
	if err != nil {
		log.Error("GenerateToken failed", "userID", u.ID, "error", err)
		return "", err
	}
	log.Info("Login successful", "userID", u.ID)
	return
}

// CountUsers returns the number of registered users.
func (s *Service) CountUsers(ctx context.Context) (int64, error) {
	repo, err := s.uow.UserRepository()
	if err != nil {
		return 0, err
	}
	return repo.Count(ctx)
}

// CurrentUsername reads the name claim of a verified token.
func (s *Service) CurrentUsername(token *jwt.Token) (string, error) {
	if token == nil {
		return "", user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", user.ErrUserUnauthorized
	}
	name, ok := claims["name"].(string)
	if !ok || name == "" {
		return "", user.ErrUserUnauthorized
	}
	return name, nil
}

// JWTStrategy implements Strategy with HS256 tokens.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
	now    func() time.Time
}

func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger, now: time.Now}
}

func (s *JWTStrategy) GenerateToken(
	ctx context.Context,
	u *dto.UserRead,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	log.Debug("GenerateToken called")
	issuedAt := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": u.Username,
		"role": RoleUser,
		"sub":  u.ID.String(),
		"iss":  s.cfg.Issuer,
		"aud":  s.cfg.Audience,
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(s.cfg.Expiry).Unix(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Info("GenerateToken successful")
	return tokenString, nil
}

func (s *JWTStrategy) Login(
	ctx context.Context,
	username, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "username", username)
	log.Debug("Login called")
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}
	u, err = repo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	if u == nil {
		// Always check password hash to avoid timing attacks
		_ = utils.CheckPasswordHash(password, utils.DummyHash)
		log.Warn("Login failed", "error", user.ErrUserUnauthorized)
		return nil, user.ErrUserUnauthorized
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		log.Warn("Login failed", "error", user.ErrUserUnauthorized)
		return nil, user.ErrUserUnauthorized
	}
	return u, nil
}
