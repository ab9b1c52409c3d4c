package user

import (
	"context"

	"github.com/amirasaad/ledger/infra/repository/common"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository/user"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a new CQRS-style user repository using the provided *gorm.DB.
func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	u := &User{
		ID:       create.ID,
		Username: create.Username,
		Password: create.Password,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(u).Error
	})
}

func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(
		ctx,
	).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	var count int64
	err := common.WrapError(func() error {
		return r.db.WithContext(
			ctx,
		).Model(&User{}).Where("username = ?", username).Count(&count).Error
	})
	return count > 0, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := common.WrapError(func() error {
		return r.db.WithContext(ctx).Model(&User{}).Count(&count).Error
	})
	return count, err
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Username:       u.Username,
		HashedPassword: u.Password,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
