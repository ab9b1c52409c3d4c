package account

import (
	"context"

	"github.com/amirasaad/ledger/infra/repository/common"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a new CQRS-style account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := mapCreateDTOToModel(create)
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&acct).Error
	})
}

// Update implements account.Repository.
func (r *repository) Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	return common.RequireAffected(
		r.db.WithContext(ctx).Model(&Account{}).Where("id = ?", id).Updates(updates),
	)
}

// GetForUpdate implements account.Repository. It must run inside a
// transaction for the lock to outlive the statement.
func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct Account
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&acct, "id = ?", id).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&acct), nil
}

// List implements account.Repository.
func (r *repository) List(ctx context.Context) ([]*dto.AccountRead, error) {
	var accts []Account
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&accts).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, nil
}

// Delete implements account.Repository.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return common.RequireAffected(
		r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id),
	)
}

// mapCreateDTOToModel maps AccountCreate DTO to GORM model.
func mapCreateDTOToModel(create dto.AccountCreate) Account {
	return Account{
		ID:       create.ID,
		PersonID: create.PersonID,
		Balance:  create.Balance,
	}
}

// mapUpdateDTOToModel maps AccountUpdate DTO to a map for GORM Updates.
func mapUpdateDTOToModel(update dto.AccountUpdate) map[string]any {
	updates := make(map[string]any)
	if update.Balance != nil {
		updates["balance"] = *update.Balance
	}
	return updates
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(acct *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:        acct.ID,
		PersonID:  acct.PersonID,
		Balance:   acct.Balance,
		CreatedAt: acct.CreatedAt,
		UpdatedAt: acct.UpdatedAt,
	}
}
