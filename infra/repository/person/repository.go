package person

import (
	"context"

	"github.com/amirasaad/ledger/infra/repository/common"
	"github.com/amirasaad/ledger/pkg/dto"
	repo "github.com/amirasaad/ledger/pkg/repository/person"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a new CQRS-style person repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements person.Repository. The account is created separately
// through the account repository in the same unit of work.
func (r *repository) Create(ctx context.Context, create dto.PersonCreate) error {
	p := Person{
		ID:   create.ID,
		Name: create.Name,
	}
	return common.WrapError(func() error {
		return r.db.WithContext(ctx).Omit("Account").Create(&p).Error
	})
}

// Update implements person.Repository.
func (r *repository) Update(ctx context.Context, id uuid.UUID, update dto.PersonUpdate) error {
	updates := make(map[string]any)
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if len(updates) == 0 {
		return nil
	}
	return common.RequireAffected(
		r.db.WithContext(ctx).Model(&Person{}).Where("id = ?", id).Updates(updates),
	)
}

// Get implements person.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.PersonRead, error) {
	var p Person
	if err := r.db.WithContext(ctx).
		Preload("Account").
		First(&p, "id = ?", id).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	return mapModelToDTO(&p), nil
}

// List implements person.Repository.
func (r *repository) List(ctx context.Context) ([]*dto.PersonRead, error) {
	var people []Person
	if err := r.db.WithContext(ctx).
		Preload("Account").
		Order("created_at, id").
		Find(&people).Error; err != nil {
		return nil, common.MapGormErrorToDomain(err)
	}
	result := make([]*dto.PersonRead, 0, len(people))
	for i := range people {
		result = append(result, mapModelToDTO(&people[i]))
	}
	return result, nil
}

// Delete implements person.Repository.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return common.RequireAffected(
		r.db.WithContext(ctx).Delete(&Person{}, "id = ?", id),
	)
}

// Count implements person.Repository.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := common.WrapError(func() error {
		return r.db.WithContext(ctx).Model(&Person{}).Count(&count).Error
	})
	return count, err
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(p *Person) *dto.PersonRead {
	read := &dto.PersonRead{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
	if p.Account != nil {
		read.Account = &dto.AccountSummary{
			ID:      p.Account.ID,
			Balance: p.Account.Balance,
		}
	}
	return read
}
