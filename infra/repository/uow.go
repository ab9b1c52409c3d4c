package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/ledger/infra/repository/account"
	"github.com/amirasaad/ledger/infra/repository/common"
	"github.com/amirasaad/ledger/infra/repository/person"
	"github.com/amirasaad/ledger/infra/repository/user"
	"github.com/amirasaad/ledger/pkg/repository"
	repoaccount "github.com/amirasaad/ledger/pkg/repository/account"
	repoperson "github.com/amirasaad/ledger/pkg/repository/person"
	repouser "github.com/amirasaad/ledger/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories obtained inside Do share the transaction session; outside Do
// they run on the plain connection pool.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repoperson.Repository)(nil)).Elem():  func(db *gorm.DB) any { return person.New(db) },
			reflect.TypeOf((*repoaccount.Repository)(nil)).Elem(): func(db *gorm.DB) any { return account.New(db) },
			reflect.TypeOf((*repouser.Repository)(nil)).Elem():    func(db *gorm.DB) any { return user.New(db) },
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
// Errors from fn come back unchanged; failures to begin or commit are reported as store errors.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	var fnErr error
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		fnErr = fn(txnUow)
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	return common.MapGormErrorToDomain(err)
}

// GetRepository provides generic access to repositories using the transaction session.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

// PersonRepository returns the person repository bound to this unit of work.
func (u *UoW) PersonRepository() (repoperson.Repository, error) {
	return getTyped[repoperson.Repository](u)
}

// AccountRepository returns the account repository bound to this unit of work.
func (u *UoW) AccountRepository() (repoaccount.Repository, error) {
	return getTyped[repoaccount.Repository](u)
}

// UserRepository returns the user repository bound to this unit of work.
func (u *UoW) UserRepository() (repouser.Repository, error) {
	return getTyped[repouser.Repository](u)
}

// Ping checks that the database answers.
func (u *UoW) Ping(ctx context.Context) error {
	sqlDB, err := u.db.DB()
	if err != nil {
		return common.MapGormErrorToDomain(err)
	}
	return common.MapGormErrorToDomain(sqlDB.PingContext(ctx))
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func getTyped[T any](u *UoW) (T, error) {
	var zero T
	repoAny, err := u.GetRepository(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("invalid repository type: %T", repoAny)
	}
	return repo, nil
}
