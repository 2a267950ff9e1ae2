package account

import (
	"context"

	infrarepo "github.com/amirasaad/accounts/infra/repository"
	"github.com/amirasaad/accounts/pkg/domain"
	"github.com/amirasaad/accounts/pkg/domain/account"
	repo "github.com/amirasaad/accounts/pkg/repository/account"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, a *account.Account) error {
	m := mapDomainToModel(a)
	m.ID = 0
	if err := infrarepo.WrapError("create account", func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	}); err != nil {
		return err
	}
	id := m.ID
	a.ID = &id
	return nil
}

// Update implements account.Repository.
func (r *repository) Update(ctx context.Context, a *account.Account) error {
	if a.ID == nil {
		return account.ErrMissingID
	}
	var res *gorm.DB
	err := infrarepo.WrapError("update account", func() error {
		res = r.db.WithContext(ctx).
			Model(&Account{}).
			Where("id = ?", *a.ID).
			Updates(mapDomainToUpdates(a))
		return res.Error
	})
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete implements account.Repository.
func (r *repository) Delete(ctx context.Context, id uint) error {
	return infrarepo.WrapError("delete account", func() error {
		return r.db.WithContext(ctx).Delete(&Account{}, id).Error
	})
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id uint) (*account.Account, error) {
	var m Account
	if err := infrarepo.WrapError("get account", func() error {
		return r.db.WithContext(ctx).First(&m, id).Error
	}); err != nil {
		return nil, err
	}
	return mapModelToDomain(&m), nil
}

// List implements account.Repository.
func (r *repository) List(ctx context.Context) ([]*account.Account, error) {
	var ms []Account
	if err := infrarepo.WrapError("list accounts", func() error {
		return r.db.WithContext(ctx).Order("id").Find(&ms).Error
	}); err != nil {
		return nil, err
	}
	return mapModelsToDomain(ms), nil
}

// ListByName implements account.Repository.
func (r *repository) ListByName(ctx context.Context, name string) ([]*account.Account, error) {
	var ms []Account
	if err := infrarepo.WrapError("list accounts by name", func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).Order("id").Find(&ms).Error
	}); err != nil {
		return nil, err
	}
	return mapModelsToDomain(ms), nil
}
