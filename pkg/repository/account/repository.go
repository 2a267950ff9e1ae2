package account

import (
	"context"

	"github.com/amirasaad/accounts/pkg/domain/account"
)

// Repository defines the store boundary for accounts. Each call commits its
// own unit of work.
type Repository interface {
	// Create inserts a transient account and assigns its ID.
	Create(ctx context.Context, a *account.Account) error

	// Update writes every mutable field of a persisted account.
	Update(ctx context.Context, a *account.Account) error

	// Delete removes the account with the given ID. Missing rows are ignored.
	Delete(ctx context.Context, id uint) error

	// Get retrieves an account by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id uint) (*account.Account, error)

	// List returns every account ordered by ID.
	List(ctx context.Context) ([]*account.Account, error)

	// ListByName returns accounts whose name matches exactly, ordered by ID.
	ListByName(ctx context.Context, name string) ([]*account.Account, error)
}
