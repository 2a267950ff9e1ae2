// Package account provides the lifecycle operations of the Account entity:
// create, update, delete and the lookup queries. Every operation takes a
// context and goes through the injected repository.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/accounts/pkg/domain"
	"github.com/amirasaad/accounts/pkg/domain/account"
	repo "github.com/amirasaad/accounts/pkg/repository/account"
)

// Service wraps the account repository with validation and structured logging.
type Service struct {
	repo   repo.Repository
	logger *slog.Logger
}

// New creates a Service bound to the given store handle.
func New(r repo.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: r, logger: logger}
}

// Create persists a transient account. Any preset ID is discarded and the
// store assigns a fresh one.
func (s *Service) Create(ctx context.Context, a *account.Account) error {
	logger := s.logger.With("name", a.Name)
	logger.Info("Creating account")

	if err := a.Validate(); err != nil {
		logger.Error("Create failed: invalid account", "error", err)
		return err
	}
	a.ID = nil
	if err := s.repo.Create(ctx, a); err != nil {
		logger.Error("Create failed: repo error", "error", err)
		return err
	}
	logger.Info("Account created", "account", a.String())
	return nil
}

// Update writes the mutable fields of a persisted account.
func (s *Service) Update(ctx context.Context, a *account.Account) error {
	logger := s.logger.With("name", a.Name)
	logger.Info("Saving account")

	if a.ID == nil {
		logger.Error("Update failed: account has no ID")
		return account.ErrMissingID
	}
	logger = logger.With("accountID", *a.ID)
	if err := a.Validate(); err != nil {
		logger.Error("Update failed: invalid account", "error", err)
		return err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		logger.Error("Update failed: repo error", "error", err)
		return err
	}
	return nil
}

// Delete removes a persisted account. A transient account or an ID that no
// longer exists is a no-op.
func (s *Service) Delete(ctx context.Context, a *account.Account) error {
	logger := s.logger.With("name", a.Name)
	logger.Info("Deleting account")

	if a.ID == nil {
		return nil
	}
	if err := s.repo.Delete(ctx, *a.ID); err != nil {
		logger.Error("Delete failed: repo error", "accountID", *a.ID, "error", err)
		return err
	}
	return nil
}

// DeleteByID removes the account with the given ID if present.
func (s *Service) DeleteByID(ctx context.Context, id uint) error {
	s.logger.Info("Deleting account", "accountID", id)
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete failed: repo error", "accountID", id, "error", err)
		return err
	}
	return nil
}

// All returns every account ordered by ID.
func (s *Service) All(ctx context.Context) ([]*account.Account, error) {
	s.logger.Info("Processing all accounts")
	accs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("All failed: repo error", "error", err)
		return nil, err
	}
	return accs, nil
}

// Find returns the account with the given ID, or nil when there is none.
func (s *Service) Find(ctx context.Context, id uint) (*account.Account, error) {
	s.logger.Info("Processing lookup for id", "accountID", id)
	a, err := s.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Find failed: repo error", "accountID", id, "error", err)
		return nil, err
	}
	return a, nil
}

// FindOr404 returns the account with the given ID or an error wrapping
// domain.ErrNotFound.
func (s *Service) FindOr404(ctx context.Context, id uint) (*account.Account, error) {
	s.logger.Info("Processing lookup or 404 for id", "accountID", id)
	a, err := s.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("account with id %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		s.logger.Error("FindOr404 failed: repo error", "accountID", id, "error", err)
		return nil, err
	}
	return a, nil
}

// FindByName returns the accounts whose name matches exactly.
func (s *Service) FindByName(ctx context.Context, name string) ([]*account.Account, error) {
	s.logger.Info("Processing name query", "name", name)
	accs, err := s.repo.ListByName(ctx, name)
	if err != nil {
		s.logger.Error("FindByName failed: repo error", "name", name, "error", err)
		return nil, err
	}
	return accs, nil
}
