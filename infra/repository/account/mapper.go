package account

import (
	"github.com/amirasaad/accounts/pkg/domain/account"
	"github.com/samber/lo"
)

func mapDomainToModel(a *account.Account) Account {
	m := Account{
		Name:        a.Name,
		Address:     a.Address,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
	}
	if a.ID != nil {
		m.ID = *a.ID
	}
	return m
}

// mapDomainToUpdates lists every mutable column so a nil phone number is
// written as NULL.
func mapDomainToUpdates(a *account.Account) map[string]any {
	return map[string]any{
		"name":         a.Name,
		"address":      a.Address,
		"email":        a.Email,
		"phone_number": a.PhoneNumber,
	}
}

func mapModelToDomain(m *Account) *account.Account {
	id := m.ID
	return &account.Account{
		ID:          &id,
		Name:        m.Name,
		Address:     m.Address,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
	}
}

func mapModelsToDomain(ms []Account) []*account.Account {
	return lo.Map(ms, func(m Account, _ int) *account.Account {
		return mapModelToDomain(&m)
	})
}
