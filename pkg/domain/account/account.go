package account

import (
	"fmt"
)

// Column widths of the accounts table.
const (
	MaxNameLength        = 63
	MaxAddressLength     = 256
	MaxEmailLength       = 63
	MaxPhoneNumberLength = 32
)

// Account is a single row of the accounts table.
//
// Invariants:
//   - ID is nil while the account is transient and set once the store has persisted it.
//   - Name, Address and Email are required; PhoneNumber is optional.
type Account struct {
	ID          *uint
	Name        string
	Address     string
	Email       string
	PhoneNumber *string
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id          *uint
	name        string
	address     string
	email       string
	phoneNumber *string
}

// New creates a new Builder for a transient account.
func New() *Builder {
	return &Builder{}
}

// WithID sets the identity. This should only be used for hydrating an account
// loaded from a data store or for test setup.
func (b *Builder) WithID(id uint) *Builder {
	b.id = &id
	return b
}

// WithName sets the account holder name. This is a mandatory field.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithAddress sets the postal address. This is a mandatory field.
func (b *Builder) WithAddress(address string) *Builder {
	b.address = address
	return b
}

// WithEmail sets the contact email. This is a mandatory field.
func (b *Builder) WithEmail(email string) *Builder {
	b.email = email
	return b
}

// WithPhoneNumber sets the optional phone number.
func (b *Builder) WithPhoneNumber(phone string) *Builder {
	b.phoneNumber = &phone
	return b
}

// Build validates the collected fields and returns the Account.
func (b *Builder) Build() (*Account, error) {
	a := &Account{
		ID:          b.id,
		Name:        b.name,
		Address:     b.address,
		Email:       b.email,
		PhoneNumber: b.phoneNumber,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// IsPersisted reports whether the store has assigned an identity.
func (a *Account) IsPersisted() bool {
	return a.ID != nil
}

// String implements fmt.Stringer for log output.
func (a *Account) String() string {
	if a.ID == nil {
		return fmt.Sprintf("<Account %s id=[None]>", a.Name)
	}
	return fmt.Sprintf("<Account %s id=[%d]>", a.Name, *a.ID)
}
