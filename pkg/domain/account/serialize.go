package account

// Payload keys.
const (
	KeyID          = "id"
	KeyName        = "name"
	KeyAddress     = "address"
	KeyEmail       = "email"
	KeyPhoneNumber = "phone_number"
)

// Serialize returns the mapping representation of the account. Every key is
// present; a nil ID or phone number is encoded as nil (JSON null).
func (a *Account) Serialize() map[string]any {
	var id any
	if a.ID != nil {
		id = *a.ID
	}
	var phone any
	if a.PhoneNumber != nil {
		phone = *a.PhoneNumber
	}
	return map[string]any{
		KeyID:          id,
		KeyName:        a.Name,
		KeyAddress:     a.Address,
		KeyEmail:       a.Email,
		KeyPhoneNumber: phone,
	}
}

// Deserialize overwrites the mutable fields from a decoded payload. The ID is
// left untouched. On failure the receiver is not modified.
func (a *Account) Deserialize(data any) error {
	m, ok := data.(map[string]any)
	if !ok {
		return notAMapping(data)
	}

	var required [3]string
	for i, key := range []string{KeyName, KeyAddress, KeyEmail} {
		raw, present := m[key]
		if !present {
			return missingField(key)
		}
		s, ok := raw.(string)
		if !ok {
			return wrongType(key, raw)
		}
		required[i] = s
	}

	var phone *string
	if raw, present := m[KeyPhoneNumber]; present && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return wrongType(KeyPhoneNumber, raw)
		}
		phone = &s
	}

	next := Account{
		ID:          a.ID,
		Name:        required[0],
		Address:     required[1],
		Email:       required[2],
		PhoneNumber: phone,
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*a = next
	return nil
}

// Deserialize builds a transient account from a decoded payload.
func Deserialize(data any) (*Account, error) {
	a := &Account{}
	if err := a.Deserialize(data); err != nil {
		return nil, err
	}
	return a, nil
}
