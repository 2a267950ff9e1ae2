package account

// AccountPayload documents the JSON shape of an account in the OpenAPI document.
// Handlers work on account.Serialize/Deserialize directly.
type AccountPayload struct {
	ID          *uint   `json:"id" example:"1"`
	Name        string  `json:"name" example:"John Doe" maxLength:"63"`
	Address     string  `json:"address" example:"1 Main St" maxLength:"256"`
	Email       string  `json:"email" example:"john@example.com" maxLength:"63"`
	PhoneNumber *string `json:"phone_number" example:"555-0100" maxLength:"32"`
}
