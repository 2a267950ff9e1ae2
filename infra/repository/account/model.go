package account

// Account represents an account record in the database.
type Account struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(63);not null"`
	Address     string  `gorm:"type:varchar(256);not null"`
	Email       string  `gorm:"type:varchar(63);not null"`
	PhoneNumber *string `gorm:"type:varchar(32)"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
