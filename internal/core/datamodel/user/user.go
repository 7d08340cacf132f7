package user

import (
	"github.com/frahmantamala/finance-tracker/internal/core/datamodel"
)

// User is the persistence model for registered users. Email doubles as the
// login name.
type User struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"column:email;not null;uniqueIndex"`
	FirstName    string `json:"first_name" gorm:"column:first_name"`
	LastName     string `json:"last_name" gorm:"column:last_name"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	datamodel.SoftDeleteModel
}

func (User) TableName() string {
	return "users"
}
