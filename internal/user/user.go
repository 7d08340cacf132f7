package user

import (
	"time"

	userDatamodel "github.com/frahmantamala/finance-tracker/internal/core/datamodel/user"
)

// User is the domain model for a registered account. Username is the login
// name, which is always the email address.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsActiveUser() bool {
	return u.IsActive
}

func (u *User) ToProfileResponse() ProfileResponse {
	return ProfileResponse{
		ID:        u.ID,
		Username:  u.Email,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewUser(email, firstName, lastName, passwordHash string) *User {
	now := time.Now()
	return &User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func ToDataModel(u *User) *userDatamodel.User {
	dm := &userDatamodel.User{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
	}
	dm.IsActive = u.IsActive
	dm.CreatedAt = u.CreatedAt
	dm.UpdatedAt = u.UpdatedAt
	return dm
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
