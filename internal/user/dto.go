package user

import (
	"strings"

	errors "github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/core/common/validation"
)

const minPasswordLength = 8

// RegisterDTO is the payload for user registration. Email becomes the login
// name.
type RegisterDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (dto *RegisterDTO) Validate() *errors.AppError {
	result := validation.NewResult()

	dto.Email = strings.TrimSpace(dto.Email)
	if dto.Email == "" {
		result.AddFieldError("email", "This field is required.", errors.ErrCodeValidationFailed)
	} else if !strings.Contains(dto.Email, "@") {
		result.AddFieldError("email", "Enter a valid email address.", errors.ErrCodeValidationFailed)
	}

	if strings.TrimSpace(dto.FirstName) == "" {
		result.AddFieldError("first_name", "This field is required.", errors.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(dto.LastName) == "" {
		result.AddFieldError("last_name", "This field is required.", errors.ErrCodeValidationFailed)
	}

	if len(dto.Password) < minPasswordLength {
		result.AddFieldError("password", "Ensure this field has at least 8 characters.", errors.ErrCodeValidationFailed)
	}

	return result.Err()
}

// ProfileResponse is the read-only view of the authenticated caller.
type ProfileResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RegisterResponse echoes the created identity without the password.
type RegisterResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
