package auth

import (
	"github.com/tabacalera-hn/asistencia-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProfileRequest struct {
	Username        string  `json:"username"`
	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, . _ -)",
		})
	}

	if r.NewPassword != nil && !validator.IsEmpty(*r.NewPassword) {
		if len(*r.NewPassword) < 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "new_password",
				Message: "new password must be at least 6 characters",
			})
		}
		if r.CurrentPassword == nil || validator.IsEmpty(*r.CurrentPassword) {
			errs = append(errs, validator.ValidationError{
				Field:   "current_password",
				Message: "current password is required to change the password",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type TokenResponse struct {
	AccessToken           string      `json:"access_token"`
	AccessTokenExpiresIn  int64       `json:"access_token_expires_in"`
	RefreshToken          string      `json:"-"`
	RefreshTokenExpiresIn int64       `json:"-"`
	User                  SessionUser `json:"user"`
}
