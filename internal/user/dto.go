package user

import (
	"net/mail"
	"strings"

	errors "github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/core/common/validation"
)

const minPasswordLength = 8

func emailFormat(field string) func(interface{}) *errors.AppError {
	return func(value interface{}) *errors.AppError {
		v, ok := value.(string)
		if !ok || v == "" {
			return nil
		}
		if _, err := mail.ParseAddress(v); err != nil {
			return errors.NewValidationFieldError(field, "email address is not valid", errors.ErrCodeValidationFailed)
		}
		return nil
	}
}

func passwordLength(field string) func(interface{}) *errors.AppError {
	return func(value interface{}) *errors.AppError {
		v, ok := value.(string)
		if !ok || v == "" {
			return nil
		}
		if len(v) < minPasswordLength {
			return errors.NewValidationFieldError(field, "password must be at least 8 characters", errors.ErrCodeValidationFailed)
		}
		return nil
	}
}

type RegisterDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (d *RegisterDTO) Validate() error {
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)

	v := validation.NewValidator()
	v.Field("first_name", d.FirstName).Required().MaxLength(100)
	v.Field("last_name", d.LastName).MaxLength(100)
	v.Field("email", d.Email).Required().MaxLength(255).Custom(emailFormat("email"))
	v.Field("password", d.Password).Required().Custom(passwordLength("password"))
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type UsersResponse struct {
	Users []*User `json:"users"`
}

type RegisterResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message"`
}
