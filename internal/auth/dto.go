package auth

import (
	"github.com/frahmantamala/budget-tracker/internal/core/common/validation"
)

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required()
	v.Field("password", d.Password).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (d RefreshTokenDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("refresh_token", d.RefreshToken).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// LoginResponse pairs the token set with the identity so clients do not
// need a second request for profile basics.
type LoginResponse struct {
	User   *User      `json:"user"`
	Tokens AuthTokens `json:"tokens"`
}
