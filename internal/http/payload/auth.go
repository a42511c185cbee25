package payload

import (
	"calendr/internal/core"

	"github.com/jellydator/validation"
)

const minPasswordLen = 6

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a RegisterRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required.Error("Username and password required")),
		validation.Field(&a.Password,
			validation.Required.Error("Username and password required"),
			validation.Length(minPasswordLen, 0).Error("Password must be at least 6 characters")),
	)
}

func (a RegisterRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: a.Username,
		Password: a.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a LoginRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required.Error("Username and password required")),
		validation.Field(&a.Password, validation.Required.Error("Username and password required")),
	)
}

func (a LoginRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: a.Username,
		Password: a.Password,
	}
}
