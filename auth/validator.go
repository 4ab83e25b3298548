package auth

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Credentials struct {
	Username string `validate:"required,max=64"`
	Password string `validate:"required,max=72"`
}

func ValidateCredentials(c Credentials) error {
	return validate.Struct(c)
}
