package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Room is a named broadcast label. The name is its unique key.
type Room struct {
	Name string `validate:"required,max=64"`
}

func NewRoom(name string) Room {
	return Room{Name: name}
}

// Validate rejects empty, oversized or blank-padded names.
func (r Room) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Name) != r.Name {
		return errBlankPadded
	}
	return nil
}
