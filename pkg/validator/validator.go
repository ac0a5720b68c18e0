package validator

import (
	"errors"
	"fmt"
	"strings"

	validators "github.com/go-playground/validator/v10"
)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func
func New() Validator {
	v := validators.New()
	return &validator{
		validator: v,
	}
}

// ValidateStruct func - Validates a struct and flattens field violations
// into one readable message
func (v *validator) ValidateStruct(inf interface{}) error {
	err := v.validator.Struct(inf)
	if err == nil {
		return nil
	}

	var fieldErrors validators.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		if fieldError.Param() != "" {
			messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s=%s' rule", fieldError.Field(), fieldError.Tag(), fieldError.Param()))
			continue
		}
		messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' rule", fieldError.Field(), fieldError.Tag()))
	}
	return errors.New(strings.Join(messages, "; "))
}
