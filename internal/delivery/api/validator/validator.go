// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json names.
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate runs the struct tags of i.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return errors.New(describe(fieldErrs))
		}

		return errors.WithStack(err)
	}

	return nil
}

func describe(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		switch fieldErr.Tag() {
		case "required":
			parts = append(parts, fieldErr.Field()+" es requerido")
		case "email":
			parts = append(parts, fieldErr.Field()+" no es un correo válido")
		case "oneof":
			parts = append(parts, fieldErr.Field()+" debe ser uno de: "+fieldErr.Param())
		default:
			parts = append(parts, fieldErr.Field()+" no es válido ("+fieldErr.Tag()+")")
		}
	}

	return strings.Join(parts, "; ")
}
