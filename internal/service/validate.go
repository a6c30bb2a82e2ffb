package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"aquarium-tank-api/internal/domain"
)

// Validator checks input structs against their `validate` tags and reports
// every failing field by its JSON name.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct returns nil, a *domain.ValidationError holding all violations, or
// the validator's own error when in is not a struct.
func (x *Validator) Struct(in any) error {
	err := x.v.Struct(in)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return err
	}
	out := make([]domain.Violation, 0, len(fes))
	for _, fe := range fes {
		out = append(out, domain.Violation{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationError(out...)
}

func message(fe validator.FieldError) string {
	f, p := fe.Field(), fe.Param()
	switch fe.Tag() {
	case "required":
		return f + " is required"
	case "email":
		return f + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", f, strings.ReplaceAll(p, " ", ", "))
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", f, p)
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("%s must contain at least %s items", f, p)
		}
		return fmt.Sprintf("%s must be at least %s", f, p)
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at most %s characters", f, p)
		case reflect.Slice, reflect.Array:
			return fmt.Sprintf("%s must contain at most %s items", f, p)
		}
		return fmt.Sprintf("%s must be at most %s", f, p)
	}
	return fmt.Sprintf("%s failed %s validation", f, fe.Tag())
}
