package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors lists every problem found in a form.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
		return strings.ToLower(f.Name)
	})

	mustRegister(v, "regno", func(fl validator.FieldLevel) bool {
		return ValidateRegistrationNumber(fl.Field().String())
	})
	mustRegister(v, "pkphone", func(fl validator.FieldLevel) bool {
		return ValidatePhoneNumber(fl.Field().String())
	})
	mustRegister(v, "clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// check validates s with struct tags and appends extra problems. It returns
// nil when everything passes.
func check(s any, extra ...string) error {
	var out ValidationErrors

	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			out = append(out, describe(fe))
		}
	}

	for _, e := range extra {
		if e != "" {
			out = append(out, e)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func describe(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "regno":
		return name + " must look like AB12-ABC-123"
	case "pkphone":
		return name + " must be +92 followed by 10 digits"
	case "clock":
		return name + " must be in H:MM format (e.g. 2:00)"
	case "email":
		return name + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", name, fe.Param())
	case "datetime":
		return name + " must be a date like 2025-01-31"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "numeric", "number":
		return name + " must be a number"
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "url":
		return name + " must be a URL"
	case "file":
		return name + " must be an existing file"
	}
	return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
}
