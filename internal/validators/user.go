package validators

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-accounts/models"
)

// UserValidator implements the Validator interface for the account payloads:
// RegisterRequest, Credentials and UserUpdate. Rules live in the models'
// `validate` struct tags.
//
// Rejections are returned as [FieldErrors] keyed by JSON field name.
type UserValidator struct {
	validate *validator.Validate
}

// customValidations are the tags the models use beyond the built-in ones.
var customValidations = map[string]validator.Func{
	// notblank rejects empty and whitespace-only strings
	"notblank": func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	},
}

// NewUserValidator constructs a UserValidator and returns it as the
// Validator interface. It panics if a custom validation cannot be
// registered, since the models' tags would then be unenforceable.
func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := registerValidations(v, customValidations); err != nil {
		panic(err)
	}

	return &UserValidator{validate: v}
}

func registerValidations(v *validator.Validate, funcs map[string]validator.Func) error {
	for tag, fn := range funcs {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("error registering %q validation: %w", tag, err)
		}
	}
	return nil
}

// Validate checks obj against its struct tags. Both value and pointer forms
// of each supported model are accepted.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.Credentials / *models.Credentials
//   - models.UserUpdate / *models.UserUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields (JSON names) restrict the reported errors to that subset.
func (v *UserValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, models.Credentials, models.UserUpdate:
		return v.validateStruct(value, fields)
	case *models.RegisterRequest:
		return v.validateStruct(*value, fields)
	case *models.Credentials:
		return v.validateStruct(*value, fields)
	case *models.UserUpdate:
		return v.validateStruct(*value, fields)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateStruct(obj any, fields []string) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, e := range validationErrors {
		if len(fields) > 0 && !slices.Contains(fields, e.Field()) {
			continue
		}
		if _, seen := fieldErrors[e.Field()]; !seen {
			fieldErrors[e.Field()] = formatValidationError(e)
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	default:
		return "is invalid"
	}
}
