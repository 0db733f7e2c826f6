package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-library-bff/models"
)

// JSON field names accepted by Validate for partial validation.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldAddress   = "address"
	FieldLanguage  = "language"

	FieldAuthorID = "authorId"
	FieldPages    = "pages"
	FieldTitle    = "title"
)

// authorFields and bookFields map JSON field names to struct field names.
var (
	authorFields = map[string]string{
		FieldFirstName: "FirstName",
		FieldLastName:  "LastName",
		FieldAddress:   "Address",
		FieldLanguage:  "Language",
	}
	bookFields = map[string]string{
		FieldAuthorID: "AuthorID",
		FieldPages:    "Pages",
		FieldTitle:    "Title",
	}
)

// CommandValidator checks CreateAuthorCommand and CreateBookCommand values
// against the rules in their `validate` struct tags.
type CommandValidator struct {
	validate *validator.Validate
}

// NewCommandValidator constructs a CommandValidator and returns it as the
// Validator interface.
func NewCommandValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &CommandValidator{validate: validate}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of each command are accepted.
//
// Returns ErrUnsupportedType if obj is not a known command, ErrUnknownField
// if fields names something the command does not have, and an error wrapping
// ErrInvalidCommand listing every broken rule otherwise.
func (v *CommandValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateAuthorCommand:
		return v.validateStruct(ctx, value, authorFields, fields...)
	case *models.CreateAuthorCommand:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *value, authorFields, fields...)
	case models.CreateBookCommand:
		return v.validateStruct(ctx, value, bookFields, fields...)
	case *models.CreateBookCommand:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, *value, bookFields, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CommandValidator) validateStruct(ctx context.Context, value any, known map[string]string, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, value)
	} else {
		structFields := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := known[f]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			structFields = append(structFields, name)
		}
		err = v.validate.StructPartialCtx(ctx, value, structFields...)
	}

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidCommand, strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	default:
		return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
	}
}
