// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/ecclesia/internal/platform/apperr"
)

// # Tagged Struct Validation

// structValidator is safe for concurrent use and caches struct metadata.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	instance := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so details match the request payload.
	instance.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return instance
}

// Struct validates payload against its `validate` tags.
//
//	type CreateEventRequest struct {
//	    Title string `json:"title" validate:"required,max=200"`
//	}
func Struct(payload any) error {
	err := structValidator.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperr.Internal(err)
	}

	details := make([]apperr.FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, apperr.FieldError{
			Field:   fieldErr.Field(),
			Message: fieldMessage(fieldErr),
		})
	}
	return apperr.ValidationError("Validation failed", details...)
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "url", "http_url":
		return "Must be a valid URL"
	case "min":
		return fmt.Sprintf("Minimum %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Maximum %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("Must be at least %s", fieldErr.Param())
	case "gtfield", "gtefield":
		return fmt.Sprintf("Must be after %s", fieldErr.Param())
	default:
		return fmt.Sprintf("Failed validation (%s)", fieldErr.Tag())
	}
}
