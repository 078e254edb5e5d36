// Package validation provides input validation utilities
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gochurch/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// tagMessages maps custom tags to the message returned for a failing field.
var tagMessages = map[string]string{
	"action_type":         "Invalid action type",
	"target_type":         "Invalid target type",
	"verification_status": "Invalid status",
	"username":            "username must be 3-30 letters, numbers, underscores or hyphens",
}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = validate.RegisterValidation("action_type", func(fl validator.FieldLevel) bool {
		return models.ActionType(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("target_type", func(fl validator.FieldLevel) bool {
		return models.TargetType(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("verification_status", func(fl validator.FieldLevel) bool {
		return models.VerificationStatus(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return ValidateUsername(fl.Field().String()) == nil
	})
}

// Struct validates dto against its `validate` tags. The first failing field
// is reported as a VALIDATION_ERROR AppError.
func Struct(dto any) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return models.NewValidationError(err.Error())
	}

	first := vErrs[0]
	if msg, ok := tagMessages[first.Tag()]; ok {
		return models.NewValidationError(msg)
	}
	switch first.Tag() {
	case "required":
		return models.NewValidationError(fmt.Sprintf("%s is required", first.Field()))
	case "max":
		return models.NewValidationError(fmt.Sprintf("%s must be at most %s characters", first.Field(), first.Param()))
	case "email":
		return models.NewValidationError("invalid email format")
	}
	return models.NewValidationError(fmt.Sprintf("%s failed %s validation", first.Field(), first.Tag()))
}
