package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("notblank", validateNotBlank)
}

func GetValidator() *validator.Validate {
	return validate
}

// jsonFieldName makes validation errors report the wire name of a field.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func FormatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required", "notblank":
				message = fieldError.Field() + " is required"
			case "email":
				message = "Please provide a valid email"
			case "min":
				if fieldError.Kind() == reflect.String {
					message = fieldError.Field() + " must be at least " + fieldError.Param() + " characters"
				} else {
					message = fieldError.Field() + " must be at least " + fieldError.Param()
				}
			case "max":
				if fieldError.Kind() == reflect.String {
					message = fieldError.Field() + " must be at most " + fieldError.Param() + " characters"
				} else {
					message = fieldError.Field() + " must be at most " + fieldError.Param()
				}
			case "gte":
				message = fieldError.Field() + " must be greater than or equal to " + fieldError.Param()
			case "lte":
				message = fieldError.Field() + " must be less than or equal to " + fieldError.Param()
			case "gt":
				message = fieldError.Field() + " must be greater than " + fieldError.Param()
			case "eqfield":
				message = "Passwords do not match"
			case "ltefield":
				message = fieldError.Field() + " cannot exceed " + lowerFirst(fieldError.Param())
			case "oneof":
				message = fieldError.Field() + " must be one of: " + fieldError.Param()
			case "dive":
				message = fieldError.Field() + " contains invalid items"
			default:
				message = fieldError.Field() + " is invalid"
			}

			errors = append(errors, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return errors
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

type Validator interface {
	Validate() error
}

func CreateValidationErrorResponse(err error) ValidationErrorResponse {
	return ValidationErrorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  FormatValidationErrors(err),
	}
}
