// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	aliasPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("slug", validateSlug)
	validate.RegisterValidation("alias", validateAlias)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsValidSlug reports whether s is a URL-safe slug: lowercase letters,
// digits and single interior dashes.
func IsValidSlug(s string) bool {
	return len(s) >= 1 && len(s) <= 120 && slugPattern.MatchString(s)
}

// IsValidAlias reports whether s is a well-formed display handle: lowercase
// letters, digits and dashes, at least 3 characters.
func IsValidAlias(s string) bool {
	return len(s) >= 3 && len(s) <= 50 && aliasPattern.MatchString(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	return IsValidSlug(fl.Field().String())
}

func validateAlias(fl validator.FieldLevel) bool {
	return IsValidAlias(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// FirstValidationMessage flattens a validator error to the single message
// the boundary surfaces.
func FirstValidationMessage(err error) string {
	errs := GetValidationErrors(err)
	if len(errs) == 0 {
		if err != nil {
			return err.Error()
		}
		return "invalid input"
	}
	return errs[0].Message
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return strings.ToLower(e.Field()) + " is required"
	case "email":
		return "invalid email format"
	case "min":
		return strings.ToLower(e.Field()) + " must be at least " + e.Param() + " characters"
	case "max":
		return strings.ToLower(e.Field()) + " must be at most " + e.Param() + " characters"
	case "slug":
		return "slug may only contain lowercase letters, digits and dashes"
	case "alias":
		return "alias must be at least 3 characters of lowercase letters, digits and dashes"
	default:
		return strings.ToLower(e.Field()) + " is invalid"
	}
}
