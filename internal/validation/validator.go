package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const ISODateLayout = "2006-01-02"

var (
	clientIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]{0,127}$`)
	bankCodePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("client_id", validateClientID)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("bank_code", validateBankCode)

	v.RegisterTagNameFunc(fieldName)

	return &Validator{validate: v}
}

// fieldName reports fields by their wire name: query, then param, then json.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"query", "param", "json"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// validateClientID accepts opaque client identifiers of up to 128 characters
func validateClientID(fl validator.FieldLevel) bool {
	return clientIDPattern.MatchString(fl.Field().String())
}

// validateISODate accepts calendar dates in YYYY-MM-DD form
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(ISODateLayout, fl.Field().String())
	return err == nil
}

// validateBankCode accepts lowercase bank codes such as "sber" or "alfa-bank"
func validateBankCode(fl validator.FieldLevel) bool {
	return bankCodePattern.MatchString(fl.Field().String())
}

// FieldErrors flattens validator errors into field -> message pairs.
// It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}
	out := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		out[fe.Field()] = FormatFieldError(fe)
	}
	return out
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "dive":
		return "contains an invalid entry"
	case "client_id":
		return "must be a valid client ID (letters, digits, '.', '_', ':', '-')"
	case "iso_date":
		return "must be a date in YYYY-MM-DD format"
	case "bank_code":
		return "must be a lowercase bank code"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
