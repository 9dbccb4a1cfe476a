package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagReportID accepts identifiers safe to use as a single storage path segment.
const TagReportID = "report_id"

var reportIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// New creates a new validator instance with the service's custom tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagReportID, func(fl validator.FieldLevel) bool {
		return reportIDPattern.MatchString(fl.Field().String())
	})
	return v
}
