package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"jobright-api/pkg/models"
)

// UserIDPattern allows opaque client identifiers: letters, digits, dots, hyphens and underscores
var UserIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// ValidateUserID checks a user identifier taken from a path or query
func ValidateUserID(fl validator.FieldLevel) bool {
	return UserIDPattern.MatchString(fl.Field().String())
}

// ValidateSalaryRange requires exactly two values, in thousands, with
// floor <= min <= max <= ceiling
func ValidateSalaryRange(fl validator.FieldLevel) bool {
	r, ok := fl.Field().Interface().([]int)
	if !ok || len(r) != 2 {
		return false
	}
	return r[0] >= models.SalaryRangeFloor && r[0] <= r[1] && r[1] <= models.SalaryRangeCeiling
}

// RegisterValidators registers the custom validators used by request models
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("user_id", ValidateUserID)
	v.RegisterValidation("salary_range", ValidateSalaryRange)
}

// New returns a validator with the custom validators registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}
