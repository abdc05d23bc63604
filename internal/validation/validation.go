package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aminrezaei/hr-panel-api/internal/models"
	appErrors "github.com/aminrezaei/hr-panel-api/pkg/errors"
)

var (
	mobilePattern = regexp.MustCompile(`^\d{11}$`)
	datePattern   = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
)

// New builds a validator with the domain rule set registered. Field names in
// violation messages come from json tags.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("mobile11", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("jdate", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		return models.Gender(fl.Field().Int()).Valid()
	})

	_ = v.RegisterValidation("edulevel", func(fl validator.FieldLevel) bool {
		return models.EducationLevel(fl.Field().Int()).Valid()
	})

	return v
}

// Format renders every rule violation into one ordered, human-readable
// message. Validation is not fail-fast: the caller gets all problems at once.
func Format(err error) string {
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(violations))
	for _, fe := range violations {
		messages = append(messages, describe(fe))
	}
	return strings.Join(messages, "; ")
}

// Error wraps a validator failure into the 400 envelope error carrying the
// aggregated message.
func Error(err error) *appErrors.Error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, Format(err))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "mobile11":
		return fmt.Sprintf("%s must be exactly 11 digits", field)
	case "jdate":
		return fmt.Sprintf("%s must match the yyyy/MM/dd format", field)
	case "gender":
		return fmt.Sprintf("%s is not a valid gender", field)
	case "edulevel":
		return fmt.Sprintf("%s is not a valid education level", field)
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}
