// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"slices"
	"strings"

	"jild/internal/domain/wizard"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator is registered as echo's validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator with the questionnaire field rules registered.
//
// Extra tags:
//   - location: "City, Country"
//   - skintype: one of wizard.SkinTypes
//   - marital: one of wizard.MaritalStatuses
//   - condition, allergy, concern: checklist members
//   - noneexclusive: "None" only on its own
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return jsonName(field.Tag.Get("json"), field.Name)
	})

	_ = v.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		return wizard.ValidLocation(fl.Field().String())
	})
	_ = v.RegisterValidation("skintype", oneOf(wizard.SkinTypes))
	_ = v.RegisterValidation("marital", oneOf(wizard.MaritalStatuses))
	_ = v.RegisterValidation("condition", oneOf(wizard.Conditions))
	_ = v.RegisterValidation("allergy", oneOf(wizard.Allergies))
	_ = v.RegisterValidation("concern", oneOf(wizard.Concerns))
	_ = v.RegisterValidation("noneexclusive", func(fl validator.FieldLevel) bool {
		items, ok := fl.Field().Interface().([]string)

		return !ok || wizard.ExclusiveHonored(items, wizard.NoneOption)
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors flattens validation errors into field -> rule, for error details.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out[fe.Field()] = rule
	}

	return out
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(values, fl.Field().String())
	}
}

func jsonName(tag, fallback string) string {
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return ""
	case "":
		return fallback
	default:
		return name
	}
}
