package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"warung/internal/models"
)

var dateYMDPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validator validates product payloads and collects every violation
// instead of stopping at the first one.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the grocery-specific rules registered.
func New() *Validator {
	v := validator.New()

	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("grocerycategory", func(fl validator.FieldLevel) bool {
		return models.IsValidCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("dateymd", func(fl validator.FieldLevel) bool {
		return dateYMDPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates s against its tags and returns one message per
// violated field. A nil return means the value is valid.
func (v *Validator) Struct(s interface{}) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, message(e))
	}
	return messages
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", e.Field())
	case "grocerycategory":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.Join(models.Categories, ", "))
	case "dateymd":
		return fmt.Sprintf("%s must match the YYYY-MM-DD format", e.Field())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", e.Field(), e.Tag())
	}
}
