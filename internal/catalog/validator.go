package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Minefut_Go/internal/domain"
)

// Validator wraps the validator instance used for catalog content
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the catalog's custom tags registered
func NewValidator() *Validator {
	v := validator.New()

	// Register custom validation for card rarities
	_ = v.RegisterValidation(TagRarity, validateRarity)

	return &Validator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError flattens validation errors into "field: reason"
// lines, sorted for stable output.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	lines := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			lines = append(lines, fmt.Sprintf("%s: is required", field))
		case TagRarity:
			lines = append(lines, fmt.Sprintf("%s: unknown rarity %q", field, e.Value()))
		case "gte", "min":
			lines = append(lines, fmt.Sprintf("%s: must be at least %s", field, e.Param()))
		case "lte", "max":
			lines = append(lines, fmt.Sprintf("%s: must be at most %s", field, e.Param()))
		default:
			lines = append(lines, fmt.Sprintf("%s: invalid value", field))
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "; ")
}

// validateRarity accepts any spelling that canonicalizes to a known rarity
func validateRarity(fl validator.FieldLevel) bool {
	rarity := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if rarity == "" {
		return true
	}
	return domain.IsKnownRarity(rarity)
}
