package engine

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bitbucket.org/mmdatafocus/tradedocs_backend/schema"
	"bitbucket.org/mmdatafocus/tradedocs_backend/utils"
)

// FieldResult is the validation verdict for one field. Failures are values,
// never panics: the caller decides whether an invalid document blocks
// generation (strict mode) or merely shows inline errors.
type FieldResult struct {
	IsValid      bool   `json:"is_valid"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// DocumentResult aggregates FieldResult over a document profile.
// IsValid is true iff every field of the profile is valid.
type DocumentResult struct {
	IsValid bool                   `json:"is_valid"`
	Fields  map[string]FieldResult `json:"fields"`
}

// Validator evaluates presence and shape rules for document fields.
// Shape rules come from the schema: a type-level check (number, date, email,
// phone) plus an optional extra validator tag per field.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func valid() FieldResult {
	return FieldResult{IsValid: true}
}

func invalid(format string, args ...interface{}) FieldResult {
	return FieldResult{IsValid: false, ErrorMessage: fmt.Sprintf(format, args...)}
}

// CheckField validates one value against its field definition on the given
// profile. Presence is checked before shape: a required empty field reports
// the requiredness error, and an optional empty field is trivially valid.
// Unknown field keys are valid; the form cannot render what the schema does
// not declare, so there is nothing to enforce.
func (v *Validator) CheckField(profile schema.Profile, fieldKey string, value string) FieldResult {
	field, ok := profile.Field(fieldKey)
	if !ok {
		return valid()
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if profile.IsRequired(fieldKey) {
			return invalid("%s is required", field.Label)
		}
		return valid()
	}

	if res := v.checkShape(field, trimmed); !res.IsValid {
		return res
	}
	if field.Rule != "" {
		if err := v.validate.Var(trimmed, field.Rule); err != nil {
			return invalid("%s is not in a valid format", field.Label)
		}
	}
	return valid()
}

func (v *Validator) checkShape(field schema.Field, value string) FieldResult {
	switch field.Type {
	case schema.FieldTypeNumber:
		n, err := decimal.NewFromString(value)
		if err != nil {
			return invalid("%s must be a number", field.Label)
		}
		if field.Min != "" {
			if minVal, err := decimal.NewFromString(field.Min); err == nil && n.LessThan(minVal) {
				return invalid("%s must be at least %s", field.Label, field.Min)
			}
		}
		if field.Max != "" {
			if maxVal, err := decimal.NewFromString(field.Max); err == nil && n.GreaterThan(maxVal) {
				return invalid("%s must be at most %s", field.Label, field.Max)
			}
		}
	case schema.FieldTypeDate:
		if err := v.validate.Var(value, "datetime=2006-01-02"); err != nil {
			return invalid("%s must be a date (YYYY-MM-DD)", field.Label)
		}
	case schema.FieldTypeEmail:
		if err := v.validate.Var(value, "email"); err != nil {
			return invalid("%s must be a valid email address", field.Label)
		}
	case schema.FieldTypePhone:
		if err := utils.ValidatePhoneNumber(value, utils.CountryCode); err != nil {
			return invalid("%s must be a valid phone number", field.Label)
		}
	}
	return valid()
}

// CheckDocument runs CheckField over every field of the profile.
func (v *Validator) CheckDocument(profile schema.Profile, values map[string]string) DocumentResult {
	result := DocumentResult{
		IsValid: true,
		Fields:  make(map[string]FieldResult, len(profile.Fields)),
	}
	for _, field := range profile.Fields {
		res := v.CheckField(profile, field.Key, values[field.Key])
		result.Fields[field.Key] = res
		if !res.IsValid {
			result.IsValid = false
		}
	}
	return result
}
